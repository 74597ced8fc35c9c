// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quorion/cliparse"
	"github.com/danielhkuo/quorion/handlers"
	"github.com/danielhkuo/quorion/middleware"
	"github.com/danielhkuo/quorion/pages"
	"github.com/danielhkuo/quorion/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(store.NewProjectStore(db), pages.MustNew(), cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /projects", middleware.WithLogging(projectHandler.ProjectsPage))
	mux.HandleFunc("GET /project/{id}", middleware.WithLogging(projectHandler.ProjectPage))
	mux.HandleFunc("GET /placeholder.svg", projectHandler.Placeholder)

	// JSON API (read only)
	mux.HandleFunc("GET /api/projects", middleware.WithLogging(projectHandler.ListProjects))
	mux.HandleFunc("GET /api/projects/{id}", middleware.WithLogging(projectHandler.GetProject))

	// Root redirects to the index
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/projects", http.StatusFound)
	})

	return mux
}
