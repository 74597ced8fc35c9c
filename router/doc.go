// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quorion project pages.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Pages:

	GET /                 - Redirect to /projects
	GET /projects         - Project index
	GET /project/{id}     - Project detail (404 page when missing)
	GET /placeholder.svg  - Fallback cover image

JSON API:

	GET /api/projects      - Project summaries
	GET /api/projects/{id} - Project with derived stats

# Handler Initialization

	projectHandler := handlers.NewProjectHandler(store.NewProjectStore(db), pages.MustNew(), cfg)

cfg.StreamPages switches the detail page between buffered and streamed output.
*/
package router
