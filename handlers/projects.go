// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/quorion/cliparse"
	"github.com/danielhkuo/quorion/middleware"
	"github.com/danielhkuo/quorion/models"
	"github.com/danielhkuo/quorion/pages"
)

const htmlContentType = "text/html; charset=utf-8"

// ProjectStore is the read side of store.ProjectStore
type ProjectStore interface {
	GetProjectByID(ctx context.Context, id string) (models.Project, bool, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
}

type ProjectHandler struct {
	store ProjectStore
	pages *pages.Renderer
	cfg   cliparse.Config
}

func NewProjectHandler(store ProjectStore, renderer *pages.Renderer, cfg cliparse.Config) *ProjectHandler {
	return &ProjectHandler{store: store, pages: renderer, cfg: cfg}
}

// lookup is the outcome of the async project fetch
type lookup struct {
	project models.Project
	found   bool
}

// startLookup runs the fetch in its own task so the shell can render meanwhile
func (h *ProjectHandler) startLookup(ctx context.Context, id string) (*errgroup.Group, *lookup) {
	g, gctx := errgroup.WithContext(ctx)
	result := &lookup{}
	g.Go(func() error {
		project, found, err := h.store.GetProjectByID(gctx, id)
		if err != nil {
			return err
		}
		result.project = project
		result.found = found
		return nil
	})
	return g, result
}

// ProjectPage handles GET /project/{id}
// Renders the project detail page, or a 404 page when the project does not exist
func (h *ProjectHandler) ProjectPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.notFoundPage(w)
		return
	}

	g, result := h.startLookup(r.Context(), id)

	if flusher, ok := w.(http.Flusher); ok && h.cfg.StreamPages {
		h.streamProjectPage(w, flusher, g, result, id)
		return
	}

	// Shell renders while the lookup is in flight; nothing is sent until the
	// lookup resolves so a missing project still gets a real 404.
	var page bytes.Buffer
	shellErr := h.pages.ShellStart(&page)

	if err := g.Wait(); err != nil {
		slog.Error("failed to load project", "project_id", id, "error", err)
		h.errorPage(w)
		return
	}
	if shellErr != nil {
		slog.Error("failed to render page shell", "error", shellErr)
		h.errorPage(w)
		return
	}

	if !result.found {
		slog.Info("project not found", "project_id", id)
		h.notFoundPage(w)
		return
	}

	view := buildProjectView(result.project, ComputeProjectStats(result.project))
	if err := h.pages.ProjectContent(&page, view); err != nil {
		slog.Error("failed to render project", "project_id", id, "error", err)
		h.errorPage(w)
		return
	}
	if err := h.pages.ShellEnd(&page); err != nil {
		slog.Error("failed to render page shell", "error", err)
		h.errorPage(w)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// streamProjectPage flushes the shell and loading fallback first, then the
// content once the lookup resolves. The status is committed before the
// lookup finishes, so not-found and errors are reported in the page body.
func (h *ProjectHandler) streamProjectPage(w http.ResponseWriter, flusher http.Flusher, g *errgroup.Group, result *lookup, id string) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)

	if err := h.pages.ShellStart(w); err != nil {
		slog.Error("failed to stream page shell", "error", err)
		if werr := g.Wait(); werr != nil {
			slog.Error("failed to load project", "project_id", id, "error", werr)
		}
		return
	}
	if err := h.pages.LoadingFallback(w); err != nil {
		slog.Error("failed to stream loading fallback", "error", err)
	}
	flusher.Flush()

	var err error
	switch werr := g.Wait(); {
	case werr != nil:
		slog.Error("failed to load project", "project_id", id, "error", werr)
		err = h.pages.StreamedError(w)
	case !result.found:
		slog.Info("project not found", "project_id", id)
		err = h.pages.StreamedNotFound(w)
	default:
		view := buildProjectView(result.project, ComputeProjectStats(result.project))
		err = h.pages.StreamedProjectContent(w, view)
	}
	if err != nil {
		slog.Error("failed to stream project content", "project_id", id, "error", err)
	}

	if err := h.pages.ShellEnd(w); err != nil {
		slog.Error("failed to stream page shell", "error", err)
	}
	flusher.Flush()
}

// ProjectsPage handles GET /projects
func (h *ProjectHandler) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		h.errorPage(w)
		return
	}

	items := make([]pages.IndexItem, 0, len(projects))
	for _, p := range projects {
		pct := Percentage(float64(p.CollectedElements), float64(p.RequiredElements))
		items = append(items, pages.IndexItem{
			Name:               p.Name,
			OrganizationName:   p.OrganizationName,
			URL:                "/project/" + url.PathEscape(p.ID),
			ProgressPercentage: pct,
			ProgressBarWidth:   barWidth(pct),
		})
	}

	var page bytes.Buffer
	if err := h.pages.ProjectIndex(&page, items); err != nil {
		slog.Error("failed to render project index", "error", err)
		h.errorPage(w)
		return
	}

	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// GetProject handles GET /api/projects/{id}
// Returns the project with its derived stats
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	project, found, err := h.store.GetProjectByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to query project", "project_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProjectDetail{
		Project: project,
		Stats:   ComputeProjectStats(project),
	})
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.store.ListProjects(r.Context())
	if err != nil {
		slog.Error("failed to list projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := make([]models.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, models.ProjectSummary{
			ID:                 p.ID,
			Name:               p.Name,
			OrganizationName:   p.OrganizationName,
			ProgressPercentage: Percentage(float64(p.CollectedElements), float64(p.RequiredElements)),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProjectListResponse{Projects: summaries})
}

// Placeholder handles GET /placeholder.svg
// Serves the fallback cover image; width and height default to 1200x800
func (h *ProjectHandler) Placeholder(w http.ResponseWriter, r *http.Request) {
	width := dimension(r.URL.Query().Get("width"), 1200)
	height := dimension(r.URL.Query().Get("height"), 800)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
		`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-family="sans-serif" font-size="%d" fill="#9ca3af">%dx%d</text>`+
		`</svg>`, width, height, width, height, max(min(width, height)/10, 8), width, height)
}

func dimension(raw string, fallback int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return min(v, 4000)
}

func (h *ProjectHandler) notFoundPage(w http.ResponseWriter) {
	var page bytes.Buffer
	if err := h.pages.NotFoundPage(&page); err != nil {
		slog.Error("failed to render not found page", "error", err)
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusNotFound)
	w.Write(page.Bytes())
}

func (h *ProjectHandler) errorPage(w http.ResponseWriter) {
	var page bytes.Buffer
	if err := h.pages.ErrorPage(&page); err != nil {
		slog.Error("failed to render error page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(page.Bytes())
}
