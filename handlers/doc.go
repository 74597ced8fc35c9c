// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quorion project pages.

# Handler Types

ProjectHandler serves the HTML pages and the JSON API. It depends on a
ProjectStore (usually *store.ProjectStore), the page renderer and Config:

	projectHandler := handlers.NewProjectHandler(store.NewProjectStore(db), pages.MustNew(), cfg)

# Project Detail Page

	GET /project/{id} → ProjectPage

The project lookup starts in its own errgroup task before the shell is
rendered. In buffered mode the response is written once the lookup resolves,
so a missing project gets a 404 page. With cfg.StreamPages the shell and a
screen-reader-only "Loading project..." fallback are flushed first and the
panels follow when the lookup finishes.

Lookup failures other than "not found" are logged and answered with a
generic 500 page.

# Derived Metrics

ComputeProjectStats (progress.go) derives:

  - progress percentage: round(100 * collected / required)
  - distributed percentage: round(100 * distributed / total)
  - reward per submission: total / required with two decimals
  - captions with thousands separators
  - team summary: "<N> Admins, <M> Validators"

A zero denominator gives 0% and RewardUnavailable instead of NaN or Inf.

# Other Endpoints

	GET /projects          → ProjectsPage
	GET /api/projects      → ListProjects
	GET /api/projects/{id} → GetProject
	GET /placeholder.svg   → Placeholder
*/
package handlers
