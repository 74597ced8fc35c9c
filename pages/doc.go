// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pages renders the server-side HTML.

Templates are embedded from templates/ and parsed once:

	renderer := pages.MustNew()

# Project Detail Page

The detail page is written in pieces so the shell can go out before the
project lookup finishes:

	renderer.ShellStart(w)       // head, back link, grid open
	renderer.LoadingFallback(w)  // <p class="sr-only">Loading project...</p>
	renderer.StreamedProjectContent(w, view)
	renderer.ShellEnd(w)

Buffered responses skip the fallback and call ProjectContent directly.
Streamed fragments arrive in a hidden container and a short inline script
moves them into place of the fallback.

# Other Pages

  - NotFoundPage: complete 404 document
  - ErrorPage: complete 500 document
  - ProjectIndex: list of projects with progress bars

All values go through html/template, so names, descriptions and addresses
are escaped and URLs are sanitized.
*/
package pages
