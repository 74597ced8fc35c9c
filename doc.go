// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quorion project pages server.

Quorion is a crowdsourced data-contribution platform. This server renders
the project detail page (progress, team, reward and contact panels), the
project index and a small read-only JSON API.

# Starting the Server

With defaults (sqlite file quorion.db, port 3318):

	go run .

With PostgreSQL and a seed file:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... SEED_FILE=projects.yaml go run .

A .env file in the working directory is loaded first if present.

# Configuration

  - PORT (-p): server port (default: 3318)
  - DATABASE_URL (-d): connection string (default: file:quorion.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_FILE (-seed): YAML projects to insert at startup
  - STREAM_PAGES (-stream): flush the page shell before the project loads

# Architecture

  - handlers: HTTP handlers and derived project metrics
  - pages: html/template rendering
  - store: project queries
  - seed: YAML seed loading
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: domain and response types
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
