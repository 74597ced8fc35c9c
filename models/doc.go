// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types.

# Domain Types

  - Project: a crowdsourced data-collection campaign with funding and
    progress metadata. Description and ImageURL are optional (nil when absent).
  - ProjectStats: display metrics derived from a Project
    (progress percentages, reward per submission, formatted captions)

# Response Types

  - ProjectDetail: project, stats
  - ProjectListResponse: projects (id, name, organization_name, progress_percentage)
  - ErrorResponse: error, message

Project also carries yaml tags so seed files decode straight into it.
*/
package models
