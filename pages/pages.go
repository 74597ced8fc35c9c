// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// ProjectView is everything the project detail panels display.
// Handlers resolve fallbacks (placeholder image, missing description) before rendering.
type ProjectView struct {
	ID               string
	Name             string
	OrganizationName string
	Description      string
	ImageURL         string
	DataTypes        []string
	TeamSummary      string

	ProgressPercentage    int
	ProgressBarWidth      int
	CollectedText         string
	RequiredText          string
	DistributedPercentage int
	DistributedBarWidth   int
	DistributedText       string
	TotalText             string

	RewardAvailable     bool
	RewardPerSubmission string

	ContributeURL string
	ValidatorURL  string
	ContactEmail  string
	MailtoURL     string
}

// IndexItem is one row of the projects index
type IndexItem struct {
	Name               string
	OrganizationName   string
	URL                string
	ProgressPercentage int
	ProgressBarWidth   int
}

type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNew is New for package initialization; the templates are embedded so
// a parse failure is a build defect.
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// ShellStart writes the document head, back link and opens the grid
func (r *Renderer) ShellStart(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "shell_start", nil)
}

// ShellEnd closes the grid and the document
func (r *Renderer) ShellEnd(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "shell_end", nil)
}

// LoadingFallback writes the screen-reader-only placeholder shown while the project loads
func (r *Renderer) LoadingFallback(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "loading", nil)
}

// ProjectContent writes the overview, progress and action panels
func (r *Renderer) ProjectContent(w io.Writer, v ProjectView) error {
	return r.tmpl.ExecuteTemplate(w, "project_content", v)
}

// StreamedProjectContent writes the panels inside a hidden container followed
// by a script that swaps them in for the loading fallback.
func (r *Renderer) StreamedProjectContent(w io.Writer, v ProjectView) error {
	return r.tmpl.ExecuteTemplate(w, "streamed_project", v)
}

// StreamedNotFound replaces the loading fallback with the not-found message
func (r *Renderer) StreamedNotFound(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "streamed_not_found", nil)
}

// StreamedError replaces the loading fallback with a generic error message
func (r *Renderer) StreamedError(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "streamed_error", nil)
}

// NotFoundPage writes a complete not-found document
func (r *Renderer) NotFoundPage(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "not_found_page", nil)
}

// ErrorPage writes a complete generic error document
func (r *Renderer) ErrorPage(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "error_page", nil)
}

// ProjectIndex writes the projects listing page
func (r *Renderer) ProjectIndex(w io.Writer, items []IndexItem) error {
	return r.tmpl.ExecuteTemplate(w, "index_page", items)
}
