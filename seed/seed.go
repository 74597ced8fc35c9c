// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quorion/models"
)

// ProjectCreator is the part of the project store the seeder needs
type ProjectCreator interface {
	CreateProject(ctx context.Context, p models.Project) (string, error)
}

// ProjectGetter is used to skip projects that already exist
type ProjectGetter interface {
	GetProjectByID(ctx context.Context, id string) (models.Project, bool, error)
}

type ProjectStore interface {
	ProjectCreator
	ProjectGetter
}

type fixture struct {
	Projects []models.Project `yaml:"projects"`
}

// Parse decodes a seed document:
//
//	projects:
//	  - id: noise-map
//	    name: Urban Noise Map
//	    ...
func Parse(r io.Reader) ([]models.Project, error) {
	var f fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return []models.Project{}, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return f.Projects, nil
}

// LoadFile inserts every project in path that is not already stored.
// Returns the number of projects inserted.
func LoadFile(ctx context.Context, s ProjectStore, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	projects, err := Parse(file)
	if err != nil {
		return 0, err
	}

	return Load(ctx, s, projects)
}

// Load inserts projects, skipping IDs that already exist so restarts are idempotent
func Load(ctx context.Context, s ProjectStore, projects []models.Project) (int, error) {
	inserted := 0
	for _, p := range projects {
		if p.ID != "" {
			_, found, err := s.GetProjectByID(ctx, p.ID)
			if err != nil {
				return inserted, err
			}
			if found {
				slog.Info("seed project already present", "project_id", p.ID)
				continue
			}
		}

		id, err := s.CreateProject(ctx, p)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed project %q: %w", p.Name, err)
		}
		slog.Info("seeded project", "project_id", id, "name", p.Name)
		inserted++
	}
	return inserted, nil
}
