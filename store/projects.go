// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quorion/db"
	"github.com/danielhkuo/quorion/models"
)

var ErrInvalidProject = errors.New("invalid project")

type ProjectStore struct {
	db *sql.DB
}

func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// GetProjectByID loads one project with its tags and team.
// found is false when no project has the id; err is reserved for real failures.
func (s *ProjectStore) GetProjectByID(ctx context.Context, id string) (project models.Project, found bool, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT id, name, organization_name, description, image_url,
		       collected_elements, required_elements,
		       distributed_prize_pool, total_prize_pool, contact_email
		FROM project
		WHERE id = $1
	`, id).Scan(
		&project.ID, &project.Name, &project.OrganizationName,
		&project.Description, &project.ImageURL,
		&project.CollectedElements, &project.RequiredElements,
		&project.DistributedPrizePool, &project.TotalPrizePool, &project.ContactEmail,
	)
	if err == sql.ErrNoRows {
		return models.Project{}, false, nil
	}
	if err != nil {
		return models.Project{}, false, fmt.Errorf("failed to query project: %w", err)
	}

	if err := s.loadRelations(ctx, &project); err != nil {
		return models.Project{}, false, err
	}

	return project, true, nil
}

// ListProjects returns all projects, newest first.
func (s *ProjectStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, organization_name, description, image_url,
		       collected_elements, required_elements,
		       distributed_prize_pool, total_prize_pool, contact_email
		FROM project
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Name, &p.OrganizationName,
			&p.Description, &p.ImageURL,
			&p.CollectedElements, &p.RequiredElements,
			&p.DistributedPrizePool, &p.TotalPrizePool, &p.ContactEmail,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	// Close before loading relations; sqlite runs on a single connection
	rows.Close()

	for i := range projects {
		if err := s.loadRelations(ctx, &projects[i]); err != nil {
			return nil, err
		}
	}

	return projects, nil
}

// CreateProject inserts a project with its tags and team in one transaction.
// A missing ID is filled with a new UUID; the stored ID is returned.
func (s *ProjectStore) CreateProject(ctx context.Context, p models.Project) (string, error) {
	if err := validateProject(p); err != nil {
		return "", err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO project (id, name, organization_name, description, image_url,
		                     collected_elements, required_elements,
		                     distributed_prize_pool, total_prize_pool, contact_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, p.ID, p.Name, p.OrganizationName, p.Description, p.ImageURL,
		p.CollectedElements, p.RequiredElements,
		p.DistributedPrizePool, p.TotalPrizePool, p.ContactEmail, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert project: %w", err)
	}

	for i, dataType := range p.DataTypes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO project_data_type (project_id, ord, data_type)
			VALUES ($1, $2, $3)
		`, p.ID, i, dataType)
		if err != nil {
			return "", fmt.Errorf("failed to insert data type: %w", err)
		}
	}

	members := []struct {
		role      string
		addresses []string
	}{
		{db.RoleAdmin, p.AdminAddresses},
		{db.RoleValidator, p.ValidatorAddresses},
	}
	for _, m := range members {
		for i, addr := range m.addresses {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO project_member (project_id, role, ord, address)
				VALUES ($1, $2, $3, $4)
			`, p.ID, m.role, i, addr)
			if err != nil {
				return "", fmt.Errorf("failed to insert %s: %w", m.role, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit project: %w", err)
	}

	return p.ID, nil
}

func (s *ProjectStore) loadRelations(ctx context.Context, p *models.Project) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT data_type FROM project_data_type
		WHERE project_id = $1
		ORDER BY ord
	`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query data types: %w", err)
	}
	p.DataTypes = []string{}
	for rows.Next() {
		var dataType string
		if err := rows.Scan(&dataType); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan data type: %w", err)
		}
		p.DataTypes = append(p.DataTypes, dataType)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate data types: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `
		SELECT role, address FROM project_member
		WHERE project_id = $1
		ORDER BY role, ord
	`, p.ID)
	if err != nil {
		return fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	p.AdminAddresses = []string{}
	p.ValidatorAddresses = []string{}
	for rows.Next() {
		var role, addr string
		if err := rows.Scan(&role, &addr); err != nil {
			return fmt.Errorf("failed to scan member: %w", err)
		}
		switch role {
		case db.RoleAdmin:
			p.AdminAddresses = append(p.AdminAddresses, addr)
		case db.RoleValidator:
			p.ValidatorAddresses = append(p.ValidatorAddresses, addr)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate members: %w", err)
	}

	return nil
}

func validateProject(p models.Project) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	case strings.TrimSpace(p.OrganizationName) == "":
		return fmt.Errorf("%w: organization_name is required", ErrInvalidProject)
	case strings.TrimSpace(p.ContactEmail) == "":
		return fmt.Errorf("%w: contact_email is required", ErrInvalidProject)
	case p.CollectedElements < 0 || p.RequiredElements < 0:
		return fmt.Errorf("%w: element counts must be non-negative", ErrInvalidProject)
	case p.DistributedPrizePool < 0 || p.TotalPrizePool < 0:
		return fmt.Errorf("%w: prize pools must be non-negative", ErrInvalidProject)
	}
	return nil
}
