// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quorion/cliparse"
)

// Open connects to the configured database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	if driver == "sqlite" {
		url = withSQLitePragmas(url)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// sqlite only allows one writer; a single connection also keeps
		// :memory: databases alive across queries
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// withSQLitePragmas adds foreign key enforcement to the DSN so every pooled
// connection gets it, not only the first one.
func withSQLitePragmas(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Member roles stored in project_member.role
const (
	RoleAdmin     = "admin"
	RoleValidator = "validator"
)

const schema = `
-- Projects
CREATE TABLE IF NOT EXISTS project (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    organization_name TEXT NOT NULL,
    description TEXT,
    image_url TEXT,
    collected_elements BIGINT NOT NULL DEFAULT 0 CHECK (collected_elements >= 0),
    required_elements BIGINT NOT NULL CHECK (required_elements >= 0),
    distributed_prize_pool DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (distributed_prize_pool >= 0),
    total_prize_pool DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (total_prize_pool >= 0),
    contact_email TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_project_created_at ON project(created_at);

-- Data type tags, ordered
CREATE TABLE IF NOT EXISTS project_data_type (
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    ord INTEGER NOT NULL,
    data_type TEXT NOT NULL,
    PRIMARY KEY (project_id, ord)
);

-- Admin and validator addresses
CREATE TABLE IF NOT EXISTS project_member (
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    role TEXT NOT NULL CHECK (role IN ('admin', 'validator')),
    ord INTEGER NOT NULL,
    address TEXT NOT NULL,
    PRIMARY KEY (project_id, role, ord)
);

CREATE INDEX IF NOT EXISTS idx_project_member_project_id ON project_member(project_id);
`
