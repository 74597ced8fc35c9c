// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq

Queries use $1-style placeholders, which both drivers accept.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - project: project metadata, progress counters and prize pools
  - project_data_type: ordered data type tags
  - project_member: admin and validator addresses

# Relationships

	project 1──* project_data_type
	project 1──* project_member

All foreign keys use ON DELETE CASCADE.
*/
package db
