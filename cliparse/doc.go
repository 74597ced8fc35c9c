// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p       Server port (default: 3318)
	-d       Database URL (default: file:quorion.db)
	-t       Database type: sqlite or postgres (default: sqlite)
	-seed    YAML file of projects to load at startup
	-stream  Stream project pages before the lookup resolves

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SEED_FILE     → -seed
	STREAM_PAGES  → -stream

CLI flags take precedence over environment variables. main loads a .env
file (if present) before ParseFlags runs, so .env values behave like
environment variables.
*/
package cliparse
