// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"

	"github.com/danielhkuo/quorion/cliparse"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"project", "project_data_type", "project_member"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s: %v", table, err)
		}
	}
}

func TestSchemaConstraints(t *testing.T) {
	conn, err := Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatal(err)
	}

	_, err = conn.Exec(`
		INSERT INTO project (id, name, organization_name, collected_elements, required_elements, contact_email)
		VALUES ('neg', 'n', 'o', -1, 10, 'a@b.c')
	`)
	if err == nil {
		t.Error("Expected CHECK constraint to reject negative collected_elements")
	}

	_, err = conn.Exec(`INSERT INTO project_member (project_id, role, ord, address) VALUES ('ghost', 'admin', 0, '0x1')`)
	if err == nil {
		t.Error("Expected foreign key to reject member of unknown project")
	}

	_, err = conn.Exec(`
		INSERT INTO project (id, name, organization_name, required_elements, contact_email)
		VALUES ('p', 'n', 'o', 10, 'a@b.c')
	`)
	if err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO project_member (project_id, role, ord, address) VALUES ('p', 'owner', 0, '0x1')`)
	if err == nil {
		t.Error("Expected CHECK constraint to reject unknown role")
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestSchema_RepeatedMemberAddress(t *testing.T) {
	conn, err := Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatal(err)
	}

	_, err = conn.Exec(`
		INSERT INTO project (id, name, organization_name, required_elements, contact_email)
		VALUES ('p', 'n', 'o', 10, 'a@b.c')
	`)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		_, err := conn.Exec(`INSERT INTO project_member (project_id, role, ord, address) VALUES ('p', 'admin', $1, '0xa')`, i)
		if err != nil {
			t.Fatalf("Same address at position %d should be accepted: %v", i, err)
		}
	}
}

func TestWithSQLitePragmas(t *testing.T) {
	tests := []struct {
		dsn      string
		expected string
	}{
		{":memory:", ":memory:?_pragma=foreign_keys(1)"},
		{"file:quorion.db", "file:quorion.db?_pragma=foreign_keys(1)"},
		{"file:quorion.db?cache=shared", "file:quorion.db?cache=shared&_pragma=foreign_keys(1)"},
		{"file:x.db?_pragma=foreign_keys(0)", "file:x.db?_pragma=foreign_keys(0)"},
	}

	for _, tt := range tests {
		if got := withSQLitePragmas(tt.dsn); got != tt.expected {
			t.Errorf("withSQLitePragmas(%q) = %q, expected %q", tt.dsn, got, tt.expected)
		}
	}
}
