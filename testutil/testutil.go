// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quorion/cliparse"
	"github.com/danielhkuo/quorion/db"
	"github.com/danielhkuo/quorion/models"
	"github.com/danielhkuo/quorion/store"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// NewTestProject returns a fully populated project. Callers tweak fields before inserting.
func NewTestProject() models.Project {
	return models.Project{
		Name:                 "Urban Noise Map",
		OrganizationName:     "Open Cities Lab",
		Description:          StringPtr("Crowdsourced street-level noise recordings."),
		ImageURL:             StringPtr("https://images.example.com/noise.jpg"),
		DataTypes:            []string{"Audio", "Geolocation"},
		AdminAddresses:       []string{"0xadmin1"},
		ValidatorAddresses:   []string{"0xval1", "0xval2"},
		CollectedElements:    250,
		RequiredElements:     1000,
		DistributedPrizePool: 333,
		TotalPrizePool:       1000,
		ContactEmail:         "team@opencities.example",
	}
}

// CreateTestProject inserts p and returns its ID
func CreateTestProject(t *testing.T, conn *sql.DB, p models.Project) string {
	t.Helper()

	id, err := store.NewProjectStore(conn).CreateProject(context.Background(), p)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request with optional headers
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
