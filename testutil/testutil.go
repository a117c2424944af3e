// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Tmaxpro/RandomGift-Backend/auth"
	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/db"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a fresh on-disk SQLite database with the full schema.
// The file lives in the test's temp dir and is removed with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "randomgift_test.db")
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Single connection keeps SQLite writes serialized
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   "randomgift_test.db", // handlers receive an open *sql.DB; never dialed
		DatabaseType:  "sqlite",
		JWTSecret:     "test-jwt-secret",
		PairingMode:   models.ModeSymmetric,
		PairingPolicy: models.PolicyStrict,
	}
}

// SeedEntity inserts an active entity on the given side
func SeedEntity(t *testing.T, st *store.Store, side, identifier string) {
	t.Helper()

	added, err := st.Add(side, identifier)
	if err != nil {
		t.Fatalf("Failed to seed %s %q: %v", side, identifier, err)
	}
	if !added {
		t.Fatalf("Seed %s %q already existed", side, identifier)
	}
}

// SeedEntities inserts several active entities on the given side
func SeedEntities(t *testing.T, st *store.Store, side string, identifiers ...string) {
	t.Helper()

	for _, identifier := range identifiers {
		SeedEntity(t, st, side, identifier)
	}
}

// SeedAdmin creates an admin account and returns a bearer token for it
func SeedAdmin(t *testing.T, st *store.Store, cfg cliparse.Config, username, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	admin, err := st.CreateAdmin(username, hash)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
	token, err := auth.GenerateToken(cfg.JWTSecret, admin.ID, admin.Username)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return token
}

// AuthHeaders returns request headers carrying the bearer token
func AuthHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

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
