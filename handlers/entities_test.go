// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/db"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
	_ "modernc.org/sqlite"
)

// setupTestDB creates a fresh SQLite database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "handlers_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Single connection keeps SQLite writes serialized
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// getTestConfig returns a standard test configuration
func getTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   "randomgift_test.db",
		DatabaseType:  "sqlite",
		JWTSecret:     "test-jwt-secret",
		PairingMode:   models.ModeSymmetric,
		PairingPolicy: models.PolicyStrict,
	}
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAddParticipant(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	handler := NewEntityHandler(store.New(conn), models.SideParticipants)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.AddEntityResponse)
	}{
		{
			name:           "valid string identifier",
			requestBody:    models.AddEntityRequest{Identifier: "7"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.AddEntityResponse) {
				if !resp.Success {
					t.Error("Expected success to be true")
				}
				if resp.Identifier != "7" {
					t.Errorf("Expected identifier '7', got '%s'", resp.Identifier)
				}
				if resp.Message != "Participant 7 added successfully" {
					t.Errorf("Unexpected message '%s'", resp.Message)
				}

				// Verify the row landed
				var count int
				err := conn.QueryRow("SELECT COUNT(*) FROM participant WHERE identifier = '7' AND NOT is_archived").Scan(&count)
				if err != nil {
					t.Fatalf("Failed to query participant: %v", err)
				}
				if count != 1 {
					t.Errorf("Expected 1 active participant row, got %d", count)
				}
			},
		},
		{
			name:           "numeric identifier",
			requestBody:    map[string]interface{}{"identifier": 12},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.AddEntityResponse) {
				if resp.Identifier != "12" {
					t.Errorf("Expected numeric identifier to coerce to '12', got '%s'", resp.Identifier)
				}
			},
		},
		{
			name:           "missing identifier",
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace identifier",
			requestBody:    models.AddEntityRequest{Identifier: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "boolean identifier",
			requestBody:    map[string]interface{}{"identifier": true},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest("POST", "/participants", tt.requestBody)
			w := httptest.NewRecorder()

			handler.Add(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.checkResponse != nil && w.Code == http.StatusCreated {
				var resp models.AddEntityResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestAddParticipantInvalidJSON(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	handler := NewEntityHandler(store.New(conn), models.SideParticipants)

	req := httptest.NewRequest("POST", "/participants", strings.NewReader("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Add(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestAddParticipantDuplicate(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	handler := NewEntityHandler(store.New(conn), models.SideParticipants)

	first := httptest.NewRecorder()
	handler.Add(first, jsonRequest("POST", "/participants", models.AddEntityRequest{Identifier: "7"}))
	if first.Code != http.StatusCreated {
		t.Fatalf("First add failed: %d - %s", first.Code, first.Body.String())
	}

	second := httptest.NewRecorder()
	handler.Add(second, jsonRequest("POST", "/participants", models.AddEntityRequest{Identifier: "7"}))
	if second.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for duplicate, got %d", second.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(second.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Message != "Participant 7 already exists" {
		t.Errorf("Unexpected message '%s'", resp.Message)
	}

	// Still exactly one row
	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM participant").Scan(&count); err != nil {
		t.Fatalf("Failed to count participants: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 participant row, got %d", count)
	}
}

func TestAddGiftUsesLabel(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	handler := NewEntityHandler(store.New(conn), models.SideGifts)

	w := httptest.NewRecorder()
	handler.Add(w, jsonRequest("POST", "/gifts", models.AddEntityRequest{Identifier: "3"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("Add failed: %d - %s", w.Code, w.Body.String())
	}

	var resp models.AddEntityResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Message != "Gift 3 added successfully" {
		t.Errorf("Unexpected message '%s'", resp.Message)
	}

	dup := httptest.NewRecorder()
	handler.Add(dup, jsonRequest("POST", "/gifts", models.AddEntityRequest{Identifier: "3"}))

	var errResp models.ErrorResponse
	if err := json.NewDecoder(dup.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if errResp.Message != "Gift 3 already exists" {
		t.Errorf("Unexpected message '%s'", errResp.Message)
	}
}

func TestAddParticipantsBulk(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.BulkAddResponse)
	}{
		{
			name:           "identifiers key",
			requestBody:    map[string]interface{}{"identifiers": []interface{}{"1", "2", "1"}},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.BulkAddResponse) {
				if len(resp.Added) != 2 || resp.Added[0] != "1" || resp.Added[1] != "2" {
					t.Errorf("Expected added [1 2], got %v", resp.Added)
				}
				if len(resp.Ignored) != 1 || resp.Ignored[0] != "1" {
					t.Errorf("Expected ignored [1], got %v", resp.Ignored)
				}
				if resp.Message != "2 participants added, 1 ignored" {
					t.Errorf("Unexpected message '%s'", resp.Message)
				}
				if resp.TotalProcessed != 3 {
					t.Errorf("Expected 3 processed, got %d", resp.TotalProcessed)
				}
			},
		},
		{
			name:           "side-named key",
			requestBody:    map[string]interface{}{"participants": []interface{}{4, 5}},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.BulkAddResponse) {
				if len(resp.Added) != 2 || resp.Added[0] != "4" || resp.Added[1] != "5" {
					t.Errorf("Expected added [4 5], got %v", resp.Added)
				}
			},
		},
		{
			name:           "single addition message",
			requestBody:    map[string]interface{}{"identifiers": []interface{}{"9"}},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.BulkAddResponse) {
				if resp.Message != "1 participant added, 0 ignored" {
					t.Errorf("Unexpected message '%s'", resp.Message)
				}
			},
		},
		{
			name:           "empty list",
			requestBody:    map[string]interface{}{"identifiers": []interface{}{}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace entries only",
			requestBody:    map[string]interface{}{"identifiers": []interface{}{" ", ""}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing list",
			requestBody:    map[string]interface{}{"gifts": []interface{}{"1"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := setupTestDB(t)
			defer conn.Close()
			handler := NewEntityHandler(store.New(conn), models.SideParticipants)

			req := jsonRequest("POST", "/participants/bulk", tt.requestBody)
			w := httptest.NewRecorder()

			handler.AddBulk(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.checkResponse != nil && w.Code == http.StatusCreated {
				var resp models.BulkAddResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestAddGiftsBulkSideKey(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	handler := NewEntityHandler(store.New(conn), models.SideGifts)

	req := jsonRequest("POST", "/gifts/bulk", map[string]interface{}{"gifts": []interface{}{"3", "4"}})
	w := httptest.NewRecorder()

	handler.AddBulk(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Bulk add failed: %d - %s", w.Code, w.Body.String())
	}

	var resp models.BulkAddResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Message != "2 gifts added, 0 ignored" {
		t.Errorf("Unexpected message '%s'", resp.Message)
	}
}

func TestListParticipants(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	handler := NewEntityHandler(st, models.SideParticipants)

	t.Run("empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest("GET", "/participants", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("List failed: %d - %s", w.Code, w.Body.String())
		}
		var resp models.EntityListResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Total != 0 || len(resp.Entities) != 0 {
			t.Errorf("Expected an empty listing, got %+v", resp)
		}
	})

	t.Run("seeded with pairing state", func(t *testing.T) {
		if _, err := st.Add(models.SideParticipants, "7"); err != nil {
			t.Fatalf("Failed to seed participant: %v", err)
		}
		if _, err := st.Add(models.SideParticipants, "8"); err != nil {
			t.Fatalf("Failed to seed participant: %v", err)
		}
		if _, err := st.Add(models.SideGifts, "3"); err != nil {
			t.Fatalf("Failed to seed gift: %v", err)
		}
		if _, err := st.AddPairing("run-1", "7", "3"); err != nil {
			t.Fatalf("Failed to seed pairing: %v", err)
		}

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest("GET", "/participants", nil))

		var resp models.EntityListResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Total != 2 {
			t.Fatalf("Expected 2 participants, got %d", resp.Total)
		}
		if resp.Entities[0].Identifier != "7" || !resp.Entities[0].Paired {
			t.Errorf("Expected participant 7 to be paired, got %+v", resp.Entities[0])
		}
		if resp.Entities[0].PairedWith == nil || *resp.Entities[0].PairedWith != "3" {
			t.Errorf("Expected participant 7 paired with '3', got %v", resp.Entities[0].PairedWith)
		}
		if resp.Entities[1].Identifier != "8" || resp.Entities[1].Paired {
			t.Errorf("Expected participant 8 to be unpaired, got %+v", resp.Entities[1])
		}
	})
}

func TestArchiveParticipant(t *testing.T) {
	conn := setupTestDB(t)
	defer conn.Close()
	st := store.New(conn)
	handler := NewEntityHandler(st, models.SideParticipants)

	if _, err := st.Add(models.SideParticipants, "7"); err != nil {
		t.Fatalf("Failed to seed participant: %v", err)
	}

	t.Run("existing participant", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/participants/7", nil)
		req.SetPathValue("identifier", "7")
		w := httptest.NewRecorder()

		handler.Archive(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Archive failed: %d - %s", w.Code, w.Body.String())
		}
		var resp models.ArchiveResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Message != "Participant 7 removed successfully" {
			t.Errorf("Unexpected message '%s'", resp.Message)
		}

		// Soft delete: the row stays, flagged archived
		var archived bool
		err := conn.QueryRow("SELECT is_archived FROM participant WHERE identifier = '7'").Scan(&archived)
		if err != nil {
			t.Fatalf("Failed to query participant: %v", err)
		}
		if !archived {
			t.Error("Expected the participant row to be archived")
		}
	})

	t.Run("missing participant", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/participants/99", nil)
		req.SetPathValue("identifier", "99")
		w := httptest.NewRecorder()

		handler.Archive(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
		var resp models.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if resp.Message != "Participant 99 does not exist" {
			t.Errorf("Unexpected message '%s'", resp.Message)
		}
	})
}

func TestCoerceIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"plain string", "7", "7"},
		{"padded string", "  7  ", "7"},
		{"whitespace only", "   ", ""},
		{"integer number", float64(7), "7"},
		{"fractional number", float64(7.5), "7.5"},
		{"boolean", true, ""},
		{"nil", nil, ""},
		{"nested list", []interface{}{"7"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceIdentifier(tt.input); got != tt.want {
				t.Errorf("coerceIdentifier(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanIdentifiers(t *testing.T) {
	input := []interface{}{"1", " 2 ", "", float64(3), nil, true, "  "}
	want := []string{"1", "2", "3"}

	got := cleanIdentifiers(input)

	if len(got) != len(want) {
		t.Fatalf("cleanIdentifiers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cleanIdentifiers()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
