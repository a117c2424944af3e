// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// Version is reported by the index and health endpoints.
const Version = "2.0.0"

// SystemHandler serves the index, health, status, and reset routes.
type SystemHandler struct {
	store     *store.Store
	cfg       cliparse.Config
	startTime time.Time
}

func NewSystemHandler(st *store.Store, cfg cliparse.Config) *SystemHandler {
	return &SystemHandler{store: st, cfg: cfg, startTime: time.Now()}
}

// Home handles GET /
// Returns the service banner and endpoint catalog
func (h *SystemHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.IndexResponse{
		Message: "RandomGift pairing API",
		Version: Version,
		Storage: h.cfg.DatabaseType,
		Endpoints: map[string]map[string]string{
			"auth": {
				"POST /auth/register": "Register an admin account",
				"POST /auth/login":    "Log in and receive a bearer token",
			},
			"participants": {
				"POST /participants":                "Add a participant",
				"POST /participants/bulk":           "Add participants from a JSON list or CSV/XLSX file",
				"GET /participants":                 "List active participants",
				"DELETE /participants/{identifier}": "Remove a participant",
			},
			"gifts": {
				"POST /gifts":                "Add a gift",
				"POST /gifts/bulk":           "Add gifts from a JSON list or CSV/XLSX file",
				"GET /gifts":                 "List active gifts",
				"DELETE /gifts/{identifier}": "Remove a gift",
			},
			"pairings": {
				"POST /pairings":                "Run a matching over the unpaired sets",
				"GET /pairings":                 "List active pairings",
				"DELETE /pairings/{identifier}": "Remove the pairing of a participant",
				"POST /match":                   "Stateless symmetric matching of numeric groups",
			},
			"system": {
				"GET /status":            "Full system snapshot",
				"GET /health":            "Health check",
				"DELETE /reset":          "Wipe entities and pairings",
				"DELETE /reset/pairings": "Wipe pairings only",
				"GET /export/csv":        "Download pairings as CSV",
				"GET /export/pdf":        "Download pairings as PDF",
			},
		},
	})
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "randomgift-backend",
		Version:   Version,
		Uptime:    strings.TrimSpace(humanize.RelTime(h.startTime, time.Now(), "", "")),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Status handles GET /status
// The snapshot is always computed live from the store, never cached
func (h *SystemHandler) Status(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.store.Status()
	if err != nil {
		slog.Error("failed to build status snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    snapshot,
	})
}

// ResetAll handles DELETE /reset
// Hard-deletes entities and pairings; admin accounts survive
func (h *SystemHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.ResetAll()
	if err != nil {
		slog.Error("failed to reset data", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("all data reset",
		"participants", counts.Participants,
		"gifts", counts.Gifts,
		"pairings", counts.Pairings,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success:      true,
		Message:      "All data has been reset",
		PreviousData: counts,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// ResetPairings handles DELETE /reset/pairings
// Entities keep their rows and revert to unpaired
func (h *SystemHandler) ResetPairings(w http.ResponseWriter, r *http.Request) {
	removed, err := h.store.ResetPairings()
	if err != nil {
		slog.Error("failed to reset pairings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("pairings reset", "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.ResetPairingsResponse{
		Success: true,
		Message: fmt.Sprintf("%s removed", english.Plural(removed, "pairing", "")),
		Removed: removed,
	})
}
