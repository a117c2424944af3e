// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// EntityHandler serves one side's identifier routes; the router mounts one
// instance for participants and one for gifts.
type EntityHandler struct {
	store *store.Store
	side  string
	label string // "Participant" or "Gift", for messages
}

func NewEntityHandler(st *store.Store, side string) *EntityHandler {
	label := "Participant"
	if side == models.SideGifts {
		label = "Gift"
	}
	return &EntityHandler{store: st, side: side, label: label}
}

// Add handles POST /participants and POST /gifts
// Adds a single identifier to the side's active set
func (h *EntityHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddEntityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Identifier == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The 'identifier' field is required")
		return
	}

	identifier := coerceIdentifier(req.Identifier)
	if identifier == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The identifier cannot be empty")
		return
	}

	added, err := h.store.Add(h.side, identifier)
	if err != nil {
		slog.Error("failed to add entity", "side", h.side, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !added {
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("%s %s already exists", h.label, identifier))
		return
	}

	slog.Info("entity added", "side", h.side, "identifier", identifier)

	middleware.JSONResponse(w, http.StatusCreated, models.AddEntityResponse{
		Success:    true,
		Message:    fmt.Sprintf("%s %s added successfully", h.label, identifier),
		Identifier: identifier,
	})
}

// AddBulk handles POST /participants/bulk and POST /gifts/bulk
// Accepts either a JSON identifier list or a multipart CSV/XLSX upload
func (h *EntityHandler) AddBulk(w http.ResponseWriter, r *http.Request) {
	var identifiers []string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req models.AddEntitiesBulkRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		// Accept "identifiers" or the side-named key
		values := req.Identifiers
		if values == nil {
			if h.side == models.SideParticipants {
				values = req.Participants
			} else {
				values = req.Gifts
			}
		}
		if values == nil {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				`The 'identifiers' field must be a list. Ex: {"identifiers": ["1", "2", "3"]}`)
			return
		}

		identifiers = cleanIdentifiers(values)
	} else {
		parsed, err := uploadIdentifiers(r, h.side)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		identifiers = parsed
	}

	if len(identifiers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No valid identifier found")
		return
	}

	added, ignored, err := h.store.AddBulk(h.side, identifiers)
	if err != nil {
		slog.Error("failed to bulk add entities", "side", h.side, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("bulk add", "side", h.side, "added", len(added), "ignored", len(ignored))

	middleware.JSONResponse(w, http.StatusCreated, models.BulkAddResponse{
		Success:        true,
		Message:        fmt.Sprintf("%s added, %d ignored", english.Plural(len(added), strings.ToLower(h.label), ""), len(ignored)),
		Added:          added,
		Ignored:        ignored,
		TotalProcessed: len(identifiers),
	})
}

// List handles GET /participants and GET /gifts
// Returns the active entities with their pairing state
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	entities, err := h.store.ListActive(h.side)
	if err != nil {
		slog.Error("failed to list entities", "side", h.side, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EntityListResponse{
		Success:  true,
		Total:    len(entities),
		Entities: entities,
	})
}

// Archive handles DELETE /participants/{identifier} and DELETE /gifts/{identifier}
// Soft-deletes the entity; its active pairing, if any, is archived with it
func (h *EntityHandler) Archive(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	found, err := h.store.Archive(h.side, identifier)
	if err != nil {
		slog.Error("failed to archive entity", "side", h.side, "identifier", identifier, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("%s %s does not exist", h.label, identifier))
		return
	}

	slog.Info("entity archived", "side", h.side, "identifier", identifier)

	middleware.JSONResponse(w, http.StatusOK, models.ArchiveResponse{
		Success: true,
		Message: fmt.Sprintf("%s %s removed successfully", h.label, identifier),
	})
}

// coerceIdentifier renders a JSON value as a trimmed identifier string.
// Numbers keep their decimal form ("7", "7.5"); other types yield "".
func coerceIdentifier(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// cleanIdentifiers coerces a JSON list, dropping empty and non-scalar values
func cleanIdentifiers(values []interface{}) []string {
	cleaned := []string{}
	for _, v := range values {
		if s := coerceIdentifier(v); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return cleaned
}
