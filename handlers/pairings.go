// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize/english"

	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/pairing"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// PairingHandler runs matching over the stored entities and serves the
// pairing list/archive routes.
type PairingHandler struct {
	store  *store.Store
	engine *pairing.Engine
	cfg    cliparse.Config
}

func NewPairingHandler(st *store.Store, engine *pairing.Engine, cfg cliparse.Config) *PairingHandler {
	return &PairingHandler{store: st, engine: engine, cfg: cfg}
}

// Create handles POST /pairings
// Runs one matching run in the configured mode over the unpaired sets
func (h *PairingHandler) Create(w http.ResponseWriter, r *http.Request) {
	switch h.cfg.PairingMode {
	case models.ModeBipartite:
		h.createBipartite(w)
	default:
		h.createSymmetric(w)
	}
}

func (h *PairingHandler) createBipartite(w http.ResponseWriter) {
	run, err := h.engine.PairBipartite(h.cfg.PairingPolicy)
	if err != nil {
		if errors.Is(err, pairing.ErrInsufficientCapacity) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("bipartite run failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Matching run failed")
		return
	}

	slog.Info("bipartite run complete",
		"run_id", run.RunID,
		"pairings", len(run.Created),
		"policy", h.cfg.PairingPolicy,
	)

	middleware.JSONResponse(w, http.StatusOK, models.BipartiteRunResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s created", english.Plural(len(run.Created), "pairing", "")),
		RunID:     run.RunID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Pairings:  run.Created,
	})
}

func (h *PairingHandler) createSymmetric(w http.ResponseWriter) {
	run, err := h.engine.PairSymmetric()
	if err != nil {
		if errors.Is(err, pairing.ErrNothingToMatch) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "No active people to match")
			return
		}
		slog.Error("symmetric run failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Matching run failed")
		return
	}

	slog.Info("symmetric run complete",
		"run_id", run.RunID,
		"couples", len(run.Couples),
		"persisted", len(run.Persisted),
	)

	middleware.JSONResponse(w, http.StatusOK, models.MatchResponse{
		Success:   true,
		Message:   fmt.Sprintf("%s formed", english.Plural(run.Stats.TotalCouples, "couple", "")),
		RunID:     run.RunID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Couples:   couplesToWire(run.Couples),
		Stats:     statsToWire(run.Stats),
	})
}

// List handles GET /pairings
func (h *PairingHandler) List(w http.ResponseWriter, r *http.Request) {
	pairings, err := h.store.ListPairings()
	if err != nil {
		slog.Error("failed to list pairings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PairingListResponse{
		Success:  true,
		Total:    len(pairings),
		Pairings: pairings,
	})
}

// Archive handles DELETE /pairings/{identifier}
// Archives the active pairing referencing the named participant. An unknown
// participant and a participant without a pairing get distinct messages.
func (h *PairingHandler) Archive(w http.ResponseWriter, r *http.Request) {
	identifier := r.PathValue("identifier")

	found, err := h.store.ArchivePairingByParticipant(identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Participant %s does not exist", identifier))
			return
		}
		slog.Error("failed to archive pairing", "identifier", identifier, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("No active pairing for participant %s", identifier))
		return
	}

	slog.Info("pairing archived", "participant", identifier)

	middleware.JSONResponse(w, http.StatusOK, models.ArchiveResponse{
		Success: true,
		Message: fmt.Sprintf("Pairing for participant %s removed successfully", identifier),
	})
}

// couplesToWire converts engine couples to their wire form
func couplesToWire[T any](couples []pairing.Couple[T]) []models.Couple {
	out := make([]models.Couple, len(couples))
	for i, c := range couples {
		out[i] = models.Couple{Kind: c.Kind, First: c.First, Second: c.Second}
	}
	return out
}

// statsToWire converts run stats to their wire form
func statsToWire(s pairing.Stats) models.MatchStats {
	return models.MatchStats{
		TotalPeople:  s.TotalPeople,
		TotalCouples: s.TotalCouples,
		CrossCouples: s.CrossCouples,
		WomenCouples: s.WomenCouples,
		MenCouples:   s.MenCouples,
		Unpaired:     s.Unpaired,
	}
}
