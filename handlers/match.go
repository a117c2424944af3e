// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/pairing"
)

// MatchHandler serves the stateless symmetric matching endpoint. Nothing it
// does touches the store.
type MatchHandler struct {
	rng *rand.Rand
}

func NewMatchHandler(rng *rand.Rand) *MatchHandler {
	if rng == nil {
		rng = pairing.NewRand()
	}
	return &MatchHandler{rng: rng}
}

// Match handles POST /match
// Runs one symmetric matching over caller-supplied numeric groups
func (h *MatchHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Women == nil || req.Men == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The 'women' and 'men' fields are required")
		return
	}
	if len(req.Women) == 0 && len(req.Men) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "At least one group must contain identifiers")
		return
	}

	women, err := coerceNumbers("women", req.Women)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	men, err := coerceNumbers("men", req.Men)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := pairing.ValidateGroups(women, men); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	couples, stats := pairing.Match(h.rng, women, men)

	middleware.JSONResponse(w, http.StatusOK, models.MatchResponse{
		Success:   true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Couples:   couplesToWire(couples),
		Stats:     statsToWire(stats),
	})
}

// coerceNumbers checks that every element is a JSON number and truncates
// to integers. Anything else (strings, booleans, nulls, nested values) is
// rejected with the offending index.
func coerceNumbers(group string, values []interface{}) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		f, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not a number", group, i)
		}
		out[i] = int64(f)
	}
	return out, nil
}
