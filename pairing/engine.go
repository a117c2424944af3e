// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// Engine drives matching runs over the active unpaired entities and
// persists the resulting pairings.
type Engine struct {
	store *store.Store
	rng   *rand.Rand
}

// NewEngine builds an engine over the given store. A nil rng selects a
// crypto-seeded generator; tests inject a seeded one for determinism.
func NewEngine(st *store.Store, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = NewRand()
	}
	return &Engine{store: st, rng: rng}
}

// BipartiteRun reports one bipartite matching run. Created lists the
// pairings persisted, in creation order.
type BipartiteRun struct {
	RunID   string
	Created []models.Pairing
}

// SymmetricRun reports one symmetric matching run: every couple formed
// plus the run stats. Only the cross couples are persisted.
type SymmetricRun struct {
	RunID     string
	Couples   []Couple[string]
	Stats     Stats
	Persisted []models.Pairing
}

// PairBipartite matches unpaired participants to unpaired gifts under the
// given policy and persists each pairing. Pairings already written when a
// later insert fails are kept; the partial run is returned with the error.
func (e *Engine) PairBipartite(policy string) (BipartiteRun, error) {
	participants, err := e.store.ListUnpaired(models.SideParticipants)
	if err != nil {
		return BipartiteRun{}, err
	}
	gifts, err := e.store.ListUnpaired(models.SideGifts)
	if err != nil {
		return BipartiteRun{}, err
	}

	var pairs []Pair
	switch policy {
	case models.PolicyStrict:
		pairs, err = PairStrict(e.rng, participants, gifts)
		if err != nil {
			return BipartiteRun{}, err
		}
	case models.PolicyBestEffort:
		pairs = PairBestEffort(e.rng, participants, gifts)
	default:
		return BipartiteRun{}, fmt.Errorf("unknown pairing policy %q", policy)
	}

	run := BipartiteRun{RunID: uuid.NewString(), Created: []models.Pairing{}}
	for _, pair := range pairs {
		created, err := e.store.AddPairing(run.RunID, pair.Participant, pair.Gift)
		if err != nil {
			return run, fmt.Errorf("run %s stopped after %d pairings: %w", run.RunID, len(run.Created), err)
		}
		run.Created = append(run.Created, created)
	}

	return run, nil
}

// PairSymmetric matches the two unpaired sets with the symmetric priority
// algorithm, treating participants as men and gifts as women. Every couple
// appears in the run report but only cross couples are persisted; same-kind
// couples exist for the caller, not the store.
func (e *Engine) PairSymmetric() (SymmetricRun, error) {
	men, err := e.store.ListUnpaired(models.SideParticipants)
	if err != nil {
		return SymmetricRun{}, err
	}
	women, err := e.store.ListUnpaired(models.SideGifts)
	if err != nil {
		return SymmetricRun{}, err
	}
	if len(men) == 0 && len(women) == 0 {
		return SymmetricRun{}, ErrNothingToMatch
	}

	couples, stats := Match(e.rng, women, men)

	run := SymmetricRun{
		RunID:     uuid.NewString(),
		Couples:   couples,
		Stats:     stats,
		Persisted: []models.Pairing{},
	}
	for _, c := range couples {
		if c.Kind != KindCross {
			continue
		}
		created, err := e.store.AddPairing(run.RunID, c.First, c.Second)
		if err != nil {
			return run, fmt.Errorf("run %s stopped after %d pairings: %w", run.RunID, len(run.Persisted), err)
		}
		run.Persisted = append(run.Persisted, created)
	}

	return run, nil
}
