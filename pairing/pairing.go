// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pairing

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Couple kinds. Cross couples always list the man first.
const (
	KindCross = "M-W"
	KindWomen = "W-W"
	KindMen   = "M-M"
)

var (
	// ErrInsufficientCapacity is the strict bipartite failure: more
	// participants than gifts.
	ErrInsufficientCapacity = errors.New("not enough gifts for all participants")
	// ErrInvalidInput covers malformed match input: duplicates within a
	// group or an identifier present in both groups.
	ErrInvalidInput = errors.New("invalid match input")
	// ErrNothingToMatch means both unpaired sets were empty.
	ErrNothingToMatch = errors.New("no active people to match")
)

// Couple is one matched couple produced by the symmetric algorithm.
type Couple[T any] struct {
	Kind   string
	First  T
	Second T
}

// Stats aggregates a single symmetric matching run.
type Stats struct {
	TotalPeople  int
	TotalCouples int
	CrossCouples int
	WomenCouples int
	MenCouples   int
	Unpaired     int
}

// Pair is one bipartite participant-gift pairing.
type Pair struct {
	Participant string
	Gift        string
}

// NewRand returns a ChaCha8-backed generator seeded from crypto/rand.
// Matching runs each draw from whichever generator was injected; this is
// the default when none was.
func NewRand() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:]) // never fails
	return rand.New(rand.NewChaCha8(seed))
}

// Match runs the symmetric priority algorithm over two identifier groups
// and returns the couples formed plus run statistics. The inputs are never
// modified. Membership is random but the priority is fixed: cross couples
// first, then same-kind couples, and at most one person left unpaired.
func Match[T any](rng *rand.Rand, women, men []T) ([]Couple[T], Stats) {
	w := slices.Clone(women)
	m := slices.Clone(men)

	// 1. Shuffle both groups independently (uniform permutation)
	rng.Shuffle(len(w), func(i, j int) { w[i], w[j] = w[j], w[i] })
	rng.Shuffle(len(m), func(i, j int) { m[i], m[j] = m[j], m[i] })

	couples := []Couple[T]{}

	// 2. Cross couples while both groups still have members
	for len(w) > 0 && len(m) > 0 {
		man := m[len(m)-1]
		m = m[:len(m)-1]
		woman := w[len(w)-1]
		w = w[:len(w)-1]
		couples = append(couples, Couple[T]{Kind: KindCross, First: man, Second: woman})
	}

	// 3. Same-kind couples from whichever group remains
	for len(w) >= 2 {
		first := w[len(w)-1]
		second := w[len(w)-2]
		w = w[:len(w)-2]
		couples = append(couples, Couple[T]{Kind: KindWomen, First: first, Second: second})
	}
	for len(m) >= 2 {
		first := m[len(m)-1]
		second := m[len(m)-2]
		m = m[:len(m)-2]
		couples = append(couples, Couple[T]{Kind: KindMen, First: first, Second: second})
	}

	// 4. At most one person can remain; they stay unpaired (no singleton couple)
	stats := Stats{
		TotalPeople:  len(women) + len(men),
		TotalCouples: len(couples),
		Unpaired:     len(w) + len(m),
	}
	for _, c := range couples {
		switch c.Kind {
		case KindCross:
			stats.CrossCouples++
		case KindWomen:
			stats.WomenCouples++
		case KindMen:
			stats.MenCouples++
		}
	}

	return couples, stats
}

// ValidateGroups rejects duplicate identifiers within a group and
// identifiers present in both groups. Errors wrap ErrInvalidInput.
func ValidateGroups[T comparable](women, men []T) error {
	if dup, ok := firstDuplicate(women); ok {
		return fmt.Errorf("%w: the women list contains duplicates (%v)", ErrInvalidInput, dup)
	}
	if dup, ok := firstDuplicate(men); ok {
		return fmt.Errorf("%w: the men list contains duplicates (%v)", ErrInvalidInput, dup)
	}

	inWomen := make(map[T]bool, len(women))
	for _, v := range women {
		inWomen[v] = true
	}
	common := []T{}
	for _, v := range men {
		if inWomen[v] {
			common = append(common, v)
		}
	}
	if len(common) > 0 {
		return fmt.Errorf("%w: identifiers present in both lists: %v", ErrInvalidInput, common)
	}

	return nil
}

func firstDuplicate[T comparable](values []T) (T, bool) {
	seen := make(map[T]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return v, true
		}
		seen[v] = true
	}
	var zero T
	return zero, false
}

// PairStrict is the strict bipartite policy: every participant must get a
// gift, so the run fails with ErrInsufficientCapacity when participants
// outnumber gifts. The gifts are shuffled and assigned positionally.
func PairStrict(rng *rand.Rand, participants, gifts []string) ([]Pair, error) {
	if len(participants) > len(gifts) {
		return nil, fmt.Errorf("%w: %d participants but only %d gifts",
			ErrInsufficientCapacity, len(participants), len(gifts))
	}

	shuffled := slices.Clone(gifts)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	pairs := make([]Pair, len(participants))
	for i, participant := range participants {
		pairs[i] = Pair{Participant: participant, Gift: shuffled[i]}
	}

	return pairs, nil
}

// PairBestEffort is the lenient bipartite policy: pair as many as possible
// and leave the surplus side alone. The participants are shuffled and the
// gifts are taken in stored order.
func PairBestEffort(rng *rand.Rand, participants, gifts []string) []Pair {
	shuffled := slices.Clone(participants)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	n := min(len(shuffled), len(gifts))
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Participant: shuffled[i], Gift: gifts[i]}
	}

	return pairs
}
