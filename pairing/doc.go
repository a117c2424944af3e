// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pairing implements the matching algorithms and the store-backed
engine that runs them.

# Algorithms

The pure functions take an explicit random source and never touch
storage. Bipartite 1:1 (participants to gifts):

	pairs, err := pairing.PairStrict(rng, participants, gifts)
	pairs := pairing.PairBestEffort(rng, participants, gifts)

PairStrict fails with ErrInsufficientCapacity when participants
outnumber gifts; PairBestEffort pairs as many as it can.

Symmetric priority matching (any comparable identifier type):

	couples, stats := pairing.Match(rng, women, men)

Match shuffles both groups, forms cross ("M-W") couples until one group
empties, then same-kind ("W-W" or "M-M") couples while at least two
remain. At most one person stays unpaired. ValidateGroups rejects
duplicates and cross-group overlaps before a run.

# Engine

The engine reads unpaired identifiers from the store and persists what
the algorithms produce, each run under a fresh UUID:

	engine := pairing.NewEngine(st, nil) // nil rng: crypto-seeded ChaCha8
	run, err := engine.PairBipartite(models.PolicyStrict)
	run, err := engine.PairSymmetric()

PairSymmetric treats participants as men and gifts as women and persists
only the cross couples; same-kind couples appear in the run report only.
Pairings persisted before a mid-run failure are kept.

# Randomness

All shuffles draw from the injected *rand.Rand (math/rand/v2). Tests
pass a seeded generator; production uses NewRand, a ChaCha8 generator
seeded from crypto/rand.
*/
package pairing
