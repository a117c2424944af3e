// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer: two soft-deletable entity sets
(participants and gifts), the pairings between them, and admin accounts.

# Construction

The store wraps an open *sql.DB and holds no other state:

	st := store.New(db)

It is constructed once and injected into whatever needs it; there is no
package-level instance.

# Entity Operations

Entity methods take a side (models.SideParticipants or models.SideGifts)
selecting the table:

	added, err := st.Add(models.SideParticipants, "H1")
	added, ignored, err := st.AddBulk(models.SideGifts, []string{"1", "2"})
	found, err := st.Archive(models.SideParticipants, "H1")
	entities, err := st.ListActive(models.SideParticipants)
	unpaired, err := st.ListUnpaired(models.SideGifts)

Add reports a duplicate active identifier as added=false rather than an
error; the database's partial unique index does the detection. Archive
cascades to the entity's active pairing.

# Pairings

	pairing, err := st.AddPairing(runID, "H1", "42")
	found, err := st.ArchivePairingByParticipant("H1")
	pairings, err := st.ListPairings()

AddPairing resolves both identifiers to active rows (ErrNotFound when
either is missing) and relies on the partial unique indexes to reject a
second active pairing for the same entity (ErrAlreadyExists).

# Resets and Status

	counts, err := st.ResetAll()      // wipes entities and pairings, keeps admins
	removed, err := st.ResetPairings() // wipes pairings only
	snapshot, err := st.Status()       // live, never cached

# Sentinels

	store.ErrNotFound
	store.ErrAlreadyExists
	store.ErrUnknownSide
*/
package store
