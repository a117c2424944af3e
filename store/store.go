// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tmaxpro/RandomGift-Backend/models"
)

var (
	// ErrNotFound means the named record does not exist or is archived.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means an active record with that key already exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnknownSide means the side string is neither participants nor gifts.
	ErrUnknownSide = errors.New("unknown entity side")
)

// Store is the persistence layer for entities, pairings and admin accounts.
// It is constructed once and handed to whoever needs it; there is no
// package-level instance.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// tableFor maps a side constant to its table. Sides come from a fixed set of
// constants, never from raw request input, so interpolating the result into
// SQL is safe.
func tableFor(side string) (string, error) {
	switch side {
	case models.SideParticipants:
		return "participant", nil
	case models.SideGifts:
		return "gift", nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSide, side)
}

// isUniqueViolation matches the duplicate-key errors of both supported
// drivers (lib/pq and modernc.org/sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// Add inserts an entity unless an active one with the same identifier exists.
// A duplicate is a soft no-op (false, nil), not an error. The seq subquery
// assigns the next insertion-order position.
func (s *Store) Add(side, identifier string) (bool, error) {
	table, err := tableFor(side)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	_, err = s.db.Exec(fmt.Sprintf(`
		INSERT INTO %s (id, identifier, seq, is_archived, created_at, updated_at)
		VALUES ($1, $2, (SELECT COALESCE(MAX(seq), 0) + 1 FROM %s), FALSE, $3, $4)
	`, table, table), uuid.NewString(), identifier, now, now)

	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert %s: %w", table, err)
	}

	return true, nil
}

// AddBulk applies Add to each identifier, splitting the input into added and
// ignored while preserving input order within each list.
func (s *Store) AddBulk(side string, identifiers []string) (added, ignored []string, err error) {
	added = []string{}
	ignored = []string{}

	for _, identifier := range identifiers {
		ok, err := s.Add(side, identifier)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			added = append(added, identifier)
		} else {
			ignored = append(ignored, identifier)
		}
	}

	return added, ignored, nil
}

// Archive soft-deletes the active entity with the given identifier and
// cascades to its active pairing, if any. Returns false when no active
// entity matches.
func (s *Store) Archive(side, identifier string) (bool, error) {
	table, err := tableFor(side)
	if err != nil {
		return false, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRow(fmt.Sprintf(`
		SELECT id FROM %s WHERE identifier = $1 AND NOT is_archived
	`, table), identifier).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", table, err)
	}

	now := time.Now().UTC()
	_, err = tx.Exec(fmt.Sprintf(`
		UPDATE %s SET is_archived = TRUE, updated_at = $1 WHERE id = $2
	`, table), now, id)
	if err != nil {
		return false, fmt.Errorf("failed to archive %s: %w", table, err)
	}

	fkColumn := "participant_id"
	if side == models.SideGifts {
		fkColumn = "gift_id"
	}
	_, err = tx.Exec(fmt.Sprintf(`
		UPDATE pairing SET is_archived = TRUE, updated_at = $1
		WHERE %s = $2 AND NOT is_archived
	`, fkColumn), now, id)
	if err != nil {
		return false, fmt.Errorf("failed to archive pairing: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// ListActive returns the non-archived entities of one side in insertion
// order, each carrying its paired flag and, when paired, the counterpart
// identifier.
func (s *Store) ListActive(side string) ([]models.Entity, error) {
	if _, err := tableFor(side); err != nil {
		return nil, err
	}

	query := `
		SELECT e.identifier, e.is_archived, e.created_at, e.updated_at, g.identifier
		FROM participant e
		LEFT JOIN pairing pr ON pr.participant_id = e.id AND NOT pr.is_archived
		LEFT JOIN gift g ON g.id = pr.gift_id
		WHERE NOT e.is_archived
		ORDER BY e.seq`
	if side == models.SideGifts {
		query = `
		SELECT e.identifier, e.is_archived, e.created_at, e.updated_at, p.identifier
		FROM gift e
		LEFT JOIN pairing pr ON pr.gift_id = e.id AND NOT pr.is_archived
		LEFT JOIN participant p ON p.id = pr.participant_id
		WHERE NOT e.is_archived
		ORDER BY e.seq`
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", side, err)
	}
	defer rows.Close()

	entities := []models.Entity{}
	for rows.Next() {
		var e models.Entity
		var counterpart sql.NullString
		if err := rows.Scan(&e.Identifier, &e.Archived, &e.CreatedAt, &e.UpdatedAt, &counterpart); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", side, err)
		}
		if counterpart.Valid {
			e.Paired = true
			e.PairedWith = &counterpart.String
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", side, err)
	}

	return entities, nil
}

// ListUnpaired returns the identifiers of active entities with no active
// pairing, in insertion order.
func (s *Store) ListUnpaired(side string) ([]string, error) {
	table, err := tableFor(side)
	if err != nil {
		return nil, err
	}

	fkColumn := "participant_id"
	if side == models.SideGifts {
		fkColumn = "gift_id"
	}

	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT e.identifier
		FROM %s e
		WHERE NOT e.is_archived AND NOT EXISTS (
			SELECT 1 FROM pairing pr WHERE pr.%s = e.id AND NOT pr.is_archived
		)
		ORDER BY e.seq
	`, table, fkColumn))
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaired %s: %w", side, err)
	}
	defer rows.Close()

	identifiers := []string{}
	for rows.Next() {
		var identifier string
		if err := rows.Scan(&identifier); err != nil {
			return nil, fmt.Errorf("failed to scan identifier: %w", err)
		}
		identifiers = append(identifiers, identifier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read unpaired rows: %w", err)
	}

	return identifiers, nil
}

// activeID resolves an identifier to its active row ID.
func (s *Store) activeID(side, identifier string) (string, error) {
	table, err := tableFor(side)
	if err != nil {
		return "", err
	}

	var id string
	err = s.db.QueryRow(fmt.Sprintf(`
		SELECT id FROM %s WHERE identifier = $1 AND NOT is_archived
	`, table), identifier).Scan(&id)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no active entry %q on side %s: %w", identifier, side, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", table, err)
	}

	return id, nil
}

// AddPairing persists one pairing between an active participant and an
// active gift. ErrNotFound when either side is missing or archived;
// ErrAlreadyExists when either side already has an active pairing.
func (s *Store) AddPairing(runID, participantIdentifier, giftIdentifier string) (models.Pairing, error) {
	participantID, err := s.activeID(models.SideParticipants, participantIdentifier)
	if err != nil {
		return models.Pairing{}, err
	}
	giftID, err := s.activeID(models.SideGifts, giftIdentifier)
	if err != nil {
		return models.Pairing{}, err
	}

	now := time.Now().UTC()
	pairing := models.Pairing{
		ID:          uuid.NewString(),
		RunID:       runID,
		Participant: participantIdentifier,
		Gift:        giftIdentifier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err = s.db.Exec(`
		INSERT INTO pairing (id, run_id, participant_id, gift_id, seq, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(seq), 0) + 1 FROM pairing), FALSE, $5, $6)
	`, pairing.ID, runID, participantID, giftID, now, now)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Pairing{}, fmt.Errorf("entity already in an active pairing: %w", ErrAlreadyExists)
		}
		return models.Pairing{}, fmt.Errorf("failed to insert pairing: %w", err)
	}

	return pairing, nil
}

// ArchivePairingByParticipant archives the active pairing referencing the
// named participant. ErrNotFound when no active participant matches;
// (false, nil) when the participant exists but has no active pairing.
func (s *Store) ArchivePairingByParticipant(identifier string) (bool, error) {
	participantID, err := s.activeID(models.SideParticipants, identifier)
	if err != nil {
		return false, err
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(`
		UPDATE pairing SET is_archived = TRUE, updated_at = $1
		WHERE participant_id = $2 AND NOT is_archived
	`, now, participantID)
	if err != nil {
		return false, fmt.Errorf("failed to archive pairing: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ListPairings returns all active pairings in insertion order, with both
// identifiers joined in.
func (s *Store) ListPairings() ([]models.Pairing, error) {
	rows, err := s.db.Query(`
		SELECT pr.id, pr.run_id, p.identifier, g.identifier, pr.is_archived, pr.created_at, pr.updated_at
		FROM pairing pr
		JOIN participant p ON p.id = pr.participant_id
		JOIN gift g ON g.id = pr.gift_id
		WHERE NOT pr.is_archived
		ORDER BY pr.seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairings: %w", err)
	}
	defer rows.Close()

	pairings := []models.Pairing{}
	for rows.Next() {
		var p models.Pairing
		if err := rows.Scan(&p.ID, &p.RunID, &p.Participant, &p.Gift, &p.Archived, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}
		pairings = append(pairings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pairing rows: %w", err)
	}

	return pairings, nil
}

// ResetAll hard-deletes every entity and pairing row, archived ones
// included, and reports the active counts that existed beforehand. Admin
// accounts are left alone.
func (s *Store) ResetAll() (models.ResetCounts, error) {
	var counts models.ResetCounts

	tx, err := s.db.Begin()
	if err != nil {
		return counts, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`SELECT COUNT(*) FROM participant WHERE NOT is_archived`).Scan(&counts.Participants); err != nil {
		return models.ResetCounts{}, fmt.Errorf("failed to count participants: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM gift WHERE NOT is_archived`).Scan(&counts.Gifts); err != nil {
		return models.ResetCounts{}, fmt.Errorf("failed to count gifts: %w", err)
	}
	if err := tx.QueryRow(`SELECT COUNT(*) FROM pairing WHERE NOT is_archived`).Scan(&counts.Pairings); err != nil {
		return models.ResetCounts{}, fmt.Errorf("failed to count pairings: %w", err)
	}

	// Pairings first so the entity deletes never trip the foreign keys.
	for _, table := range []string{"pairing", "participant", "gift"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return models.ResetCounts{}, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ResetCounts{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return counts, nil
}

// ResetPairings hard-deletes the active pairings only, returning how many
// were removed. Entities keep their rows; archived pairings stay for audit.
func (s *Store) ResetPairings() (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM pairing WHERE NOT is_archived`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pairings: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM pairing WHERE NOT is_archived`); err != nil {
		return 0, fmt.Errorf("failed to clear pairings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return count, nil
}

// Status assembles a live snapshot of both sides and the active pairings.
// Nothing is cached; every call reads current state.
func (s *Store) Status() (models.StatusSnapshot, error) {
	var snapshot models.StatusSnapshot

	for _, side := range []string{models.SideParticipants, models.SideGifts} {
		entities, err := s.ListActive(side)
		if err != nil {
			return models.StatusSnapshot{}, err
		}

		sideStatus := models.SideStatus{
			Total:       len(entities),
			Identifiers: []string{},
			Unpaired:    []string{},
		}
		for _, e := range entities {
			sideStatus.Identifiers = append(sideStatus.Identifiers, e.Identifier)
			if !e.Paired {
				sideStatus.Unpaired = append(sideStatus.Unpaired, e.Identifier)
			}
		}

		if side == models.SideParticipants {
			snapshot.Participants = sideStatus
		} else {
			snapshot.Gifts = sideStatus
		}
	}

	pairings, err := s.ListPairings()
	if err != nil {
		return models.StatusSnapshot{}, err
	}
	snapshot.Pairings = models.PairingStatus{
		Total:   len(pairings),
		Details: pairings,
	}

	return snapshot, nil
}
