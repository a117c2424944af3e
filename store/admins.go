// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tmaxpro/RandomGift-Backend/models"
)

// CreateAdmin inserts a new admin account. The password must already be
// hashed by the caller. ErrAlreadyExists on a duplicate username.
func (s *Store) CreateAdmin(username, passwordHash string) (models.Admin, error) {
	admin := models.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO admin (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, admin.ID, admin.Username, admin.PasswordHash, admin.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Admin{}, fmt.Errorf("admin %q: %w", username, ErrAlreadyExists)
		}
		return models.Admin{}, fmt.Errorf("failed to insert admin: %w", err)
	}

	return admin, nil
}

// AdminByUsername fetches one admin account. ErrNotFound when absent.
func (s *Store) AdminByUsername(username string) (models.Admin, error) {
	var admin models.Admin
	err := s.db.QueryRow(`
		SELECT id, username, password_hash, created_at
		FROM admin
		WHERE username = $1
	`, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Admin{}, fmt.Errorf("admin %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("failed to query admin: %w", err)
	}

	return admin, nil
}

// UpdateAdminPassword replaces the stored hash for an existing admin.
func (s *Store) UpdateAdminPassword(username, passwordHash string) error {
	res, err := s.db.Exec(`
		UPDATE admin SET password_hash = $1 WHERE username = $2
	`, passwordHash, username)
	if err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("admin %q: %w", username, ErrNotFound)
	}

	return nil
}

// DeleteAdmin removes an admin account, reporting whether one existed.
func (s *Store) DeleteAdmin(username string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM admin WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("failed to delete admin: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// ListAdmins returns every admin account ordered by creation time.
func (s *Store) ListAdmins() ([]models.Admin, error) {
	rows, err := s.db.Query(`
		SELECT id, username, password_hash, created_at
		FROM admin
		ORDER BY created_at, username
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admin rows: %w", err)
	}

	return admins, nil
}
