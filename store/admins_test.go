// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"
)

func TestCreateAdmin(t *testing.T) {
	st, _ := setupTestStore(t)

	admin, err := st.CreateAdmin("alice", "hash-1")
	if err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}
	if admin.ID == "" {
		t.Error("Expected non-empty admin ID")
	}
	if admin.Username != "alice" {
		t.Errorf("Expected username 'alice', got '%s'", admin.Username)
	}

	// Usernames are unique
	_, err = st.CreateAdmin("alice", "hash-2")
	if !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("CreateAdmin() duplicate error = %v, want ErrAlreadyExists", err)
	}
}

func TestAdminByUsername(t *testing.T) {
	st, _ := setupTestStore(t)

	created, err := st.CreateAdmin("alice", "hash-1")
	if err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}

	admin, err := st.AdminByUsername("alice")
	if err != nil {
		t.Fatalf("AdminByUsername() error = %v", err)
	}
	if admin.ID != created.ID {
		t.Errorf("Expected ID %s, got %s", created.ID, admin.ID)
	}
	if admin.PasswordHash != "hash-1" {
		t.Errorf("Expected stored hash 'hash-1', got '%s'", admin.PasswordHash)
	}

	_, err = st.AdminByUsername("bob")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AdminByUsername() unknown error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAdminPassword(t *testing.T) {
	st, _ := setupTestStore(t)

	if _, err := st.CreateAdmin("alice", "hash-1"); err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}

	if err := st.UpdateAdminPassword("alice", "hash-2"); err != nil {
		t.Fatalf("UpdateAdminPassword() error = %v", err)
	}

	admin, err := st.AdminByUsername("alice")
	if err != nil {
		t.Fatalf("AdminByUsername() error = %v", err)
	}
	if admin.PasswordHash != "hash-2" {
		t.Errorf("Expected updated hash 'hash-2', got '%s'", admin.PasswordHash)
	}

	err = st.UpdateAdminPassword("bob", "hash-3")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateAdminPassword() unknown error = %v, want ErrNotFound", err)
	}
}

func TestDeleteAdmin(t *testing.T) {
	st, _ := setupTestStore(t)

	if _, err := st.CreateAdmin("alice", "hash-1"); err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}

	deleted, err := st.DeleteAdmin("alice")
	if err != nil {
		t.Fatalf("DeleteAdmin() error = %v", err)
	}
	if !deleted {
		t.Error("Expected DeleteAdmin to report true")
	}

	if _, err := st.AdminByUsername("alice"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected alice to be gone, got %v", err)
	}

	deleted, err = st.DeleteAdmin("alice")
	if err != nil {
		t.Fatalf("DeleteAdmin() second call error = %v", err)
	}
	if deleted {
		t.Error("Expected DeleteAdmin of a missing admin to report false")
	}
}

func TestListAdmins(t *testing.T) {
	st, _ := setupTestStore(t)

	if _, err := st.CreateAdmin("bob", "hash-b"); err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}
	if _, err := st.CreateAdmin("alice", "hash-a"); err != nil {
		t.Fatalf("CreateAdmin() error = %v", err)
	}

	admins, err := st.ListAdmins()
	if err != nil {
		t.Fatalf("ListAdmins() error = %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("Expected 2 admins, got %d", len(admins))
	}

	seen := make(map[string]bool)
	for _, admin := range admins {
		seen[admin.Username] = true
	}
	if !seen["alice"] || !seen["bob"] {
		t.Errorf("Expected alice and bob in listing, got %v", admins)
	}
}
