// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Tmaxpro/RandomGift-Backend/auth"
	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

// AuthHandler serves admin registration and login.
type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// Register handles POST /auth/register
// Creates an admin account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	username := strings.TrimSpace(req.Username)
	if len(username) < 3 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The username must be at least 3 characters")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The password must be at least 6 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	admin, err := h.store.CreateAdmin(username, hash)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("The user '%s' already exists", username))
			return
		}
		slog.Error("failed to create admin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	slog.Info("admin registered", "username", username)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Success: true,
		Message: fmt.Sprintf("Administrator '%s' created successfully", username),
		Admin:   admin,
	})
}

// Login handles POST /auth/login
// Verifies credentials and issues a bearer token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "The 'username' and 'password' fields are required")
		return
	}

	admin, err := h.store.AdminByUsername(username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("failed to look up admin", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		// Unknown username gets the same rejection as a bad password
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	token, err := auth.GenerateToken(h.cfg.JWTSecret, admin.ID, admin.Username)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("admin logged in", "username", username)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Admin:   admin,
	})
}
