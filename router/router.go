// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/Tmaxpro/RandomGift-Backend/cliparse"
	"github.com/Tmaxpro/RandomGift-Backend/handlers"
	"github.com/Tmaxpro/RandomGift-Backend/middleware"
	"github.com/Tmaxpro/RandomGift-Backend/models"
	"github.com/Tmaxpro/RandomGift-Backend/pairing"
	"github.com/Tmaxpro/RandomGift-Backend/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize store, engine, and handlers
	st := store.New(db)
	rng := pairing.NewRand()
	engine := pairing.NewEngine(st, rng)

	participantHandler := handlers.NewEntityHandler(st, models.SideParticipants)
	giftHandler := handlers.NewEntityHandler(st, models.SideGifts)
	pairingHandler := handlers.NewPairingHandler(st, engine, cfg)
	matchHandler := handlers.NewMatchHandler(rng)
	authHandler := handlers.NewAuthHandler(st, cfg)
	systemHandler := handlers.NewSystemHandler(st, cfg)
	exportHandler := handlers.NewExportHandler(st)

	// Mutating routes go through the bearer-token guard
	protected := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.JWTSecret, next))
	}

	// Authentication
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))

	// Participants
	mux.HandleFunc("POST /participants", protected(participantHandler.Add))
	mux.HandleFunc("POST /participants/bulk", protected(participantHandler.AddBulk))
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantHandler.List))
	mux.HandleFunc("DELETE /participants/{identifier}", protected(participantHandler.Archive))

	// Gifts
	mux.HandleFunc("POST /gifts", protected(giftHandler.Add))
	mux.HandleFunc("POST /gifts/bulk", protected(giftHandler.AddBulk))
	mux.HandleFunc("GET /gifts", middleware.WithLogging(giftHandler.List))
	mux.HandleFunc("DELETE /gifts/{identifier}", protected(giftHandler.Archive))

	// Pairings and matching
	mux.HandleFunc("POST /pairings", protected(pairingHandler.Create))
	mux.HandleFunc("GET /pairings", middleware.WithLogging(pairingHandler.List))
	mux.HandleFunc("DELETE /pairings/{identifier}", protected(pairingHandler.Archive))
	mux.HandleFunc("POST /match", protected(matchHandler.Match))

	// System
	mux.HandleFunc("GET /health", middleware.WithLogging(systemHandler.Health))
	mux.HandleFunc("GET /status", middleware.WithLogging(systemHandler.Status))
	mux.HandleFunc("DELETE /reset", protected(systemHandler.ResetAll))
	mux.HandleFunc("DELETE /reset/pairings", protected(systemHandler.ResetPairings))

	// Export
	mux.HandleFunc("GET /export/csv", protected(exportHandler.CSV))
	mux.HandleFunc("GET /export/pdf", protected(exportHandler.PDF))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(systemHandler.Home))

	return mux
}
