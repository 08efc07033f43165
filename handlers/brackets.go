// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-bracket/bracket"
	"github.com/danielhkuo/song-bracket/cliparse"
	"github.com/danielhkuo/song-bracket/db"
	"github.com/danielhkuo/song-bracket/middleware"
	"github.com/danielhkuo/song-bracket/models"
)

type BracketHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBracketHandler(db *sql.DB, cfg cliparse.Config) *BracketHandler {
	return &BracketHandler{db: db, cfg: cfg}
}

// loadBracket resolves the {bracket} path value to its season snapshot.
func (h *BracketHandler) loadBracket(w http.ResponseWriter, r *http.Request) (bracket.Snapshot, models.Bracket, bool) {
	bracketID := r.PathValue("bracket")
	if bracketID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bracket id is required")
		return bracket.Snapshot{}, models.Bracket{}, false
	}

	seasonID, err := db.FindBracketSeason(r.Context(), h.db, bracketID)
	if errors.Is(err, db.ErrBracketNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Bracket not found")
		return bracket.Snapshot{}, models.Bracket{}, false
	}
	if err != nil {
		slog.Error("failed to find bracket", "bracket", bracketID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return bracket.Snapshot{}, models.Bracket{}, false
	}

	snap, err := db.LoadSnapshot(r.Context(), h.db, seasonID)
	if err != nil {
		slog.Error("failed to load bracket snapshot", "bracket", bracketID, "season", seasonID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return bracket.Snapshot{}, models.Bracket{}, false
	}

	b, ok := snap.Bracket(bracketID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Bracket not found")
		return bracket.Snapshot{}, models.Bracket{}, false
	}

	return snap, b, true
}

// Options handles GET /brackets/{bracket}/matchups/{matchup}/options
// Returns the songs the participant may currently pick for the matchup.
func (h *BracketHandler) Options(w http.ResponseWriter, r *http.Request) {
	snap, b, ok := h.loadBracket(w, r)
	if !ok {
		return
	}

	// Matchups from other seasons are not part of this bracket
	m, ok := snap.Matchup(r.PathValue("matchup"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Matchup not found")
		return
	}

	tree := bracket.NewTree(snap.Matchups)
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{
		BracketID: b.ID,
		MatchupID: m.ID,
		Round:     m.Round,
		Options:   tree.ValidOptions(m, snap.PicksFor(b.ID)),
	})
}

// Score handles GET /brackets/{bracket}/score
func (h *BracketHandler) Score(w http.ResponseWriter, r *http.Request) {
	snap, b, ok := h.loadBracket(w, r)
	if !ok {
		return
	}

	scorer := h.cfg.Scorer()
	rounds := scorer.Breakdown(snap.PicksFor(b.ID), snap.Results, snap.Matchups)

	total := 0
	for _, rs := range rounds {
		total += rs.Points
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScoreResponse{
		BracketID: b.ID,
		Weights:   scorer.Weights().Name(),
		Total:     total,
		Rounds:    rounds,
	})
}
