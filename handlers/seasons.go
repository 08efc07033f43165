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

type SeasonHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSeasonHandler(db *sql.DB, cfg cliparse.Config) *SeasonHandler {
	return &SeasonHandler{db: db, cfg: cfg}
}

// loadSeason reads the snapshot for the {season} path value.
// It writes the error response itself and reports false on failure.
func loadSeason(conn *sql.DB, w http.ResponseWriter, r *http.Request) (bracket.Snapshot, bool) {
	seasonID := r.PathValue("season")
	if seasonID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "season id is required")
		return bracket.Snapshot{}, false
	}

	snap, err := db.LoadSnapshot(r.Context(), conn, seasonID)
	if errors.Is(err, db.ErrSeasonNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Season not found")
		return bracket.Snapshot{}, false
	}
	if err != nil {
		slog.Error("failed to load season snapshot", "season", seasonID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return bracket.Snapshot{}, false
	}

	return snap, true
}

// ActiveSeason handles GET /seasons/active
func (h *SeasonHandler) ActiveSeason(w http.ResponseWriter, r *http.Request) {
	seasons, err := db.LoadSeasons(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load seasons", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	season, err := bracket.ActiveSeason(seasons)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active season")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, season)
}

// leaderboard scores every bracket in the snapshot and ranks the result.
func (h *SeasonHandler) leaderboard(snap bracket.Snapshot) []models.LeaderboardEntry {
	scores := h.cfg.Scorer().ScoreBrackets(snap.Brackets, snap.Picks, snap.Results, snap.Matchups, snap.Names())
	return h.cfg.Leaderboard().Assemble(scores)
}

// Leaderboard handles GET /seasons/{season}/leaderboard
func (h *SeasonHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeaderboardResponse{
		SeasonID: r.PathValue("season"),
		Policy:   string(h.cfg.Leaderboard().Policy()),
		Entries:  h.leaderboard(snap),
	})
}

// Rank handles GET /seasons/{season}/leaderboard/{participant}
// A participant without a bracket in the season is reported with rank 0.
func (h *SeasonHandler) Rank(w http.ResponseWriter, r *http.Request) {
	participantID := r.PathValue("participant")
	if participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "participant id is required")
		return
	}

	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RankResponse{
		ParticipantID: participantID,
		Rank:          bracket.RankOf(h.leaderboard(snap), participantID),
	})
}

// Accuracy handles GET /seasons/{season}/accuracy
func (h *SeasonHandler) Accuracy(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AccuracyResponse{
		SeasonID: r.PathValue("season"),
		Rounds:   bracket.RoundAccuracy(snap.Brackets, snap.Picks, snap.Results, snap.Matchups),
	})
}

// Votes handles GET /seasons/{season}/votes
func (h *SeasonHandler) Votes(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotesResponse{
		SeasonID: r.PathValue("season"),
		Votes:    bracket.VoteCounts(snap.Brackets, snap.Picks),
	})
}
