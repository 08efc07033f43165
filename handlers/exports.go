// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/song-bracket/bracket"
	"github.com/danielhkuo/song-bracket/cliparse"
	"github.com/danielhkuo/song-bracket/export"
	"github.com/danielhkuo/song-bracket/middleware"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	season *SeasonHandler
}

func NewExportHandler(db *sql.DB, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{db: db, cfg: cfg, season: NewSeasonHandler(db, cfg)}
}

// download renders into a buffer first so a failed render still gets a
// proper error status instead of a truncated file.
func download(w http.ResponseWriter, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		slog.Error("failed to render export", "file", filename, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	middleware.DownloadHeaders(w, contentType, filename)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("failed to send export", "file", filename, "error", err)
	}
}

func voteRows(snap bracket.Snapshot) []export.VoteRow {
	counts := bracket.VoteCounts(snap.Brackets, snap.Picks)
	return export.VoteRows(snap.Matchups, snap.SongIndex(), counts)
}

// VotesCSV handles GET /seasons/{season}/votes.csv
func (h *ExportHandler) VotesCSV(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	rows := voteRows(snap)
	download(w, contentTypeCSV, fmt.Sprintf("votes-%s.csv", r.PathValue("season")), func(out io.Writer) error {
		return export.WriteVotesCSV(out, rows)
	})
}

// VotesXLSX handles GET /seasons/{season}/votes.xlsx
func (h *ExportHandler) VotesXLSX(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	rows := voteRows(snap)
	download(w, contentTypeXLSX, fmt.Sprintf("votes-%s.xlsx", r.PathValue("season")), func(out io.Writer) error {
		return export.WriteVotesXLSX(out, rows)
	})
}

// LeaderboardCSV handles GET /seasons/{season}/leaderboard.csv
func (h *ExportHandler) LeaderboardCSV(w http.ResponseWriter, r *http.Request) {
	snap, ok := loadSeason(h.db, w, r)
	if !ok {
		return
	}

	board := h.season.leaderboard(snap)
	download(w, contentTypeCSV, fmt.Sprintf("leaderboard-%s.csv", r.PathValue("season")), func(out io.Writer) error {
		return export.WriteLeaderboardCSV(out, board)
	})
}
