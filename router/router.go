// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/song-bracket/cliparse"
	"github.com/danielhkuo/song-bracket/handlers"
	"github.com/danielhkuo/song-bracket/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	seasonHandler := handlers.NewSeasonHandler(db, cfg)
	bracketHandler := handlers.NewBracketHandler(db, cfg)
	exportHandler := handlers.NewExportHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Season views
	mux.HandleFunc("GET /seasons/active", middleware.WithLogging(seasonHandler.ActiveSeason))
	mux.HandleFunc("GET /seasons/{season}/leaderboard", middleware.WithLogging(seasonHandler.Leaderboard))
	mux.HandleFunc("GET /seasons/{season}/leaderboard/{participant}", middleware.WithLogging(seasonHandler.Rank))
	mux.HandleFunc("GET /seasons/{season}/accuracy", middleware.WithLogging(seasonHandler.Accuracy))
	mux.HandleFunc("GET /seasons/{season}/votes", middleware.WithLogging(seasonHandler.Votes))

	// Downloads
	mux.HandleFunc("GET /seasons/{season}/votes.csv", middleware.WithLogging(exportHandler.VotesCSV))
	mux.HandleFunc("GET /seasons/{season}/votes.xlsx", middleware.WithLogging(exportHandler.VotesXLSX))
	mux.HandleFunc("GET /seasons/{season}/leaderboard.csv", middleware.WithLogging(exportHandler.LeaderboardCSV))

	// Per-bracket views
	mux.HandleFunc("GET /brackets/{bracket}/matchups/{matchup}/options", middleware.WithLogging(bracketHandler.Options))
	mux.HandleFunc("GET /brackets/{bracket}/score", middleware.WithLogging(bracketHandler.Score))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("song-bracket API v1"))
	})

	return mux
}
