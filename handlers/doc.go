// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Song Bracket API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SeasonHandler: active season, leaderboard, rank, accuracy and votes
  - BracketHandler: legal options and score breakdown for one bracket
  - ExportHandler: CSV and XLSX downloads

Handlers are created via constructor functions that accept *sql.DB and Config:

	seasonHandler := handlers.NewSeasonHandler(db, cfg)

# Request Flow

Every request loads a fresh snapshot of one season with db.LoadSnapshot and
runs the bracket package over it. Nothing is cached between requests, so a
new master result shows up on the next read.

The scorer and leaderboard come from the configuration:

	h.cfg.Scorer()      // table or geometric round weights
	h.cfg.Leaderboard() // sequential or competition ranks

# Errors

Unknown ids in the path return 404. Store failures are logged
and return 500. Both use middleware.ErrorResponse.

Exports are rendered into memory before any header is written, so a failed
render never produces a partial download.
*/
package handlers
