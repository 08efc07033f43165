// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Song Bracket API server.

Song Bracket runs classroom song tournaments. Every participant fills in a
prediction bracket for the season, the instructor records the real winner of
each matchup, and the server scores and ranks the predictions.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:bracket.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is read when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SCORING_WEIGHTS (-weights): table or geometric (default: table)
  - RANKING_POLICY (-ranking): sequential or competition (default: sequential)
  - LEADERBOARD_COLLATION (-collation): locale for ordering tied names

# Logging

Logs go to stderr through log/slog. A terminal gets the text handler and
anything else gets JSON.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - bracket: progression, scoring, leaderboard, accuracy and vote tallies
  - export: CSV and XLSX vote tables
  - handlers: HTTP request handlers (seasons, brackets, exports)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Records and response types
  - db: Connection, schema and snapshot loading
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
