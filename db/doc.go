// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store, creates its schema, and loads read-only
snapshots for the bracket engine.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite) or "postgres" (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "file:bracket.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - season: name, active and archived flags
  - participant: display names supplied by the identity service
  - song: reference data per season
  - matchup: tree nodes, unique per (season, round, matchup_number)
  - bracket: one per participant per season
  - pick: one per bracket per matchup
  - master_result: at most one per matchup

# Relationships

	season 1──* song
	season 1──* matchup
	season 1──* bracket
	participant 1──* bracket
	bracket 1──* pick
	matchup 1──? master_result

# Snapshots

LoadSnapshot reads one season's records in a fixed order:

	snap, err := db.LoadSnapshot(ctx, conn, seasonID)
	if errors.Is(err, db.ErrSeasonNotFound) {
		// 404
	}

This package never writes picks, brackets, or results. Those records are
maintained by the surrounding application.
*/
package db
