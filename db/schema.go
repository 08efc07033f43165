// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables the snapshot loader reads.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid on both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Seasons
CREATE TABLE IF NOT EXISTS season (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT FALSE,
    archived BOOLEAN NOT NULL DEFAULT FALSE
);

-- Participants (projection of the identity service)
CREATE TABLE IF NOT EXISTS participant (
    id TEXT PRIMARY KEY,
    display_name TEXT NOT NULL
);

-- Songs
CREATE TABLE IF NOT EXISTS song (
    id TEXT PRIMARY KEY,
    season_id TEXT NOT NULL REFERENCES season(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    artist TEXT NOT NULL,
    media_link TEXT
);

CREATE INDEX IF NOT EXISTS idx_song_season_id ON song(season_id);

-- Matchups
CREATE TABLE IF NOT EXISTS matchup (
    id TEXT PRIMARY KEY,
    season_id TEXT NOT NULL REFERENCES season(id) ON DELETE CASCADE,
    round INTEGER NOT NULL CHECK (round >= 1),
    matchup_number INTEGER NOT NULL CHECK (matchup_number >= 1),
    song1_id TEXT REFERENCES song(id),
    song2_id TEXT REFERENCES song(id),
    UNIQUE (season_id, round, matchup_number)
);

CREATE INDEX IF NOT EXISTS idx_matchup_season_id ON matchup(season_id);

-- Brackets
CREATE TABLE IF NOT EXISTS bracket (
    id TEXT PRIMARY KEY,
    participant_id TEXT NOT NULL REFERENCES participant(id) ON DELETE CASCADE,
    season_id TEXT NOT NULL REFERENCES season(id) ON DELETE CASCADE,
    finalized BOOLEAN NOT NULL DEFAULT FALSE,
    points INTEGER NOT NULL DEFAULT 0,
    UNIQUE (participant_id, season_id)
);

CREATE INDEX IF NOT EXISTS idx_bracket_season_id ON bracket(season_id);

-- Picks
CREATE TABLE IF NOT EXISTS pick (
    id TEXT PRIMARY KEY,
    bracket_id TEXT NOT NULL REFERENCES bracket(id) ON DELETE CASCADE,
    matchup_id TEXT NOT NULL REFERENCES matchup(id) ON DELETE CASCADE,
    picked_song_id TEXT NOT NULL REFERENCES song(id),
    UNIQUE (bracket_id, matchup_id)
);

CREATE INDEX IF NOT EXISTS idx_pick_bracket_id ON pick(bracket_id);

-- Master results
CREATE TABLE IF NOT EXISTS master_result (
    id TEXT PRIMARY KEY,
    season_id TEXT NOT NULL REFERENCES season(id) ON DELETE CASCADE,
    matchup_id TEXT NOT NULL UNIQUE REFERENCES matchup(id) ON DELETE CASCADE,
    winner_song_id TEXT NOT NULL REFERENCES song(id)
);

CREATE INDEX IF NOT EXISTS idx_master_result_season_id ON master_result(season_id);
`
