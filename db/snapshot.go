// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/song-bracket/bracket"
	"github.com/danielhkuo/song-bracket/models"
)

var (
	ErrSeasonNotFound  = errors.New("season not found")
	ErrBracketNotFound = errors.New("bracket not found")
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// snapshotTxOptions pins every read of a snapshot to one database state.
// SQLite ignores the isolation level; its transactions already read from one
// snapshot.
var snapshotTxOptions = &sql.TxOptions{
	ReadOnly:  true,
	Isolation: sql.LevelRepeatableRead,
}

// LoadSeasons reads every season ordered by id.
func LoadSeasons(ctx context.Context, db *sql.DB) ([]models.Season, error) {
	return loadSeasons(ctx, db)
}

func loadSeasons(ctx context.Context, q querier) ([]models.Season, error) {
	seasons, err := queryAll(ctx, q, `
		SELECT id, name, is_active, archived
		FROM season
		ORDER BY id
	`, func(rows *sql.Rows) (models.Season, error) {
		var s models.Season
		err := rows.Scan(&s.ID, &s.Name, &s.IsActive, &s.Archived)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seasons: %w", err)
	}
	return seasons, nil
}

// LoadSnapshot reads every record of one season into an immutable snapshot.
// All reads share one read-only transaction, so a write committed while the
// snapshot loads is either fully visible or not at all.
// All seasons are included so the active season can be resolved from it.
// It returns ErrSeasonNotFound when seasonID does not exist.
func LoadSnapshot(ctx context.Context, db *sql.DB, seasonID string) (bracket.Snapshot, error) {
	tx, err := db.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	snap, err := readSnapshot(ctx, tx, seasonID)
	if err != nil {
		return bracket.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to end snapshot: %w", err)
	}
	return snap, nil
}

func readSnapshot(ctx context.Context, q querier, seasonID string) (bracket.Snapshot, error) {
	var snap bracket.Snapshot
	var err error

	snap.Seasons, err = loadSeasons(ctx, q)
	if err != nil {
		return bracket.Snapshot{}, err
	}
	if _, ok := snap.Season(seasonID); !ok {
		return bracket.Snapshot{}, fmt.Errorf("%w: %s", ErrSeasonNotFound, seasonID)
	}

	snap.Participants, err = queryAll(ctx, q, `
		SELECT p.id, p.display_name
		FROM participant p
		JOIN bracket b ON b.participant_id = p.id
		WHERE b.season_id = $1
		ORDER BY p.id
	`, func(rows *sql.Rows) (models.Participant, error) {
		var p models.Participant
		err := rows.Scan(&p.ID, &p.DisplayName)
		return p, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load participants: %w", err)
	}

	snap.Songs, err = queryAll(ctx, q, `
		SELECT id, season_id, title, artist, media_link
		FROM song
		WHERE season_id = $1
		ORDER BY id
	`, func(rows *sql.Rows) (models.Song, error) {
		var s models.Song
		var mediaLink sql.NullString
		err := rows.Scan(&s.ID, &s.SeasonID, &s.Title, &s.Artist, &mediaLink)
		s.MediaLink = mediaLink.String
		return s, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load songs: %w", err)
	}

	snap.Matchups, err = queryAll(ctx, q, `
		SELECT id, season_id, round, matchup_number, song1_id, song2_id
		FROM matchup
		WHERE season_id = $1
		ORDER BY round, matchup_number
	`, func(rows *sql.Rows) (models.Matchup, error) {
		var m models.Matchup
		var song1, song2 sql.NullString
		err := rows.Scan(&m.ID, &m.SeasonID, &m.Round, &m.MatchupNumber, &song1, &song2)
		m.Song1ID = nullableString(song1)
		m.Song2ID = nullableString(song2)
		return m, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load matchups: %w", err)
	}

	snap.Brackets, err = queryAll(ctx, q, `
		SELECT id, participant_id, season_id, finalized, points
		FROM bracket
		WHERE season_id = $1
		ORDER BY id
	`, func(rows *sql.Rows) (models.Bracket, error) {
		var b models.Bracket
		err := rows.Scan(&b.ID, &b.ParticipantID, &b.SeasonID, &b.Finalized, &b.Points)
		return b, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load brackets: %w", err)
	}

	snap.Picks, err = queryAll(ctx, q, `
		SELECT pk.id, pk.bracket_id, pk.matchup_id, pk.picked_song_id
		FROM pick pk
		JOIN bracket b ON pk.bracket_id = b.id
		WHERE b.season_id = $1
		ORDER BY pk.id
	`, func(rows *sql.Rows) (models.Pick, error) {
		var p models.Pick
		err := rows.Scan(&p.ID, &p.BracketID, &p.MatchupID, &p.PickedSongID)
		return p, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load picks: %w", err)
	}

	snap.Results, err = queryAll(ctx, q, `
		SELECT id, season_id, matchup_id, winner_song_id
		FROM master_result
		WHERE season_id = $1
		ORDER BY id
	`, func(rows *sql.Rows) (models.MasterResult, error) {
		var r models.MasterResult
		err := rows.Scan(&r.ID, &r.SeasonID, &r.MatchupID, &r.WinnerSongID)
		return r, err
	}, seasonID)
	if err != nil {
		return bracket.Snapshot{}, fmt.Errorf("failed to load master results: %w", err)
	}

	return snap, nil
}

// FindBracketSeason returns the season a bracket belongs to.
// It returns ErrBracketNotFound when bracketID does not exist.
func FindBracketSeason(ctx context.Context, db *sql.DB, bracketID string) (string, error) {
	var seasonID string
	err := db.QueryRowContext(ctx, `
		SELECT season_id FROM bracket WHERE id = $1
	`, bracketID).Scan(&seasonID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: %s", ErrBracketNotFound, bracketID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to find bracket: %w", err)
	}
	return seasonID, nil
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, q querier, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
