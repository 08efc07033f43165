// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/song-bracket/cliparse"
	"github.com/danielhkuo/song-bracket/db"
	"github.com/danielhkuo/song-bracket/models"
)

// TestDBURL is an in-memory SQLite database private to one connection.
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    TestDBURL,
		DatabaseType:   db.TypeSQLite,
		ScoringWeights: models.WeightsTable,
		RankingPolicy:  models.RankingSequential,
	}
}

func newID() string {
	return uuid.NewString()
}

func nullable(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// CreateTestSeason inserts a season and returns its ID
func CreateTestSeason(t *testing.T, conn *sql.DB, name string, active bool) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO season (id, name, is_active, archived)
		VALUES ($1, $2, $3, $4)
	`, id, name, active, false)
	if err != nil {
		t.Fatalf("Failed to create test season: %v", err)
	}
	return id
}

// CreateTestParticipant inserts a participant and returns its ID
func CreateTestParticipant(t *testing.T, conn *sql.DB, displayName string) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO participant (id, display_name)
		VALUES ($1, $2)
	`, id, displayName)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}
	return id
}

// CreateTestSong inserts a song and returns its ID
func CreateTestSong(t *testing.T, conn *sql.DB, seasonID, title, artist string) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO song (id, season_id, title, artist)
		VALUES ($1, $2, $3, $4)
	`, id, seasonID, title, artist)
	if err != nil {
		t.Fatalf("Failed to create test song: %v", err)
	}
	return id
}

// CreateTestMatchup inserts a matchup and returns its ID.
// Empty song IDs are stored as NULL.
func CreateTestMatchup(t *testing.T, conn *sql.DB, seasonID string, round, number int, song1ID, song2ID string) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO matchup (id, season_id, round, matchup_number, song1_id, song2_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, id, seasonID, round, number, nullable(song1ID), nullable(song2ID))
	if err != nil {
		t.Fatalf("Failed to create test matchup: %v", err)
	}
	return id
}

// CreateTestBracket inserts a bracket and returns its ID
func CreateTestBracket(t *testing.T, conn *sql.DB, participantID, seasonID string, finalized bool) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO bracket (id, participant_id, season_id, finalized, points)
		VALUES ($1, $2, $3, $4, 0)
	`, id, participantID, seasonID, finalized)
	if err != nil {
		t.Fatalf("Failed to create test bracket: %v", err)
	}
	return id
}

// CreateTestPick records a pick and returns its ID
func CreateTestPick(t *testing.T, conn *sql.DB, bracketID, matchupID, songID string) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO pick (id, bracket_id, matchup_id, picked_song_id)
		VALUES ($1, $2, $3, $4)
	`, id, bracketID, matchupID, songID)
	if err != nil {
		t.Fatalf("Failed to create test pick: %v", err)
	}
	return id
}

// CreateTestResult records a master result and returns its ID
func CreateTestResult(t *testing.T, conn *sql.DB, seasonID, matchupID, winnerID string) string {
	t.Helper()

	id := newID()
	_, err := conn.Exec(`
		INSERT INTO master_result (id, season_id, matchup_id, winner_song_id)
		VALUES ($1, $2, $3, $4)
	`, id, seasonID, matchupID, winnerID)
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}
	return id
}

// Season holds the IDs of a seeded two-round season.
type Season struct {
	SeasonID string

	// Songs A-D
	SongA, SongB, SongC, SongD string

	// R1M1 is A vs B, R1M2 is C vs D, Final is fed by both.
	R1M1, R1M2, Final string

	// Ana and Ben are finalized, Cy is still picking.
	Ana, Ben, Cy                      string
	AnaBracket, BenBracket, CyBracket string
}

// SeedTwoRoundSeason creates an active two-round season with three brackets.
//
//	picks    Ana: A, D, A   Ben: A, C, C   Cy: B, D, D
//	results  R1M1 A, R1M2 D, Final D
//
// With table weights Cy scores 4, Ana 2 and Ben 1.
func SeedTwoRoundSeason(t *testing.T, conn *sql.DB) Season {
	t.Helper()

	var s Season
	s.SeasonID = CreateTestSeason(t, conn, "Spring Showdown", true)

	s.SongA = CreateTestSong(t, conn, s.SeasonID, "Dancing Queen", "ABBA")
	s.SongB = CreateTestSong(t, conn, s.SeasonID, "Bohemian Rhapsody", "Queen")
	s.SongC = CreateTestSong(t, conn, s.SeasonID, "Hey Ya!", "OutKast")
	s.SongD = CreateTestSong(t, conn, s.SeasonID, "Africa", "Toto")

	s.R1M1 = CreateTestMatchup(t, conn, s.SeasonID, 1, 1, s.SongA, s.SongB)
	s.R1M2 = CreateTestMatchup(t, conn, s.SeasonID, 1, 2, s.SongC, s.SongD)
	s.Final = CreateTestMatchup(t, conn, s.SeasonID, 2, 1, "", "")

	s.Ana = CreateTestParticipant(t, conn, "Ana")
	s.Ben = CreateTestParticipant(t, conn, "Ben")
	s.Cy = CreateTestParticipant(t, conn, "Cy")

	s.AnaBracket = CreateTestBracket(t, conn, s.Ana, s.SeasonID, true)
	s.BenBracket = CreateTestBracket(t, conn, s.Ben, s.SeasonID, true)
	s.CyBracket = CreateTestBracket(t, conn, s.Cy, s.SeasonID, false)

	for _, p := range []struct{ bracket, matchup, song string }{
		{s.AnaBracket, s.R1M1, s.SongA}, {s.AnaBracket, s.R1M2, s.SongD}, {s.AnaBracket, s.Final, s.SongA},
		{s.BenBracket, s.R1M1, s.SongA}, {s.BenBracket, s.R1M2, s.SongC}, {s.BenBracket, s.Final, s.SongC},
		{s.CyBracket, s.R1M1, s.SongB}, {s.CyBracket, s.R1M2, s.SongD}, {s.CyBracket, s.Final, s.SongD},
	} {
		CreateTestPick(t, conn, p.bracket, p.matchup, p.song)
	}

	CreateTestResult(t, conn, s.SeasonID, s.R1M1, s.SongA)
	CreateTestResult(t, conn, s.SeasonID, s.R1M2, s.SongD)
	CreateTestResult(t, conn, s.SeasonID, s.Final, s.SongD)

	return s
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
