// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/song-bracket/models"
	"github.com/danielhkuo/song-bracket/testutil"
)

func seasonRequest(path, seasonID string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	req.SetPathValue("season", seasonID)
	return req
}

func TestActiveSeason(t *testing.T) {
	t.Run("no seasons", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := NewSeasonHandler(db, testutil.GetTestConfig())

		w := httptest.NewRecorder()
		handler.ActiveSeason(w, httptest.NewRequest("GET", "/seasons/active", nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("active season", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.CreateTestSeason(t, db, "Archive", false)
		seed := testutil.SeedTwoRoundSeason(t, db)
		handler := NewSeasonHandler(db, testutil.GetTestConfig())

		w := httptest.NewRecorder()
		handler.ActiveSeason(w, httptest.NewRequest("GET", "/seasons/active", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var season models.Season
		testutil.AssertJSON(t, w, &season)
		if season.ID != seed.SeasonID {
			t.Errorf("Expected season %s, got %s", seed.SeasonID, season.ID)
		}
		if season.Name != "Spring Showdown" {
			t.Errorf("Expected name 'Spring Showdown', got '%s'", season.Name)
		}
	})
}

func TestLeaderboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, db)
	handler := NewSeasonHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Leaderboard(w, seasonRequest("/seasons/x/leaderboard", seed.SeasonID))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	want := []models.LeaderboardEntry{
		{Rank: 1, ParticipantID: seed.Cy, Name: "Cy", Score: 4},
		{Rank: 2, ParticipantID: seed.Ana, Name: "Ana", Score: 2},
		{Rank: 3, ParticipantID: seed.Ben, Name: "Ben", Score: 1},
	}
	if diff := cmp.Diff(want, resp.Entries); diff != "" {
		t.Errorf("leaderboard mismatch (-want +got):\n%s", diff)
	}
	if resp.Policy != models.RankingSequential {
		t.Errorf("Expected sequential policy, got %s", resp.Policy)
	}
}

func TestLeaderboard_GeometricWeights(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, db)

	cfg := testutil.GetTestConfig()
	cfg.ScoringWeights = models.WeightsGeometric
	handler := NewSeasonHandler(db, cfg)

	w := httptest.NewRecorder()
	handler.Leaderboard(w, seasonRequest("/seasons/x/leaderboard", seed.SeasonID))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.LeaderboardResponse
	testutil.AssertJSON(t, w, &resp)

	// Round 2 is worth 2 instead of 3
	if len(resp.Entries) != 3 || resp.Entries[0].Score != 3 {
		t.Errorf("Expected leader with 3 points, got %+v", resp.Entries)
	}
}

func TestLeaderboard_UnknownSeason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewSeasonHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Leaderboard(w, seasonRequest("/seasons/nope/leaderboard", "nope"))

	testutil.AssertStatus(t, w, http.StatusNotFound)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Not Found" {
		t.Errorf("Expected error 'Not Found', got '%s'", resp.Error)
	}
}

func TestRank(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, db)
	outsider := testutil.CreateTestParticipant(t, db, "Dee")
	handler := NewSeasonHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name        string
		participant string
		expected    int
	}{
		{"leader", seed.Cy, 1},
		{"last", seed.Ben, 3},
		{"no bracket", outsider, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := seasonRequest("/seasons/x/leaderboard/p", seed.SeasonID)
			req.SetPathValue("participant", tt.participant)
			w := httptest.NewRecorder()

			handler.Rank(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.RankResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Rank != tt.expected {
				t.Errorf("Expected rank %d, got %d", tt.expected, resp.Rank)
			}
		})
	}
}

func TestAccuracy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, db)
	handler := NewSeasonHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Accuracy(w, seasonRequest("/seasons/x/accuracy", seed.SeasonID))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.AccuracyResponse
	testutil.AssertJSON(t, w, &resp)

	want := []models.RoundAccuracy{
		{Round: 1, Correct: 3, Total: 4, Accuracy: 0.75},
		{Round: 2, Correct: 0, Total: 2, Accuracy: 0},
		{Round: 3},
		{Round: 4},
	}
	if diff := cmp.Diff(want, resp.Rounds); diff != "" {
		t.Errorf("accuracy mismatch (-want +got):\n%s", diff)
	}
}

func TestVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, db)
	handler := NewSeasonHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Votes(w, seasonRequest("/seasons/x/votes", seed.SeasonID))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.VotesResponse
	testutil.AssertJSON(t, w, &resp)

	// Cy has not finalized, so none of Cy's picks count
	want := map[string]map[string]int{
		seed.R1M1:  {seed.SongA: 2},
		seed.R1M2:  {seed.SongC: 1, seed.SongD: 1},
		seed.Final: {seed.SongA: 1, seed.SongC: 1},
	}
	if diff := cmp.Diff(want, resp.Votes); diff != "" {
		t.Errorf("votes mismatch (-want +got):\n%s", diff)
	}
}
