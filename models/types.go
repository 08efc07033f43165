// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Scoring weight scheme names
const (
	WeightsTable     = "table"
	WeightsGeometric = "geometric"
)

// Ranking policy names
const (
	RankingSequential  = "sequential"
	RankingCompetition = "competition"
)

// Domain types

type Season struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	Archived bool   `json:"archived"`
}

type Participant struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type Song struct {
	ID        string `json:"id"`
	SeasonID  string `json:"season_id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	MediaLink string `json:"media_link,omitempty"`
}

// Song slots are nil for rounds > 1 until feeder results exist.
type Matchup struct {
	ID            string  `json:"id"`
	SeasonID      string  `json:"season_id"`
	Round         int     `json:"round"`
	MatchupNumber int     `json:"matchup_number"`
	Song1ID       *string `json:"song1_id,omitempty"`
	Song2ID       *string `json:"song2_id,omitempty"`
}

type Pick struct {
	ID           string `json:"id"`
	BracketID    string `json:"bracket_id"`
	MatchupID    string `json:"matchup_id"`
	PickedSongID string `json:"picked_song_id"`
}

type Bracket struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participant_id"`
	SeasonID      string `json:"season_id"`
	Finalized     bool   `json:"finalized"`
	Points        int    `json:"points"`
}

type MasterResult struct {
	ID           string `json:"id"`
	SeasonID     string `json:"season_id"`
	MatchupID    string `json:"matchup_id"`
	WinnerSongID string `json:"winner_song_id"`
}

// Computed types

// ParticipantScore is one input row of the leaderboard.
type ParticipantScore struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"` // 1-indexed ranking
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
}

type RoundScore struct {
	Round   int `json:"round"`
	Correct int `json:"correct"`
	Points  int `json:"points"`
}

type RoundAccuracy struct {
	Round    int     `json:"round"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// Response types

type OptionsResponse struct {
	BracketID string   `json:"bracket_id"`
	MatchupID string   `json:"matchup_id"`
	Round     int      `json:"round"`
	Options   []string `json:"options"`
}

type ScoreResponse struct {
	BracketID string       `json:"bracket_id"`
	Weights   string       `json:"weights"`
	Total     int          `json:"total"`
	Rounds    []RoundScore `json:"rounds"`
}

type LeaderboardResponse struct {
	SeasonID string             `json:"season_id"`
	Policy   string             `json:"policy"`
	Entries  []LeaderboardEntry `json:"entries"`
}

type RankResponse struct {
	ParticipantID string `json:"participant_id"`
	Rank          int    `json:"rank"` // 0 = unranked
}

type AccuracyResponse struct {
	SeasonID string          `json:"season_id"`
	Rounds   []RoundAccuracy `json:"rounds"`
}

// matchup_id -> song_id -> votes
type VotesResponse struct {
	SeasonID string                    `json:"season_id"`
	Votes    map[string]map[string]int `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
