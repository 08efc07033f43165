// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the record, computed, and response types shared by
the engine, the store, and the API.

# Record Types

Records mirror the tables the store reads. Relationships are by id only:

  - Season: name, active flag, archived flag
  - Participant: display name used on the leaderboard
  - Song: title, artist, media link
  - Matchup: round, matchup number, two song slots (nil until known)
  - Pick: one bracket's chosen song for one matchup
  - Bracket: one participant's predictions for one season
  - MasterResult: authoritative winner of a matchup

# Computed Types

Values produced by the bracket engine:

  - ParticipantScore: leaderboard input row
  - LeaderboardEntry: ranked leaderboard row
  - RoundScore: correct picks and points in one round
  - RoundAccuracy: cohort correct/total for one round

# Response Types

JSON bodies returned by the API:

  - OptionsResponse, ScoreResponse, LeaderboardResponse, RankResponse
  - AccuracyResponse, VotesResponse
  - ErrorResponse: error, message

# Constants

Scoring weight schemes:

	WeightsTable     = "table"
	WeightsGeometric = "geometric"

Ranking policies:

	RankingSequential  = "sequential"
	RankingCompetition = "competition"
*/
package models
