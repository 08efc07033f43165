// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bracket is the progression and scoring engine for song bracket
predictions.

Every function here is pure: it reads an in-memory Snapshot (or slices taken
from one), allocates fresh output, and never mutates its arguments. Functions
are safe to call from concurrent requests without locking.

# Progression

Matchup m of round r is fed by matchups 2m-1 and 2m of round r-1:

	tree := bracket.NewTree(snapshot.Matchups)
	options := tree.ValidOptions(matchup, snapshot.PicksFor(bracketID))

Round-1 matchups offer their two fixed songs. Later rounds offer the
participant's own picks in the feeder matchups, so a full hypothetical
bracket can be built before any result is known. An empty result means the
matchup is not choosable yet. Irregular brackets can override the positional
edges with WithFeeders.

# Scoring

A Scorer awards round weights for picks that match the master result:

	scorer := bracket.NewScorer(bracket.WeightsTable)
	total := scorer.Score(picks, snapshot.Results, snapshot.Matchups)

Two schemes exist:

	WeightsTable     1, 3, 5, 8 points for rounds 1-4
	WeightsGeometric 2^(r-1) points in round r

A Scorer uses one scheme for its totals, breakdowns, and leaderboard scores.
Missing results and unpicked matchups contribute zero; they are not errors.

# Leaderboard

Assemble sorts by score descending and name ascending:

	board := bracket.NewLeaderboard(bracket.WithPolicy(bracket.RankSequential)).Assemble(scores)
	rank := bracket.RankOf(board, participantID) // 0 when absent

RankSequential gives tied scores distinct consecutive ranks. RankCompetition
shares the rank and skips the next ones.

# Cohort Statistics

RoundAccuracy and VoteCounts only consider finalized brackets. RoundAccuracy
always reports rounds 1 through TrackedRounds.

# Errors

The engine degrades to empty or zero results instead of failing. The only
reported condition is ErrNoActiveSeason from ActiveSeason.
*/
package bracket
