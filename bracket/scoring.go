// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielhkuo/song-bracket/models"
)

var ErrUnknownWeights = errors.New("unknown scoring weights")

// Weights assigns points to a correct pick by round.
type Weights struct {
	name   string
	points func(round int) int
}

var (
	// WeightsTable awards 1, 3, 5 and 8 points for rounds 1 through 4.
	// Rounds outside the table are worth nothing.
	WeightsTable = Weights{name: models.WeightsTable, points: tablePoints}

	// WeightsGeometric awards 2^(r-1) points in round r.
	WeightsGeometric = Weights{name: models.WeightsGeometric, points: geometricPoints}

	DefaultWeights = WeightsTable
)

var roundTable = map[int]int{1: 1, 2: 3, 3: 5, 4: 8}

func tablePoints(round int) int {
	return roundTable[round]
}

func geometricPoints(round int) int {
	// Keep the shift well inside int range.
	if round < 1 || round > 31 {
		return 0
	}
	return 1 << (round - 1)
}

func (w Weights) Name() string {
	return w.name
}

// Points returns the value of one correct pick in round.
func (w Weights) Points(round int) int {
	if w.points == nil {
		return DefaultWeights.points(round)
	}
	return w.points(round)
}

// ParseWeights maps a configured scheme name to its Weights.
func ParseWeights(name string) (Weights, error) {
	switch name {
	case models.WeightsTable:
		return WeightsTable, nil
	case models.WeightsGeometric:
		return WeightsGeometric, nil
	}
	return Weights{}, fmt.Errorf("%w: %q", ErrUnknownWeights, name)
}

// Scorer applies one weighting scheme to every total, breakdown, and
// leaderboard score it produces.
type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

func (s *Scorer) Weights() Weights {
	return s.weights
}

// Score sums the round weight of every pick that matches its matchup's
// master result. Picks without a result, or on unknown matchups, add nothing.
func (s *Scorer) Score(picks []models.Pick, results []models.MasterResult, matchups []models.Matchup) int {
	return total(s.Breakdown(picks, results, matchups))
}

// Breakdown reports correct picks and points per round, ascending by round.
// Only rounds in which the participant has a pick on a known matchup appear.
func (s *Scorer) Breakdown(picks []models.Pick, results []models.MasterResult, matchups []models.Matchup) []models.RoundScore {
	return s.breakdown(picks, winnerIndex(results), roundIndex(matchups))
}

// breakdown scores picks against prebuilt matchup → winner and matchup → round indexes.
func (s *Scorer) breakdown(picks []models.Pick, winners map[string]string, rounds map[string]int) []models.RoundScore {
	byRound := make(map[int]*models.RoundScore)
	for _, p := range picks {
		round, ok := rounds[p.MatchupID]
		if !ok {
			continue
		}

		rs, ok := byRound[round]
		if !ok {
			rs = &models.RoundScore{Round: round}
			byRound[round] = rs
		}

		if winner, ok := winners[p.MatchupID]; ok && winner == p.PickedSongID {
			rs.Correct++
			rs.Points += s.weights.Points(round)
		}
	}

	breakdown := make([]models.RoundScore, 0, len(byRound))
	for _, rs := range byRound {
		breakdown = append(breakdown, *rs)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Round < breakdown[j].Round
	})

	return breakdown
}

// ScoreBrackets scores every bracket regardless of its finalized flag.
// names maps participant id to display name; missing names fall back to the id.
func (s *Scorer) ScoreBrackets(brackets []models.Bracket, picks []models.Pick, results []models.MasterResult, matchups []models.Matchup, names map[string]string) []models.ParticipantScore {
	byBracket := make(map[string][]models.Pick)
	for _, p := range picks {
		byBracket[p.BracketID] = append(byBracket[p.BracketID], p)
	}

	winners := winnerIndex(results)
	rounds := roundIndex(matchups)

	scores := make([]models.ParticipantScore, 0, len(brackets))
	for _, b := range brackets {
		name, ok := names[b.ParticipantID]
		if !ok || name == "" {
			name = b.ParticipantID
		}
		scores = append(scores, models.ParticipantScore{
			ParticipantID: b.ParticipantID,
			Name:          name,
			Score:         total(s.breakdown(byBracket[b.ID], winners, rounds)),
		})
	}

	return scores
}

func total(breakdown []models.RoundScore) int {
	sum := 0
	for _, rs := range breakdown {
		sum += rs.Points
	}
	return sum
}

// Score scores picks with DefaultWeights.
func Score(picks []models.Pick, results []models.MasterResult, matchups []models.Matchup) int {
	return NewScorer(DefaultWeights).Score(picks, results, matchups)
}

// Breakdown reports the per-round score with DefaultWeights.
func Breakdown(picks []models.Pick, results []models.MasterResult, matchups []models.Matchup) []models.RoundScore {
	return NewScorer(DefaultWeights).Breakdown(picks, results, matchups)
}

// winnerIndex maps matchup id to winning song id.
func winnerIndex(results []models.MasterResult) map[string]string {
	winners := make(map[string]string, len(results))
	for _, r := range results {
		winners[r.MatchupID] = r.WinnerSongID
	}
	return winners
}

// roundIndex maps matchup id to round.
func roundIndex(matchups []models.Matchup) map[string]int {
	rounds := make(map[string]int, len(matchups))
	for _, m := range matchups {
		rounds[m.ID] = m.Round
	}
	return rounds
}
