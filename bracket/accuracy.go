// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"github.com/danielhkuo/song-bracket/models"
)

// TrackedRounds is the tournament depth cohort statistics are reported for.
const TrackedRounds = 4

// RoundAccuracy counts correct and total picks per round across all
// finalized brackets. Rounds 1 through TrackedRounds are always reported, in
// order. Picks on unknown matchups or untracked rounds are dropped.
func RoundAccuracy(brackets []models.Bracket, picks []models.Pick, results []models.MasterResult, matchups []models.Matchup) []models.RoundAccuracy {
	finalized := finalizedSet(brackets)
	winners := winnerIndex(results)
	rounds := roundIndex(matchups)

	stats := make([]models.RoundAccuracy, TrackedRounds)
	for i := range stats {
		stats[i].Round = i + 1
	}

	for _, p := range picks {
		if !finalized[p.BracketID] {
			continue
		}
		round, ok := rounds[p.MatchupID]
		if !ok || round < 1 || round > TrackedRounds {
			continue
		}

		st := &stats[round-1]
		st.Total++
		if winner, ok := winners[p.MatchupID]; ok && winner == p.PickedSongID {
			st.Correct++
		}
	}

	for i := range stats {
		if stats[i].Total > 0 {
			stats[i].Accuracy = float64(stats[i].Correct) / float64(stats[i].Total)
		}
	}

	return stats
}

func finalizedSet(brackets []models.Bracket) map[string]bool {
	set := make(map[string]bool, len(brackets))
	for _, b := range brackets {
		if b.Finalized {
			set[b.ID] = true
		}
	}
	return set
}
