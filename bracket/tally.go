// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"github.com/danielhkuo/song-bracket/models"
)

// VoteCounts tallies finalized picks as matchup id -> song id -> votes.
func VoteCounts(brackets []models.Bracket, picks []models.Pick) map[string]map[string]int {
	finalized := finalizedSet(brackets)

	counts := make(map[string]map[string]int)
	for _, p := range picks {
		if !finalized[p.BracketID] {
			continue
		}
		songs, ok := counts[p.MatchupID]
		if !ok {
			songs = make(map[string]int)
			counts[p.MatchupID] = songs
		}
		songs[p.PickedSongID]++
	}

	return counts
}
