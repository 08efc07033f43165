// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"github.com/danielhkuo/song-bracket/models"
)

func strPtr(s string) *string {
	return &s
}

// eightSongSeason builds a three-round season:
//
//	round 1: r1m1 A-B, r1m2 C-D, r1m3 E-F, r1m4 G-H
//	round 2: r2m1 (r1m1, r1m2), r2m2 (r1m3, r1m4)
//	round 3: r3m1 (r2m1, r2m2)
func eightSongSeason() []models.Matchup {
	return []models.Matchup{
		{ID: "r1m1", SeasonID: "s1", Round: 1, MatchupNumber: 1, Song1ID: strPtr("A"), Song2ID: strPtr("B")},
		{ID: "r1m2", SeasonID: "s1", Round: 1, MatchupNumber: 2, Song1ID: strPtr("C"), Song2ID: strPtr("D")},
		{ID: "r1m3", SeasonID: "s1", Round: 1, MatchupNumber: 3, Song1ID: strPtr("E"), Song2ID: strPtr("F")},
		{ID: "r1m4", SeasonID: "s1", Round: 1, MatchupNumber: 4, Song1ID: strPtr("G"), Song2ID: strPtr("H")},
		{ID: "r2m1", SeasonID: "s1", Round: 2, MatchupNumber: 1},
		{ID: "r2m2", SeasonID: "s1", Round: 2, MatchupNumber: 2},
		{ID: "r3m1", SeasonID: "s1", Round: 3, MatchupNumber: 1},
	}
}

func matchupByID(matchups []models.Matchup, id string) models.Matchup {
	for _, m := range matchups {
		if m.ID == id {
			return m
		}
	}
	panic("no matchup " + id)
}

func pick(bracketID, matchupID, songID string) models.Pick {
	return models.Pick{
		ID:           bracketID + "-" + matchupID,
		BracketID:    bracketID,
		MatchupID:    matchupID,
		PickedSongID: songID,
	}
}

func result(matchupID, winner string) models.MasterResult {
	return models.MasterResult{
		ID:           "res-" + matchupID,
		SeasonID:     "s1",
		MatchupID:    matchupID,
		WinnerSongID: winner,
	}
}
