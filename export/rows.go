// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/danielhkuo/song-bracket/models"
)

// VotesHeader is the header row of every vote table.
var VotesHeader = []string{"Matchup", "Song A", "Song A Votes", "Song B", "Song B Votes"}

// VoteRow is one matchup of the vote table.
type VoteRow struct {
	Matchup string
	SongA   string
	VotesA  int
	SongB   string
	VotesB  int
}

// SongLabel formats a song as « title » – artist.
func SongLabel(s models.Song) string {
	return "« " + s.Title + " » – " + s.Artist
}

// MatchupLabel names a matchup by its position in the tree.
func MatchupLabel(m models.Matchup) string {
	return fmt.Sprintf("Round %d Matchup %d", m.Round, m.MatchupNumber)
}

// VoteRows builds the vote table ordered by round, then matchup number.
// Matchups missing either song, or naming an unknown song, are skipped.
func VoteRows(matchups []models.Matchup, songs map[string]models.Song, counts map[string]map[string]int) []VoteRow {
	ordered := slices.Clone(matchups)
	slices.SortStableFunc(ordered, func(a, b models.Matchup) int {
		if c := cmp.Compare(a.Round, b.Round); c != 0 {
			return c
		}
		return cmp.Compare(a.MatchupNumber, b.MatchupNumber)
	})

	var rows []VoteRow
	for _, m := range ordered {
		if m.Song1ID == nil || m.Song2ID == nil {
			continue
		}
		songA, okA := songs[*m.Song1ID]
		songB, okB := songs[*m.Song2ID]
		if !okA || !okB {
			continue
		}

		votes := counts[m.ID]
		rows = append(rows, VoteRow{
			Matchup: MatchupLabel(m),
			SongA:   SongLabel(songA),
			VotesA:  votes[songA.ID],
			SongB:   SongLabel(songB),
			VotesB:  votes[songB.ID],
		})
	}

	return rows
}
