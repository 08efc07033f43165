// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/song-bracket/models"
)

var LeaderboardHeader = []string{"Rank", "Place", "Participant", "Points"}

// WriteVotesCSV writes the vote table as comma-separated text with one
// header row. Fields containing delimiters or quotes are quoted.
func WriteVotesCSV(w io.Writer, rows []VoteRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(VotesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Matchup,
			r.SongA,
			strconv.Itoa(r.VotesA),
			r.SongB,
			strconv.Itoa(r.VotesB),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %q: %w", r.Matchup, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteLeaderboardCSV writes ranked entries with an ordinal place column.
func WriteLeaderboardCSV(w io.Writer, board []models.LeaderboardEntry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(LeaderboardHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range board {
		record := []string{
			strconv.Itoa(e.Rank),
			humanize.Ordinal(e.Rank),
			e.Name,
			strconv.Itoa(e.Score),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write entry for %s: %w", e.ParticipantID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
