// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

const VotesSheet = "Votes"

// WriteVotesXLSX writes the vote table as a single-sheet workbook.
func WriteVotesXLSX(w io.Writer, rows []VoteRow) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", VotesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(VotesHeader))
	for i, h := range VotesHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(VotesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		record := []interface{}{r.Matchup, r.SongA, r.VotesA, r.SongB, r.VotesB}
		if err := f.SetSheetRow(VotesSheet, cell, &record); err != nil {
			return fmt.Errorf("failed to write row %q: %w", r.Matchup, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
