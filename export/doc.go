// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package export renders vote tallies and leaderboards as downloadable tables.

# Vote Table

VoteRows turns matchups, songs, and bracket.VoteCounts output into rows
ordered by round and matchup number:

	rows := export.VoteRows(snap.Matchups, snap.SongIndex(), bracket.VoteCounts(snap.Brackets, snap.Picks))

The table can be written as CSV or as an XLSX workbook:

	Matchup,Song A,Song A Votes,Song B,Song B Votes
	Round 1 Matchup 1,« Title » – Artist,3,« Other » – Band,1

Matchups whose song slots are not both filled are left out.

# Leaderboard

WriteLeaderboardCSV adds a human-readable place ("1st", "2nd") next to the
numeric rank.
*/
package export
