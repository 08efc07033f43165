// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Song Bracket API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Seasons:

	GET /seasons/active                              - Active season
	GET /seasons/{season}/leaderboard                - Ranked participants
	GET /seasons/{season}/leaderboard/{participant}  - One participant's rank
	GET /seasons/{season}/accuracy                   - Cohort accuracy per round
	GET /seasons/{season}/votes                      - Votes per matchup and song

Downloads:

	GET /seasons/{season}/votes.csv       - Vote table as CSV
	GET /seasons/{season}/votes.xlsx      - Vote table as a workbook
	GET /seasons/{season}/leaderboard.csv - Leaderboard as CSV

Brackets:

	GET /brackets/{bracket}/matchups/{matchup}/options - Legal picks
	GET /brackets/{bracket}/score                      - Score breakdown

The API is read-only. Every route except health and root is wrapped with
middleware.WithLogging.
*/
package router
