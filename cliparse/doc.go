// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - ScoringWeights: table or geometric (default: table)
  - RankingPolicy: sequential or competition (default: sequential)
  - Collation: BCP 47 tag used to order tied names (default: byte order)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-weights    Round weights
	-ranking    Tie ranking policy
	-collation  Name collation locale
	-env        Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	SCORING_WEIGHTS       → -weights
	RANKING_POLICY        → -ranking
	LEADERBOARD_COLLATION → -collation

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
dotenv file is not an error.

# Validation

ParseFlags returns an error if DATABASE_URL is missing or if any enumerated
setting has an unknown value.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
