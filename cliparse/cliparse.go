package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/danielhkuo/song-bracket/bracket"
	"github.com/danielhkuo/song-bracket/db"
	"github.com/danielhkuo/song-bracket/models"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	ScoringWeights string
	RankingPolicy  string
	Collation      string // BCP 47 tag; empty means byte order
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fset := flag.NewFlagSet("song-bracket", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fset.IntVar(&cfg.Port, "p", 0, "Server port")
	fset.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fset.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Scoring and ranking
	fset.StringVar(&cfg.ScoringWeights, "weights", "", "Round weights (table or geometric)")
	fset.StringVar(&cfg.RankingPolicy, "ranking", "", "Tie ranking policy (sequential or competition)")
	fset.StringVar(&cfg.Collation, "collation", "", "Locale for ordering tied names, e.g. en or sv")

	fset.StringVar(&envFile, "env", ".env", "Dotenv file to load before reading the environment")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}
	if cfg.DatabaseType != db.TypeSQLite && cfg.DatabaseType != db.TypePostgres {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	cfg.ScoringWeights = withEnv(cfg.ScoringWeights, "SCORING_WEIGHTS", models.WeightsTable)
	if _, err := bracket.ParseWeights(cfg.ScoringWeights); err != nil {
		return Config{}, err
	}

	cfg.RankingPolicy = withEnv(cfg.RankingPolicy, "RANKING_POLICY", models.RankingSequential)
	if _, err := bracket.ParsePolicy(cfg.RankingPolicy); err != nil {
		return Config{}, err
	}

	cfg.Collation = withEnv(cfg.Collation, "LEADERBOARD_COLLATION", "")
	if cfg.Collation != "" {
		if _, err := language.Parse(cfg.Collation); err != nil {
			return Config{}, fmt.Errorf("invalid collation %q: %w", cfg.Collation, err)
		}
	}

	return cfg, nil
}

// Scorer builds the scorer for the configured weights.
func (c Config) Scorer() *bracket.Scorer {
	w, err := bracket.ParseWeights(c.ScoringWeights)
	if err != nil {
		w = bracket.DefaultWeights
	}
	return bracket.NewScorer(w)
}

// Leaderboard builds the leaderboard for the configured policy and collation.
func (c Config) Leaderboard() *bracket.Leaderboard {
	policy, err := bracket.ParsePolicy(c.RankingPolicy)
	if err != nil {
		policy = bracket.RankSequential
	}

	opts := []bracket.LeaderboardOption{bracket.WithPolicy(policy)}
	if tag, err := language.Parse(c.Collation); c.Collation != "" && err == nil {
		opts = append(opts, bracket.WithCollation(tag))
	}
	return bracket.NewLeaderboard(opts...)
}

func withEnv(value, key, fallback string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(key); env != "" {
		return env
	}
	return fallback
}
