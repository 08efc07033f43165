// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/danielhkuo/song-bracket/models"
)

var ErrUnknownPolicy = errors.New("unknown ranking policy")

// Policy decides how tied scores are ranked.
type Policy string

const (
	// RankSequential gives every row its own rank, 1..N, even on tied scores.
	RankSequential Policy = models.RankingSequential

	// RankCompetition shares a rank across tied scores and skips the
	// following ranks (1, 1, 3).
	RankCompetition Policy = models.RankingCompetition
)

func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case RankSequential, RankCompetition:
		return Policy(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Leaderboard orders participant scores into ranked entries.
type Leaderboard struct {
	policy    Policy
	collation *language.Tag
}

type LeaderboardOption func(*Leaderboard)

func WithPolicy(p Policy) LeaderboardOption {
	return func(l *Leaderboard) {
		l.policy = p
	}
}

// WithCollation orders tied names by the tag's collation rules instead of
// byte order. Byte order still separates names the collation treats as equal.
func WithCollation(tag language.Tag) LeaderboardOption {
	return func(l *Leaderboard) {
		l.collation = &tag
	}
}

func NewLeaderboard(opts ...LeaderboardOption) *Leaderboard {
	l := &Leaderboard{policy: RankSequential}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Leaderboard) Policy() Policy {
	return l.policy
}

// Assemble sorts scores descending, breaking ties by ascending name, and
// assigns ranks according to the policy. The input slice is not modified.
func (l *Leaderboard) Assemble(scores []models.ParticipantScore) []models.LeaderboardEntry {
	sorted := slices.Clone(scores)

	// Collators keep internal buffers, so each call gets its own.
	var col *collate.Collator
	if l.collation != nil {
		col = collate.New(*l.collation)
	}

	slices.SortStableFunc(sorted, func(a, b models.ParticipantScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if col != nil {
			if c := col.CompareString(a.Name, b.Name); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ParticipantID, b.ParticipantID)
	})

	entries := make([]models.LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		rank := i + 1
		if l.policy == RankCompetition && i > 0 && s.Score == sorted[i-1].Score {
			rank = entries[i-1].Rank
		}
		entries[i] = models.LeaderboardEntry{
			Rank:          rank,
			ParticipantID: s.ParticipantID,
			Name:          s.Name,
			Score:         s.Score,
		}
	}

	return entries
}

// Assemble ranks scores with the sequential policy and byte-order names.
func Assemble(scores []models.ParticipantScore) []models.LeaderboardEntry {
	return NewLeaderboard().Assemble(scores)
}

// RankOf returns the participant's rank on board, or 0 if they are not on it.
func RankOf(board []models.LeaderboardEntry, participantID string) int {
	for _, e := range board {
		if e.ParticipantID == participantID {
			return e.Rank
		}
	}
	return 0
}
