// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"slices"

	"github.com/danielhkuo/song-bracket/models"
)

// position locates a matchup inside a season's tree.
type position struct {
	seasonID string
	round    int
	number   int
}

// Tree indexes a season's matchups and the feeder edges between rounds.
// A Tree is read-only after construction and safe for concurrent use.
type Tree struct {
	byPosition map[position]string
	feeders    map[string][]string
}

type TreeOption func(*Tree)

// WithFeeders replaces the positional feeder edges of the listed matchups.
// Use it for brackets that are not perfectly balanced.
func WithFeeders(edges map[string][]string) TreeOption {
	return func(t *Tree) {
		for matchupID, feeders := range edges {
			t.feeders[matchupID] = slices.Clone(feeders)
		}
	}
}

// NewTree builds the feeder table for the given matchups. Matchup m of round r
// is fed by matchups 2m-1 and 2m of round r-1 in the same season.
func NewTree(matchups []models.Matchup, opts ...TreeOption) *Tree {
	t := &Tree{
		byPosition: make(map[position]string, len(matchups)),
		feeders:    make(map[string][]string),
	}

	for _, m := range matchups {
		t.byPosition[position{m.SeasonID, m.Round, m.MatchupNumber}] = m.ID
	}

	for _, m := range matchups {
		if m.Round <= 1 {
			continue
		}
		if edges := t.positionalFeeders(m); len(edges) > 0 {
			t.feeders[m.ID] = edges
		}
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Tree) positionalFeeders(m models.Matchup) []string {
	var edges []string
	for _, n := range []int{2*m.MatchupNumber - 1, 2 * m.MatchupNumber} {
		if id, ok := t.byPosition[position{m.SeasonID, m.Round - 1, n}]; ok {
			edges = append(edges, id)
		}
	}
	return edges
}

// Feeders returns the ids of the matchups whose winners meet in m.
// Round-1 matchups have no feeders.
func (t *Tree) Feeders(m models.Matchup) []string {
	if m.Round <= 1 {
		return nil
	}
	if edges, ok := t.feeders[m.ID]; ok {
		return slices.Clone(edges)
	}
	return t.positionalFeeders(m)
}

// ValidOptions returns the song ids a participant may pick for m right now.
//
// Round-1 matchups offer their fixed songs. Later rounds offer whatever the
// participant picked in each feeder matchup; an empty result means the
// matchup is not choosable yet.
func (t *Tree) ValidOptions(m models.Matchup, picks []models.Pick) []string {
	options := []string{}

	if m.Round <= 1 {
		for _, slot := range []*string{m.Song1ID, m.Song2ID} {
			if slot != nil && *slot != "" && !slices.Contains(options, *slot) {
				options = append(options, *slot)
			}
		}
		return options
	}

	picked := make(map[string]string, len(picks))
	for _, p := range picks {
		picked[p.MatchupID] = p.PickedSongID
	}

	for _, feederID := range t.Feeders(m) {
		songID, ok := picked[feederID]
		if !ok || songID == "" || slices.Contains(options, songID) {
			continue
		}
		options = append(options, songID)
	}

	return options
}

// CanPick reports whether songID is currently a legal pick for m.
func (t *Tree) CanPick(m models.Matchup, songID string, picks []models.Pick) bool {
	return slices.Contains(t.ValidOptions(m, picks), songID)
}

// ValidOptions resolves legal options for m against a positional tree built
// from allMatchups.
func ValidOptions(m models.Matchup, allMatchups []models.Matchup, picks []models.Pick) []string {
	return NewTree(allMatchups).ValidOptions(m, picks)
}

func CanPick(m models.Matchup, songID string, allMatchups []models.Matchup, picks []models.Pick) bool {
	return NewTree(allMatchups).CanPick(m, songID, picks)
}
