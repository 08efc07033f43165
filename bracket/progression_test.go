// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/danielhkuo/song-bracket/models"
)

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

func TestValidOptionsRoundOne(t *testing.T) {
	matchups := eightSongSeason()
	m := matchupByID(matchups, "r1m1")

	tests := []struct {
		name  string
		picks []models.Pick
	}{
		{name: "no picks"},
		{name: "pick on this matchup", picks: []models.Pick{pick("b1", "r1m1", "B")}},
		{name: "picks elsewhere", picks: []models.Pick{pick("b1", "r1m2", "C"), pick("b1", "r2m1", "C")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidOptions(m, matchups, tt.picks)
			if diff := cmp.Diff([]string{"A", "B"}, got, sortStrings); diff != "" {
				t.Errorf("ValidOptions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidOptionsRoundOneSkipsEmptySlots(t *testing.T) {
	m := models.Matchup{ID: "bye", SeasonID: "s1", Round: 1, MatchupNumber: 1, Song1ID: strPtr("A")}

	got := ValidOptions(m, []models.Matchup{m}, nil)
	if diff := cmp.Diff([]string{"A"}, got); diff != "" {
		t.Errorf("ValidOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidOptionsLaterRounds(t *testing.T) {
	matchups := eightSongSeason()

	tests := []struct {
		name    string
		matchup string
		picks   []models.Pick
		want    []string
	}{
		{
			name:    "both feeders picked",
			matchup: "r2m1",
			picks:   []models.Pick{pick("b1", "r1m1", "A"), pick("b1", "r1m2", "D")},
			want:    []string{"A", "D"},
		},
		{
			name:    "one feeder picked",
			matchup: "r2m1",
			picks:   []models.Pick{pick("b1", "r1m2", "C")},
			want:    []string{"C"},
		},
		{
			name:    "no feeder picked",
			matchup: "r2m2",
			picks:   []models.Pick{pick("b1", "r1m1", "A"), pick("b1", "r1m2", "D")},
			want:    []string{},
		},
		{
			name:    "duplicate feeder picks coalesce",
			matchup: "r2m1",
			picks:   []models.Pick{pick("b1", "r1m1", "A"), pick("b1", "r1m2", "A")},
			want:    []string{"A"},
		},
		{
			name:    "round three follows round two picks",
			matchup: "r3m1",
			picks: []models.Pick{
				pick("b1", "r1m1", "A"), pick("b1", "r1m2", "D"),
				pick("b1", "r1m3", "E"), pick("b1", "r1m4", "H"),
				pick("b1", "r2m1", "D"), pick("b1", "r2m2", "E"),
			},
			want: []string{"D", "E"},
		},
		{
			name:    "master results are ignored",
			matchup: "r3m1",
			picks:   []models.Pick{pick("b1", "r2m1", "B")},
			want:    []string{"B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidOptions(matchupByID(matchups, tt.matchup), matchups, tt.picks)
			if got == nil {
				t.Fatal("ValidOptions() returned nil, want empty slice")
			}
			if diff := cmp.Diff(tt.want, got, sortStrings); diff != "" {
				t.Errorf("ValidOptions() mismatch (-want +got):\n%s", diff)
			}

			// Every option must come from a feeder pick.
			tree := NewTree(matchups)
			feederPicks := map[string]bool{}
			for _, p := range tt.picks {
				if slices.Contains(tree.Feeders(matchupByID(matchups, tt.matchup)), p.MatchupID) {
					feederPicks[p.PickedSongID] = true
				}
			}
			for _, option := range got {
				if !feederPicks[option] {
					t.Errorf("option %s is not a feeder pick", option)
				}
			}
		})
	}
}

func TestValidOptionsStaysInsideSeason(t *testing.T) {
	matchups := append(eightSongSeason(),
		models.Matchup{ID: "other-r1m1", SeasonID: "s2", Round: 1, MatchupNumber: 1, Song1ID: strPtr("X"), Song2ID: strPtr("Y")},
		models.Matchup{ID: "other-r2m1", SeasonID: "s2", Round: 2, MatchupNumber: 1},
	)

	picks := []models.Pick{pick("b1", "r1m1", "A"), pick("b2", "other-r1m1", "X")}

	got := ValidOptions(matchupByID(matchups, "other-r2m1"), matchups, picks)
	if diff := cmp.Diff([]string{"X"}, got); diff != "" {
		t.Errorf("ValidOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeFeeders(t *testing.T) {
	matchups := eightSongSeason()
	tree := NewTree(matchups)

	tests := []struct {
		matchup string
		want    []string
	}{
		{"r1m3", nil},
		{"r2m1", []string{"r1m1", "r1m2"}},
		{"r2m2", []string{"r1m3", "r1m4"}},
		{"r3m1", []string{"r2m1", "r2m2"}},
	}

	for _, tt := range tests {
		t.Run(tt.matchup, func(t *testing.T) {
			got := tree.Feeders(matchupByID(matchups, tt.matchup))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Feeders() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithFeedersOverridesPositions(t *testing.T) {
	// Three-song bracket: r1m1 plays A-B, C gets a bye straight to the final.
	matchups := []models.Matchup{
		{ID: "semi", SeasonID: "s1", Round: 1, MatchupNumber: 1, Song1ID: strPtr("A"), Song2ID: strPtr("B")},
		{ID: "bye", SeasonID: "s1", Round: 1, MatchupNumber: 2, Song1ID: strPtr("C")},
		{ID: "final", SeasonID: "s1", Round: 2, MatchupNumber: 1},
	}
	edges := map[string][]string{"final": {"bye", "semi"}}
	tree := NewTree(matchups, WithFeeders(edges))

	// Mutating the caller's table must not affect the tree.
	edges["final"][0] = "semi"

	picks := []models.Pick{pick("b1", "semi", "B"), pick("b1", "bye", "C")}
	got := tree.ValidOptions(matchupByID(matchups, "final"), picks)
	if diff := cmp.Diff([]string{"C", "B"}, got); diff != "" {
		t.Errorf("ValidOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestCanPick(t *testing.T) {
	matchups := eightSongSeason()
	picks := []models.Pick{pick("b1", "r1m1", "A"), pick("b1", "r1m2", "D")}
	final := matchupByID(matchups, "r2m1")

	if !CanPick(final, "A", matchups, picks) {
		t.Error("expected A to be pickable")
	}
	if !CanPick(final, "D", matchups, picks) {
		t.Error("expected D to be pickable")
	}
	if CanPick(final, "B", matchups, picks) {
		t.Error("B lost in the participant's bracket and should not be pickable")
	}
}

func TestValidOptionsIsIdempotent(t *testing.T) {
	matchups := eightSongSeason()
	picks := []models.Pick{pick("b1", "r1m1", "A"), pick("b1", "r1m2", "D")}
	tree := NewTree(matchups)
	m := matchupByID(matchups, "r2m1")

	first := tree.ValidOptions(m, picks)
	second := tree.ValidOptions(m, picks)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated ValidOptions() differ (-first +second):\n%s", diff)
	}
}
