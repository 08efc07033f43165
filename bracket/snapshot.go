// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bracket

import (
	"errors"

	"github.com/danielhkuo/song-bracket/models"
)

// ErrNoActiveSeason is returned when no season is flagged active.
var ErrNoActiveSeason = errors.New("no active season")

// Snapshot is an immutable set of records handed to the engine by the store.
// Nothing in this package modifies a Snapshot.
type Snapshot struct {
	Seasons      []models.Season
	Participants []models.Participant
	Songs        []models.Song
	Matchups     []models.Matchup
	Brackets     []models.Bracket
	Picks        []models.Pick
	Results      []models.MasterResult
}

// ActiveSeason returns the first season flagged active.
// It returns ErrNoActiveSeason when there is none.
func ActiveSeason(seasons []models.Season) (models.Season, error) {
	for _, s := range seasons {
		if s.IsActive {
			return s, nil
		}
	}
	return models.Season{}, ErrNoActiveSeason
}

// ActiveSeason resolves the active season among the snapshot's seasons.
func (s Snapshot) ActiveSeason() (models.Season, error) {
	return ActiveSeason(s.Seasons)
}

// Season looks up a season by id.
func (s Snapshot) Season(id string) (models.Season, bool) {
	for _, season := range s.Seasons {
		if season.ID == id {
			return season, true
		}
	}
	return models.Season{}, false
}

// Bracket looks up a bracket by id.
func (s Snapshot) Bracket(id string) (models.Bracket, bool) {
	for _, b := range s.Brackets {
		if b.ID == id {
			return b, true
		}
	}
	return models.Bracket{}, false
}

// Matchup looks up a matchup by id.
func (s Snapshot) Matchup(id string) (models.Matchup, bool) {
	for _, m := range s.Matchups {
		if m.ID == id {
			return m, true
		}
	}
	return models.Matchup{}, false
}

// PicksFor returns the picks recorded for one bracket, in snapshot order.
func (s Snapshot) PicksFor(bracketID string) []models.Pick {
	var picks []models.Pick
	for _, p := range s.Picks {
		if p.BracketID == bracketID {
			picks = append(picks, p)
		}
	}
	return picks
}

// SongIndex indexes the snapshot's songs by id.
func (s Snapshot) SongIndex() map[string]models.Song {
	songs := make(map[string]models.Song, len(s.Songs))
	for _, song := range s.Songs {
		songs[song.ID] = song
	}
	return songs
}

// Names maps participant id to display name.
func (s Snapshot) Names() map[string]string {
	names := make(map[string]string, len(s.Participants))
	for _, p := range s.Participants {
		names[p.ID] = p.DisplayName
	}
	return names
}
