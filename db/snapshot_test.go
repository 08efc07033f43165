// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/song-bracket/db"
	"github.com/danielhkuo/song-bracket/testutil"
)

func TestOpen_UnknownType(t *testing.T) {
	_, err := db.Open("mysql", "root@/bracket")
	require.ErrorIs(t, err, db.ErrUnknownDatabaseType)
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// SetupTestDB already created it once
	require.NoError(t, db.CreateSchema(conn))
}

func TestLoadSnapshot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, conn)

	// Records of another season stay out of the snapshot
	other := testutil.CreateTestSeason(t, conn, "Fall Faceoff", false)
	otherSong := testutil.CreateTestSong(t, conn, other, "Toxic", "Britney Spears")
	testutil.CreateTestMatchup(t, conn, other, 1, 1, otherSong, "")

	snap, err := db.LoadSnapshot(context.Background(), conn, seed.SeasonID)
	require.NoError(t, err)

	assert.Len(t, snap.Seasons, 2, "every season is loaded for active resolution")
	assert.Len(t, snap.Participants, 3)
	assert.Len(t, snap.Songs, 4)
	assert.Len(t, snap.Brackets, 3)
	assert.Len(t, snap.Picks, 9)
	assert.Len(t, snap.Results, 3)

	require.Len(t, snap.Matchups, 3)
	assert.Equal(t, seed.R1M1, snap.Matchups[0].ID)
	assert.Equal(t, seed.R1M2, snap.Matchups[1].ID)
	assert.Equal(t, seed.Final, snap.Matchups[2].ID)

	require.NotNil(t, snap.Matchups[0].Song1ID)
	assert.Equal(t, seed.SongA, *snap.Matchups[0].Song1ID)
	assert.Nil(t, snap.Matchups[2].Song1ID, "empty slots load as nil")
	assert.Nil(t, snap.Matchups[2].Song2ID)

	active, err := snap.ActiveSeason()
	require.NoError(t, err)
	assert.Equal(t, seed.SeasonID, active.ID)

	b, ok := snap.Bracket(seed.CyBracket)
	require.True(t, ok)
	assert.False(t, b.Finalized)
	assert.Equal(t, "Cy", snap.Names()[seed.Cy])
}

func TestLoadSnapshot_UnknownSeason(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := db.LoadSnapshot(context.Background(), conn, "missing")
	require.ErrorIs(t, err, db.ErrSeasonNotFound)
}

func TestLoadSeasons(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	seasons, err := db.LoadSeasons(context.Background(), conn)
	require.NoError(t, err)
	assert.Empty(t, seasons)

	testutil.CreateTestSeason(t, conn, "Spring Showdown", true)
	seasons, err = db.LoadSeasons(context.Background(), conn)
	require.NoError(t, err)
	require.Len(t, seasons, 1)
	assert.True(t, seasons[0].IsActive)
}

func TestFindBracketSeason(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	seed := testutil.SeedTwoRoundSeason(t, conn)

	seasonID, err := db.FindBracketSeason(context.Background(), conn, seed.AnaBracket)
	require.NoError(t, err)
	assert.Equal(t, seed.SeasonID, seasonID)

	_, err = db.FindBracketSeason(context.Background(), conn, "missing")
	require.ErrorIs(t, err, db.ErrBracketNotFound)
}
