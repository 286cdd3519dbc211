package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/rocketscienceinc/arcade-backend/internal/apperror"
	"github.com/rocketscienceinc/arcade-backend/internal/entity"
	"github.com/rocketscienceinc/arcade-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTurnLog() []entity.TurnLogEntry {
	return []entity.TurnLogEntry{
		{
			HumanChoice:   entity.Cell{Row: 0, Col: 0},
			AIMove:        &entity.Cell{Row: 1, Col: 1},
			DeletingCells: []entity.DecayedCell{},
		},
		{
			HumanChoice:   entity.Cell{Row: 0, Col: 1},
			AIMove:        nil,
			DeletingCells: []entity.DecayedCell{{Row: 3, Col: 3, Player: entity.PlayerHuman}},
		},
	}
}

func testTurnLogStore(ctx context.Context, t *testing.T, store TurnLogStore) {
	t.Helper()

	// Given: a turn log
	log := sampleTurnLog()

	// When: it is stored twice
	first, err := store.Put(ctx, log)
	require.NoError(t, err)

	second, err := store.Put(ctx, sampleTurnLog())
	require.NoError(t, err)

	// Then: the content id is stable and prefixed
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "sha256-"))
	assert.Len(t, first, len("sha256-")+64)

	// Then: it can be read back
	stored, err := store.Get(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, log, stored)

	// Then: a different log gets a different id
	other, err := store.Put(ctx, log[:1])
	require.NoError(t, err)
	assert.NotEqual(t, first, other)

	// Then: unknown ids are not found
	_, err = store.Get(ctx, "sha256-unknown")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestMemoryTurnLogStore(t *testing.T) {
	testTurnLogStore(context.Background(), t, NewMemoryTurnLogStore())
}

func TestRedisTurnLogStore(t *testing.T) {
	ctx, st := suite.New(t)

	testTurnLogStore(ctx, t, NewRedisTurnLogStore(st.Storage))
}

func TestContentID(t *testing.T) {
	// sha256 of the empty input
	assert.Equal(t, "sha256-e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentID(nil))
}
