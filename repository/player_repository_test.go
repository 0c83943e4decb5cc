package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atleti-backend/model"
)

func TestPlayerSetDocOnlyPatchedFields(t *testing.T) {
	season := "2025-2026"
	goals := 9

	set := playerSetDoc(model.PlayerPatch{
		Season: &season,
		Stats:  &model.PlayerStats{Goals: &goals},
	})

	assert.Equal(t, "2025-2026", set["season"])
	assert.Contains(t, set, "updatedAt")
	assert.Len(t, set, 3)

	stats := set["stats"].(model.PlayerStats)
	require.NotNil(t, stats.Goals)
	assert.Equal(t, 9, *stats.Goals)
	assert.Nil(t, stats.Assists)
}

func TestPlayerSetDocEmptyPatchBumpsTimestampOnly(t *testing.T) {
	set := playerSetDoc(model.PlayerPatch{})

	assert.Len(t, set, 1)
	assert.Contains(t, set, "updatedAt")
}

func TestPlayerInvalidIDShortCircuits(t *testing.T) {
	r := &mongoPlayerRepository{}
	ctx := context.Background()

	_, err := r.Get(ctx, "definitely-not-an-oid")
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.Update(ctx, "definitely-not-an-oid", model.PlayerPatch{})
	assert.ErrorIs(t, err, ErrNoDocument)

	_, err = r.Delete(ctx, "definitely-not-an-oid")
	assert.ErrorIs(t, err, ErrNoDocument)
}
