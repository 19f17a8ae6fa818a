package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/launchdeck/pkg/adapters/memory"
	"github.com/aretw0/launchdeck/pkg/core"
)

func TestStore_EmptyLoadIsNotNil(t *testing.T) {
	store := memory.NewStore[core.Note]()

	notes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestStore_LoadReturnsACopy(t *testing.T) {
	seed := core.LaunchItem{ID: "a", Name: "A", Type: "app", Path: "/a"}
	store := memory.NewStore(seed)
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	loaded[0].Name = "changed"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.LaunchItem{seed}, again)
}

func TestStore_SaveKeepsACopy(t *testing.T) {
	store := memory.NewStore[core.LaunchItem]()
	ctx := context.Background()

	records := []core.LaunchItem{{ID: "a", Name: "A", Type: "app", Path: "/a"}}
	require.NoError(t, store.Save(ctx, records))
	records[0].Name = "changed"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", loaded[0].Name)
	assert.Equal(t, 1, store.Saves())
}

func TestStore_CancelledContext(t *testing.T) {
	store := memory.NewStore[core.Note]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, nil), context.Canceled)
	assert.Zero(t, store.Saves())
}
