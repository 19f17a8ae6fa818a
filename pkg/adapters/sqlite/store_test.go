package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/launchdeck/pkg/adapters/sqlite"
	"github.com/aretw0/launchdeck/pkg/core"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStore_EmptyCollection(t *testing.T) {
	store := sqlite.NewStore[core.Note](openDB(t), core.CollectionNotes)

	notes, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestStore_SaveReplacesCollection(t *testing.T) {
	db := openDB(t)
	items := sqlite.NewStore[core.LaunchItem](db, core.CollectionLaunchItems)
	notes := sqlite.NewStore[core.Note](db, core.CollectionNotes)
	ctx := context.Background()

	first := []core.LaunchItem{
		{ID: "a", Name: "A", Type: "app", Path: "/a"},
		{ID: "b", Name: "B", Type: "folder", Path: "/b"},
	}
	require.NoError(t, items.Save(ctx, first))
	require.NoError(t, items.Save(ctx, first[1:]))

	loaded, err := items.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first[1:], loaded)

	// Collections are independent rows.
	other, err := notes.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_WithService(t *testing.T) {
	db := openDB(t)
	items := core.NewService(sqlite.NewStore[core.LaunchItem](db, core.CollectionLaunchItems), core.LaunchItemSchema)
	ctx := context.Background()

	chrome := core.LaunchItem{ID: "chrome", Name: "Chrome", Type: "app", Path: "/Applications/Chrome.app"}
	_, err := items.Create(ctx, chrome)
	require.NoError(t, err)

	_, err = items.Create(ctx, chrome)
	assert.ErrorIs(t, err, core.ErrConflict)

	list, err := items.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []core.LaunchItem{chrome}, list)
	assert.Equal(t, "sqlite", items.State().(core.ServiceState).StoreType)
}

func TestOpenReadOnly_MissingDatabaseWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	db, err := sqlite.OpenReadOnly(dir)
	require.NoError(t, err)
	defer db.Close()

	notes := sqlite.NewStore[core.Note](db, core.CollectionNotes)
	loaded, err := notes.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)

	err = notes.Save(context.Background(), []core.Note{{ID: 1, Title: "A", Content: "B"}})
	assert.ErrorIs(t, err, core.ErrReadOnly)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "read-only open must not create the data directory")
}

func TestOpenReadOnly_ExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	rw, err := sqlite.Open(dir)
	require.NoError(t, err)
	items := []core.LaunchItem{{ID: "a", Name: "A", Type: "app", Path: "/a"}}
	require.NoError(t, sqlite.NewStore[core.LaunchItem](rw, core.CollectionLaunchItems).Save(context.Background(), items))
	require.NoError(t, rw.Close())

	before, err := os.ReadFile(filepath.Join(dir, sqlite.DefaultFileName))
	require.NoError(t, err)

	ro, err := sqlite.OpenReadOnly(dir)
	require.NoError(t, err)
	store := sqlite.NewStore[core.LaunchItem](ro, core.CollectionLaunchItems)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
	assert.ErrorIs(t, store.Save(context.Background(), nil), core.ErrReadOnly)
	require.NoError(t, ro.Close())

	after, err := os.ReadFile(filepath.Join(dir, sqlite.DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
