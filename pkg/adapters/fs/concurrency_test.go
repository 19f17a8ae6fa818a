package fs_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/launchdeck/pkg/adapters/fs"
	"github.com/aretw0/launchdeck/pkg/core"
)

// TestConcurrentCreatesAreNotLost verifies that the service lock serialises
// load-mutate-save cycles so no concurrent create overwrites another.
func TestConcurrentCreatesAreNotLost(t *testing.T) {
	dir := t.TempDir()
	store, err := fs.NewStore[core.LaunchItem](fs.Config{Dir: dir, Collection: core.CollectionLaunchItems})
	require.NoError(t, err)
	items := core.NewService(store, core.LaunchItemSchema)

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Go(func() {
			_, err := items.Create(context.Background(), core.LaunchItem{
				ID:   fmt.Sprintf("item-%02d", i),
				Name: "Item",
				Type: "app",
				Path: "/bin/true",
			})
			errs <- err
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	all, err := items.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, workers)
}

// TestConcurrentNoteIDsAreUnique checks that assigned ids never collide,
// even when every create observes the same clock reading.
func TestConcurrentNoteIDsAreUnique(t *testing.T) {
	store, _ := setupStore(t)
	notes := core.NewService(store, core.NoteSchema)

	const workers = 20
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			_, err := notes.Create(context.Background(), core.Note{Title: "t", Content: "c"})
			assert.NoError(t, err)
		})
	}
	wg.Wait()

	all, err := notes.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, workers)

	seen := make(map[int64]bool, workers)
	for _, n := range all {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
}
