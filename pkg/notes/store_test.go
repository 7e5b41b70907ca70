package notes_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	// Packages
	notes "github.com/mutablelogic/go-devhelper/pkg/notes"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// stores returns each store implementation, fresh
func stores(t *testing.T) map[string]notes.Store {
	bolt, err := notes.NewBoltStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { bolt.Close() })
	return map[string]notes.Store{
		"memory": notes.NewMemoryStore(),
		"bolt":   bolt,
	}
}

func Test_store_001(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			ctx := context.Background()

			// Empty store lists nothing
			list, err := store.List(ctx)
			assert.NoError(err)
			assert.Empty(list)

			// Insertion order is kept
			assert.NoError(store.Append(ctx, "x"))
			assert.NoError(store.Append(ctx, "y"))
			list, err = store.List(ctx)
			assert.NoError(err)
			assert.Equal([]string{"x", "y"}, list)
		})
	}
}

func Test_store_002(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			ctx := context.Background()

			// Concurrent appends are all kept
			var wg sync.WaitGroup
			for i := range 50 {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					assert.NoError(store.Append(ctx, fmt.Sprint("note ", i)))
				}(i)
			}
			wg.Wait()

			list, err := store.List(ctx)
			assert.NoError(err)
			assert.Len(list, 50)
		})
	}
}

func Test_store_003(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "notes.db")
	ctx := context.Background()

	// The bolt store survives a reopen
	store, err := notes.NewBoltStore(path)
	require.NoError(t, err)
	assert.NoError(store.Append(ctx, "the deploy key rotates monthly"))
	assert.NoError(store.Close())

	store, err = notes.NewBoltStore(path)
	require.NoError(t, err)
	defer store.Close()
	list, err := store.List(ctx)
	assert.NoError(err)
	assert.Equal([]string{"the deploy key rotates monthly"}, list)
}

func Test_store_004(t *testing.T) {
	assert := assert.New(t)

	// A cancelled context is refused by the bolt store
	store, err := notes.NewBoltStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(store.Append(ctx, "x"), context.Canceled)
}
