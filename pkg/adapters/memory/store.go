// Package memory provides an in-process core.Store used for tests and for
// embedding the services without touching the filesystem.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/launchdeck/pkg/core"
)

// Store keeps a collection in memory.
type Store[R any] struct {
	mu      sync.RWMutex
	records []R
	saves   int
}

// NewStore creates a store seeded with records.
func NewStore[R any](records ...R) *Store[R] {
	return &Store[R]{records: slices.Clone(records)}
}

// Load implements core.Store.
func (s *Store[R]) Load(ctx context.Context) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.records == nil {
		return []R{}, nil
	}
	return slices.Clone(s.records), nil
}

// Save implements core.Store.
func (s *Store[R]) Save(ctx context.Context, records []R) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
	s.saves++
	return nil
}

// Saves reports how many times Save completed.
func (s *Store[R]) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// ComponentType implements introspection.Component.
func (s *Store[R]) ComponentType() string {
	return "memory"
}

var _ core.Store[core.Note] = (*Store[core.Note])(nil)
