package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Format        string `json:"format"`
	ReadOnly      bool   `json:"read_only"`
	Strict        bool   `json:"strict"`
	Saves         int    `json:"saves"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store[R]) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.Path,
		Format:        s.config.Ext,
		ReadOnly:      s.config.ReadOnly,
		Strict:        s.config.Strict,
		Saves:         s.saves,
		WatcherActive: s.watching,
	}
}

// ComponentType implements introspection.Component.
func (s *Store[R]) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Store[any])(nil)
var _ introspection.Component = (*Store[any])(nil)
