// Package fs implements core.Store on top of flat files: one file per
// collection, rewritten wholesale and atomically on every save.
package fs

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/launchdeck/pkg/core"
)

// Config holds the configuration for a file-backed collection.
type Config struct {
	Dir        string      // Directory holding the collection file.
	Collection string      // File stem, e.g. "notes".
	Ext        string      // ".json" (default), ".yaml" or ".yml".
	Strict     bool        // Reject unknown fields when parsing.
	ReadOnly   bool        // Save returns core.ErrReadOnly.
	Perm       os.FileMode // Defaults to 0644.
	Logger     *slog.Logger
}

// Store implements core.Store using a single file.
type Store[R any] struct {
	Path       string
	config     Config
	serializer Serializer[R]

	mu        sync.RWMutex
	lastWrite [sha256.Size]byte
	saves     int
	watching  bool
}

// NewStore creates a new file-backed store.
func NewStore[R any](config Config) (*Store[R], error) {
	if config.Collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if config.Ext == "" {
		config.Ext = ".json"
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	serializer, ok := DefaultSerializers[R](config.Strict)[config.Ext]
	if !ok {
		return nil, fmt.Errorf("unsupported collection format: %s", config.Ext)
	}

	return &Store[R]{
		Path:       filepath.Join(config.Dir, config.Collection+config.Ext),
		config:     config,
		serializer: serializer,
	}, nil
}

// Load reads and parses the whole collection file.
// A missing file is an empty collection.
func (s *Store[R]) Load(ctx context.Context) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s: %v", core.ErrIO, s.Path, err)
	}

	records, err := s.serializer.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrParse, s.Path, err)
	}
	return records, nil
}

// Save serializes the collection and atomically replaces the file.
//
// Workflow:
//  1. Refuse in read-only mode.
//  2. Create the parent directory on first write.
//  3. Serialize and write through a temp file + rename.
func (s *Store[R]) Save(ctx context.Context, records []R) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.config.ReadOnly {
		return fmt.Errorf("%w: %w", core.ErrIO, core.ErrReadOnly)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create directories: %v", core.ErrIO, err)
	}

	data, err := s.serializer.Serialize(records)
	if err != nil {
		return fmt.Errorf("%w: failed to serialize %s: %v", core.ErrIO, s.config.Collection, err)
	}

	// Record the digest first so the watcher can recognise our own write.
	s.mu.Lock()
	s.lastWrite = sha256.Sum256(data)
	s.saves++
	s.mu.Unlock()

	if err := writeFileAtomic(s.Path, data, s.config.Perm); err != nil {
		return fmt.Errorf("%w: %v", core.ErrIO, err)
	}

	s.config.Logger.Debug("collection saved", "path", s.Path, "records", len(records), "bytes", len(data))
	return nil
}

// isOwnWrite reports whether data is exactly what this store last wrote.
func (s *Store[R]) isOwnWrite(data []byte) bool {
	sum := sha256.Sum256(data)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves > 0 && sum == s.lastWrite
}

var _ core.Store[core.Note] = (*Store[core.Note])(nil)
var _ core.Watchable = (*Store[core.Note])(nil)
