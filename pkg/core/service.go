package core

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Schema describes one record shape: how to identify, validate and
// (optionally) assign identifiers to its records.
type Schema[R any, K comparable] struct {
	// Kind is the human name used in messages ("note", "launch item").
	Kind string
	// Key extracts the identifier of a record.
	Key func(R) K
	// ParseKey converts boundary input (URL segment, CLI arg) into a key.
	ParseKey func(string) (K, error)
	// Validate reports ErrValidation when required fields are missing.
	Validate func(R) error
	// Assign sets a server generated identifier and timestamps.
	// Nil means identifiers are supplied by the caller.
	Assign func(r R, existing []R, now time.Time) R
}

// Patch merges a partial update into an existing record.
type Patch[R any] interface {
	Apply(R) R
}

// Service handles the CRUD logic for one collection.
type Service[R any, K comparable] struct {
	mu     sync.Mutex
	store  Store[R]
	schema Schema[R, K]
	clock  func() time.Time
	logger *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	clock  func() time.Time
	logger *slog.Logger
}

// WithClock overrides the time source used for assigned identifiers.
func WithClock(clock func() time.Time) ServiceOption {
	return func(o *serviceOptions) {
		o.clock = clock
	}
}

// WithServiceLogger sets the logger for the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// NewService creates a new Service over store.
func NewService[R any, K comparable](store Store[R], schema Schema[R, K], opts ...ServiceOption) *Service[R, K] {
	o := serviceOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Service[R, K]{
		store:  store,
		schema: schema,
		clock:  o.clock,
		logger: o.logger.With("collection", schema.Kind),
	}
}

// Schema returns the record shape the service was built with.
func (s *Service[R, K]) Schema() Schema[R, K] {
	return s.schema
}

// ParseKey converts boundary input into a typed identifier.
func (s *Service[R, K]) ParseKey(raw string) (K, error) {
	return s.schema.ParseKey(raw)
}

// List returns every record in storage order.
func (s *Service[R, K]) List(ctx context.Context) ([]R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// Get retrieves a single record by identifier.
func (s *Service[R, K]) Get(ctx context.Context, id K) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	records, err := s.store.Load(ctx)
	if err != nil {
		return zero, err
	}
	i := s.indexOf(records, id)
	if i == -1 {
		return zero, s.notFound(id)
	}
	return records[i], nil
}

// Create validates r, assigns an identifier when the schema owns them,
// appends it and persists the collection.
func (s *Service[R, K]) Create(ctx context.Context, r R) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	if err := s.schema.Validate(r); err != nil {
		return zero, err
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return zero, err
	}

	if s.schema.Assign != nil {
		r = s.schema.Assign(r, records, s.clock())
	}

	id := s.schema.Key(r)
	if s.indexOf(records, id) != -1 {
		return zero, fmt.Errorf("%w: %s %v", ErrConflict, s.schema.Kind, id)
	}

	records = append(records, r)
	if err := s.store.Save(ctx, records); err != nil {
		return zero, err
	}

	s.logger.Debug("record created", "id", id, "count", len(records))
	return r, nil
}

// Update merges patch over the record identified by id and persists it.
// The identifier itself cannot be changed.
func (s *Service[R, K]) Update(ctx context.Context, id K, patch Patch[R]) (R, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero R
	records, err := s.store.Load(ctx)
	if err != nil {
		return zero, err
	}

	i := s.indexOf(records, id)
	if i == -1 {
		return zero, s.notFound(id)
	}

	updated := patch.Apply(records[i])
	if s.schema.Key(updated) != id {
		return zero, fmt.Errorf("%w: %s id cannot change", ErrValidation, s.schema.Kind)
	}
	if err := s.schema.Validate(updated); err != nil {
		return zero, err
	}

	records[i] = updated
	if err := s.store.Save(ctx, records); err != nil {
		return zero, err
	}

	s.logger.Debug("record updated", "id", id)
	return updated, nil
}

// Delete removes the record identified by id and persists the collection.
func (s *Service[R, K]) Delete(ctx context.Context, id K) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	filtered := slices.DeleteFunc(slices.Clone(records), func(r R) bool {
		return s.schema.Key(r) == id
	})
	if len(filtered) == len(records) {
		return s.notFound(id)
	}

	if err := s.store.Save(ctx, filtered); err != nil {
		return err
	}

	s.logger.Debug("record deleted", "id", id, "count", len(filtered))
	return nil
}

// Watch observes changes in the underlying store if supported.
func (s *Service[R, K]) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, fmt.Errorf("store does not support watching")
	}
	return w.Watch(ctx)
}

func (s *Service[R, K]) indexOf(records []R, id K) int {
	return slices.IndexFunc(records, func(r R) bool {
		return s.schema.Key(r) == id
	})
}

func (s *Service[R, K]) notFound(id K) error {
	return fmt.Errorf("%w: %s %v", ErrNotFound, s.schema.Kind, id)
}
