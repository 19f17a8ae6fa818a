package core

import "context"

// Store defines the contract for persisting one whole collection.
// Adhering to this interface keeps the service independent of the
// underlying storage mechanism (flat file, SQLite, memory).
type Store[R any] interface {
	// Load returns the full collection in storage order.
	// A collection whose storage does not exist yet is empty, not an error.
	Load(ctx context.Context) ([]R, error)

	// Save replaces the whole collection. Readers never observe a partial write.
	Save(ctx context.Context, records []R) error
}

// Watchable defines an interface for stores that can report changes made
// outside of the service (e.g. a user editing the JSON file by hand).
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
