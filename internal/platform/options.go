package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/launchdeck/pkg/core"
	"github.com/aretw0/launchdeck/pkg/launcher"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// options holds the internal configuration for the application.
type options struct {
	backend   string
	logger    *slog.Logger
	clock     func() time.Time
	launcher  launcher.Launcher
	allow     []string
	noteStore core.Store[core.Note]
	itemStore core.Store[core.LaunchItem]
	strict    bool
	readOnly  bool
	forceTemp bool
	devSafety bool
}

// Option defines a functional option for configuring the application.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		backend:   BackendJSON,
		clock:     time.Now,
		devSafety: true,
	}
}

// WithBackend selects the storage backend by name ("json", "yaml", "sqlite").
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source for note identifiers.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLauncher injects a launcher instead of the OS one.
func WithLauncher(l launcher.Launcher) Option {
	return func(o *options) {
		o.launcher = l
	}
}

// WithLaunchAllow restricts the OS launcher to paths matching the patterns.
func WithLaunchAllow(patterns ...string) Option {
	return func(o *options) {
		o.allow = append(o.allow, patterns...)
	}
}

// WithStores injects custom stores (e.g. in-memory); the backend is skipped.
func WithStores(notes core.Store[core.Note], items core.Store[core.LaunchItem]) Option {
	return func(o *options) {
		o.noteStore = notes
		o.itemStore = items
	}
}

// WithStrict makes file backends reject unknown fields.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Create, Update and Delete fail with core.ErrReadOnly.
// 2. Dev Safety Lock (go run temp dir) is BYPASSED (uses real path).
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithDevSafety controls the "Sandbox" safety mechanism when running via `go run`.
// By default (true), data is redirected to a temporary directory so a dev
// build never rewrites the real notes.
//
// CAUTION: Only disable this if you are sure your code is safe.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}
