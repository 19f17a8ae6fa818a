package launchdeck

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/launchdeck/internal/api"
	"github.com/aretw0/launchdeck/internal/platform"
	"github.com/aretw0/launchdeck/pkg/core"
	"github.com/aretw0/launchdeck/pkg/launcher"
)

// --- Types ---

// Note is a public alias for core.Note.
type Note = core.Note

// NotePatch is a public alias for core.NotePatch.
type NotePatch = core.NotePatch

// LaunchItem is a public alias for core.LaunchItem.
type LaunchItem = core.LaunchItem

// LaunchItemPatch is a public alias for core.LaunchItemPatch.
type LaunchItemPatch = core.LaunchItemPatch

// App is the wired set of services for one data directory.
type App = platform.App

// --- Configuration ---

// Option defines a functional option for configuring launchdeck.
type Option = platform.Option

// WithBackend selects the storage backend: "json", "yaml" or "sqlite".
func WithBackend(name string) Option {
	return platform.WithBackend(name)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock overrides the time source used for note ids and timestamps.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithLauncher injects a custom launcher.
func WithLauncher(l launcher.Launcher) Option {
	return platform.WithLauncher(l)
}

// WithLaunchAllow restricts launches to paths matching the glob patterns.
func WithLaunchAllow(patterns ...string) Option {
	return platform.WithLaunchAllow(patterns...)
}

// WithStores allows injecting custom storage adapters.
func WithStores(notes core.Store[Note], items core.Store[LaunchItem]) Option {
	return platform.WithStores(notes, items)
}

// WithStrict rejects unknown fields in collection files.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithReadOnly opens the collections without allowing writes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the temp-dir sandbox applied under `go run`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New wires the services for dataDir.
func New(dataDir string, opts ...Option) (*App, error) {
	return platform.New(dataDir, opts...)
}

// Handler returns the REST API for app, allowing the given CORS origins.
func Handler(app *App, origins ...string) http.Handler {
	return api.NewHandler(app.Notes, app.LaunchItems, app.Launcher, api.Config{
		AllowedOrigins: origins,
		Logger:         app.Logger,
		Components:     app.Components(),
	})
}
