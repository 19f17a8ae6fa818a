package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/launchdeck/pkg/adapters/fs"
	"github.com/aretw0/launchdeck/pkg/adapters/sqlite"
	"github.com/aretw0/launchdeck/pkg/core"
	"github.com/aretw0/launchdeck/pkg/launcher"
)

// App bundles the wired services for one data directory.
type App struct {
	DataDir     string
	Backend     string
	Notes       *core.Service[core.Note, int64]
	LaunchItems *core.Service[core.LaunchItem, string]
	Launcher    launcher.Launcher
	Logger      *slog.Logger

	closers []func() error
}

// New wires stores, services and the launcher for dataDir.
//
//	app, err := platform.New("./data", platform.WithBackend("yaml"))
func New(dataDir string, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	// Bypass Safety if:
	// 1. ReadOnly is active (inherently safe)
	// 2. User explicitly disabled DevSafety
	bypassSafety := o.readOnly || !o.devSafety
	useTemp := o.forceTemp || (IsDevRun() && !bypassSafety)
	resolved := ResolveDataDir(dataDir, useTemp)

	if useTemp {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", dataDir, "resolved_path", resolved)
	} else if IsDevRun() && o.readOnly {
		o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
	}

	app := &App{DataDir: resolved, Backend: o.backend, Logger: o.logger}

	noteStore, itemStore := o.noteStore, o.itemStore
	if noteStore == nil || itemStore == nil {
		var err error
		noteStore, itemStore, err = app.openStores(o)
		if err != nil {
			return nil, err
		}
	} else {
		app.Backend = "custom"
	}

	app.Notes = core.NewService(noteStore, core.NoteSchema,
		core.WithClock(o.clock),
		core.WithServiceLogger(o.logger),
	)
	app.LaunchItems = core.NewService(itemStore, core.LaunchItemSchema,
		core.WithServiceLogger(o.logger),
	)

	app.Launcher = o.launcher
	if app.Launcher == nil {
		l, err := launcher.New(launcher.WithAllow(o.allow...), launcher.WithLogger(o.logger))
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Launcher = l
	}

	return app, nil
}

func (a *App) openStores(o *options) (core.Store[core.Note], core.Store[core.LaunchItem], error) {
	switch o.backend {
	case BackendJSON, BackendYAML:
		ext := "." + o.backend
		notes, err := fs.NewStore[core.Note](fs.Config{
			Dir: a.DataDir, Collection: core.CollectionNotes, Ext: ext,
			Strict: o.strict, ReadOnly: o.readOnly, Logger: o.logger,
		})
		if err != nil {
			return nil, nil, err
		}
		items, err := fs.NewStore[core.LaunchItem](fs.Config{
			Dir: a.DataDir, Collection: core.CollectionLaunchItems, Ext: ext,
			Strict: o.strict, ReadOnly: o.readOnly, Logger: o.logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return notes, items, nil
	case BackendSQLite:
		openDB := sqlite.Open
		if o.readOnly {
			openDB = sqlite.OpenReadOnly
		}
		db, err := openDB(a.DataDir)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)
		return sqlite.NewStore[core.Note](db, core.CollectionNotes),
			sqlite.NewStore[core.LaunchItem](db, core.CollectionLaunchItems), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", o.backend)
	}
}

// Close releases backend resources.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Components returns the introspectable parts of the app keyed by name.
func (a *App) Components() map[string]introspection.Introspectable {
	components := map[string]introspection.Introspectable{
		core.CollectionNotes:       a.Notes,
		core.CollectionLaunchItems: a.LaunchItems,
	}
	if l, ok := a.Launcher.(introspection.Introspectable); ok {
		components["launcher"] = l
	}
	return components
}

// Watch merges change events from every collection whose store supports
// watching. The channel closes once ctx is done and all watchers exit.
func (a *App) Watch(ctx context.Context) (<-chan core.Event, error) {
	sources := []func(context.Context) (<-chan core.Event, error){
		a.Notes.Watch,
		a.LaunchItems.Watch,
	}

	out := make(chan core.Event)
	var wg sync.WaitGroup
	for _, watch := range sources {
		events, err := watch(ctx)
		if err != nil {
			a.Logger.Debug("collection not watchable", "error", err)
			continue
		}
		wg.Go(func() {
			for e := range events {
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out, nil
}
