package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/launchdeck/internal/api"
	"github.com/aretw0/launchdeck/internal/platform"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, app)
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:3001", "listen address")
	serveCmd.Flags().Bool("no-watch", false, "do not watch collection files for external edits")
	rootCmd.AddCommand(serveCmd)
}

// serve runs the HTTP server and the collection watcher until ctx is done.
func serve(ctx context.Context, app *platform.App) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := api.NewHandler(app.Notes, app.LaunchItems, app.Launcher, api.Config{
		AllowedOrigins: cfg.CORS.Origins,
		Logger:         app.Logger,
		Registry:       registry,
		Components:     app.Components(),
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("server listening", "addr", server.Addr, "data_dir", app.DataDir, "backend", app.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		app.Logger.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if cfg.Watch.Enabled {
		events, err := app.Watch(ctx)
		if err != nil {
			return err
		}
		g.Go(func() error {
			for e := range events {
				app.Logger.Info("collection changed on disk", "collection", e.Collection, "event", string(e.Type))
			}
			return nil
		})
	}

	return g.Wait()
}
