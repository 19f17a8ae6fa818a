// Package api exposes the launch, launch item and note operations over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/aretw0/introspection"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/launchdeck/pkg/core"
	"github.com/aretw0/launchdeck/pkg/launcher"
)

// NoteService is the note collection.
type NoteService = core.Service[core.Note, int64]

// LaunchItemService is the launch item collection.
type LaunchItemService = core.Service[core.LaunchItem, string]

// Config holds the HTTP surface configuration.
type Config struct {
	// AllowedOrigins are echoed back for CORS; empty disables CORS headers.
	AllowedOrigins []string
	Logger         *slog.Logger
	// Registry collects request metrics. A private registry is used when nil.
	Registry *prometheus.Registry
	// Components are reported by GET /debug/state.
	Components map[string]introspection.Introspectable
}

// Handler provides HTTP access to the services.
type Handler struct {
	Notes       *NoteService
	LaunchItems *LaunchItemService
	Launcher    launcher.Launcher

	config  Config
	logger  *slog.Logger
	metrics *metrics
	mux     *http.ServeMux
	handler http.Handler
}

// NewHandler wires routes and middleware.
func NewHandler(notes *NoteService, items *LaunchItemService, l launcher.Launcher, config Config) *Handler {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	h := &Handler{
		Notes:       notes,
		LaunchItems: items,
		Launcher:    l,
		config:      config,
		logger:      config.Logger,
		metrics:     newMetrics(config.Registry),
		mux:         http.NewServeMux(),
	}
	h.routes()

	h.handler = chain(h.mux,
		h.requestLogger,
		h.instrument,
		h.recoverer,
		h.cors,
	)
	return h
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("local server is running"))
	})

	h.mux.HandleFunc("POST /launch/program", h.handleLaunchProgram)
	h.mux.HandleFunc("POST /launch/folder", h.handleLaunchFolder)

	h.mux.HandleFunc("GET /launch-items", h.handleListLaunchItems)
	h.mux.HandleFunc("POST /launch-items", h.handleCreateLaunchItem)
	h.mux.HandleFunc("GET /launch-items/{id}", h.handleGetLaunchItem)
	h.mux.HandleFunc("PUT /launch-items/{id}", h.handleUpdateLaunchItem)
	h.mux.HandleFunc("DELETE /launch-items/{id}", h.handleDeleteLaunchItem)
	h.mux.HandleFunc("POST /launch-items/{id}/launch", h.handleLaunchItem)

	h.mux.HandleFunc("GET /notes", h.handleListNotes)
	h.mux.HandleFunc("POST /notes", h.handleCreateNote)
	h.mux.HandleFunc("PUT /notes/{id}", h.handleUpdateNote)
	h.mux.HandleFunc("DELETE /notes/{id}", h.handleDeleteNote)

	h.mux.Handle("GET /metrics", promhttp.HandlerFor(h.config.Registry, promhttp.HandlerOpts{}))
	h.mux.HandleFunc("GET /debug/state", h.handleState)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *Handler) handleState(w http.ResponseWriter, _ *http.Request) {
	state := make(map[string]any, len(h.config.Components))
	for name, c := range h.config.Components {
		state[name] = c.State()
	}
	writeJSON(w, http.StatusOK, state)
}
