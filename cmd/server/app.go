package main

import (
	"context"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/phrazzld/api-starter/internal/config"
)

// State is the lifecycle state of the application. Transitions are one-way:
// Initializing moves to Listening or Failed, and both of those are terminal.
type State int32

const (
	StateInitializing State = iota
	StateListening
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateListening:
		return "listening"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// application holds the shared dependencies of the server. The configuration
// is read-only and safe to share between request handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	state atomic.Int32
	addr  atomic.Pointer[net.Addr]
	// listening is closed once the listener is bound.
	listening chan struct{}
}

// newApplication creates an application for a validated configuration.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		listening: make(chan struct{}),
	}
}

// State reports the current lifecycle state.
func (app *application) State() State {
	return State(app.state.Load())
}

// Addr returns the bound listener address, or nil before the server is listening.
func (app *application) Addr() net.Addr {
	if p := app.addr.Load(); p != nil {
		return *p
	}
	return nil
}

// Listening is closed when the server has bound its listener.
func (app *application) Listening() <-chan struct{} {
	return app.listening
}

// transition moves out of Initializing. Later calls are ignored.
func (app *application) transition(to State) bool {
	return app.state.CompareAndSwap(int32(StateInitializing), int32(to))
}

// Run builds the router and serves HTTP until ctx is done. It returns a
// *StartupError if the listener cannot be bound.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
