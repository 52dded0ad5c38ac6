// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultShutdownTimeout is the maximum time an App waits for in-flight requests
// when releasing its listener, unless configured otherwise.
const DefaultShutdownTimeout = 30 * time.Second

// App binds a single root http.Handler to a listener and manages the bind, serve,
// and shutdown sequence for it.  An App is single use: StartServer may be called
// at most once.
//
// All methods other than StartServer are safe to call concurrently with a running
// StartServer.
type App struct {
	handler         http.Handler
	binder          Binder
	hooks           []Hooks
	logger          *zap.Logger
	shutdownTimeout time.Duration
	workers         int

	lock    sync.RWMutex
	state   State
	binding *Binding

	shutdown *Signal
	ready    chan struct{}
	done     chan struct{}
}

// New creates an App that routes all requests to h.  By default, an App binds with
// HTTPBinder and logs nothing.
func New(h http.Handler, opts ...Option[App]) (*App, error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	app := &App{
		handler:         h,
		binder:          HTTPBinder{},
		logger:          zap.NewNop(),
		shutdownTimeout: DefaultShutdownTimeout,
		workers:         DefaultWorkers,
		shutdown:        NewSignal(),
		ready:           make(chan struct{}),
		done:            make(chan struct{}),
	}

	if err := Options[App](opts).Apply(app); err != nil {
		return nil, err
	}

	return app, nil
}

// StartServer binds a listener at (host, port), serves this App's handler until
// shutdown, and then releases the listener.  This method blocks until the App
// reaches a terminal state.  Run it in a goroutine to serve in the background.
//
// If rt is nil, the App creates a Runtime derived from ctx and closes it once
// a terminal state is reached.  Otherwise, rt is used as is and never closed here.
//
// The ctx governs the bind attempt.  Once bound, cancelling ctx has the same
// effect as TriggerShutdown.
//
// A second call returns ErrAlreadyStarted immediately, without affecting the first.
// A failed bind returns a *BindError, which is also passed to each OnBindFailed hook.
// Otherwise, the result of unbinding is returned, which is also passed to each
// OnTerminated hook.
func (app *App) StartServer(ctx context.Context, host string, port int, settings ServerConfig, rt *Runtime) error {
	if err := app.begin(); err != nil {
		return err
	}

	owned := rt == nil
	if owned {
		rt = NewRuntime(context.WithoutCancel(ctx), app.workers)
	}

	logger := app.logger.With(
		zap.String("host", host),
		zap.Int("port", port),
	)

	logger.Info("binding server")
	binding, err := app.binder.Bind(ctx, host, port, runtimeHandler(rt, app.handler), settings)
	if err == nil && binding == nil {
		err = ErrNoBinding
	}

	if err != nil {
		err = newBindError(host, port, err)
		app.transition(StateBindFailed, nil)
		logger.Error("unable to bind server", zap.Error(err))

		for _, h := range app.hooks {
			h.bindFailed(logger, err)
		}

		if owned {
			rt.Close()
		}

		close(app.ready)
		close(app.done)
		return err
	}

	logger = logger.With(zap.Stringer("address", binding.Addr()))
	app.transition(StateBound, binding)
	logger.Info("server bound")

	for _, h := range app.hooks {
		h.bound(logger, binding)
	}

	close(app.ready)

	select {
	case <-app.shutdown.Done():
		logger.Info("shutdown requested")

	case <-ctx.Done():
		logger.Info("server context cancelled", zap.Error(ctx.Err()))

	case <-binding.Done():
		logger.Warn("accept loop exited")
	}

	// any later triggers are no-ops
	app.shutdown.Fire()

	app.transition(StateShuttingDown, binding)
	logger.Info("unbinding server")
	err = app.unbind(binding)
	app.transition(StateTerminated, nil)
	if err != nil {
		logger.Error("unable to unbind server cleanly", zap.Error(err))
	} else {
		logger.Info("server terminated")
	}

	for _, h := range app.hooks {
		h.terminated(logger, err, rt)
	}

	if owned {
		rt.Close()
	}

	close(app.done)
	return err
}

// begin performs the NotStarted → Binding transition, rejecting any
// StartServer call after the first.
func (app *App) begin() error {
	app.lock.Lock()
	defer app.lock.Unlock()

	if app.state != StateNotStarted {
		return fmt.Errorf("%w: state is %s", ErrAlreadyStarted, app.state)
	}

	app.state = StateBinding
	return nil
}

func (app *App) transition(s State, b *Binding) {
	app.lock.Lock()
	app.state = s
	if s.HasBinding() {
		app.binding = b
	} else {
		app.binding = nil
	}

	app.lock.Unlock()
}

func (app *App) unbind(b *Binding) error {
	ctx, cancel := context.WithTimeout(context.Background(), app.shutdownTimeout)
	defer cancel()

	if err := b.unbind(ctx); err != nil {
		return &UnbindError{
			Addr: b.Addr(),
			Err:  err,
		}
	}

	return nil
}

// CurrentBinding returns the active Binding.  If this App is not in the Bound
// or ShuttingDown state, the returned error wraps ErrNotBound.
func (app *App) CurrentBinding() (*Binding, error) {
	app.lock.RLock()
	defer app.lock.RUnlock()

	if app.state.HasBinding() {
		return app.binding, nil
	}

	return nil, notBound(app.state)
}

// State returns the current lifecycle state.
func (app *App) State() State {
	app.lock.RLock()
	defer app.lock.RUnlock()
	return app.state
}

// TriggerShutdown fires this App's shutdown signal.  Calling this more than once,
// concurrently or otherwise, has the same effect as calling it once.  If the App
// is still binding, the signal is latched and observed as soon as the bind resolves.
func (app *App) TriggerShutdown() {
	if app.shutdown.Fire() {
		app.logger.Debug("shutdown triggered", zap.Stringer("state", app.State()))
	}
}

// Ready returns a channel that is closed once the bind attempt has resolved,
// successfully or not, and after the corresponding hooks have run.
func (app *App) Ready() <-chan struct{} {
	return app.ready
}

// Done returns a channel that is closed once this App reaches a terminal state
// and all hooks have run.
func (app *App) Done() <-chan struct{} {
	return app.done
}

// Run is a convenience for StartServer that takes the address and server
// settings from a Config.  The App itself should have been created with
// Config.Options to honor the rest of the configuration.
func (app *App) Run(ctx context.Context, cfg Config, rt *Runtime) error {
	return app.StartServer(ctx, cfg.Host, cfg.Port, cfg.Server, rt)
}
