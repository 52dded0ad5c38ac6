// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package appfx

import (
	"context"
	"sync/atomic"

	"github.com/xmidt-org/httpapp"
	"go.uber.org/fx"
)

// binder adapts an App's StartServer to fx.Hook semantics.
type binder struct {
	app        *httpapp.App
	cfg        httpapp.Config
	coder      httpapp.ErrorCoder
	shutdowner fx.Shutdowner

	result   chan error
	stopping atomic.Bool
}

func newBinder(app *httpapp.App, cfg httpapp.Config, coder httpapp.ErrorCoder, sh fx.Shutdowner) *binder {
	return &binder{
		app:        app,
		cfg:        cfg,
		coder:      coder,
		shutdowner: sh,
		result:     make(chan error, 1),
	}
}

// run executes the App.  If the App terminates for any reason other than
// onStop, the enclosing fx.App is shut down with an exit code for the result.
func (b *binder) run() {
	ShutdownWhenDone(b, b.coder, b.serve)
}

func (b *binder) serve() error {
	err := b.app.Run(context.Background(), b.cfg, nil)
	b.result <- err
	return err
}

// Shutdown forwards to the enclosing fx.App only when the App terminated on its
// own.  A failed bind is reported through onStart instead, and onStop needs no signal.
func (b *binder) Shutdown(opts ...fx.ShutdownOption) error {
	if b.stopping.Load() || b.app.State() != httpapp.StateTerminated {
		return nil
	}

	return b.shutdowner.Shutdown(opts...)
}

// onStart begins binding and waits for the bind to resolve.  A failed bind
// fails fx startup.  If startup times out first, the latched shutdown releases
// the listener as soon as the bind completes.
func (b *binder) onStart(ctx context.Context) error {
	go b.run()

	select {
	case <-b.app.Ready():
		if b.app.State() == httpapp.StateBindFailed {
			return <-b.result
		}

		return nil

	case <-ctx.Done():
		b.stopping.Store(true)
		b.app.TriggerShutdown()
		return ctx.Err()
	}
}

// onStop triggers the App's shutdown and waits for its listener to be released.
// Any unbind error is returned to fx.
func (b *binder) onStop(ctx context.Context) error {
	b.stopping.Store(true)
	b.app.TriggerShutdown()

	select {
	case err := <-b.result:
		return err

	case <-ctx.Done():
		return ctx.Err()
	}
}
