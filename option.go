// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Option represents something that can modify a target object.  Options
// are used to tailor both Apps and the http.Server instances they bind.
type Option[T any] interface {
	Apply(*T) error
}

// OptionFunc is a closure type that can act as an Option.
type OptionFunc[T any] func(*T) error

func (of OptionFunc[T]) Apply(t *T) error {
	return of(t)
}

// Options is an aggregate Option that allows several options to
// be grouped together.
type Options[T any] []Option[T]

// Apply applies all the options in this slice, returning an
// aggregate error if any errors occurred.
func (o Options[T]) Apply(t *T) (err error) {
	for _, opt := range o {
		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// OptionClosure represents the closure types that are convertible
// into Option objects.
type OptionClosure[T any] interface {
	~func(*T) | ~func(*T) error
}

// AsOption converts a closure into an Option for a given target type.
func AsOption[T any, F OptionClosure[T]](f F) Option[T] {
	fv := any(f)
	if of, ok := fv.(func(*T) error); ok {
		return OptionFunc[T](of)
	}

	return OptionFunc[T](func(t *T) error {
		fv.(func(*T))(t)
		return nil
	})
}

// InvalidOption returns an Option that returns the given error.
// Useful instead of nil or a panic to indicate that something in the setup
// of an Option went wrong.
func InvalidOption[T any](err error) Option[T] {
	return OptionFunc[T](func(_ *T) error {
		return err
	})
}

// WithBinder sets the strategy used to bind listeners.  By default, an App
// uses HTTPBinder.
func WithBinder(b Binder) Option[App] {
	return OptionFunc[App](func(app *App) error {
		if b == nil {
			return ErrNilBinder
		}

		app.binder = b
		return nil
	})
}

// WithHooks appends lifecycle hooks to an App.  Hooks run in the order
// they were added.
func WithHooks(h ...Hooks) Option[App] {
	return AsOption[App](func(app *App) {
		app.hooks = append(app.hooks, h...)
	})
}

// WithLogger sets the zap logger an App uses to report transitions.  A nil
// logger leaves the current logger in place.
func WithLogger(l *zap.Logger) Option[App] {
	return AsOption[App](func(app *App) {
		if l != nil {
			app.logger = l
		}
	})
}

// WithShutdownTimeout sets the maximum time an App waits for in-flight
// requests when unbinding.  Nonpositive values are ignored.
func WithShutdownTimeout(d time.Duration) Option[App] {
	return AsOption[App](func(app *App) {
		if d > 0 {
			app.shutdownTimeout = d
		}
	})
}

// WithWorkers sets the size of the worker pool for any Runtime the App
// creates for itself.  It has no effect on externally supplied runtimes.
func WithWorkers(n int) Option[App] {
	return AsOption[App](func(app *App) {
		if n > 0 {
			app.workers = n
		}
	})
}
