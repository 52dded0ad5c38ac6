// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package appfx

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"github.com/xmidt-org/httpapp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	// Module is the name of the zap logger used by Apps created in this package.
	Module = "httpapp"

	// HooksGroup is the value group for httpapp.Hooks components.
	HooksGroup = "httpapp.hooks"

	// OptionsGroup is the value group for httpapp.Option[httpapp.App] components.
	OptionsGroup = "httpapp.options"

	// RoutesGroup is the value group for httpapp.RouterOption components.
	RoutesGroup = "httpapp.routes"
)

// RouterIn is the set of dependencies for the root *mux.Router.
type RouterIn struct {
	fx.In

	// Options are the RouterOption components, applied in the order fx supplies them.
	Options []httpapp.RouterOption `group:"httpapp.routes"`
}

// NewRouter is an fx constructor for the root route of an App.
func NewRouter(in RouterIn) (*mux.Router, error) {
	return httpapp.NewRouter(in.Options...)
}

// AppIn is the set of dependencies for an httpapp.App bound to an fx.App.
type AppIn struct {
	fx.In

	// Config is the required App configuration, typically supplied by ForViper.
	Config httpapp.Config

	// Router is the App's root route.
	Router *mux.Router

	// Logger is the optional zap logger for the App.  If unset, nothing is logged.
	Logger *zap.Logger `optional:"true"`

	// Hooks are any lifecycle hooks contributed to the HooksGroup.
	Hooks []httpapp.Hooks `group:"httpapp.hooks"`

	// Options are any additional App options contributed to the OptionsGroup.
	Options []httpapp.Option[httpapp.App] `group:"httpapp.options"`

	// Lifecycle is the fx.Lifecycle to which the App is bound.
	Lifecycle fx.Lifecycle

	// Shutdowner is used to stop the fx.App if the App terminates on its own.
	Shutdowner fx.Shutdowner

	// ErrorCoder is the optional strategy for the exit code used when the App
	// terminates on its own.  By default, httpapp.ExitCodeFor's rules apply.
	ErrorCoder httpapp.ErrorCoder `optional:"true"`
}

// NewApp is an fx constructor that creates an App and binds it to the enclosing
// fx.App's lifecycle.
func NewApp(in AppIn) (*httpapp.App, error) {
	opts := append(
		in.Config.Options(),
		httpapp.WithHooks(in.Hooks...),
	)

	if in.Logger != nil {
		opts = append(opts, httpapp.WithLogger(in.Logger.Named(Module)))
	}

	opts = append(opts, in.Options...)
	app, err := httpapp.New(in.Router, opts...)
	if err != nil {
		return nil, err
	}

	b := newBinder(app, in.Config, in.ErrorCoder, in.Shutdowner)
	in.Lifecycle.Append(fx.Hook{
		OnStart: b.onStart,
		OnStop:  b.onStop,
	})

	return app, nil
}

// Provide supplies both the root *mux.Router and the *httpapp.App.  An
// httpapp.Config component is required, usually from ForViper.
func Provide() fx.Option {
	return fx.Provide(
		NewRouter,
		NewApp,
	)
}

// ForViper unmarshals an httpapp.Config from the given viper key and supplies it
// as a component.  An empty key unmarshals the whole viper configuration.
func ForViper(v *viper.Viper, key string, o ...viper.DecoderConfigOption) fx.Option {
	if v == nil {
		return fx.Error(httpapp.ErrNilViper)
	}

	return fx.Provide(
		func() (httpapp.Config, error) {
			return httpapp.UnmarshalConfig(v, key, o...)
		},
	)
}

// Route contributes RouterOptions to the App's root route.
func Route(o ...httpapp.RouterOption) fx.Option {
	var provides []fx.Option
	for _, ro := range o {
		ro := ro
		provides = append(provides,
			fx.Provide(
				fx.Annotate(
					func() httpapp.RouterOption { return ro },
					fx.ResultTags(`group:"httpapp.routes"`),
				),
			),
		)
	}

	return fx.Options(provides...)
}

// Hook contributes lifecycle hooks to the App.
func Hook(h ...httpapp.Hooks) fx.Option {
	var provides []fx.Option
	for _, hooks := range h {
		hooks := hooks
		provides = append(provides,
			fx.Provide(
				fx.Annotate(
					func() httpapp.Hooks { return hooks },
					fx.ResultTags(`group:"httpapp.hooks"`),
				),
			),
		)
	}

	return fx.Options(provides...)
}

// AppOption contributes additional options to the App.
func AppOption(o ...httpapp.Option[httpapp.App]) fx.Option {
	var provides []fx.Option
	for _, ao := range o {
		ao := ao
		provides = append(provides,
			fx.Provide(
				fx.Annotate(
					func() httpapp.Option[httpapp.App] { return ao },
					fx.ResultTags(`group:"httpapp.options"`),
				),
			),
		)
	}

	return fx.Options(provides...)
}

// MetricsIn is the set of dependencies for lifecycle metrics.
type MetricsIn struct {
	fx.In

	// Registerer is the optional prometheus.Registerer for lifecycle metrics.
	// If unset, prometheus.DefaultRegisterer is used.
	Registerer prometheus.Registerer `optional:"true"`
}

// MetricsOut contributes the hooks for lifecycle metrics.
type MetricsOut struct {
	fx.Out

	Hooks httpapp.Hooks `group:"httpapp.hooks"`
}

// Metrics registers httpapp.Metrics under the given namespace and contributes
// its hooks to the App.
func Metrics(namespace string) fx.Option {
	return fx.Provide(
		func(in MetricsIn) (out MetricsOut, err error) {
			var m *httpapp.Metrics
			if m, err = httpapp.NewMetrics(in.Registerer, namespace); err == nil {
				out.Hooks = m.Hooks()
			}

			return
		},
	)
}

// Logger routes fx's own event logging through the *zap.Logger component.
func Logger() fx.Option {
	return fx.WithLogger(
		func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		},
	)
}
