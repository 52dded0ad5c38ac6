// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrInvalidPort indicates a port outside the range [0, 65535].
var ErrInvalidPort = errors.New("invalid port")

// HTTPBinder is the built-in Binder.  It creates an *http.Server from the supplied
// ServerConfig, binds its listener, and runs the accept loop on a separate goroutine.
//
// The zero value is a valid binder that uses ServerConfig.Listen to create listeners.
type HTTPBinder struct {
	// ListenerFactory is the optional strategy for creating listeners.  If unset,
	// the ServerConfig passed to Bind is used.
	ListenerFactory ListenerFactory

	// ListenerChain decorates every listener this binder creates.
	ListenerChain ListenerChain

	// ServerOptions tailor each *http.Server prior to binding.
	ServerOptions []Option[http.Server]

	// Logger receives accept loop failures.  If unset, nothing is logged.
	Logger *zap.Logger
}

// Bind implements Binder.  Unbinding the returned Binding gracefully shuts down the
// server, falling back to closing all connections if the unbind context expires.
func (hb HTTPBinder) Bind(ctx context.Context, host string, port int, h http.Handler, settings ServerConfig) (*Binding, error) {
	if port < 0 || port > 65535 {
		return nil, &BindError{
			Host: host,
			Port: port,
			Err:  fmt.Errorf("%w: %d", ErrInvalidPort, port),
		}
	}

	server, err := settings.NewServer(net.JoinHostPort(host, strconv.Itoa(port)), h)
	if err == nil {
		err = Options[http.Server](hb.ServerOptions).Apply(server)
	}

	var listener net.Listener
	if err == nil {
		var lf ListenerFactory = settings
		if hb.ListenerFactory != nil {
			lf = hb.ListenerFactory
		}

		listener, err = hb.ListenerChain.Factory(lf).Listen(ctx, server)
	}

	if err != nil {
		return nil, &BindError{
			Host: host,
			Port: port,
			Err:  err,
		}
	}

	logger := hb.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	done := make(chan struct{})
	go Serve(server, listener, func(err error) {
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("accept loop failed", zap.Stringer("address", listener.Addr()), zap.Error(err))
		}

		close(done)
	})

	return NewBinding(
		listener.Addr(),
		func(ctx context.Context) error {
			err := server.Shutdown(ctx)
			if err != nil {
				err = multierr.Append(err, server.Close())
			}

			return err
		},
		done,
	), nil
}
