// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// BaseContext defines an option that sets http.Server.BaseContext.  The base context
// is built from one or more closures that accept a parent context and return a new context.
// Each closure is invoked with the context from the previous closure.
//
// Note that any previous BaseContext is overwritten by the returned option.
//
// If builders is empty, the returned option does nothing.
func BaseContext(builders ...func(context.Context, net.Listener) context.Context) Option[http.Server] {
	return AsOption[http.Server](func(s *http.Server) {
		if len(builders) > 0 {
			s.BaseContext = func(l net.Listener) context.Context {
				ctx := context.Background()
				for _, f := range builders {
					ctx = f(ctx, l)
				}

				return ctx
			}
		}
	})
}

// ConnContext defines an option that sets http.Server.ConnContext.  The connection context
// is built from one or more closures that accept a parent context and return a new context.
// Each closure is invoked with the context from the previous closure.
//
// Note that any previous ConnContext is overwritten by the returned option.
//
// If builders is empty, the returned option does nothing.
func ConnContext(builders ...func(context.Context, net.Conn) context.Context) Option[http.Server] {
	return AsOption[http.Server](func(s *http.Server) {
		if len(builders) > 0 {
			s.ConnContext = func(ctx context.Context, c net.Conn) context.Context {
				for _, f := range builders {
					ctx = f(ctx, c)
				}

				return ctx
			}
		}
	})
}

// ErrorLog defines an option that routes http.Server.ErrorLog to a zap logger at the
// error level.  A nil logger leaves http.Server.ErrorLog untouched.
func ErrorLog(l *zap.Logger) Option[http.Server] {
	return OptionFunc[http.Server](func(s *http.Server) error {
		if l == nil {
			return nil
		}

		stdLog, err := zap.NewStdLogAt(l.Named("http"), zap.ErrorLevel)
		if err == nil {
			s.ErrorLog = stdLog
		}

		return err
	})
}
