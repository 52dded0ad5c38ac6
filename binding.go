// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"net"
	"net/http"
	"strconv"
)

// UnbindFunc releases a bound listener.  It must close the listener, thus
// releasing the port, before it returns.
type UnbindFunc func(context.Context) error

// Binding is the result of a successful bind: the resolved local address
// together with the means to release it.  Only the App that requested a
// Binding may unbind it.  Callers obtain a read-only view via App.CurrentBinding.
type Binding struct {
	addr   net.Addr
	unbind UnbindFunc
	done   <-chan struct{}
}

// NewBinding creates a Binding for a listener bound at addr.  The done channel
// is optional.  If supplied, it must be closed when the accept loop exits, which
// allows an App to shut down when serving stops on its own.
//
// Binder implementations use this function to produce their results.
func NewBinding(addr net.Addr, unbind UnbindFunc, done <-chan struct{}) *Binding {
	if unbind == nil {
		unbind = func(context.Context) error { return nil }
	}

	return &Binding{
		addr:   addr,
		unbind: unbind,
		done:   done,
	}
}

// Addr is the actual local address of the bound listener.
func (b *Binding) Addr() net.Addr {
	return b.addr
}

// Host returns the host portion of the bound address.
func (b *Binding) Host() string {
	if tcp, ok := b.addr.(*net.TCPAddr); ok {
		return tcp.IP.String()
	}

	host, _, _ := net.SplitHostPort(b.addr.String())
	return host
}

// Port returns the resolved port of the bound address.  When binding to port 0,
// this is the port the operating system chose.
func (b *Binding) Port() int {
	if tcp, ok := b.addr.(*net.TCPAddr); ok {
		return tcp.Port
	}

	_, port, _ := net.SplitHostPort(b.addr.String())
	p, _ := strconv.Atoi(port)
	return p
}

// Done returns a channel that is closed when the accept loop for this binding
// exits.  If the Binder did not supply one, this returns nil, which blocks forever
// in a select.
func (b *Binding) Done() <-chan struct{} {
	return b.done
}

// String returns the bound address in host:port form.
func (b *Binding) String() string {
	return b.addr.String()
}

// Binder is the strategy for binding a listener and serving a handler with it.
// HTTPBinder is the built-in implementation.
type Binder interface {
	// Bind creates a listener at (host, port), begins serving h with it, and
	// returns the resulting Binding.  The context governs only the bind attempt.
	// It must not be used to serve requests.  A nil Binding with a nil error is
	// treated as a failed bind.
	Bind(ctx context.Context, host string, port int, h http.Handler, settings ServerConfig) (*Binding, error)
}

// BinderFunc is a closure type that implements Binder.
type BinderFunc func(context.Context, string, int, http.Handler, ServerConfig) (*Binding, error)

// Bind implements Binder.
func (bf BinderFunc) Bind(ctx context.Context, host string, port int, h http.Handler, settings ServerConfig) (*Binding, error) {
	return bf(ctx, host, port, h, settings)
}
