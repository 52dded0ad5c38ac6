// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"syscall"
)

var (
	// ErrAlreadyStarted is returned by StartServer when it has already been
	// called on the same App.  The first call is unaffected.
	ErrAlreadyStarted = errors.New("the server has already been started")

	// ErrNotBound is returned by CurrentBinding when the App is not in
	// the Bound or ShuttingDown state.
	ErrNotBound = errors.New("the server is not bound")

	// ErrNilHandler is returned by New when no root handler is supplied.
	ErrNilHandler = errors.New("a root http.Handler is required")

	// ErrNilBinder is returned by New when a nil Binder is supplied.
	ErrNilBinder = errors.New("the binder cannot be nil")

	// ErrNoBinding is the cause of a *BindError when a Binder reports success
	// without returning a Binding.
	ErrNoBinding = errors.New("the binder returned no binding")
)

// BindError describes a failure to bind a listener.  This error is terminal
// for a given StartServer call.
type BindError struct {
	// Host is the host that was requested.
	Host string

	// Port is the port that was requested.
	Port int

	// Err is the underlying cause, e.g. from net.Listen.
	Err error
}

// Address is the requested bind address in host:port form.
func (be *BindError) Address() string {
	return net.JoinHostPort(be.Host, strconv.Itoa(be.Port))
}

func (be *BindError) Error() string {
	return fmt.Sprintf("unable to bind [%s]: %s", be.Address(), be.Err)
}

func (be *BindError) Unwrap() error {
	return be.Err
}

// AddressInUse tests if this error was caused by another listener holding the address.
func (be *BindError) AddressInUse() bool {
	return errors.Is(be.Err, syscall.EADDRINUSE)
}

// PermissionDenied tests if this error was caused by insufficient privileges,
// such as when binding a privileged port.
func (be *BindError) PermissionDenied() bool {
	return errors.Is(be.Err, os.ErrPermission) || errors.Is(be.Err, syscall.EACCES)
}

// ExitCode implements ExitCoder.
func (be *BindError) ExitCode() int {
	return BindFailedExitCode
}

// newBindError ensures that err is a *BindError.  If err already is or
// wraps a *BindError, it is returned as is.
func newBindError(host string, port int, err error) error {
	var be *BindError
	if errors.As(err, &be) {
		return err
	}

	return &BindError{
		Host: host,
		Port: port,
		Err:  err,
	}
}

// UnbindError describes a failure to release a bound listener.
type UnbindError struct {
	// Addr is the address of the listener that was being released.
	Addr net.Addr

	// Err is the underlying cause.
	Err error
}

func (ue *UnbindError) Error() string {
	return fmt.Sprintf("unable to unbind [%s]: %s", ue.Addr, ue.Err)
}

func (ue *UnbindError) Unwrap() error {
	return ue.Err
}

// notBound produces the error returned by CurrentBinding for a given state.
func notBound(s State) error {
	return fmt.Errorf("%w: state is %s", ErrNotBound, s)
}
