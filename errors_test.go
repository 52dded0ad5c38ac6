// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorsSuite struct {
	suite.Suite
}

func (suite *ErrorsSuite) TestBindError() {
	cause := errors.New("expected")
	err := &BindError{Host: "127.0.0.1", Port: 8080, Err: cause}

	suite.Equal("127.0.0.1:8080", err.Address())
	suite.Contains(err.Error(), "127.0.0.1:8080")
	suite.Contains(err.Error(), "expected")
	suite.ErrorIs(err, cause)
	suite.False(err.AddressInUse())
	suite.False(err.PermissionDenied())
	suite.Equal(BindFailedExitCode, err.ExitCode())
}

func (suite *ErrorsSuite) TestBindErrorAddressInUse() {
	err := &BindError{
		Host: "localhost",
		Port: 8080,
		Err: &net.OpError{
			Op:  "listen",
			Net: "tcp",
			Err: os.NewSyscallError("bind", syscall.EADDRINUSE),
		},
	}

	suite.True(err.AddressInUse())
	suite.False(err.PermissionDenied())
}

func (suite *ErrorsSuite) TestBindErrorPermissionDenied() {
	err := &BindError{
		Host: "localhost",
		Port: 80,
		Err: &net.OpError{
			Op:  "listen",
			Net: "tcp",
			Err: os.NewSyscallError("bind", syscall.EACCES),
		},
	}

	suite.False(err.AddressInUse())
	suite.True(err.PermissionDenied())
}

func (suite *ErrorsSuite) TestNewBindError() {
	suite.Run("Plain", func() {
		cause := errors.New("expected")
		err := newBindError("localhost", 1234, cause)

		var be *BindError
		suite.Require().ErrorAs(err, &be)
		suite.Equal("localhost", be.Host)
		suite.Equal(1234, be.Port)
		suite.Same(cause, be.Err)
	})

	suite.Run("AlreadyBindError", func() {
		original := &BindError{Host: "original", Port: 1, Err: errors.New("expected")}
		wrapped := fmt.Errorf("wrapped: %w", original)
		suite.Same(original, newBindError("localhost", 1234, original))
		suite.Equal(wrapped, newBindError("localhost", 1234, wrapped))
	})
}

func (suite *ErrorsSuite) TestUnbindError() {
	var (
		cause = errors.New("expected")
		addr  = &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9000}
		err   = &UnbindError{Addr: addr, Err: cause}
	)

	suite.Contains(err.Error(), "127.0.0.1:9000")
	suite.ErrorIs(err, cause)
}

func (suite *ErrorsSuite) TestNotBound() {
	err := notBound(StateTerminated)
	suite.ErrorIs(err, ErrNotBound)
	suite.Contains(err.Error(), "Terminated")
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrorsSuite))
}
