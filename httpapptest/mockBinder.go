// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapptest

import (
	"context"
	"net"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/httpapp"
)

// MockBinder is a mocked httpapp.Binder.
type MockBinder struct {
	mock.Mock
}

func (m *MockBinder) Bind(ctx context.Context, host string, port int, h http.Handler, settings httpapp.ServerConfig) (*httpapp.Binding, error) {
	args := m.Called(ctx, host, port, h, settings)
	b, _ := args.Get(0).(*httpapp.Binding)
	return b, args.Error(1)
}

// ExpectBind sets up an expectation for a bind at (host, port) with any context,
// handler, and settings.
func (m *MockBinder) ExpectBind(host string, port int, b *httpapp.Binding, err error) *mock.Call {
	return m.On("Bind", mock.Anything, host, port, mock.Anything, mock.Anything).Return(b, err)
}

// MockUnbind is a mocked httpapp.UnbindFunc.  Pass its Unbind method to
// httpapp.NewBinding.
type MockUnbind struct {
	mock.Mock
}

func (m *MockUnbind) Unbind(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnbind) ExpectUnbind(err error) *mock.Call {
	return m.On("Unbind", mock.Anything).Return(err)
}

// TCPAddr is a convenience for creating a loopback *net.TCPAddr with a given port.
func TCPAddr(port int) *net.TCPAddr {
	return &net.TCPAddr{
		IP:   net.IPv4(127, 0, 0, 1),
		Port: port,
	}
}
