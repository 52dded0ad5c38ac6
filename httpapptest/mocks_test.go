// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapptest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpapp"
)

type MocksSuite struct {
	suite.Suite
}

func (suite *MocksSuite) TestMockAddr() {
	m := new(MockAddr)
	m.ExpectNetwork("tcp").Once()
	m.ExpectString("localhost:8080").Once()
	suite.Equal("tcp", m.Network())
	suite.Equal("localhost:8080", m.String())
	m.AssertExpectations(suite.T())
}

func (suite *MocksSuite) TestMockListener() {
	var (
		expectedErr  = errors.New("expected")
		expectedAddr = TCPAddr(8080)
		m            = new(MockListener)
	)

	m.ExpectAccept(nil, expectedErr).Once()
	m.ExpectAddr(expectedAddr).Once()
	m.ExpectClose(nil).Once()

	c, err := m.Accept()
	suite.Nil(c)
	suite.Same(expectedErr, err)
	suite.Same(expectedAddr, m.Addr())
	suite.NoError(m.Close())

	m.AssertExpectations(suite.T())
}

func (suite *MocksSuite) TestMockBinder() {
	var (
		expectedErr = errors.New("expected")
		unbind      = new(MockUnbind)
		expected    = httpapp.NewBinding(TCPAddr(8080), unbind.Unbind, nil)
		m           = new(MockBinder)

		b httpapp.Binder = m
	)

	m.ExpectBind("localhost", 8080, expected, nil).Once()
	m.ExpectBind("localhost", 9090, nil, expectedErr).Once()
	unbind.ExpectUnbind(nil).Once()

	actual, err := b.Bind(context.Background(), "localhost", 8080, http.NotFoundHandler(), httpapp.ServerConfig{})
	suite.NoError(err)
	suite.Same(expected, actual)

	actual, err = b.Bind(context.Background(), "localhost", 9090, http.NotFoundHandler(), httpapp.ServerConfig{})
	suite.Nil(actual)
	suite.Same(expectedErr, err)

	suite.NoError(unbind.Unbind(context.Background()))

	m.AssertExpectations(suite.T())
	unbind.AssertExpectations(suite.T())
}

func (suite *MocksSuite) TestTCPAddr() {
	addr := TCPAddr(1234)
	suite.Equal("127.0.0.1:1234", addr.String())

	var _ net.Addr = addr
}

func TestMocks(t *testing.T) {
	suite.Run(t, new(MocksSuite))
}
