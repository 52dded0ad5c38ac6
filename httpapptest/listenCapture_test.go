// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapptest

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ListenSuite struct {
	suite.Suite
}

func (suite *ListenSuite) TestListenCapture() {
	var (
		expected = new(MockAddr)

		l  = new(MockListener)
		ch = make(chan net.Addr, 1)
		m  = ListenCapture(ch)
	)

	l.ExpectAddr(expected).Once()
	decorated := m(l)
	suite.Same(l, decorated)

	actual, ok := ListenReceive(ch, time.Second)
	suite.True(ok)
	suite.Same(expected, actual)
	l.AssertExpectations(suite.T())
}

func (suite *ListenSuite) TestListenReceiveTimeout() {
	actual, ok := ListenReceive(make(chan net.Addr), time.Millisecond)
	suite.False(ok)
	suite.Nil(actual)
}

func TestListen(t *testing.T) {
	suite.Run(t, new(ListenSuite))
}
