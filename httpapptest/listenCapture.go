// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapptest

import (
	"net"
	"time"
)

// ListenCapture returns a listener decorator that captures the bind address for
// a net.Listener.  The given channel receives net.Listener.Addr(), but the
// returned decorator does not decorate the listener at all.
//
// The result is assignable to httpapp.ListenerConstructor.
func ListenCapture(ch chan<- net.Addr) func(net.Listener) net.Listener {
	return func(l net.Listener) net.Listener {
		ch <- l.Addr()
		return l
	}
}

// ListenReceive returns the first net.Addr received on a channel, typically previously
// passed to ListenCapture.  If timeout elapses, this function return nil, false.
func ListenReceive(ch <-chan net.Addr, timeout time.Duration) (net.Addr, bool) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case a := <-ch:
		return a, true
	case <-t.C:
		return nil, false
	}
}
