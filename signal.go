// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import "sync"

// Signal is a single-fire event with no payload.  Once fired, it stays fired:
// anything selecting on Done after the fact observes it immediately.
//
// The zero value is not usable.  Create instances with NewSignal.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal creates an unfired Signal.
func NewSignal() *Signal {
	return &Signal{
		ch: make(chan struct{}),
	}
}

// Fire fires this signal.  Only the first call has any effect, and only
// that call returns true.  This method is safe for concurrent use.
func (s *Signal) Fire() (fired bool) {
	s.once.Do(func() {
		close(s.ch)
		fired = true
	})

	return
}

// Done returns a channel that is closed when this signal fires.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Fired tests if this signal has been fired.
func (s *Signal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
