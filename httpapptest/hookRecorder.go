// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapptest

import (
	"sync"

	"github.com/xmidt-org/httpapp"
)

const (
	// EventBound is recorded when OnBound is invoked.
	EventBound = "bound"

	// EventBindFailed is recorded when OnBindFailed is invoked.
	EventBindFailed = "bindFailed"

	// EventTerminated is recorded when OnTerminated is invoked.
	EventTerminated = "terminated"
)

// oneShot is a flag that is set, at most once, by the first hook invocation.
type oneShot struct {
	once sync.Once
	ch   chan struct{}
}

func newOneShot() *oneShot {
	return &oneShot{ch: make(chan struct{})}
}

func (s *oneShot) set() {
	s.once.Do(func() { close(s.ch) })
}

// HookRecorder captures every lifecycle hook invocation for later assertions.
// It is safe for concurrent use.
type HookRecorder struct {
	lock          sync.Mutex
	events        []string
	binding       *httpapp.Binding
	bindErr       error
	terminatedErr error
	runtime       *httpapp.Runtime

	bound      *oneShot
	bindFailed *oneShot
	terminated *oneShot
}

// NewHookRecorder creates an empty HookRecorder.
func NewHookRecorder() *HookRecorder {
	return &HookRecorder{
		bound:      newOneShot(),
		bindFailed: newOneShot(),
		terminated: newOneShot(),
	}
}

// Hooks returns the httpapp.Hooks that record into this instance.
func (hr *HookRecorder) Hooks() httpapp.Hooks {
	return httpapp.Hooks{
		OnBound: func(b *httpapp.Binding) {
			hr.record(EventBound, func() { hr.binding = b })
			hr.bound.set()
		},
		OnBindFailed: func(err error) {
			hr.record(EventBindFailed, func() { hr.bindErr = err })
			hr.bindFailed.set()
		},
		OnTerminated: func(err error, rt *httpapp.Runtime) {
			hr.record(EventTerminated, func() {
				hr.terminatedErr = err
				hr.runtime = rt
			})

			hr.terminated.set()
		},
	}
}

func (hr *HookRecorder) record(event string, f func()) {
	hr.lock.Lock()
	hr.events = append(hr.events, event)
	f()
	hr.lock.Unlock()
}

// Events returns a copy of the hook invocations, in order.
func (hr *HookRecorder) Events() []string {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	return append([]string{}, hr.events...)
}

// Count returns how many times a given event was recorded.
func (hr *HookRecorder) Count(event string) (n int) {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	for _, e := range hr.events {
		if e == event {
			n++
		}
	}

	return
}

// Binding returns the Binding passed to OnBound, if any.
func (hr *HookRecorder) Binding() *httpapp.Binding {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	return hr.binding
}

// BindErr returns the error passed to OnBindFailed, if any.
func (hr *HookRecorder) BindErr() error {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	return hr.bindErr
}

// TerminatedErr returns the error passed to OnTerminated, if any.
func (hr *HookRecorder) TerminatedErr() error {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	return hr.terminatedErr
}

// Runtime returns the Runtime passed to OnTerminated, if any.
func (hr *HookRecorder) Runtime() *httpapp.Runtime {
	hr.lock.Lock()
	defer hr.lock.Unlock()
	return hr.runtime
}

// Bound returns a channel closed upon the first OnBound.
func (hr *HookRecorder) Bound() <-chan struct{} {
	return hr.bound.ch
}

// BindFailed returns a channel closed upon the first OnBindFailed.
func (hr *HookRecorder) BindFailed() <-chan struct{} {
	return hr.bindFailed.ch
}

// Terminated returns a channel closed upon the first OnTerminated.
func (hr *HookRecorder) Terminated() <-chan struct{} {
	return hr.terminated.ch
}
