// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"net/http"
	"sync"

	"github.com/gammazero/workerpool"
)

// DefaultWorkers is the worker pool size for a Runtime created by an App
// that was not configured with WithWorkers.
const DefaultWorkers = 8

// Runtime is the execution context shared by an App and the handlers it serves.
// It carries a base context, cancelled when the runtime closes, and a bounded
// pool of workers for background tasks started by request handlers.
//
// A Runtime may be owned externally and shared across Apps.  An App that creates
// its own Runtime closes it upon termination.
type Runtime struct {
	ctx    context.Context
	cancel context.CancelFunc
	pool   *workerpool.WorkerPool

	lock   sync.RWMutex
	closed bool
}

// NewRuntime creates a Runtime whose context derives from parent.  If workers
// is nonpositive, DefaultWorkers is used.
func NewRuntime(parent context.Context, workers int) *Runtime {
	if parent == nil {
		parent = context.Background()
	}

	if workers < 1 {
		workers = DefaultWorkers
	}

	ctx, cancel := context.WithCancel(parent)
	return &Runtime{
		ctx:    ctx,
		cancel: cancel,
		pool:   workerpool.New(workers),
	}
}

// Context returns this runtime's base context.  It is cancelled by Close.
func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

// Submit queues a task for execution on this runtime's worker pool.  The task
// receives the runtime's context.  Tasks submitted after Close are dropped, and
// this method returns false for them.
func (rt *Runtime) Submit(task func(context.Context)) bool {
	rt.lock.RLock()
	defer rt.lock.RUnlock()
	if rt.closed {
		return false
	}

	rt.pool.Submit(func() {
		task(rt.ctx)
	})

	return true
}

// Waiting returns the number of tasks queued but not yet running.
func (rt *Runtime) Waiting() int {
	return rt.pool.WaitingQueueSize()
}

// Close cancels this runtime's context and waits for queued tasks to
// complete.  Only the first call has any effect.
func (rt *Runtime) Close() {
	rt.lock.Lock()
	if rt.closed {
		rt.lock.Unlock()
		return
	}

	rt.closed = true
	rt.lock.Unlock()

	rt.cancel()
	rt.pool.StopWait()
}

// Closed tests if Close has been called on this runtime.
func (rt *Runtime) Closed() bool {
	rt.lock.RLock()
	defer rt.lock.RUnlock()
	return rt.closed
}

type runtimeKey struct{}

// WithRuntime returns a context that carries rt.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom returns the Runtime carried by ctx.  Request contexts for
// handlers served by an App always carry the App's runtime.
func RuntimeFrom(ctx context.Context) (rt *Runtime, ok bool) {
	rt, ok = ctx.Value(runtimeKey{}).(*Runtime)
	return
}

// runtimeHandler decorates next so that every request context carries rt.
func runtimeHandler(rt *Runtime, next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		next.ServeHTTP(
			response,
			request.WithContext(WithRuntime(request.Context(), rt)),
		)
	})
}
