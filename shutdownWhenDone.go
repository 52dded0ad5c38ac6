// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"reflect"
)

// Shutdowner is the behavior of anything whose serving can be stopped on request.
// *App implements this interface.
type Shutdowner interface {
	TriggerShutdown()
}

// Task is a unit of work that runs without a context.  Named function types
// are allowed.
type Task interface {
	~func() | ~func() error
}

// TaskCtx is a unit of work that runs with a context.  Named function types
// are allowed.
type TaskCtx interface {
	~func(context.Context) | ~func(context.Context) error
}

// RunTask executes task and returns its error, if it has one.
func RunTask[T Task](task T) error {
	switch t := any(task).(type) {
	case func():
		t()
		return nil

	case func() error:
		return t()

	default:
		return callTask(reflect.ValueOf(task))
	}
}

// RunTaskCtx executes task with ctx and returns its error, if it has one.
func RunTaskCtx[T TaskCtx](ctx context.Context, task T) error {
	switch t := any(task).(type) {
	case func(context.Context):
		t(ctx)
		return nil

	case func(context.Context) error:
		return t(ctx)

	default:
		return callTask(reflect.ValueOf(task), reflect.ValueOf(ctx))
	}
}

// callTask handles named task types, which a type switch cannot match
// against their underlying signature.
func callTask(task reflect.Value, args ...reflect.Value) error {
	out := task.Call(args)
	if len(out) == 0 || out[0].IsNil() {
		return nil
	}

	return out[0].Interface().(error)
}

// ShutdownWhenDone runs task and then triggers sh's shutdown, whether or not
// the task failed.  The task's error, if any, is returned.
//
// A typical use is bounding the lifetime of an App by some other piece of work:
//
//	go httpapp.ShutdownWhenDone(app, consumeQueue)
func ShutdownWhenDone[T Task](sh Shutdowner, task T) error {
	defer sh.TriggerShutdown()
	return RunTask(task)
}

// ShutdownWhenDoneCtx is like ShutdownWhenDone, but for tasks that need a context.
func ShutdownWhenDoneCtx[T TaskCtx](ctx context.Context, sh Shutdowner, task T) error {
	defer sh.TriggerShutdown()
	return RunTaskCtx(ctx, task)
}
