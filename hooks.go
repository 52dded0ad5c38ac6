// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import "go.uber.org/zap"

// Hooks is the set of extension points invoked by an App as it moves through
// its lifecycle.  Any field may be nil.  A hook must not block for long, as it
// runs on the goroutine executing StartServer.  A panicking hook is recovered and
// logged, and the lifecycle continues as though the hook had returned.
type Hooks struct {
	// OnBound is invoked exactly once after a successful bind, before the App
	// waits for its shutdown signal.
	OnBound func(*Binding)

	// OnBindFailed is invoked exactly once when binding fails.  Neither OnBound
	// nor OnTerminated is invoked in that case.  The error is always a *BindError.
	OnBindFailed func(error)

	// OnTerminated is invoked exactly once after a bound listener has been released.
	// The error is nil if unbinding succeeded, or an *UnbindError otherwise.  The
	// Runtime is the one used while serving, whether external or created by the App.
	OnTerminated func(error, *Runtime)
}

func (h Hooks) bound(logger *zap.Logger, b *Binding) {
	if h.OnBound != nil {
		defer recoverHook(logger, "OnBound")
		h.OnBound(b)
	}
}

func (h Hooks) bindFailed(logger *zap.Logger, err error) {
	if h.OnBindFailed != nil {
		defer recoverHook(logger, "OnBindFailed")
		h.OnBindFailed(err)
	}
}

func (h Hooks) terminated(logger *zap.Logger, err error, rt *Runtime) {
	if h.OnTerminated != nil {
		defer recoverHook(logger, "OnTerminated")
		h.OnTerminated(err, rt)
	}
}

// recoverHook must be deferred directly.
func recoverHook(logger *zap.Logger, hook string) {
	if r := recover(); r != nil {
		logger.Error(
			"lifecycle hook panicked",
			zap.String("hook", hook),
			zap.Any("panic", r),
		)
	}
}
