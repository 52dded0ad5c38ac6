// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package appfx

import (
	"context"

	"github.com/xmidt-org/httpapp"
	"go.uber.org/fx"
)

// ShutdownWhenDone runs task and then shuts down the enclosing fx.App, even if
// the task panics.  The fx.ShutdownSignal carries httpapp.ExitCodeFor the task's
// error and coder.  The task's error, if any, is returned.
//
// The App bound by Provide is itself run this way, so that an App which
// terminates on its own also ends the fx.App.
func ShutdownWhenDone[T httpapp.Task](sh fx.Shutdowner, coder httpapp.ErrorCoder, task T) (err error) {
	defer func() {
		exitWith(sh, coder, err)
	}()

	err = httpapp.RunTask(task)
	return
}

// ShutdownWhenDoneCtx is like ShutdownWhenDone, but for tasks that need a context.
func ShutdownWhenDoneCtx[T httpapp.TaskCtx](ctx context.Context, sh fx.Shutdowner, coder httpapp.ErrorCoder, task T) (err error) {
	defer func() {
		exitWith(sh, coder, err)
	}()

	err = httpapp.RunTaskCtx(ctx, task)
	return
}

func exitWith(sh fx.Shutdowner, coder httpapp.ErrorCoder, err error) {
	// fx reports unreceived signals, which is normal once the fx.App is stopping
	_ = sh.Shutdown(
		fx.ExitCode(httpapp.ExitCodeFor(err, coder)),
	)
}
