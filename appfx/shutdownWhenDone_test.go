// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package appfx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpapp"
	"github.com/xmidt-org/httpapp/httpapptest"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type taskKey struct{}

// drain and poll are named task types, as an application might declare.
type drain func() error

type poll func(context.Context)

type ShutdownWhenDoneSuite struct {
	suite.Suite
}

func (suite *ShutdownWhenDoneSuite) exitCode(app *fxtest.App) int {
	select {
	case sig := <-app.Wait():
		return sig.ExitCode
	case <-time.After(time.Second):
		suite.Require().Fail("did not receive shutdown signal")
		return -1
	}
}

// TestBoundApp bounds a served App by a task that ends once the App is ready.
func (suite *ShutdownWhenDoneSuite) TestBoundApp() {
	var (
		served *httpapp.App
		app    = httpapptest.NewApp(
			suite,
			fx.Supply(httpapp.Config{Host: "127.0.0.1"}),
			Provide(),
			fx.Invoke(
				func(sh fx.Shutdowner, a *httpapp.App) {
					served = a
					go ShutdownWhenDone(
						sh,
						nil,
						drain(func() error {
							<-a.Ready()
							return httpapp.UseExitCode(errors.New("drained"), 42)
						}),
					)
				},
			),
		)
	)

	app.RequireStart()
	suite.Equal(42, suite.exitCode(app))
	suite.Equal(httpapp.StateBound, served.State())

	app.RequireStop()
	suite.Equal(httpapp.StateTerminated, served.State())
}

func (suite *ShutdownWhenDoneSuite) TestExitCodes() {
	testCases := []struct {
		name     string
		coder    httpapp.ErrorCoder
		task     func() error
		expected int
	}{
		{
			name:     "Success",
			task:     func() error { return nil },
			expected: 0,
		},
		{
			name:     "BindError",
			coder:    func(error) int { return 99 },
			task:     func() error { return &httpapp.BindError{Host: "localhost", Port: 1, Err: errors.New("expected")} },
			expected: httpapp.BindFailedExitCode,
		},
		{
			name: "Coder",
			coder: func(err error) int {
				suite.NoError(err)
				return 7
			},
			task:     func() error { return nil },
			expected: 7,
		},
	}

	for _, testCase := range testCases {
		suite.Run(testCase.name, func() {
			var (
				result = make(chan error, 1)
				app    = httpapptest.NewApp(
					suite,
					fx.Invoke(
						func(sh fx.Shutdowner) {
							go func() {
								result <- ShutdownWhenDone(sh, testCase.coder, testCase.task)
							}()
						},
					),
				)
			)

			app.RequireStart()
			suite.Equal(testCase.expected, suite.exitCode(app))
			suite.Equal(testCase.task(), <-result)
			app.RequireStop()
		})
	}
}

func (suite *ShutdownWhenDoneSuite) TestCtx() {
	var (
		expectedCtx = context.WithValue(context.Background(), taskKey{}, "poll")
		polled      = make(chan struct{})
		app         = httpapptest.NewApp(
			suite,
			fx.Invoke(
				func(sh fx.Shutdowner) {
					go ShutdownWhenDoneCtx(
						expectedCtx,
						sh,
						nil,
						poll(func(ctx context.Context) {
							suite.Equal("poll", ctx.Value(taskKey{}))
							close(polled)
						}),
					)
				},
			),
		)
	)

	app.RequireStart()
	suite.Zero(suite.exitCode(app))

	select {
	case <-polled:
	default:
		suite.Fail("the task did not run")
	}

	app.RequireStop()
}

func TestShutdownWhenDone(t *testing.T) {
	suite.Run(t, new(ShutdownWhenDoneSuite))
}
