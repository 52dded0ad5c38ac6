// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type OptionSuite struct {
	suite.Suite
}

func (suite *OptionSuite) TestAsOption() {
	suite.Run("NoError", func() {
		var s http.Server
		suite.NoError(
			AsOption[http.Server](func(s *http.Server) { s.Addr = ":8080" }).Apply(&s),
		)

		suite.Equal(":8080", s.Addr)
	})

	suite.Run("WithError", func() {
		var (
			s           http.Server
			expectedErr = errors.New("expected")
		)

		suite.Same(
			expectedErr,
			AsOption[http.Server](func(*http.Server) error { return expectedErr }).Apply(&s),
		)
	})
}

func (suite *OptionSuite) TestOptions() {
	var (
		s    http.Server
		err1 = errors.New("1")
		err2 = errors.New("2")
	)

	err := Options[http.Server]{
		InvalidOption[http.Server](err1),
		AsOption[http.Server](func(s *http.Server) { s.Addr = ":1234" }),
		InvalidOption[http.Server](err2),
	}.Apply(&s)

	suite.Equal(":1234", s.Addr)
	suite.ErrorIs(err, err1)
	suite.ErrorIs(err, err2)
	suite.Len(multierr.Errors(err), 2)
}

func (suite *OptionSuite) TestNew() {
	suite.Run("NilHandler", func() {
		app, err := New(nil)
		suite.Nil(app)
		suite.ErrorIs(err, ErrNilHandler)
	})

	suite.Run("Defaults", func() {
		app, err := New(http.NotFoundHandler())
		suite.Require().NoError(err)
		suite.IsType(HTTPBinder{}, app.binder)
		suite.NotNil(app.logger)
		suite.Equal(DefaultShutdownTimeout, app.shutdownTimeout)
		suite.Equal(DefaultWorkers, app.workers)
		suite.Empty(app.hooks)
		suite.Equal(StateNotStarted, app.State())
	})

	suite.Run("NilBinder", func() {
		app, err := New(http.NotFoundHandler(), WithBinder(nil))
		suite.Nil(app)
		suite.ErrorIs(err, ErrNilBinder)
	})
}

func (suite *OptionSuite) TestAppOptions() {
	var (
		logger = zap.NewExample()
		binder = BinderFunc(func(context.Context, string, int, http.Handler, ServerConfig) (*Binding, error) {
			return nil, errors.New("unused")
		})
	)

	app, err := New(
		http.NotFoundHandler(),
		WithBinder(binder),
		WithHooks(Hooks{}, Hooks{}),
		WithHooks(Hooks{}),
		WithLogger(logger),
		WithLogger(nil),
		WithShutdownTimeout(5*time.Second),
		WithShutdownTimeout(0),
		WithWorkers(3),
		WithWorkers(-1),
	)

	suite.Require().NoError(err)
	suite.NotNil(app.binder)
	suite.Len(app.hooks, 3)
	suite.Same(logger, app.logger)
	suite.Equal(5*time.Second, app.shutdownTimeout)
	suite.Equal(3, app.workers)
}

func TestOption(t *testing.T) {
	suite.Run(t, new(OptionSuite))
}
