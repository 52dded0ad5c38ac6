// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpapp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type CommandSuite struct {
	suite.Suite
}

func (suite *CommandSuite) TestDefaults() {
	flags := serveFlags()
	suite.Require().NoError(flags.Parse(nil))

	v, err := newViper(flags)
	suite.Require().NoError(err)

	c, err := httpapp.UnmarshalConfig(v, "")
	suite.Require().NoError(err)
	suite.Equal("localhost", c.Host)
	suite.Equal(8080, c.Port)
	suite.Zero(c.ShutdownTimeout)
}

func (suite *CommandSuite) TestPrecedence() {
	var (
		dir  = suite.T().TempDir()
		file = filepath.Join(dir, "httpapp.yaml")
	)

	suite.Require().NoError(os.WriteFile(
		file,
		[]byte("host: 0.0.0.0\nport: 1234\nworkers: 3\nserver:\n  readTimeout: 10s\n"),
		0o600,
	))

	suite.T().Setenv("HTTPAPP_PORT", "2345")

	flags := serveFlags()
	suite.Require().NoError(flags.Parse([]string{
		"--config", file,
		"--shutdown-timeout", "5s",
	}))

	v, err := newViper(flags)
	suite.Require().NoError(err)

	c, err := httpapp.UnmarshalConfig(v, "")
	suite.Require().NoError(err)
	suite.Equal("0.0.0.0", c.Host)
	suite.Equal(2345, c.Port)
	suite.Equal(3, c.Workers)
	suite.Equal(5*time.Second, c.ShutdownTimeout)
	suite.Equal(10*time.Second, c.Server.ReadTimeout)
}

func (suite *CommandSuite) TestMissingConfigFile() {
	flags := serveFlags()
	suite.Require().NoError(flags.Parse([]string{"-c", filepath.Join(suite.T().TempDir(), "missing.yaml")}))

	_, err := newViper(flags)
	suite.Error(err)
}

func (suite *CommandSuite) TestServeOptions() {
	flags := serveFlags()
	suite.Require().NoError(flags.Parse(nil))

	v, err := newViper(flags)
	suite.Require().NoError(err)
	suite.NoError(fx.ValidateApp(serveOptions(v, zap.NewNop())))
}

func (suite *CommandSuite) TestFoo() {
	response := httptest.NewRecorder()
	foo(response, httptest.NewRequest(http.MethodGet, "/foo", nil))
	suite.Equal(http.StatusOK, response.Code)
	suite.Equal("bar", response.Body.String())
}

func (suite *CommandSuite) TestUnknownCommand() {
	suite.Error(run([]string{"bogus"}))
}

func TestCommand(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}
