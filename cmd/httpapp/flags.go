// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFlag          = "config"
	hostFlag            = "host"
	portFlag            = "port"
	shutdownTimeoutFlag = "shutdown-timeout"
	workersFlag         = "workers"
	debugFlag           = "debug"

	// envPrefix is the prefix for environment overrides, e.g. HTTPAPP_PORT.
	envPrefix = "HTTPAPP"
)

// serveFlags gives the set of flags for the serve command.
func serveFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.StringP(configFlag, "c", "", "Path to a configuration file")
	flags.String(hostFlag, "localhost", "The host to bind")
	flags.Int(portFlag, 8080, "The port to bind, or 0 for an ephemeral port")
	flags.Duration(shutdownTimeoutFlag, 0, "The maximum time to wait for in-flight requests on shutdown")
	flags.Int(workersFlag, 0, "The number of background workers available to handlers")
	flags.Bool(debugFlag, false, "Enables development logging")

	return flags
}

// newViper builds the configuration for the serve command.  Flags take precedence
// over environment variables, which take precedence over the configuration file.
func newViper(flags *flag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, name := range map[string]string{
		"host":            hostFlag,
		"port":            portFlag,
		"shutdownTimeout": shutdownTimeoutFlag,
		"workers":         workersFlag,
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, err
		}
	}

	if file, _ := flags.GetString(configFlag); len(file) > 0 {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return v, nil
}
