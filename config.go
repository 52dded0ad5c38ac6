// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// ErrNilViper is returned when an externally supplied Viper instance is nil
var ErrNilViper = errors.New("the viper instance cannot be nil")

// Config is the externally supplied configuration for an App.  It can be
// unmarshaled via UnmarshalConfig.
type Config struct {
	// Host is the bind host.  An empty host binds all interfaces.
	Host string

	// Port is the bind port.  Port 0 binds an ephemeral port.
	Port int

	// ShutdownTimeout is the maximum time to wait for in-flight requests when
	// unbinding.  If unset, DefaultShutdownTimeout is used.
	ShutdownTimeout time.Duration

	// Workers is the worker pool size for the App's own Runtime.  If unset,
	// DefaultWorkers is used.
	Workers int

	// Server holds the http.Server and listener settings.
	Server ServerConfig
}

// Options returns the App options implied by this configuration.
func (c Config) Options() []Option[App] {
	return []Option[App]{
		WithShutdownTimeout(c.ShutdownTimeout),
		WithWorkers(c.Workers),
	}
}

// UnmarshalConfig reads a Config from v.  If key is empty, the entire viper
// configuration is unmarshaled.  DefaultDecodeHooks is always applied first, so
// that durations and text-based values can be expressed as strings.
func UnmarshalConfig(v *viper.Viper, key string, opts ...viper.DecoderConfigOption) (c Config, err error) {
	if v == nil {
		err = ErrNilViper
		return
	}

	opts = append(
		[]viper.DecoderConfigOption{DefaultDecodeHooks},
		opts...,
	)

	if len(key) > 0 {
		err = v.UnmarshalKey(key, &c, opts...)
	} else {
		err = v.Unmarshal(&c, opts...)
	}

	return
}
