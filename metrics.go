// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httpapp

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
)

const (
	// MetricsSubsystem is the prometheus subsystem for all lifecycle metrics.
	MetricsSubsystem = "server"

	// TerminationResultLabel distinguishes clean terminations from failed unbinds.
	TerminationResultLabel = "result"
)

// Metrics exposes App lifecycle events as prometheus metrics.  Use Hooks to
// attach an instance to one or more Apps.
type Metrics struct {
	bound        prometheus.Gauge
	bindFailures prometheus.Counter
	terminations *prometheus.CounterVec
}

// NewMetrics creates and registers lifecycle metrics.  A nil registerer
// means prometheus.DefaultRegisterer.
func NewMetrics(r prometheus.Registerer, namespace string) (*Metrics, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		bound: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "bound",
			Help:      "The number of listeners currently bound",
		}),
		bindFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "bind_failures_total",
			Help:      "The total number of failed attempts to bind a listener",
		}),
		terminations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: MetricsSubsystem,
				Name:      "terminations_total",
				Help:      "The total number of listeners released, by result",
			},
			[]string{TerminationResultLabel},
		),
	}

	err := multierr.Combine(
		r.Register(m.bound),
		r.Register(m.bindFailures),
		r.Register(m.terminations),
	)

	if err != nil {
		return nil, err
	}

	return m, nil
}

// Hooks returns the lifecycle hooks that update these metrics.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnBound: func(*Binding) {
			m.bound.Inc()
		},
		OnBindFailed: func(error) {
			m.bindFailures.Inc()
		},
		OnTerminated: func(err error, _ *Runtime) {
			m.bound.Dec()
			result := "success"
			if err != nil {
				result = "failure"
			}

			m.terminations.WithLabelValues(result).Inc()
		},
	}
}
