// Copyright 2026 the geckofw Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricOpts contains naming pieces of the exposed metric
type MetricOpts struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

// StartMetrics adds the metrics handler to a http.ServeMux
func StartMetrics(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}

// Counter creates and returns a prometheus.Counter
func Counter(opts MetricOpts) prometheus.Counter {
	return promauto.NewCounter(prometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	})
}

// CounterVec creates and returns a labelled counter family
func CounterVec(opts MetricOpts, labels []string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}, labels)
}

// Gauge creates and returns a prometheus.GaugeFunc backed by f
func Gauge(opts MetricOpts, f func() float64) prometheus.GaugeFunc {
	return promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: opts.Namespace,
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}, f)
}
