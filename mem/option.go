// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Options struct {
	Log      logging.Logger
	Tracer   trace.Tracer
	Registry prometheus.Registerer
}

type Option func(*Options)

func WithLogger(log logging.Logger) Option {
	return func(opts *Options) {
		opts.Log = log
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(opts *Options) {
		opts.Tracer = tracer
	}
}

// WithMetricsRegistry registers the pool's metrics on [registry].
func WithMetricsRegistry(registry prometheus.Registerer) Option {
	return func(opts *Options) {
		opts.Registry = registry
	}
}
