// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "scratchmem"

type metrics struct {
	allocs       prometheus.Counter
	allocedBytes prometheus.Counter
	resets       prometheus.Counter

	copies           prometheus.Counter
	copiedBytes      prometheus.Counter
	boundsRejections prometheus.Counter
	copyLatency      metric.Averager

	freePointer prometheus.Gauge
	capacity    prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	copyLatency, err := metric.NewAverager(
		"scratchmem_copy_latency",
		"time spent in checked sub-range copies",
		r,
	)
	if err != nil {
		return nil, err
	}
	m := &metrics{
		copyLatency: copyLatency,
		allocs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "allocs",
			Help:      "number of buffers allocated",
		}),
		allocedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "alloced_bytes",
			Help:      "total payload bytes allocated",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resets",
			Help:      "number of pool resets",
		}),
		copies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "copies",
			Help:      "number of copies performed",
		}),
		copiedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "copied_bytes",
			Help:      "total bytes copied",
		}),
		boundsRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bounds_rejections",
			Help:      "number of sub-range copies rejected for exceeding a buffer",
		}),
		freePointer: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "free_pointer",
			Help:      "current free pointer of the pool",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "capacity",
			Help:      "size of the pool's backing store in bytes",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.allocs),
		r.Register(m.allocedBytes),
		r.Register(m.resets),
		r.Register(m.copies),
		r.Register(m.copiedBytes),
		r.Register(m.boundsRejections),
		r.Register(m.freePointer),
		r.Register(m.capacity),
	)
	return m, errs.Err
}
