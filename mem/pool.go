// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/scratchmem/consts"
)

// Pool is a call-scoped linear scratch-memory region with bump-allocator
// semantics: the free pointer only ever advances, nothing is freed
// individually, and the whole region is rewound at once with [Reset].
//
// A pool is exclusive to one logical call context. It is not safe for
// concurrent use and carries no locks.
type Pool struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *metrics

	store []byte
	free  uint64

	maxCapacity uint64
}

func New(config Config, opts ...Option) (*Pool, error) {
	options := &Options{
		Log:    logging.NoLog{},
		Tracer: trace.Noop,
	}
	for _, opt := range opts {
		opt(options)
	}

	p := &Pool{
		log:         options.Log,
		tracer:      options.Tracer,
		maxCapacity: config.MaxCapacity,
	}
	if options.Registry != nil {
		m, err := newMetrics(options.Registry)
		if err != nil {
			return nil, err
		}
		p.metrics = m
	}
	p.grow(alignWord(config.InitialCapacity))
	return p, nil
}

// Alloc reserves a buffer with [length] payload bytes. The buffer
// starts with a word-sized length prefix at the current free pointer;
// the payload that follows is not zeroed, so callers must write payload
// bytes before reading them back.
//
// The free pointer advances past the payload to the next word boundary,
// so every allocation starts on a word-aligned address. Allocating a
// zero-length buffer is valid and consumes only the prefix word.
func (p *Pool) Alloc(length uint64) Buffer {
	base := p.free
	end := alignWord(base + consts.WordLen + length)
	p.grow(end)

	prefix := uint256.NewInt(length).Bytes32()
	copy(p.store[base:base+consts.WordLen], prefix[:])
	p.free = end

	if p.metrics != nil {
		p.metrics.allocs.Inc()
		p.metrics.allocedBytes.Add(float64(length))
		p.metrics.freePointer.Set(float64(p.free))
	}
	p.log.Verbo("allocated scratch buffer",
		zap.Uint64("addr", base),
		zap.Uint64("length", length),
		zap.Uint64("free", p.free),
	)
	return Buffer{pool: p, addr: base}
}

// Reset rewinds the free pointer to the start of the pool. Buffers
// handed out before the call must not be used afterwards; their
// addresses will be reissued.
func (p *Pool) Reset() {
	p.free = 0
	if p.metrics != nil {
		p.metrics.resets.Inc()
		p.metrics.freePointer.Set(0)
	}
}

// Used returns the number of bytes between the start of the pool and
// the free pointer.
func (p *Pool) Used() uint64 {
	return p.free
}

// Capacity returns the size of the backing store in bytes.
func (p *Pool) Capacity() uint64 {
	return uint64(len(p.store))
}

// grow ensures the backing store covers [size] bytes plus one word of
// slack. The slack keeps whole-word reads in bounds when the copier
// handles a sub-word tail at an unaligned address near the end of the
// last allocation. The store length is always a multiple of
// [consts.WordLen].
func (p *Pool) grow(size uint64) {
	need := size + consts.WordLen
	if need <= uint64(len(p.store)) {
		return
	}

	newSize := uint64(len(p.store)) * 2
	if newSize < need {
		newSize = need
	}
	if p.maxCapacity > 0 && newSize > p.maxCapacity {
		newSize = need
		if newSize > p.maxCapacity {
			panic(fmt.Sprintf("mem: pool growth to %d bytes exceeds %d byte capacity", newSize, p.maxCapacity))
		}
	}

	store := make([]byte, newSize)
	copy(store, p.store)
	p.store = store

	if p.metrics != nil {
		p.metrics.capacity.Set(float64(newSize))
	}
	p.log.Verbo("grew scratch pool",
		zap.Uint64("capacity", newSize),
	)
}

// alignWord rounds [addr] up to the next multiple of [consts.WordLen].
func alignWord(addr uint64) uint64 {
	return (addr + consts.WordAlignMask) &^ uint64(consts.WordAlignMask)
}
