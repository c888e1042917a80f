// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/scratchmem/consts"
)

func newTestPool(t *testing.T) *Pool {
	t.Helper()

	p, err := New(NewDefaultConfig())
	require.NoError(t, err)
	return p
}

func TestAllocStoresLength(t *testing.T) {
	require := require.New(t)

	p := newTestPool(t)
	for _, length := range []uint64{0, 1, 31, 32, 33, 36, 63, 64, 100, 4096} {
		b := p.Alloc(length)
		require.Equal(length, b.Length(), "length=%d", length)
	}
}

func TestAllocAlignment(t *testing.T) {
	require := require.New(t)

	p := newTestPool(t)
	var prevEnd uint64
	for _, length := range []uint64{0, 1, 5, 31, 32, 33, 64, 100} {
		b := p.Alloc(length)
		require.Zero(b.Addr()%consts.WordLen, "length=%d", length)
		require.GreaterOrEqual(b.Addr(), prevEnd, "length=%d", length)
		require.Less(b.Addr()-prevEnd, uint64(consts.WordLen), "length=%d", length)
		prevEnd = b.Addr() + consts.WordLen + length
	}
}

func TestAllocZeroLength(t *testing.T) {
	require := require.New(t)

	p := newTestPool(t)
	b := p.Alloc(0)
	require.Zero(b.Length())
	require.Empty(b.Contents())

	// an empty buffer consumes only its prefix word
	next := p.Alloc(1)
	require.Equal(b.Addr()+consts.WordLen, next.Addr())
}

func TestGrowPreservesContents(t *testing.T) {
	require := require.New(t)

	p, err := New(Config{InitialCapacity: 0})
	require.NoError(err)

	b := p.Alloc(40)
	payload := make([]byte, 40)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	b.SetContents(payload)

	// force the backing store to grow
	p.Alloc(8192)
	require.Equal(payload, b.Contents())
}

func TestReset(t *testing.T) {
	require := require.New(t)

	p := newTestPool(t)
	p.Alloc(100)
	require.NotZero(p.Used())

	p.Reset()
	require.Zero(p.Used())

	b := p.Alloc(10)
	require.Zero(b.Addr())
}

func TestMaxCapacityExceededPanics(t *testing.T) {
	require := require.New(t)

	p, err := New(Config{InitialCapacity: 64, MaxCapacity: 128})
	require.NoError(err)

	require.Panics(func() {
		p.Alloc(4096)
	})
}

func TestNewWithMetricsRegistry(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	p, err := New(NewDefaultConfig(), WithMetricsRegistry(registry))
	require.NoError(err)

	b := p.Alloc(36)
	b.SetContents(bytes.Repeat([]byte{0x7f}, 36))
	require.Equal(uint64(36), b.Length())

	// a second pool on the same registry collides
	_, err = New(NewDefaultConfig(), WithMetricsRegistry(registry))
	require.Error(err)
}
