// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/scratchmem/consts"
)

// Buffer is a handle to a length-prefixed region of a pool: one word
// holding the payload length, followed by exactly that many payload
// bytes. The length is written once at allocation time and never
// changes. Payload bytes in the final partial word past the length are
// unspecified.
type Buffer struct {
	pool *Pool
	addr uint64
}

// Addr returns the pool address of the buffer's length prefix.
func (b Buffer) Addr() uint64 {
	return b.addr
}

// PayloadAddr returns the pool address of the first payload byte.
func (b Buffer) PayloadAddr() uint64 {
	return b.addr + consts.WordLen
}

// Length returns the payload length stored in the prefix word.
func (b Buffer) Length() uint64 {
	return new(uint256.Int).SetBytes(b.pool.store[b.addr : b.addr+consts.WordLen]).Uint64()
}

// Contents returns the payload as a view over the pool's backing store.
// The view is invalidated by any later allocation that grows the pool
// and by [Pool.Reset].
func (b Buffer) Contents() []byte {
	start := b.addr + consts.WordLen
	return b.pool.store[start : start+b.Length()]
}

// SetContents copies [data] into the front of the payload. Assumes
// len(data) does not exceed the buffer length.
func (b Buffer) SetContents(data []byte) {
	start := b.addr + consts.WordLen
	copy(b.pool.store[start:start+b.Length()], data)
}
