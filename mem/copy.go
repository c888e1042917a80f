// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import (
	"context"
	"fmt"
	"time"

	safemath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/holiman/uint256"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/scratchmem/consts"
)

// Copy moves [length] bytes from [srcAddr] to [dstAddr] within the
// pool, one word at a time. This is the unchecked tier: addresses and
// lengths are trusted completely, and ranges that overlap with the
// destination below the source are unsupported (the forward word loop
// would read bytes it has already overwritten).
func (p *Pool) Copy(dstAddr uint64, srcAddr uint64, length uint64) {
	copyWords(p.store, dstAddr, p.store, srcAddr, length)
	if p.metrics != nil {
		p.metrics.copies.Inc()
		p.metrics.copiedBytes.Add(float64(length))
	}
}

// CopySubrange copies [length] bytes from [src] starting at [srcStart]
// into [dst] starting at [dstStart]. This is the checked tier: both
// ranges are validated against the buffers' stored lengths before any
// byte is written, and a violation returns [ErrOutOfBounds] with the
// destination untouched. A zero-length copy at the exact end of either
// buffer succeeds as a no-op.
//
// Destination payload bytes outside [dstStart, dstStart+length) are
// preserved byte-for-byte. The two buffers may live in different pools.
func CopySubrange(ctx context.Context, src Buffer, dst Buffer, srcStart uint64, dstStart uint64, length uint64) error {
	_, span := dst.pool.tracer.Start(ctx, "mem.CopySubrange", oteltrace.WithAttributes(
		attribute.Int64("length", int64(length)),
	))
	defer span.End()
	start := time.Now()

	m := dst.pool.metrics
	srcEnd, err := safemath.Add64(srcStart, length)
	if err != nil {
		if m != nil {
			m.boundsRejections.Inc()
		}
		return fmt.Errorf("%w: source range overflows", ErrOutOfBounds)
	}
	dstEnd, err := safemath.Add64(dstStart, length)
	if err != nil {
		if m != nil {
			m.boundsRejections.Inc()
		}
		return fmt.Errorf("%w: destination range overflows", ErrOutOfBounds)
	}
	if srcLen := src.Length(); srcEnd > srcLen {
		if m != nil {
			m.boundsRejections.Inc()
		}
		return fmt.Errorf("%w: source range [%d, %d) exceeds buffer length %d", ErrOutOfBounds, srcStart, srcEnd, srcLen)
	}
	if dstLen := dst.Length(); dstEnd > dstLen {
		if m != nil {
			m.boundsRejections.Inc()
		}
		return fmt.Errorf("%w: destination range [%d, %d) exceeds buffer length %d", ErrOutOfBounds, dstStart, dstEnd, dstLen)
	}

	copyWords(
		dst.pool.store, dst.PayloadAddr()+dstStart,
		src.pool.store, src.PayloadAddr()+srcStart,
		length,
	)
	if m != nil {
		m.copies.Inc()
		m.copiedBytes.Add(float64(length))
		m.copyLatency.Observe(float64(time.Since(start)))
	}
	return nil
}

// copyWords transfers [length] bytes a word at a time, then resolves
// the sub-word tail with a read-modify-write of the final destination
// word: the leading [length] bytes come from the source word, the
// trailing bytes of the existing destination word are round-tripped
// unchanged. Callers guarantee one word of readable slack past both
// ranges (every pool store carries it).
func copyWords(dst []byte, dstAddr uint64, src []byte, srcAddr uint64, length uint64) {
	for length > consts.WordAlignMask {
		copy(dst[dstAddr:dstAddr+consts.WordLen], src[srcAddr:srcAddr+consts.WordLen])
		dstAddr += consts.WordLen
		srcAddr += consts.WordLen
		length -= consts.WordLen
	}
	if length == 0 {
		return
	}

	// mask has 1s over the low 8*(WordLen-length) bits: the bytes of
	// the destination word that must survive.
	shift := uint(consts.ByteBits * (consts.WordLen - length))
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), shift)
	mask.SubUint64(mask, 1)

	srcWord := new(uint256.Int).SetBytes(src[srcAddr : srcAddr+consts.WordLen])
	dstWord := new(uint256.Int).SetBytes(dst[dstAddr : dstAddr+consts.WordLen])

	srcWord.And(srcWord, new(uint256.Int).Not(mask))
	dstWord.And(dstWord, mask)

	out := srcWord.Or(srcWord, dstWord).Bytes32()
	copy(dst[dstAddr:dstAddr+consts.WordLen], out[:])
}
