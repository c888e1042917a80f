// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// WordLen is the width of a scratch-memory word in bytes. Buffer
	// length prefixes occupy one word and every allocation starts on a
	// word boundary.
	WordLen = 32

	// WordAlignMask masks off the sub-word bits of an address.
	WordAlignMask = WordLen - 1

	// ByteBits is the number of bits in a byte, used when converting a
	// byte count into a shift amount.
	ByteBits = 8

	MaxUint64 = ^uint64(0)
)
