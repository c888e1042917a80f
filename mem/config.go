// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import "github.com/ava-labs/avalanchego/utils/units"

type Config struct {
	// InitialCapacity is the size of the backing store created with a
	// new pool, in bytes. It is rounded up to a whole number of words.
	InitialCapacity uint64 `json:"initialCapacity"`

	// MaxCapacity bounds the growth of the backing store. Allocation is
	// the unchecked tier and cannot return an error, so a pool that
	// needs to grow past this panics. 0 means unbounded.
	MaxCapacity uint64 `json:"maxCapacity"`
}

func NewDefaultConfig() Config {
	return Config{
		InitialCapacity: 4 * units.KiB,
		MaxCapacity:     0,
	}
}
