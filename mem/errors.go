// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mem

import "errors"

var ErrOutOfBounds = errors.New("copy range out of bounds")
