// ring.go: Shared container contract and construction validation
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

import (
	"github.com/agilira/go-errors"
)

// container is the minimal capability set a Reader needs from a ring. Both
// ring shapes satisfy it; the variant is not observable through a Reader.
type container[T any] interface {
	// retrieve returns a pointer to the slot at cursor if that position
	// has been published, nil otherwise.
	retrieve(cursor int64) *T

	// readableTo returns the current publication cursor. Slots below it
	// are published.
	readableTo() int64

	// finished reports whether no further writes will occur.
	finished() bool
}

// validateCapacity enforces the construction contract: capacity must be a
// power of two and at least two, so slot addressing can reduce indices with
// a single bitwise AND.
func validateCapacity(capacity int64) *errors.Error {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		return newRingError(ErrCodeInvalidCapacity,
			"ring capacity must be a power of two and at least 2")
	}
	return nil
}
