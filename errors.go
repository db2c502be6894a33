// errors.go: Error handling integration for the hyperring library
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hyperring

import (
	"github.com/agilira/go-errors"
)

// Error codes for the hyperring library.
//
// The ring protocol itself is total: once a ring is built, every operation
// completes without error. The only error surface is construction-time
// contract validation.
const (
	// ErrCodeInvalidCapacity is returned when the requested ring capacity
	// is not a power of two greater than or equal to two.
	ErrCodeInvalidCapacity errors.ErrorCode = "HYPERRING_INVALID_CAPACITY"
)

// newRingError creates a hyperring-specific error with standard context.
func newRingError(code errors.ErrorCode, message string) *errors.Error {
	return errors.New(code, message).
		WithSeverity("error").
		WithContext("component", "hyperring")
}
