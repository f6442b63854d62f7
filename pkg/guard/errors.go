// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Errors reported by guarded float operations.

package guard

import (
	"fmt"
	"strconv"
)

// A SentinelError is a constant which ought to be compared using errors.Is.
type SentinelError string

// Error returns s as a string.
func (s SentinelError) Error() string {
	return string(s)
}

const (
	// ErrNotFinite is reported when a value is NaN or infinite.
	ErrNotFinite SentinelError = "a non-finite value was provided"

	// ErrZeroStep is reported when a range is built with a zero step.
	ErrZeroStep SentinelError = "range step must not be zero"

	// ErrStepsUnsupported is reported when the number of steps between two
	// bounds is requested.
	ErrStepsUnsupported SentinelError = "counting steps between guarded floats is not supported"
)

// ViolationError is returned, or panicked with, when a value falls
// outside of a kind. It unwraps to the kind's sentinel error.
type ViolationError struct {
	// Op is the operation that produced the value, e.g. "add".
	Op string

	// Kind is the name of the violated kind.
	Kind string

	// Value is the offending value widened to float64.
	Value float64

	// Err is the kind's sentinel error.
	Err error
}

func newViolation[K Kind](op string, v float64) *ViolationError {
	var k K
	return &ViolationError{Op: op, Kind: k.Name(), Value: v, Err: k.Violation()}
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	return fmt.Sprintf("guard: %s produced %v: %v", e.Op, e.Value, e.Err)
}

// Unwrap returns the kind's sentinel error.
func (e *ViolationError) Unwrap() error {
	return e.Err
}

// MarshalLog describes the violation as log fields. The value is
// formatted as a string since NaN and infinities have no JSON encoding.
func (e *ViolationError) MarshalLog(addField func(key string, v interface{})) {
	addField("guard.op", e.Op)
	addField("guard.kind", e.Kind)
	addField("guard.value", strconv.FormatFloat(e.Value, 'g', -1, 64))
	if e.Err != nil {
		addField("error.message", e.Err.Error())
	}
}
