// Copyright 2025 Outreach Corporation. All Rights Reserved.
// Description: Numeric traits and conversion utilities for floating point values.

// Package number provides the baseline float operations guarded floats are
// built on: finiteness and sign tests, identities, rounding, tolerances and
// checked conversions to integers.
package number

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/pkg/errors"
)

// Number can hold any numeric data.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any 32-bit or 64-bit floating point type.
type Float interface {
	constraints.Float
}

// BitSize returns 32 or 64 depending on the width of T.
func BitSize[T Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Zero returns the additive identity of T.
func Zero[T Float]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Float]() T {
	return 1
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsNaN reports whether v is an IEEE 754 "not-a-number" value.
func IsNaN[T Float](v T) bool {
	return v != v
}

// SignNegative reports whether the sign bit of v is set. Unlike v < 0
// this is true for -0.
func SignNegative[T Float](v T) bool {
	return math.Signbit(float64(v))
}

// Floor returns the greatest integer value less than or equal to v.
func Floor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

// Abs returns the absolute value of v.
func Abs[T Float](v T) T {
	return T(math.Abs(float64(v)))
}

// Epsilon returns the difference between 1 and the next representable
// value of T.
func Epsilon[T Float]() T {
	if BitSize[T]() == 32 {
		return T(float32(0x1p-23))
	}
	return T(0x1p-52)
}

// ULPDistance returns the number of representable values of T between a
// and b. -0 and +0 are zero ULPs apart. ok is false when either value is
// NaN.
func ULPDistance[T Float](a, b T) (dist uint64, ok bool) {
	if IsNaN(a) || IsNaN(b) {
		return 0, false
	}
	if BitSize[T]() == 32 {
		return distance(ordered32(float32(a)), ordered32(float32(b))), true
	}
	return distance(ordered64(float64(a)), ordered64(float64(b))), true
}

// ordered64 maps the bits of f onto a line where integer order matches
// float order.
func ordered64(f float64) int64 {
	b := int64(math.Float64bits(f))
	if b < 0 {
		return math.MinInt64 - b
	}
	return b
}

func ordered32(f float32) int64 {
	b := int64(int32(math.Float32bits(f)))
	if b < 0 {
		return math.MinInt32 - b
	}
	return b
}

func distance(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// ToInt64 converts a float value to an int64, truncating toward zero.
func ToInt64[T Float](value T) (int64, error) {
	const typeName = "int64"
	f := float64(value)
	switch {
	case IsNaN(value):
		return 0, nanError(typeName)
	case f < math.MinInt64:
		return 0, underflowError(value, typeName)
	case f >= math.MaxInt64:
		return 0, overflowError(value, typeName)
	}
	return int64(f), nil
}

// ToUInt64 converts a float value to an uint64, truncating toward zero.
func ToUInt64[T Float](value T) (uint64, error) {
	const typeName = "uint64"
	f := float64(value)
	switch {
	case IsNaN(value):
		return 0, nanError(typeName)
	case f < 0:
		return 0, underflowError(value, typeName)
	case f >= math.MaxUint64:
		return 0, overflowError(value, typeName)
	}
	return uint64(f), nil
}

// ToInt32 converts a float value to an int32, truncating toward zero.
func ToInt32[T Float](value T) (int32, error) {
	const typeName = "int32"
	f := float64(value)
	switch {
	case IsNaN(value):
		return 0, nanError(typeName)
	case f < math.MinInt32:
		return 0, underflowError(value, typeName)
	case f > math.MaxInt32:
		return 0, overflowError(value, typeName)
	}
	return int32(f), nil
}

func nanError(typeName string) error {
	return errors.Errorf("unable to convert NaN to %v", typeName)
}

func underflowError[T Number](number T, typeName string) error {
	const underflowErrorMessage = "value underflow when converting %v to %v"
	return errors.Errorf(underflowErrorMessage, number, typeName)
}

func overflowError[T Number](number T, typeName string) error {
	const overflowErrorMessage = "value overflow when converting %v to %v"
	return errors.Errorf(overflowErrorMessage, number, typeName)
}
