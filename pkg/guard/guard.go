// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: The guarded float type and its constructors.

package guard

import (
	"strconv"

	"github.com/getoutreach/floatguard/pkg/number"
)

// Float wraps a single T that satisfies K's predicate. It has the same
// size as T; K has no runtime representation.
//
// The zero value holds 0, so it is only valid for kinds that admit 0,
// such as Finite.
type Float[T number.Float, K Kind] struct {
	v T
}

// Finite64 is a finite float64.
type Finite64 = Float[float64, Finite]

// Finite32 is a finite float32.
type Finite32 = Float[float32, Finite]

// TryFrom validates v against K and wraps it. A value outside of K is
// reported as a *ViolationError wrapping the kind's sentinel.
func TryFrom[K Kind, T number.Float](v T) (Float[T, K], error) {
	return tryFrom[K]("try_from", v)
}

func tryFrom[K Kind, T number.Float](op string, v T) (Float[T, K], error) {
	if !admits[K](v) {
		return Float[T, K]{}, newViolation[K](op, float64(v))
	}
	return Float[T, K]{v}, nil
}

// FromUnchecked wraps v without validating it. The caller guarantees that
// v satisfies K. Unless the package is built with the floatguard_release
// tag the guarantee is asserted, and a violation is logged and panics.
func FromUnchecked[K Kind, T number.Float](v T) Float[T, K] {
	if debugAssertions && !admits[K](v) {
		fatal(newViolation[K]("from_unchecked", float64(v)))
	}
	return Float[T, K]{v}
}

// MustFrom is TryFrom that panics when v is outside of K.
func MustFrom[K Kind, T number.Float](v T) Float[T, K] {
	f, err := tryFrom[K]("from", v)
	if err != nil {
		fatal(err)
	}
	return f
}

// NewFinite validates that v is finite.
func NewFinite[T number.Float](v T) (Float[T, Finite], error) {
	return TryFrom[Finite](v)
}

// MustFinite is NewFinite that panics on NaN or infinite input.
func MustFinite[T number.Float](v T) Float[T, Finite] {
	return MustFrom[Finite](v)
}

// Zero returns the additive identity.
func Zero[T number.Float, K Kind]() Float[T, K] {
	return FromUnchecked[K](number.Zero[T]())
}

// One returns the multiplicative identity.
func One[T number.Float, K Kind]() Float[T, K] {
	return FromUnchecked[K](number.One[T]())
}

// Get returns the wrapped value.
func (f Float[T, K]) Get() T {
	return f.v
}

// Float64 returns the wrapped value widened to float64.
func (f Float[T, K]) Float64() float64 {
	return float64(f.v)
}

// IsZero reports whether f is +0 or -0.
func (f Float[T, K]) IsZero() bool {
	return f.v == 0
}

// IsNegative reports whether the sign bit of f is set, including -0.
func (f Float[T, K]) IsNegative() bool {
	return number.SignNegative(f.v)
}

// Floor returns the largest integer less than or equal to f. The floor of
// a finite value is finite, so the result is not re-validated.
func (f Float[T, K]) Floor() Float[T, K] {
	return Float[T, K]{number.Floor(f.v)}
}

// Abs returns the absolute value of f. Finite in, finite out.
func (f Float[T, K]) Abs() Float[T, K] {
	return Float[T, K]{number.Abs(f.v)}
}

// Neg returns -f. Finite in, finite out.
func (f Float[T, K]) Neg() Float[T, K] {
	return Float[T, K]{-f.v}
}

// ToInt64 truncates f toward zero, failing when it does not fit.
func (f Float[T, K]) ToInt64() (int64, error) {
	return number.ToInt64(f.v)
}

// String formats f with the fewest digits that round-trip at the width
// of T.
func (f Float[T, K]) String() string {
	return strconv.FormatFloat(float64(f.v), 'g', -1, number.BitSize[T]())
}
