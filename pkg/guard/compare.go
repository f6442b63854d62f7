// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Equality, ordering and approximate comparison of guarded floats.

package guard

import "github.com/getoutreach/floatguard/pkg/number"

// DefaultUlps is the tolerance, in units in the last place, used by
// ApproxEqualUlps callers that have no better bound.
const DefaultUlps uint64 = 4

// DefaultEpsilon returns the machine epsilon of T, a reasonable absolute
// tolerance for ApproxEqual near 1.
func DefaultEpsilon[T number.Float]() T {
	return number.Epsilon[T]()
}

// Equal reports whether f == o. +0 and -0 are equal. go-cmp uses this
// method to compare guarded floats.
func (f Float[T, K]) Equal(o Float[T, K]) bool {
	return f.v == o.v
}

// Less reports whether f < o.
func (f Float[T, K]) Less(o Float[T, K]) bool {
	return f.v < o.v
}

// LessOrEqual reports whether f <= o.
func (f Float[T, K]) LessOrEqual(o Float[T, K]) bool {
	return f.v <= o.v
}

// Greater reports whether f > o.
func (f Float[T, K]) Greater(o Float[T, K]) bool {
	return f.v > o.v
}

// GreaterOrEqual reports whether f >= o.
func (f Float[T, K]) GreaterOrEqual(o Float[T, K]) bool {
	return f.v >= o.v
}

// Cmp returns -1, 0 or +1 depending on whether f is less than, equal to
// or greater than o. An incomparable pair can only come from a NaN that
// bypassed validation; Cmp panics on it.
func (f Float[T, K]) Cmp(o Float[T, K]) int {
	switch {
	case f.v < o.v:
		return -1
	case f.v > o.v:
		return 1
	case f.v == o.v:
		return 0
	}

	bad := f.v
	if number.IsFinite(bad) {
		bad = o.v
	}
	fatal(newViolation[K]("cmp", float64(bad)))
	return 0
}

// The Scalar comparisons treat v as though it had passed validation,
// through FromUnchecked. A NaN or infinite v trips the debug assertion;
// in release builds it is compared as a plain float.

// EqualScalar reports whether f == v.
func (f Float[T, K]) EqualScalar(v T) bool {
	return f.Equal(FromUnchecked[K](v))
}

// LessScalar reports whether f < v.
func (f Float[T, K]) LessScalar(v T) bool {
	return f.Less(FromUnchecked[K](v))
}

// LessOrEqualScalar reports whether f <= v.
func (f Float[T, K]) LessOrEqualScalar(v T) bool {
	return f.LessOrEqual(FromUnchecked[K](v))
}

// GreaterOrEqualScalar reports whether f >= v.
func (f Float[T, K]) GreaterOrEqualScalar(v T) bool {
	return f.GreaterOrEqual(FromUnchecked[K](v))
}

// GreaterScalar reports whether f > v.
func (f Float[T, K]) GreaterScalar(v T) bool {
	return f.Greater(FromUnchecked[K](v))
}

// CmpScalar is Cmp against a bare value.
func (f Float[T, K]) CmpScalar(v T) int {
	return f.Cmp(FromUnchecked[K](v))
}

// Compare is Cmp as a function, for slices.SortFunc and friends.
func Compare[T number.Float, K Kind](a, b Float[T, K]) int {
	return a.Cmp(b)
}

// Min returns the smaller of a and b, or a when they are equal.
func Min[T number.Float, K Kind](a, b Float[T, K]) Float[T, K] {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b, or a when they are equal.
func Max[T number.Float, K Kind](a, b Float[T, K]) Float[T, K] {
	if b.Greater(a) {
		return b
	}
	return a
}

// ApproxEqual reports whether f and o are within eps of each other.
func (f Float[T, K]) ApproxEqual(o Float[T, K], eps T) bool {
	return number.Abs(f.v-o.v) <= eps
}

// ApproxEqualUlps reports whether f and o are at most ulps representable
// values apart.
func (f Float[T, K]) ApproxEqualUlps(o Float[T, K], ulps uint64) bool {
	dist, ok := number.ULPDistance(f.v, o.v)
	return ok && dist <= ulps
}
