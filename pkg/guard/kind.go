// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Kinds classify which floating point values a guard admits.

package guard

import "github.com/getoutreach/floatguard/pkg/number"

// Kind is a zero-size marker naming a subset of floating point values.
// Each kind has exactly one predicate, Admits, and one sentinel error
// reported when a value fails it.
type Kind interface {
	~struct{}

	// Name is the kind's name as it appears in errors and logs.
	Name() string

	// Admits reports whether v belongs to the kind. float32 values are
	// widened losslessly before the check.
	Admits(v float64) bool

	// Violation is the sentinel error for values outside the kind.
	Violation() error
}

// Finite admits every value except NaN and the two infinities. Finite
// values are totally ordered.
type Finite struct{}

// Name returns "finite".
func (Finite) Name() string { return "finite" }

// Admits reports whether v is finite.
func (Finite) Admits(v float64) bool { return number.IsFinite(v) }

// Violation returns ErrNotFinite.
func (Finite) Violation() error { return ErrNotFinite }

// admits evaluates K's predicate for v.
func admits[K Kind, T number.Float](v T) bool {
	var k K
	return k.Admits(float64(v))
}
