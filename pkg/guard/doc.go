// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Package documentation for guard.

// Package guard implements guarded floats: floating point values that are
// statically tagged with the subset of values they belong to.
//
// A guarded float is a Float[T, K] where T is float32 or float64 (or a
// type derived from them) and K is a zero-size Kind whose predicate the
// wrapped value satisfies. Finite is the only kind: it excludes NaN and
// both infinities. A Float[T, K] has the same size as T.
//
//	speed, err := guard.TryFrom[guard.Finite](v)
//	if err != nil {
//		// errors.Is(err, guard.ErrNotFinite)
//	}
//
// # Construction
//
// TryFrom is the validation gate for untrusted input. FromUnchecked skips
// validation; the caller promises the predicate holds. Unless built with
// the floatguard_release tag, FromUnchecked still asserts the predicate
// and panics on violation. MustFrom validates and panics on failure.
//
// # Two arithmetic surfaces
//
// Every operation comes in two forms, and the choice between them is the
// contract:
//
//   - TryAdd, TrySub, TryMul, TryDiv (and their Scalar variants) return a
//     *ViolationError when the result leaves the kind, e.g. overflow to
//     infinity or 0/0.
//   - Add, Sub, Mul, Div stand in for the + - * / operators. They have no
//     error channel: a result outside the kind is logged through the
//     logger installed with SetLogger and then panics with the
//     *ViolationError. Use them only when overflow is impossible or a
//     crash is acceptable.
//
// # Ordering
//
// Values of a NaN-free kind are totally ordered: Cmp, Compare, Min and
// Max never see an incomparable pair. Comparisons against a bare T (the
// Scalar methods) treat the bare value as if it were already valid.
//
// # Ranges
//
// Range walks a half-open interval by a fixed step. A step that would
// leave the kind ends the sequence instead of failing. Counting the steps
// of a range is not supported.
package guard
