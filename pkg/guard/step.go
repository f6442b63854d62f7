// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Stepping guarded floats and walking ranges of them.

package guard

import (
	"iter"

	"github.com/getoutreach/floatguard/pkg/number"
	"github.com/pkg/errors"
)

// Step returns f + by. ok is false when the sum would leave K, which ends
// a walk rather than failing it.
func (f Float[T, K]) Step(by Float[T, K]) (next Float[T, K], ok bool) {
	next, err := f.TryAdd(by)
	return next, err == nil
}

// AddOne returns f + 1 and panics if the result leaves K.
func (f Float[T, K]) AddOne() Float[T, K] {
	return must(f.TryAddScalar(number.One[T]()))
}

// SubOne returns f - 1 and panics if the result leaves K.
func (f Float[T, K]) SubOne() Float[T, K] {
	return must(f.TrySubScalar(number.One[T]()))
}

// StepsBetween would count the steps of size by from start to end. It is
// not supported and always returns ErrStepsUnsupported.
func StepsBetween[T number.Float, K Kind](start, end, by Float[T, K]) (int, error) {
	return 0, errors.Wrapf(ErrStepsUnsupported, "from %v to %v by %v", start, end, by)
}

// Range is the half-open interval [start, end) walked by a fixed step.
// With a negative step the walk goes down and end is exclusive from
// above. A Range is immutable: every call to All starts over.
type Range[T number.Float, K Kind] struct {
	start, end, by Float[T, K]
}

// NewRange returns the range [start, end) stepped by One.
func NewRange[T number.Float, K Kind](start, end Float[T, K]) Range[T, K] {
	return Range[T, K]{start: start, end: end, by: One[T, K]()}
}

// NewRangeBy returns the range [start, end) stepped by by. A zero step
// is rejected with ErrZeroStep. A non-zero step that is absorbed by
// rounding ends the walk in All instead.
func NewRangeBy[T number.Float, K Kind](start, end, by Float[T, K]) (Range[T, K], error) {
	if by.IsZero() {
		return Range[T, K]{}, errors.Wrapf(ErrZeroStep, "range from %v to %v", start, end)
	}
	return Range[T, K]{start: start, end: end, by: by}, nil
}

// Start returns the first value of the range, if it is not empty.
func (r Range[T, K]) Start() Float[T, K] { return r.start }

// End returns the exclusive bound of the range.
func (r Range[T, K]) End() Float[T, K] { return r.end }

// By returns the step of the range.
func (r Range[T, K]) By() Float[T, K] { return r.by }

// Contains reports whether v lies between the bounds, regardless of
// whether the walk lands on it.
func (r Range[T, K]) Contains(v Float[T, K]) bool {
	if r.by.IsNegative() {
		return v.LessOrEqual(r.start) && v.Greater(r.end)
	}
	return v.GreaterOrEqual(r.start) && v.Less(r.end)
}

// Len is not supported; see StepsBetween.
func (r Range[T, K]) Len() (int, error) {
	return StepsBetween(r.start, r.end, r.by)
}

// All yields start, start+by, start+2*by, ... while the value is on the
// start side of end. The sequence also ends after a value whose next step
// would leave K, or would round back to the same value because by is too
// small to move it.
func (r Range[T, K]) All() iter.Seq[Float[T, K]] {
	down := r.by.IsNegative()
	return func(yield func(Float[T, K]) bool) {
		cur := r.start
		for (down && cur.Greater(r.end)) || (!down && cur.Less(r.end)) {
			if !yield(cur) {
				return
			}
			next, ok := cur.Step(r.by)
			if !ok || next.Equal(cur) {
				return
			}
			cur = next
		}
	}
}
