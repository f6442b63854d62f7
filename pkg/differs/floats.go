// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Comparers for guarded and plain floats.

package differs

import (
	"math"

	"github.com/getoutreach/floatguard/pkg/number"
)

// Guarded is implemented by every guard.Float instantiation.
type Guarded interface {
	Float64() float64
}

// asFloat64 widens o when it is a float32, float64 or guarded float.
func asFloat64(o interface{}) (float64, bool) {
	switch v := o.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case Guarded:
		return v.Float64(), true
	}
	return 0, false
}

// FloatRange allows a value between start and end, inclusive.
func FloatRange(start, end float64) CustomComparer {
	return Customf(func(o interface{}) bool {
		f, ok := asFloat64(o)
		return ok && f >= start && f <= end
	})
}

// AnyFinite allows any finite value.
func AnyFinite() CustomComparer {
	return Customf(func(o interface{}) bool {
		f, ok := asFloat64(o)
		return ok && number.IsFinite(f)
	})
}

// Approx allows a value at most ulps representable float64 values away
// from want. Float32 values are compared after widening.
func Approx(want float64, ulps uint64) CustomComparer {
	return Customf(func(o interface{}) bool {
		f, ok := asFloat64(o)
		if !ok {
			return false
		}
		dist, ok := number.ULPDistance(want, f)
		return ok && dist <= ulps
	})
}

// CaptureFloat matches any finite value the first time it is used; later
// uses must match that value exactly.
func CaptureFloat() CustomComparer {
	matched := math.NaN()
	return Customf(func(o interface{}) bool {
		f, ok := asFloat64(o)
		if !ok || !number.IsFinite(f) {
			return false
		}
		if math.IsNaN(matched) {
			matched = f
		}
		return f == matched
	})
}
