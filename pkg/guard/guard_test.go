package guard_test

import (
	"errors"
	"math"
	"testing"
	"unsafe"

	"github.com/getoutreach/floatguard/pkg/guard"
	"gotest.tools/v3/assert"
)

type celsius float32

func TestTryFromFinite(t *testing.T) {
	for _, v := range []float64{0, math.Copysign(0, -1), 1, -1, 5.6, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64} {
		f, err := guard.TryFrom[guard.Finite](v)
		assert.NilError(t, err)
		assert.Equal(t, math.Float64bits(f.Get()), math.Float64bits(v))
	}
}

func TestTryFromNotFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		f, err := guard.TryFrom[guard.Finite](v)
		assert.ErrorIs(t, err, guard.ErrNotFinite)
		assert.Equal(t, f, guard.Finite64{})

		var violation *guard.ViolationError
		assert.Assert(t, errors.As(err, &violation))
		assert.Equal(t, violation.Op, "try_from")
		assert.Equal(t, violation.Kind, "finite")
	}
}

func TestTryFromFloat32(t *testing.T) {
	f, err := guard.TryFrom[guard.Finite](float32(2.5))
	assert.NilError(t, err)
	assert.Equal(t, f.Get(), float32(2.5))

	_, err = guard.TryFrom[guard.Finite](float32(math.Inf(-1)))
	assert.ErrorIs(t, err, guard.ErrNotFinite)
}

func TestNamedFloatTypes(t *testing.T) {
	f, err := guard.NewFinite(celsius(21.5))
	assert.NilError(t, err)
	assert.Equal(t, f.Get(), celsius(21.5))
	assert.Equal(t, f.String(), "21.5")
}

func TestViolationError(t *testing.T) {
	_, err := guard.TryFrom[guard.Finite](math.Inf(1))
	assert.Error(t, err, "guard: try_from produced +Inf: a non-finite value was provided")

	fields := map[string]interface{}{}
	var violation *guard.ViolationError
	assert.Assert(t, errors.As(err, &violation))
	violation.MarshalLog(func(key string, v interface{}) { fields[key] = v })
	assert.DeepEqual(t, fields, map[string]interface{}{
		"guard.op":      "try_from",
		"guard.kind":    "finite",
		"guard.value":   "+Inf",
		"error.message": "a non-finite value was provided",
	})
}

func TestMustFrom(t *testing.T) {
	assert.Equal(t, guard.MustFrom[guard.Finite](1.25).Get(), 1.25)

	v := recoverViolation(t, func() { guard.MustFrom[guard.Finite](math.NaN()) })
	assert.Equal(t, v.Op, "from")
	assert.ErrorIs(t, v, guard.ErrNotFinite)
}

func TestFromUncheckedFinite(t *testing.T) {
	f := guard.FromUnchecked[guard.Finite](3.5)
	assert.Equal(t, f, finite(3.5))
}

func TestLayout(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(guard.Finite64{}), unsafe.Sizeof(float64(0)))
	assert.Equal(t, unsafe.Sizeof(guard.Finite32{}), unsafe.Sizeof(float32(0)))
	assert.Equal(t, unsafe.Sizeof(guard.Finite{}), uintptr(0))
}

func TestZeroValueIsZero(t *testing.T) {
	var f guard.Finite64
	assert.Assert(t, f.IsZero())
	assert.Equal(t, f, guard.Zero[float64, guard.Finite]())
}

func TestIdentities(t *testing.T) {
	zero := guard.Zero[float64, guard.Finite]()
	one := guard.One[float64, guard.Finite]()

	assert.Assert(t, zero.IsZero())
	assert.Assert(t, !one.IsZero())
	assert.Equal(t, one.Get(), 1.0)
	assert.Equal(t, guard.One[float32, guard.Finite]().Get(), float32(1))
}

func TestSign(t *testing.T) {
	assert.Assert(t, finite(-1).IsNegative())
	assert.Assert(t, finite(math.Copysign(0, -1)).IsNegative())
	assert.Assert(t, !finite(0).IsNegative())
	assert.Assert(t, !finite(2).IsNegative())
}

func TestFloorAbsNeg(t *testing.T) {
	tests := []struct {
		name  string
		in    float64
		floor float64
		abs   float64
	}{
		{"positive fraction", 2.7, 2, 2.7},
		{"negative fraction", -2.2, -3, 2.2},
		{"integer", 4, 4, 4},
		{"largest", math.MaxFloat64, math.MaxFloat64, math.MaxFloat64},
		{"smallest", -math.MaxFloat64, -math.MaxFloat64, math.MaxFloat64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := finite(tt.in)
			assert.Equal(t, f.Floor().Get(), tt.floor)
			assert.Equal(t, f.Abs().Get(), tt.abs)
			assert.Equal(t, f.Neg().Get(), -tt.in)
		})
	}
}

func TestToInt64(t *testing.T) {
	n, err := finite(-41.9).ToInt64()
	assert.NilError(t, err)
	assert.Equal(t, n, int64(-41))

	_, err = finite(1e300).ToInt64()
	assert.ErrorContains(t, err, "value overflow")
}

func TestString(t *testing.T) {
	assert.Equal(t, finite(5.6).String(), "5.6")
	assert.Equal(t, finite(-1e21).String(), "-1e+21")
	assert.Equal(t, guard.MustFinite(float32(0.1)).String(), "0.1")
	assert.Equal(t, finite(0.1).Float64(), 0.1)
}
