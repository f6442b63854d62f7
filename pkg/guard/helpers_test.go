package guard_test

import (
	"errors"
	"testing"

	"github.com/getoutreach/floatguard/pkg/guard"
	"gotest.tools/v3/assert"
)

// recoverViolation runs fn, which must panic with a *guard.ViolationError.
func recoverViolation(t *testing.T, fn func()) (v *guard.ViolationError) {
	t.Helper()
	defer func() {
		r := recover()
		assert.Assert(t, r != nil, "expected a panic")
		err, ok := r.(error)
		assert.Assert(t, ok, "panic value %v is not an error", r)
		assert.Assert(t, errors.As(err, &v), "panic value %v is not a violation", err)
	}()
	fn()
	return nil
}

func finite(v float64) guard.Finite64 {
	return guard.MustFinite(v)
}
