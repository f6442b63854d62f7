package guard_test

import (
	"testing"

	"github.com/getoutreach/floatguard/pkg/guard"
)

// nolint:gochecknoglobals // Why: keeps results alive past the compiler
var (
	sinkGuard guard.Finite64
	sinkFloat float64
)

func BenchmarkTryFrom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			f, err := guard.TryFrom[guard.Finite](2.0)
			if err == nil {
				sinkGuard = f
			}
		}
	}
}

func BenchmarkMustFrom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			sinkGuard = guard.MustFinite(2.0)
		}
	}
}

func BenchmarkPlainFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for j := 0; j < 100; j++ {
			sinkFloat = 2.0
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	x, y := guard.MustFinite(1.5), guard.MustFinite(2.25)
	for i := 0; i < b.N; i++ {
		sinkGuard = x.Add(y)
	}
}

func BenchmarkRange(b *testing.B) {
	r := guard.NewRange(guard.MustFinite(0.0), guard.MustFinite(1000.0))
	for i := 0; i < b.N; i++ {
		for f := range r.All() {
			sinkGuard = f
		}
	}
}

func TestConstructDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		sinkGuard, _ = guard.TryFrom[guard.Finite](2.0)
		sinkGuard = sinkGuard.Add(guard.MustFinite(1.0))
	})
	if allocs != 0 {
		t.Fatalf("got %v allocations, want 0", allocs)
	}
}
