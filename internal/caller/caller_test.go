package caller

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

const self = "github.com/getoutreach/floatguard/internal/caller"

func nested(pkg string) string {
	return Outside(0, pkg)
}

func TestOutsideSkipsPackageFrames(t *testing.T) {
	// Every frame up to the test runner belongs to this package.
	got := nested(self)
	assert.Assert(t, strings.Contains(got, "testing/testing.go:"), got)
}

func TestOutsideReportsFirstForeignFrame(t *testing.T) {
	got := nested("example.com/none")
	assert.Assert(t, strings.HasSuffix(strings.Split(got, ":")[0], "internal/caller/caller_test.go"), got)
}

func TestInPackage(t *testing.T) {
	tests := []struct {
		fn   string
		want bool
	}{
		{"github.com/x/pkg/guard.fatal", true},
		{"github.com/x/pkg/guard.Float[...].Add", true},
		{"github.com/x/pkg/guard_test.TestAdd.func1", false},
		{"github.com/x/pkg/guardian.New", false},
	}
	for _, tt := range tests {
		assert.Equal(t, inPackage(tt.fn, "github.com/x/pkg/guard"), tt.want, tt.fn)
	}
}

func TestTrimPaths(t *testing.T) {
	assert.Equal(t, trimPaths("/home/ci/go/pkg/mod/github.com/getoutreach/floatguard/pkg/guard/arith.go"), "floatguard/pkg/guard/arith.go")
	assert.Equal(t, trimPaths("/usr/local/go/src/testing/testing.go"), "testing/testing.go")
	assert.Equal(t, trimPaths("main.go"), "main.go")
}
