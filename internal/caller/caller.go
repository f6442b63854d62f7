// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Locates the first stack frame outside of a package.

// Package caller finds where a guarded float operation was invoked from.
package caller

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// maxDepth bounds the stack walk.
const maxDepth = 32

// nolint:gochecknoglobals
var trimPathsRe = regexp.MustCompile(`^.*?(github\.com/getoutreach/|golang\.org/|go/src/)`)

// Outside returns file:line of the nearest frame whose function does not
// belong to pkg, skipping the given number of frames above Outside's own
// caller. pkg is a full import path. It returns "unknown:0" when every
// frame belongs to pkg.
func Outside(skip int, pkg string) string {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !inPackage(frame.Function, pkg) {
			return fmt.Sprintf("%s:%d", trimPaths(frame.File), frame.Line)
		}
		if !more {
			return "unknown:0"
		}
	}
}

// inPackage reports whether the qualified function name fn was declared
// in pkg. Methods on generic types keep their package prefix, so
// "a/b.Float[...].Add" is in "a/b" while "a/b_test.TestX" is not.
func inPackage(fn, pkg string) bool {
	return strings.HasPrefix(fn, pkg+".")
}

// trimPaths removes known import path prefixes from a file name.
func trimPaths(s string) string {
	return trimPathsRe.ReplaceAllString(s, "")
}
