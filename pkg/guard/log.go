// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Reports invariant violations before the fatal paths panic.

package guard

import (
	"sync/atomic"

	"github.com/getoutreach/floatguard/internal/caller"
	"github.com/getoutreach/floatguard/internal/logf"
	"github.com/go-logr/logr"
)

// violationMessage is logged for every fatal violation.
const violationMessage = "guarded float invariant violated"

// pkgPath is used to find the first caller outside of this package.
const pkgPath = "github.com/getoutreach/floatguard/pkg/guard"

// nolint:gochecknoglobals // Why: process wide logger, swapped atomically
var logger atomic.Pointer[logr.Logger]

// SetLogger installs the logger used to report violations on the fatal
// paths (MustFrom, FromUnchecked, Add/Sub/Mul/Div, AddOne/SubOne, Cmp)
// right before they panic. The default discards everything. Safe for
// concurrent use.
func SetLogger(l logr.Logger) {
	logger.Store(&l)
}

// Logger returns the installed violation logger.
func Logger() logr.Logger {
	if l := logger.Load(); l != nil {
		return *l
	}
	return logr.Discard()
}

// fatal logs err along with the call site that triggered it and panics
// with err. Callers have no error channel.
func fatal(err error) {
	l := Logger()
	if l.GetSink() != nil {
		fields := []logf.Marshaler{logf.F{"guard.caller": caller.Outside(1, pkgPath)}}
		if m, ok := err.(logf.Marshaler); ok { //nolint:errorlint // Why: only our own errors reach here
			fields = append(fields, m)
		}
		l.Error(err, violationMessage, logf.KeysAndValues(fields...)...)
	}
	panic(err)
}
