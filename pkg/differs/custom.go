// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Hooks custom float comparers into go-cmp.

// Package differs provides go-cmp comparers for guarded and plain floats.
//
// Put a CustomComparer in the expected value and pass Custom() to cmp:
//
//	want := map[string]interface{}{"speed": differs.FloatRange(4, 5)}
//	diff := cmp.Diff(want, got, differs.Custom())
package differs

import "github.com/google/go-cmp/cmp"

// CustomComparer is the type returned by custom comparisons
type CustomComparer interface {
	CompareCustom(o interface{}) bool
}

// Custom returns the cmp.Option that lets a CustomComparer on either
// side decide equality.
func Custom() cmp.Option {
	return cmp.FilterValues(
		func(l, r interface{}) bool {
			_, lok := l.(CustomComparer)
			_, rok := r.(CustomComparer)
			return lok || rok
		},
		cmp.Comparer(func(l, r interface{}) bool {
			if lcmp, lok := l.(CustomComparer); lok {
				return lcmp.CompareCustom(r)
			}
			return r.(CustomComparer).CompareCustom(l)
		}),
	)
}

// Customf converts a function into a custom comparer
type Customf func(o interface{}) bool

// CompareCustom calls c.
func (c Customf) CompareCustom(o interface{}) bool {
	return c(o)
}
