// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Structured log fields shared by guard errors and the logr bridge.

// Package logf has the F implementation used to describe guarded float
// violations as structured log fields.
package logf

import "sort"

// Marshaler is implemented by values that can describe themselves as
// log fields, such as guard.ViolationError.
type Marshaler interface {
	MarshalLog(addField func(key string, v interface{}))
}

// Marshal checks if v implements Marshaler. If it does, it recursively
// calls MarshalLog, joining nested field names with ".".
func Marshal(prefix string, v interface{}, setField func(key string, value interface{})) {
	if m, ok := v.(Marshaler); ok {
		m.MarshalLog(func(inner string, val interface{}) {
			if prefix == "" {
				Marshal(inner, val, setField)
			} else {
				Marshal(prefix+"."+inner, val, setField)
			}
		})
	} else if prefix != "" {
		setField(prefix, v)
	}
}

// F implements a generic Marshaler
type F map[string]interface{}

// Set writes the field value into F, flattening nested Marshalers.
func (f F) Set(field string, value interface{}) {
	Marshal(field, value, func(key string, value interface{}) {
		f[key] = value
	})
}

// MarshalLog implements the Marshaler interface for F
func (f F) MarshalLog(addField func(field string, value interface{})) {
	for k, v := range f {
		addField(k, v)
	}
}

// Many aggregates marshaling of many items
type Many []Marshaler

// MarshalLog calls MarshalLog on all the individual elements
func (m Many) MarshalLog(addField func(key string, v interface{})) {
	for _, item := range m {
		if item != nil {
			item.MarshalLog(addField)
		}
	}
}

// KeysAndValues flattens m into the alternating key/value list that
// logr.Logger expects. Keys are sorted so output is deterministic.
func KeysAndValues(m ...Marshaler) []interface{} {
	f := F{}
	Many(m).MarshalLog(f.Set)

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		kv = append(kv, k, f[k])
	}
	return kv
}
