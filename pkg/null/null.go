// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Nullable finite floats on top of https://github.com/guregu/null

// Package null provides a nullable guarded float for SQL and JSON. A Finite
// is either null or holds a finite float64; every decode path validates.
package null

import (
	"database/sql/driver"

	"github.com/getoutreach/floatguard/pkg/guard"
	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v4"
)

// Finite is a nullable guard.Finite64. It does not consider zero to be
// null and decodes to null, not zero, on null input.
type Finite struct {
	f null.Float
}

// NewFinite creates a Finite, validating v when valid is true.
func NewFinite(v float64, valid bool) (Finite, error) {
	if !valid {
		return Finite{}, nil
	}
	g, err := guard.NewFinite(v)
	if err != nil {
		return Finite{}, err
	}
	return FiniteFrom(g), nil
}

// FiniteFrom creates a Finite that is never null.
func FiniteFrom(g guard.Finite64) Finite {
	return Finite{null.FloatFrom(g.Get())}
}

// FiniteFromPtr creates a Finite that is null when g is nil.
func FiniteFromPtr(g *guard.Finite64) Finite {
	if g == nil {
		return Finite{}
	}
	return FiniteFrom(*g)
}

// Valid reports whether n holds a value.
func (n Finite) Valid() bool {
	return n.f.Valid
}

// Guard returns the held value and true, or zero and false when null.
func (n Finite) Guard() (guard.Finite64, bool) {
	if !n.f.Valid {
		return guard.Finite64{}, false
	}
	return guard.FromUnchecked[guard.Finite](n.f.Float64), true
}

// ValueOrZero returns the held value, or zero when null.
func (n Finite) ValueOrZero() guard.Finite64 {
	g, _ := n.Guard()
	return g
}

// IsZero reports whether n is null, for omitempty support.
func (n Finite) IsZero() bool {
	return !n.f.Valid
}

// Equal reports whether both are null or both hold the same value.
func (n Finite) Equal(o Finite) bool {
	return n.f.Equal(o.f)
}

// MarshalJSON encodes null or a JSON number.
func (n Finite) MarshalJSON() ([]byte, error) {
	return n.f.MarshalJSON()
}

// UnmarshalJSON accepts null, a number or a numeric string.
func (n *Finite) UnmarshalJSON(data []byte) error {
	var f null.Float
	if err := f.UnmarshalJSON(data); err != nil {
		return errors.Wrap(err, "null: unmarshal finite")
	}
	return n.set("unmarshal_json", f)
}

// MarshalText encodes a blank string when null.
func (n Finite) MarshalText() ([]byte, error) {
	return n.f.MarshalText()
}

// UnmarshalText treats "" and "null" as null.
func (n *Finite) UnmarshalText(text []byte) error {
	var f null.Float
	if err := f.UnmarshalText(text); err != nil {
		return errors.Wrap(err, "null: unmarshal finite")
	}
	return n.set("unmarshal_text", f)
}

// Scan implements sql.Scanner.
func (n *Finite) Scan(src interface{}) error {
	var f null.Float
	if err := f.Scan(src); err != nil {
		return errors.Wrap(err, "null: scan finite")
	}
	return n.set("scan", f)
}

// Value implements driver.Valuer.
func (n Finite) Value() (driver.Value, error) {
	return n.f.Value()
}

// set stores f after checking a valid f is finite.
func (n *Finite) set(op string, f null.Float) error {
	if f.Valid {
		if _, err := guard.NewFinite(f.Float64); err != nil {
			return errors.Wrap(err, "null: "+op)
		}
	}
	n.f = f
	return nil
}
