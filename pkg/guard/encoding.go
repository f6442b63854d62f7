// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: JSON, text, YAML and SQL codecs that validate on decode.

package guard

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"strconv"

	"github.com/getoutreach/floatguard/pkg/number"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// nullJSON is the JSON literal null.
var nullJSON = []byte("null")

// parse reads s at the width of T. Values too large for T parse as an
// infinity and are reported by the kind check, not as a syntax error.
func parse[K Kind, T number.Float](op, s string) (Float[T, K], error) {
	v, err := strconv.ParseFloat(s, number.BitSize[T]())
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Float[T, K]{}, errors.Wrapf(err, "guard: %s", op)
	}
	return tryFrom[K](op, T(v))
}

// MarshalJSON encodes f as a JSON number.
func (f Float[T, K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.v)
}

// UnmarshalJSON decodes a JSON number into f. null leaves f unchanged.
// Quoted numbers such as "2.5" are rejected, as they are for float64.
func (f *Float[T, K]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, nullJSON) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return errors.Errorf("guard: unmarshal json: cannot decode string %s into a guarded float", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "guard: unmarshal json")
	}

	v, err := parse[K, T]("unmarshal_json", n.String())
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText encodes f like String.
func (f Float[T, K]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses text as a float and validates it.
func (f *Float[T, K]) UnmarshalText(text []byte) error {
	v, err := parse[K, T]("unmarshal_text", string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalYAML encodes f as a YAML float.
func (f Float[T, K]) MarshalYAML() (interface{}, error) {
	return f.v, nil
}

// UnmarshalYAML decodes a YAML scalar into f. .nan and .inf are rejected.
func (f *Float[T, K]) UnmarshalYAML(node *yaml.Node) error {
	var raw T
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "guard: unmarshal yaml")
	}

	v, err := tryFrom[K]("unmarshal_yaml", raw)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Value implements driver.Valuer, storing f as a float64.
func (f Float[T, K]) Value() (driver.Value, error) {
	return float64(f.v), nil
}

// Scan implements sql.Scanner. NULL is an error; use null.Finite for
// nullable columns.
func (f *Float[T, K]) Scan(src interface{}) error {
	var (
		v   Float[T, K]
		err error
	)
	switch src := src.(type) {
	case float64:
		v, err = tryFrom[K]("scan", T(src))
	case float32:
		v, err = tryFrom[K]("scan", T(src))
	case int64:
		v, err = tryFrom[K]("scan", T(src))
	case []byte:
		v, err = parse[K, T]("scan", string(src))
	case string:
		v, err = parse[K, T]("scan", src)
	case nil:
		return errors.New("guard: cannot scan NULL into a guarded float")
	default:
		return errors.Errorf("guard: cannot scan %T into a guarded float", src)
	}
	if err != nil {
		return err
	}
	*f = v
	return nil
}
