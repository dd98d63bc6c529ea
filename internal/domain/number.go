package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Number is a numeric field as it arrives from forms and spreadsheet imports:
// a JSON number, a numeric string, an empty string or null.
type Number struct {
	raw interface{}
}

// Num wraps an arbitrary value (float, int, string) as a Number.
func Num(v interface{}) Number {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	return Number{raw: v}
}

// IsSet reports whether a value was supplied at all.
func (n Number) IsSet() bool {
	switch v := n.raw.(type) {
	case nil:
		return false
	case string:
		return v != ""
	default:
		return true
	}
}

// Float parses the value. Booleans, NaN and infinities are rejected.
func (n Number) Float() (float64, bool) {
	if !n.IsSet() {
		return 0, false
	}
	if _, isBool := n.raw.(bool); isBool {
		return 0, false
	}

	f, err := cast.ToFloat64E(n.raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// OrZero returns the parsed value, or 0 when it is absent or unparsable.
func (n Number) OrZero() float64 {
	f, _ := n.Float()
	return f
}

// OrDefault returns def when the value is absent, 0 when it is unparsable.
func (n Number) OrDefault(def float64) float64 {
	if !n.IsSet() {
		return def
	}
	return n.OrZero()
}

// Raw returns the value as supplied.
func (n Number) Raw() interface{} {
	return n.raw
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.raw = nil
		return nil
	}

	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if f, ok := n.Float(); ok {
		return json.Marshal(f)
	}
	if !n.IsSet() {
		return []byte("null"), nil
	}
	return json.Marshal(n.raw)
}

// UnmarshalYAML accepts scalars the same way UnmarshalJSON does.
func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	*n = Num(v)
	return nil
}
