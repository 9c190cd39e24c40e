package snapshot

import (
	"encoding/json"
	"strconv"
	"strings"

	"college-assist/internal/pkg/coerce"
)

// Number is a float64 that also accepts numeric strings when decoding.
// Anything unparsable decodes to zero instead of failing the document.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*n = 0
		return nil
	}
	*n = Number(coerce.Float(v, 0))
	return nil
}

// Float returns the underlying value.
func (n Number) Float() float64 { return float64(n) }

// NumberPtr is a convenience for optional numeric fields.
func NumberPtr(v float64) *Number {
	n := Number(v)
	return &n
}

// Flag is a bool that remembers whether the field was present, so absent
// values can fall back to a per-field default. Decoding accepts booleans,
// truthy strings and numbers; it never fails.
type Flag struct {
	Defined bool
	Value   bool
}

// NewFlag returns a defined Flag.
func NewFlag(v bool) Flag { return Flag{Defined: true, Value: v} }

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	if v == nil {
		return nil
	}
	f.Defined = true
	f.Value = coerce.Bool(v, false)
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// Or returns the value, or def when the field was absent.
func (f Flag) Or(def bool) bool {
	if !f.Defined {
		return def
	}
	return f.Value
}

// Index is an optional ordering value. Unlike Number, an unparsable value
// stays undefined just like an absent one, so callers can fall back to the
// list position.
type Index struct {
	Defined bool
	Value   int
}

// NewIndex returns a defined Index.
func NewIndex(v int) Index { return Index{Defined: true, Value: v} }

func (i *Index) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		i.Defined = true
		i.Value = int(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			i.Defined = true
			i.Value = int(f)
		}
	}
	return nil
}

func (i Index) MarshalJSON() ([]byte, error) {
	if !i.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(i.Value)
}

// Or returns the value, or def when the field was absent or unparsable.
func (i Index) Or(def int) int {
	if !i.Defined {
		return def
	}
	return i.Value
}
