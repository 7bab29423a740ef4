package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind int

// Metadata value kinds.
const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindMap
)

// String returns the kind name.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a metadata value: null, string, number, bool or a nested map.
// The zero Value is null.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	b    bool
	m    Metadata
}

// Metadata is a string-keyed map of closed-variant values.
type Metadata map[string]Value

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a number.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// BoolValue wraps a bool.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// MapValue wraps a nested map.
func MapValue(m Metadata) Value {
	if m == nil {
		m = Metadata{}
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string and whether v holds one.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the number and whether v holds one.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the bool and whether v holds one.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsMap returns the nested map and whether v holds one.
func (v Value) AsMap() (Metadata, bool) { return v.m, v.kind == KindMap }

// Equal reports whether v and o hold the same variant and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindMap:
		return v.m.Equal(o.m)
	default:
		return true
	}
}

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindMap:
		data, err := json.Marshal(v.m)
		if err != nil {
			return "{}"
		}
		return string(data)
	default:
		return "null"
	}
}

// MarshalJSON encodes the held variant.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindMap:
		return json.Marshal(v.m)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar or object. Arrays are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty metadata value: %w", ErrInvalidInput)
	}

	switch data[0] {
	case 'n':
		*v = NullValue()
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	case '{':
		var m Metadata
		if err := json.Unmarshal(data, &m); err != nil {
			return err
		}
		*v = MapValue(m)
		return nil
	case '[':
		return fmt.Errorf("metadata arrays are not supported: %w", ErrInvalidInput)
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*v = NumberValue(f)
		return nil
	}
}

// Equal reports whether m and o hold the same keys and values.
// A nil map equals an empty one.
func (m Metadata) Equal(o Metadata) bool {
	if len(m) != len(o) {
		return false
	}
	for k, v := range m {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Encode returns the JSON object form of m. A nil map encodes as "{}".
func (m Metadata) Encode() (string, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding metadata: %w", err)
	}
	return string(data), nil
}

// ParseMetadata decodes a JSON object. Empty input yields an empty map.
func ParseMetadata(s string) (Metadata, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return Metadata{}, nil
	}
	var m Metadata
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decoding metadata: %w", err)
	}
	if m == nil {
		m = Metadata{}
	}
	return m, nil
}

// ParseMetadataValue interprets a command-line literal: null, true, false
// and numbers map to their variants, anything else is a string.
func ParseMetadataValue(s string) Value {
	switch s {
	case "null":
		return NullValue()
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return NumberValue(f)
	}
	return StringValue(s)
}
