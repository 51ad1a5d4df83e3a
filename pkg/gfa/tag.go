package gfa

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// tagToken matches the GFA optional tag syntax at the start of a field:
// a two-letter uppercase key, a one-letter type, and a value, separated
// by colons. Trailing fields that do not match are kept as positional
// overflow under synthetic ARG<n> keys.
var tagToken = regexp.MustCompile(`^[A-Z]{2}:[a-zA-Z]:`)

// DecodeTagValue converts the raw text of a GFA optional tag into a
// typed Go value according to its one-letter type tag:
//
//	i → int
//	f → float64
//	A → string (single printable character)
//	Z → string
//	J → structured value decoded from JSON
//
// The array types H and B fail with [ErrUnsupportedTagType]; any other
// letter fails with [ErrUnknownTagType].
func DecodeTagValue(typeTag byte, raw string) (any, error) {
	switch typeTag {
	case 'i':
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("tag value %q: %w", raw, err)
		}
		return n, nil
	case 'f':
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("tag value %q: %w", raw, err)
		}
		return f, nil
	case 'A', 'Z':
		return raw, nil
	case 'J':
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("tag value %q: %w", raw, err)
		}
		return v, nil
	case 'H', 'B':
		return nil, fmt.Errorf("%w: %c", ErrUnsupportedTagType, typeTag)
	}
	return nil, fmt.Errorf("%w: %c", ErrUnknownTagType, typeTag)
}

// InferTagType is the serialization-side inverse of [DecodeTagValue]:
// it picks the type letter under which a Go value is written back out.
// Integers map to 'i', floats to 'f', and strings to 'Z' (the A/Z
// distinction is not preserved; both decode to string and re-encode as
// Z). Anything else is attempted as a J-encoded structured value and
// fails with [ErrUnrepresentableValue] if it cannot be marshaled.
func InferTagType(v any) (byte, error) {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return 'i', nil
	case float32, float64:
		return 'f', nil
	case string:
		return 'Z', nil
	}
	if _, err := json.Marshal(v); err != nil {
		return 0, fmt.Errorf("%w: %T", ErrUnrepresentableValue, v)
	}
	return 'J', nil
}

// renderTagValue spells a decoded tag value back out as GFA field text.
// The encoding is chosen to round-trip through DecodeTagValue.
func renderTagValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// renderTag formats a key/value pair as a `key:type:value` field, or
// returns the bare value text for synthetic ARG<n> keys so that
// positional overflow fields reproduce their original free-form text.
func renderTag(key string, v any) (string, error) {
	if isArgKey(key) {
		return renderTagValue(v), nil
	}
	t, err := InferTagType(v)
	if err != nil {
		return "", fmt.Errorf("tag %s: %w", key, err)
	}
	return fmt.Sprintf("%s:%c:%s", key, t, renderTagValue(v)), nil
}

// isArgKey reports whether a field key is a synthetic positional
// overflow key of the form ARG<n>.
func isArgKey(key string) bool {
	if len(key) < 4 || key[:3] != "ARG" {
		return false
	}
	_, err := strconv.Atoi(key[3:])
	return err == nil
}
