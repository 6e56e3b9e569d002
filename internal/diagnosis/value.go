package diagnosis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the shape of a decoded JSON value.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindList
	KindMapping
)

// Field is one key/value pair of a mapping, in document order.
type Field struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value that keeps mapping key order.
// Model output fields with a loosely defined shape are decoded into a Value and
// coerced by a single function instead of ad hoc type switches.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	fields []Field
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// ScalarValue wraps a string, bool or json.Number.
func ScalarValue(v any) Value { return Value{kind: KindScalar, scalar: v} }

// ListValue builds a list value.
func ListValue(items ...Value) Value { return Value{kind: KindList, items: items} }

// MappingValue builds a mapping value.
func MappingValue(fields ...Field) Value { return Value{kind: KindMapping, fields: fields} }

// StringList builds a list of string scalars.
func StringList(items []string) Value {
	values := make([]Value, len(items))
	for i, s := range items {
		values[i] = ScalarValue(s)
	}
	return ListValue(values...)
}

// Kind returns the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Items returns the elements of a list value.
func (v Value) Items() []Value { return v.items }

// Fields returns the entries of a mapping value.
func (v Value) Fields() []Field { return v.fields }

// Text returns the string of a string scalar.
func (v Value) Text() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	s, ok := v.scalar.(string)
	return s, ok
}

// Number returns the numeric value of a number scalar or a numeric string.
func (v Value) Number() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	switch n := v.scalar.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := json.Number(strings.TrimSpace(n)).Float64()
		return f, err == nil
	}
	return 0, false
}

// Lookup returns the value stored under key in a mapping.
func (v Value) Lookup(key string) (Value, bool) {
	for _, f := range v.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// DecodeValue decodes one JSON document into a Value.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return ListValue(items...), nil
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return MappingValue(fields...), nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case nil:
		return NullValue(), nil
	default:
		return ScalarValue(t), nil
	}
}

// NormalizeRecommendations flattens a loosely shaped value into a list of strings.
// A mapping contributes its values in document order, a list contributes its string
// elements and the strings of directly nested lists, anything else yields an empty
// list. Blank strings are dropped. The function is idempotent over StringList.
func NormalizeRecommendations(v Value) []string {
	out := []string{}

	var elems []Value
	switch v.Kind() {
	case KindMapping:
		for _, f := range v.Fields() {
			elems = append(elems, f.Value)
		}
	case KindList:
		elems = v.Items()
	default:
		return out
	}

	add := func(item Value) {
		if s, ok := item.Text(); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	for _, e := range elems {
		if e.Kind() == KindList {
			for _, nested := range e.Items() {
				add(nested)
			}
			continue
		}
		add(e)
	}
	return out
}
