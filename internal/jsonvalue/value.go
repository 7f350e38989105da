// Package jsonvalue implements a tagged-union representation of arbitrary
// JSON data, so that type-dependent logic elsewhere in prism (diff
// formatting, fuzz descriptions, the AnyOf assertion strategy) can switch
// exhaustively on a Kind instead of type-asserting a bare any.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Kind identifies the shape of a Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// member is a single key/value pair of an Object, kept in declaration order
// so pretty-printing and diffing never reorder a schema author's fixture.
type member struct {
	key   string
	value Value
}

// Value is a sum type over the seven JSON shapes. Exactly one of the
// unexported fields is meaningful for a given Kind; the rest are zero.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	items   []Value
	fields  []member
}

func NewNull() Value            { return Value{kind: Null} }
func NewBool(b bool) Value      { return Value{kind: Bool, boolean: b} }
func NewInt(i int64) Value      { return Value{kind: Int, integer: i} }
func NewFloat(f float64) Value  { return Value{kind: Float, float: f} }
func NewString(s string) Value  { return Value{kind: String, str: s} }
func NewArray(v []Value) Value  { return Value{kind: Array, items: v} }

func NewObject(keys []string, vals map[string]Value) Value {
	fields := make([]member, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, member{key: k, value: vals[k]})
	}
	return Value{kind: Object, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) AsBool() bool { return v.boolean }
func (v Value) AsInt() int64 { return v.integer }
func (v Value) AsFloat() float64 { return v.float }
func (v Value) AsString() string { return v.str }
func (v Value) AsArray() []Value { return v.items }

// Field returns the value stored at key and whether it was present.
func (v Value) Field(key string) (Value, bool) {
	for _, m := range v.fields {
		if m.key == key {
			return m.value, true
		}
	}
	return Value{}, false
}

// Keys returns the object's field names in declaration order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.fields))
	for i, m := range v.fields {
		keys[i] = m.key
	}
	return keys
}

// FromAny converts a decoded encoding/json value (the result of
// json.Unmarshal into an any, or the output of a json.Decoder configured
// with UseNumber) into a Value. Maps lose their original key order since
// encoding/json discards it; ParseRaw should be preferred when
// declaration order matters (e.g. decoding a TestFile).
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case json.Number:
		return numberFromJSONNumber(t)
	case float64:
		return numberFromFloat(t)
	case string:
		return NewString(t)
	case []any:
		items := make([]Value, len(t))
		for i, e := range t {
			items[i] = FromAny(e)
		}
		return NewArray(items)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		vals := make(map[string]Value, len(t))
		for k, e := range t {
			vals[k] = FromAny(e)
		}
		return NewObject(keys, vals)
	default:
		return Value{kind: String, str: fmt.Sprintf("%v", t)}
	}
}

func numberFromJSONNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return NewInt(i)
	}
	f, _ := n.Float64()
	return NewFloat(f)
}

func numberFromFloat(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return NewInt(int64(f))
	}
	return NewFloat(f)
}

// ToAny converts a Value back into plain Go data suitable for
// json.Marshal or for handing to a ValidatorAdapter as opaque schema/data.
func (v Value) ToAny() any {
	switch v.kind {
	case Null:
		return nil
	case Bool:
		return v.boolean
	case Int:
		return v.integer
	case Float:
		return v.float
	case String:
		return v.str
	case Array:
		out := make([]any, len(v.items))
		for i, e := range v.items {
			out[i] = e.ToAny()
		}
		return out
	case Object:
		out := make(map[string]any, len(v.fields))
		for _, m := range v.fields {
			out[m.key] = m.value.ToAny()
		}
		return out
	default:
		return nil
	}
}

// DeepEqual reports whether a and b have the same kind and the same value,
// recursively. Int and Float are distinct kinds and never compare equal to
// each other even when numerically identical, matching the sum-type design.
func DeepEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.boolean == b.boolean
	case Int:
		return a.integer == b.integer
	case Float:
		return a.float == b.float
	case String:
		return a.str == b.str
	case Array:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !DeepEqual(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for _, m := range a.fields {
			bv, ok := b.Field(m.key)
			if !ok || !DeepEqual(m.value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Truthy implements the truthy/falsy mapping used by the StrictEquality
// and AnyOf assertion failure messages: false, null, 0, 0.0, "", [], {}
// are falsy; everything else is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case Null:
		return false
	case Bool:
		return v.boolean
	case Int:
		return v.integer != 0
	case Float:
		return v.float != 0
	case String:
		return v.str != ""
	case Array:
		return len(v.items) != 0
	case Object:
		return len(v.fields) != 0
	default:
		return false
	}
}

// TruthyLabel renders v as "valid" or "invalid" per Truthy.
func (v Value) TruthyLabel() string {
	if v.Truthy() {
		return "valid"
	}
	return "invalid"
}

// Repr renders a short, type-appropriate representation of v for
// diagnostic messages: strings are quoted, composites are summarized.
func (v Value) Repr() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.boolean {
			return "true"
		}
		return "false"
	case Int:
		return fmt.Sprintf("%d", v.integer)
	case Float:
		return fmt.Sprintf("%g", v.float)
	case String:
		return fmt.Sprintf("%q", v.str)
	case Array:
		return fmt.Sprintf("array of %d", len(v.items))
	case Object:
		return fmt.Sprintf("object of %d", len(v.fields))
	default:
		return "?"
	}
}

// Pretty renders v as indented JSON text, preserving field declaration
// order and unicode characters verbatim (no HTML escaping).
func (v Value) Pretty() string {
	var buf []byte
	buf = appendPretty(buf, v, 0)
	return string(buf)
}

func appendPretty(buf []byte, v Value, indent int) []byte {
	switch v.kind {
	case Array:
		if len(v.items) == 0 {
			return append(buf, '[', ']')
		}
		buf = append(buf, '[', '\n')
		for i, e := range v.items {
			buf = appendIndent(buf, indent+1)
			buf = appendPretty(buf, e, indent+1)
			if i < len(v.items)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = appendIndent(buf, indent)
		return append(buf, ']')
	case Object:
		if len(v.fields) == 0 {
			return append(buf, '{', '}')
		}
		buf = append(buf, '{', '\n')
		for i, m := range v.fields {
			buf = appendIndent(buf, indent+1)
			keyJSON, _ := json.Marshal(m.key)
			buf = append(buf, keyJSON...)
			buf = append(buf, ':', ' ')
			buf = appendPretty(buf, m.value, indent+1)
			if i < len(v.fields)-1 {
				buf = append(buf, ',')
			}
			buf = append(buf, '\n')
		}
		buf = appendIndent(buf, indent)
		return append(buf, '}')
	default:
		raw, _ := json.Marshal(v.ToAny())
		return append(buf, raw...)
	}
}

func appendIndent(buf []byte, indent int) []byte {
	for range indent {
		buf = append(buf, ' ', ' ')
	}
	return buf
}

// ParseFromDecoder decodes the next JSON value from dec (configured with
// UseNumber) into a Value that preserves object key declaration order,
// unlike FromAny. TestCaseLoader does not use it: it decodes whole files
// through the adapter's Decode, which the bundled adapters implement with
// ParseRaw.
func ParseFromDecoder(dec *json.Decoder) (Value, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	return ParseRaw(raw)
}

// ParseRaw decodes a single JSON document from raw, preserving object key
// declaration order.
func ParseRaw(raw []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return parseToken(dec)
}

func parseToken(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return buildValue(dec, tok)
}

func buildValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return numberFromJSONNumber(t), nil
	case string:
		return NewString(t), nil
	case json.Delim:
		switch t {
		case '[':
			return parseArray(dec)
		case '{':
			return parseObject(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return Value{}, fmt.Errorf("unsupported token %T", tok)
	}
}

func parseArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		v, err := buildValue(dec, tok)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, err
	}
	return NewArray(items), nil
}

func parseObject(dec *json.Decoder) (Value, error) {
	var fields []member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := buildValue(dec, valTok)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, member{key: key, value: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, err
	}
	return Value{kind: Object, fields: fields}, nil
}
