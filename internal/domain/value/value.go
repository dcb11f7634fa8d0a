// Package value models the free-form JSON documents stored alongside
// templates, builders and editors (config_json, custom_data_json, content).
//
// A Value is a tagged union over the JSON kinds. Keeping the kind explicit
// lets the renderer substitute string fields only, and lets the stores round
// trip documents without losing number precision.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is immutable once built. The zero Value is JSON null.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	arr  []Value
	obj  Object
}

type Object map[string]Value

func Null() Value                { return Value{} }
func String(s string) Value      { return Value{kind: KindString, str: s} }
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }
func FromObject(o Object) Value  { return Value{kind: KindObject, obj: o} }

func Int(n int64) Value { return Number(json.Number(strconv.FormatInt(n, 10))) }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// IsContainer reports whether v is an object or an array, the only shapes
// accepted for stored documents.
func (v Value) IsContainer() bool { return v.kind == KindObject || v.kind == KindArray }

func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) AsNumber() (json.Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.num, true
}

func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

func (v Value) AsObject() (Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Fields exposes a container as a flat key space: objects by their keys,
// arrays by their decimal indexes. Scalars have no fields.
func (v Value) Fields() Object {
	switch v.kind {
	case KindObject:
		return v.obj
	case KindArray:
		fields := make(Object, len(v.arr))
		for i, item := range v.arr {
			fields[strconv.Itoa(i)] = item
		}
		return fields
	case KindNull, KindString, KindNumber, KindBool:
		return nil
	}
	return nil
}

// Keys returns the object keys in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(map[string]Value(v.obj))
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// FromAny converts the output of a json.Decoder (with or without UseNumber)
// into a Value.
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case float64:
		return Number(json.Number(strconv.FormatFloat(t, 'f', -1, 64))), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case bool:
		return Bool(t), nil
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			parsed, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, parsed)
		}
		return Array(items...), nil
	case map[string]any:
		obj := make(Object, len(t))
		for k, item := range t {
			parsed, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			obj[k] = parsed
		}
		return FromObject(obj), nil
	}
	return Value{}, fmt.Errorf("unsupported json type %T", raw)
}

// Parse decodes a stored document. Empty input is treated as null.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Null(), nil
	}
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}
