// Package tree defines the JSON value tree consumed and produced by
// converters, together with the text boundary (Parse/Serialize).
//
// Values are immutable once constructed; converters only read and build
// them, never mutate them in place.
package tree

import "fmt"

// Kind enumerates JSON value kinds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:   "Null",
		KindBool:   "Bool",
		KindNumber: "Number",
		KindString: "String",
		KindArray:  "Array",
		KindObject: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   KindNull,
		"Bool":   KindBool,
		"Number": KindNumber,
		"String": KindString,
		"Array":  KindArray,
		"Object": KindObject,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Member is one key/value pair of an object. Object members keep the order
// they were constructed in; keys are expected to be unique.
type Member struct {
	Key   string
	Value Value
}

// Entry constructs an object member.
func Entry(key string, v Value) Member { return Member{Key: key, Value: v} }

// Value is one JSON tree node. The zero Value is JSON null.
type Value struct {
	kind    Kind
	b       bool
	num     float64
	str     string
	elems   []Value
	members []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns a JSON array preserving element order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

// Object returns a JSON object preserving member order.
func Object(members ...Member) Value {
	return Value{kind: KindObject, members: members}
}

// Kind reports the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload when the value is a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNumber returns the numeric payload when the value is a Number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload when the value is a String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns the ordered elements when the value is an Array. Callers
// must not mutate the returned slice.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.elems, true
}

// AsObject returns the ordered members when the value is an Object. Callers
// must not mutate the returned slice.
func (v Value) AsObject() ([]Member, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.members, true
}

// Get looks up an object member by key. It reports false when the value is
// not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Equal reports deep structural equality. Object member order is significant,
// matching the ordered-object model.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.elems) != len(o.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(o.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != o.members[i].Key {
				return false
			}
			if !v.members[i].Value.Equal(o.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders a compact JSON representation, mainly for tests and logs.
func (v Value) String() string { return Serialize(v, 0) }
