// Package notebook provides an order-preserving JSON tree for Jupyter
// notebook documents.
//
// Notebooks are edited and diffed by humans, so a round trip through this
// package keeps object member order and number literals exactly as they
// were read. Every lookup is a "get if present" operation: missing members
// are reported through a boolean rather than a panic or a zero value.
package notebook

import "fmt"

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a single node of a JSON document.
// The zero value and a nil *Value are both JSON null.
type Value struct {
	kind Kind
	b    bool
	s    string // string contents, or the literal text of a number
	arr  *Array
	obj  *Object
}

// Null returns a JSON null.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a JSON boolean.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a JSON number from its literal text (e.g. "1", "2.50", "1e3").
// The literal is written back verbatim, so it must be valid JSON.
func Number(literal string) *Value { return &Value{kind: KindNumber, s: literal} }

// String returns a JSON string.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// ObjectValue wraps an object. A nil object becomes an empty one.
func ObjectValue(o *Object) *Value {
	if o == nil {
		o = NewObject()
	}
	return &Value{kind: KindObject, obj: o}
}

// ArrayValue wraps an array. A nil array becomes an empty one.
func ArrayValue(a *Array) *Value {
	if a == nil {
		a = NewArray()
	}
	return &Value{kind: KindArray, arr: a}
}

// Kind returns the JSON type of the value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is JSON null.
func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// AsObject returns the object held by v, if v is an object.
func (v *Value) AsObject() (*Object, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	return v.obj, true
}

// AsArray returns the array held by v, if v is an array.
func (v *Value) AsArray() (*Array, bool) {
	if v.Kind() != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsString returns the string held by v, if v is a string.
func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.s, true
}

// AsBool returns the boolean held by v, if v is a boolean.
func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

// NumberLiteral returns the literal text of a number, if v is a number.
func (v *Value) NumberLiteral() (string, bool) {
	if v.Kind() != KindNumber {
		return "", false
	}
	return v.s, true
}

// Equal reports whether two values are structurally equal.
// Object member order is ignored; array order is not. Numbers compare by
// literal text.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.s == other.s
	case KindArray:
		if v.arr.Len() != other.arr.Len() {
			return false
		}
		for i, el := range v.arr.elems {
			if !el.Equal(other.arr.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		for _, m := range v.obj.members {
			ov, ok := other.obj.Get(m.Name)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}
