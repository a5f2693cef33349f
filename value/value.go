// Package value implements the scalar value domain shared by every
// column, index key, and query predicate in the store.
package value

import (
	"fmt"
	"math"
)

// Tag identifies which variant of the value union is populated.
type Tag int

const (
	// Null is the tag of the null value. Null compares equal only to
	// null and sorts before every non-null value in ascending order.
	Null Tag = iota
	Int
	Float
	String
	Bool
	Bytes
)

// String renders the tag name, mostly for error messages.
func (t Tag) String() string {
	switch t {
	case Null:
		return "null"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the six scalar types a column may hold.
// Only the field matching Tag is meaningful; the zero Value is Null.
type Value struct {
	tag   Tag
	i     int64
	f     float64
	s     string
	b     bool
	bytes []byte
}

// NewNull returns the null value.
func NewNull() Value { return Value{tag: Null} }

// NewInt wraps a signed integer.
func NewInt(v int64) Value { return Value{tag: Int, i: v} }

// NewFloat wraps a double-precision float.
func NewFloat(v float64) Value { return Value{tag: Float, f: v} }

// NewString wraps a UTF-8 string.
func NewString(v string) Value { return Value{tag: String, s: v} }

// NewBool wraps a boolean.
func NewBool(v bool) Value { return Value{tag: Bool, b: v} }

// NewBytes wraps an opaque byte buffer. The slice is not copied; callers
// must not mutate it after handing it to a Value.
func NewBytes(v []byte) Value { return Value{tag: Bytes, bytes: v} }

// Tag reports which variant is populated.
func (v Value) Tag() Tag { return v.tag }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.tag == Null }

// Int returns the wrapped integer. The caller must check Tag() == Int.
func (v Value) Int() int64 { return v.i }

// Float returns the wrapped float. The caller must check Tag() == Float.
func (v Value) Float() float64 { return v.f }

// String returns the wrapped string when Tag() == String; for the other
// tags it returns a printable rendering ("<null>", decimal, %g, true/false,
// or hex for bytes).
func (v Value) String() string {
	switch v.tag {
	case Null:
		return "<null>"
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Float:
		return fmt.Sprintf("%g", v.f)
	case String:
		return v.s
	case Bool:
		return fmt.Sprintf("%t", v.b)
	case Bytes:
		return fmt.Sprintf("%x", v.bytes)
	default:
		return ""
	}
}

// Bool returns the wrapped boolean. The caller must check Tag() == Bool.
func (v Value) Bool() bool { return v.b }

// Bytes returns the wrapped byte buffer. The caller must check
// Tag() == Bytes.
func (v Value) Bytes() []byte { return v.bytes }

// Raw returns the Go value behind the variant, useful for projection
// into a host-language map without the caller needing a type switch on
// Value itself.
func (v Value) Raw() interface{} {
	switch v.tag {
	case Null:
		return nil
	case Int:
		return v.i
	case Float:
		return v.f
	case String:
		return v.s
	case Bool:
		return v.b
	case Bytes:
		return v.bytes
	default:
		return nil
	}
}

// TypeError is returned whenever two values of incompatible tags are
// compared, or a host value cannot be coerced into the value domain.
type TypeError struct {
	Op   string
	A, B Tag
}

func (e *TypeError) Error() string {
	if e.Op == "coerce" {
		return "type error: value cannot be coerced into the value domain"
	}
	return fmt.Sprintf("type error: %s: cannot compare %s with %s", e.Op, e.A, e.B)
}

// Equal reports whether a and b are equal. Cross-tag comparisons return
// an error rather than silently comparing false, per the value domain's
// total-order contract; null equals only null.
func Equal(a, b Value) (bool, error) {
	if a.tag == Null || b.tag == Null {
		return a.tag == Null && b.tag == Null, nil
	}
	if a.tag != b.tag {
		return false, &TypeError{Op: "==", A: a.tag, B: b.tag}
	}
	switch a.tag {
	case Int:
		return a.i == b.i, nil
	case Float:
		return a.f == b.f, nil
	case String:
		return a.s == b.s, nil
	case Bool:
		return a.b == b.b, nil
	case Bytes:
		return string(a.bytes) == string(b.bytes), nil
	default:
		return false, nil
	}
}

// Compare returns -1, 0, or 1 for a<b, a==b, a>b under the ascending
// total order defined in §3: null sorts before any non-null value, and
// cross-tag comparisons between two non-null values are a type error.
func Compare(a, b Value) (int, error) {
	if a.tag == Null && b.tag == Null {
		return 0, nil
	}
	if a.tag == Null {
		return -1, nil
	}
	if b.tag == Null {
		return 1, nil
	}
	if a.tag != b.tag {
		return 0, &TypeError{Op: "compare", A: a.tag, B: b.tag}
	}
	switch a.tag {
	case Int:
		return compareInt64(a.i, b.i), nil
	case Float:
		return compareFloat64(a.f, b.f), nil
	case String:
		return compareString(a.s, b.s), nil
	case Bool:
		return compareBool(a.b, b.b), nil
	case Bytes:
		return compareString(string(a.bytes), string(b.bytes)), nil
	default:
		return 0, nil
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	default:
		return 0
	}
}

func compareString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

// Coerce adapts a host-language value into the value domain: identity
// for already-typed values, UTF-8 string for string-like input, and
// double for any real number not already an integer tag. Values that
// cannot be coerced return a TypeError.
func Coerce(in interface{}) (Value, error) {
	switch t := in.(type) {
	case nil:
		return NewNull(), nil
	case Value:
		return t, nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewInt(int64(t)), nil
	case uint8:
		return NewInt(int64(t)), nil
	case uint16:
		return NewInt(int64(t)), nil
	case uint32:
		return NewInt(int64(t)), nil
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case []byte:
		return NewBytes(t), nil
	case fmt.Stringer:
		return NewString(t.String()), nil
	default:
		return Value{}, &TypeError{Op: "coerce", A: Null, B: Null}
	}
}
