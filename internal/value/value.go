// Package value provides the tagged scalar shared by the parser and the token
// parser. A Value is either a bool, a string or a number; the zero Value means
// "no value".
package value

import "strconv"

// Kind identifies which payload a Value carries
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindString
	KindNumber
)

// String returns the kind name used in error messages
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged scalar
type Value struct {
	kind Kind
	b    bool
	s    string
	n    float64
}

// Bool returns a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a string Value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Number returns a numeric Value
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// Coerce converts a raw token for an option without a type hint.
// Exactly "true" and "false" become booleans; everything else stays a string.
// Numbers are deliberately not recognized.
func Coerce(token string) Value {
	switch token {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	default:
		return String(token)
	}
}

// Kind returns the kind of v
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v carries no value
func (v Value) IsZero() bool { return v.kind == KindInvalid }

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string payload
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsNumber returns the numeric payload
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// Interface returns the payload as bool, string or float64 (nil when zero)
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindNumber:
		return v.n
	case KindInvalid:
		return nil
	default:
		return nil
	}
}

// String renders the plain string form of the payload: false, 0, 1.5, hello.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindInvalid:
		return ""
	default:
		return ""
	}
}
