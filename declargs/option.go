package declargs

import "github.com/dzonerzy/declargs/internal/value"

// Type is the type hint of an option
type Type string

const (
	// TypeAuto infers booleans from "true"/"false" and keeps everything else
	// as a string
	TypeAuto    Type = ""
	TypeBoolean Type = "boolean"
	TypeString  Type = "string"
)

// Option declares one accepted command-line option
type Option struct {
	// Name is the canonical key in results and help
	Name string
	// Alias lists alternate identifiers. One-character identifiers are
	// written with a single dash.
	Alias []string
	Type  Type
	// Default must match Type: a Bool for TypeBoolean, a String for
	// TypeString, any kind for TypeAuto. The zero Value means no default.
	Default     Value
	Description string
}

// Config is the declarative schema a Parser is built from
type Config struct {
	// Name is the program name shown in help
	Name string
	// Options in declaration order; help lists them in this order
	Options []Option
}

// definite reports whether the option is present in every Result
func (o *Option) definite() bool {
	return !o.Default.IsZero() || o.Type == TypeBoolean
}

// Value is a tagged scalar: a bool, a string or a number
type Value = value.Value

// Kind identifies the payload of a Value
type Kind = value.Kind

const (
	KindInvalid = value.KindInvalid
	KindBool    = value.KindBool
	KindString  = value.KindString
	KindNumber  = value.KindNumber
)

// Bool returns a boolean Value
func Bool(b bool) Value { return value.Bool(b) }

// String returns a string Value
func String(s string) Value { return value.String(s) }

// Number returns a numeric Value. Numbers only come from declared defaults;
// parsed tokens are never coerced to numbers.
func Number(n float64) Value { return value.Number(n) }

// Coerce converts a raw token the way options without a type hint do
func Coerce(token string) Value { return value.Coerce(token) }
