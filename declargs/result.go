package declargs

import (
	"slices"
)

// ArgsKey is the Map key holding positional arguments
const ArgsKey = "_"

// Result is the outcome of one Parse call. Every name and alias of a present
// option maps to the same occurrences. Options with a default or a boolean
// type are always present; others only when supplied.
type Result struct {
	values map[string][]Value
	args   []string
}

// Args returns the positional tokens in original order, never nil
func (r *Result) Args() []string {
	return slices.Clone(r.args)
}

// Has reports whether the option (by name or alias) has a value
func (r *Result) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Lookup returns the option's value. For a repeated option the last
// occurrence is returned; use Values for all of them.
func (r *Result) Lookup(name string) (Value, bool) {
	occurrences, ok := r.values[name]
	if !ok {
		return Value{}, false
	}
	return occurrences[len(occurrences)-1], true
}

// Values returns every occurrence of the option in encounter order
func (r *Result) Values(name string) []Value {
	return slices.Clone(r.values[name])
}

// Repeated reports whether the option was supplied more than once
func (r *Result) Repeated(name string) bool {
	return len(r.values[name]) > 1
}

// Bool returns the option as a boolean. Absent or non-boolean values
// report false.
func (r *Result) Bool(name string) bool {
	v, _ := r.Lookup(name)
	b, _ := v.AsBool()
	return b
}

// String returns the option's last value when it is a string
func (r *Result) String(name string) (string, bool) {
	v, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Strings returns the string occurrences of the option, skipping the bare
// flag form
func (r *Result) Strings(name string) []string {
	occurrences := r.values[name]
	out := make([]string, 0, len(occurrences))
	for _, v := range occurrences {
		if s, ok := v.AsString(); ok {
			out = append(out, s)
		}
	}
	return out
}

// Map returns the result in its dynamic form: ArgsKey maps to []string, an
// option supplied once to bool, string or float64, and a repeated option to
// []any in encounter order.
func (r *Result) Map() map[string]any {
	out := make(map[string]any, len(r.values)+1)
	out[ArgsKey] = r.Args()

	for name, occurrences := range r.values {
		if len(occurrences) == 1 {
			out[name] = occurrences[0].Interface()
			continue
		}
		items := make([]any, len(occurrences))
		for i, v := range occurrences {
			items[i] = v.Interface()
		}
		out[name] = items
	}
	return out
}
