// Package getopts turns a token slice into option values and positional
// arguments. It knows nothing about schemas: callers describe the options they
// accept through Config (alias map, defaults, boolean and string sets) and get
// back values keyed by canonical option name.
package getopts

import (
	"strings"
	"unicode/utf8"

	"github.com/dzonerzy/declargs/internal/value"
)

// Config describes the options accepted by Parse
type Config struct {
	// Alias maps every known option name to its aliases. A name must be
	// present, even with no aliases, to be recognized.
	Alias map[string][]string
	// Default holds values seeded for options absent from the input
	Default map[string]value.Value
	// Boolean and String list the options with a type hint
	Boolean []string
	String  []string
	// Unknown is called with the first unrecognized option name. Its error
	// aborts parsing. A nil Unknown treats unknown options as untyped.
	Unknown func(name string) error
}

// Result holds the outcome of Parse
type Result struct {
	// Values maps canonical names to their occurrences, in encounter order
	Values map[string][]value.Value
	// Args holds the positional tokens in original order
	Args []string
}

// parser is the per-call state of Parse
type parser struct {
	lookup   map[string]string // name or alias -> canonical name
	booleans map[string]bool
	strings  map[string]bool
	unknown  func(string) error

	args     []string
	position int
	result   *Result
}

// Parse parses args according to cfg
func Parse(args []string, cfg Config) (*Result, error) {
	p := newParser(args, cfg)

	for p.position < len(args) {
		arg := args[p.position]

		switch {
		case arg == "--":
			// Everything after "--" is positional
			p.result.Args = append(p.result.Args, args[p.position+1:]...)
			p.position = len(args)
			continue
		case len(arg) >= 2 && arg[0] == '-' && arg[1] == '-':
			if err := p.parseLong(arg[2:]); err != nil {
				return nil, err
			}
		case len(arg) >= 2 && arg[0] == '-':
			if err := p.parseShort(arg[1:]); err != nil {
				return nil, err
			}
		default:
			// Plain token or a lone "-"
			p.result.Args = append(p.result.Args, arg)
		}

		p.position++
	}

	p.applyDefaults(cfg)
	return p.result, nil
}

func newParser(args []string, cfg Config) *parser {
	p := &parser{
		lookup:   make(map[string]string, len(cfg.Alias)*2),
		booleans: make(map[string]bool, len(cfg.Boolean)),
		strings:  make(map[string]bool, len(cfg.String)),
		unknown:  cfg.Unknown,
		args:     args,
		result: &Result{
			Values: make(map[string][]value.Value, len(cfg.Alias)),
			Args:   make([]string, 0, len(args)),
		},
	}

	for name, aliases := range cfg.Alias {
		p.lookup[name] = name
		for _, alias := range aliases {
			p.lookup[alias] = name
		}
	}
	for _, name := range cfg.Boolean {
		p.booleans[name] = true
	}
	for _, name := range cfg.String {
		p.strings[name] = true
	}

	return p
}

// parseLong handles --name, --name=value, --name value and --no-name
func (p *parser) parseLong(body string) error {
	name, raw, hasValue := strings.Cut(body, "=")
	if name == "" {
		// "--=x" has no name to split off
		name, raw, hasValue = body, "", false
	}

	canonical, known := p.lookup[name]
	if !known && !hasValue && strings.HasPrefix(name, "no-") {
		// Negation applies to boolean and untyped options only
		if target, ok := p.lookup[name[3:]]; ok && !p.strings[target] {
			p.store(target, value.Bool(false))
			return nil
		}
	}
	if !known {
		var err error
		if canonical, err = p.resolveUnknown(name); err != nil {
			return err
		}
	}

	if hasValue {
		p.store(canonical, p.explicit(canonical, raw))
		return nil
	}
	p.consumeNext(canonical)
	return nil
}

// parseShort handles -x, grouped -abc and attached -nVALUE forms
func (p *parser) parseShort(body string) error {
	for i := 0; i < len(body); {
		_, size := utf8.DecodeRuneInString(body[i:])
		name := body[i : i+size]
		rest := body[i+size:]

		canonical, known := p.lookup[name]
		if !known {
			var err error
			if canonical, err = p.resolveUnknown(name); err != nil {
				return err
			}
		}

		switch {
		case rest == "":
			// Last flag of the group may take the following token
			p.consumeNext(canonical)
			return nil
		case p.booleans[canonical] && rest[0] == '=':
			p.store(canonical, p.explicit(canonical, rest[1:]))
			return nil
		case p.booleans[canonical]:
			p.store(canonical, value.Bool(true))
		case p.strings[canonical]:
			// String options swallow the rest of the group
			p.store(canonical, value.String(strings.TrimPrefix(rest, "=")))
			return nil
		case !startsWithLetter(rest):
			p.store(canonical, p.explicit(canonical, strings.TrimPrefix(rest, "=")))
			return nil
		default:
			p.store(canonical, value.Bool(true))
		}

		i += size
	}
	return nil
}

// resolveUnknown reports an unknown option through the hook. Without a hook
// the option is accepted under its own name.
func (p *parser) resolveUnknown(name string) (string, error) {
	if p.unknown != nil {
		if err := p.unknown(name); err != nil {
			return "", err
		}
	}
	p.lookup[name] = name
	return name, nil
}

// consumeNext stores the value of an option whose value, if any, is the next
// token. String options take the next token whatever it looks like.
func (p *parser) consumeNext(canonical string) {
	if p.booleans[canonical] {
		p.store(canonical, value.Bool(true))
		return
	}

	next := p.position + 1
	if p.strings[canonical] {
		if next < len(p.args) {
			p.position = next
			p.store(canonical, value.String(p.args[next]))
			return
		}
		p.store(canonical, value.String(""))
		return
	}

	if next < len(p.args) && !isOptionToken(p.args[next]) {
		p.position = next
		p.store(canonical, value.Coerce(p.args[next]))
		return
	}
	p.store(canonical, value.Bool(true))
}

// explicit converts a raw value according to the option's type hint
func (p *parser) explicit(canonical, raw string) value.Value {
	switch {
	case p.booleans[canonical]:
		return value.Bool(raw != "false")
	case p.strings[canonical]:
		return value.String(raw)
	default:
		return value.Coerce(raw)
	}
}

func (p *parser) store(canonical string, v value.Value) {
	p.result.Values[canonical] = append(p.result.Values[canonical], v)
}

// applyDefaults seeds absent options: declared defaults first, then false for
// boolean options without one.
func (p *parser) applyDefaults(cfg Config) {
	for name, v := range cfg.Default {
		if _, present := p.result.Values[name]; !present {
			p.result.Values[name] = []value.Value{v}
		}
	}
	for _, name := range cfg.Boolean {
		if _, present := p.result.Values[name]; !present {
			p.result.Values[name] = []value.Value{value.Bool(false)}
		}
	}
}

// isOptionToken reports whether a token would be parsed as an option
func isOptionToken(token string) bool {
	return len(token) >= 2 && token[0] == '-'
}

func startsWithLetter(s string) bool {
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
