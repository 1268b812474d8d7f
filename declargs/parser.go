// Package declargs parses command-line options from a single declarative
// table. A Config lists every accepted option with its aliases, type hint,
// default and description; New validates it once, and the resulting Parser
// turns argument strings or token slices into a Result and renders help text.
package declargs

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/shlex"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/dzonerzy/declargs/internal/fuzzy"
	"github.com/dzonerzy/declargs/internal/getopts"
)

const maxSuggestions = 3

// Parser parses arguments against a validated schema. It is immutable after
// New and safe for concurrent use.
type Parser struct {
	name    string
	options []Option

	// Name and alias -> descriptor, in declaration order
	index *orderedmap.OrderedMap[string, *Option]

	// Token parser configuration, built once
	aliases  map[string][]string
	defaults map[string]Value
	booleans []string
	strings  []string

	logger      *slog.Logger
	suggest     bool
	maxDistance int
}

// ParserOption configures optional Parser behavior
type ParserOption func(*Parser)

// WithLogger makes the parser emit debug records to logger
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithSuggestions attaches "Did you mean" suggestions to unknown-option
// errors, drawn from names and aliases within maxDistance edits
func WithSuggestions(maxDistance int) ParserOption {
	return func(p *Parser) {
		p.suggest = maxDistance > 0
		p.maxDistance = maxDistance
	}
}

// New validates cfg and builds a Parser. An invalid schema returns a
// *ConfigError and no Parser.
func New(cfg Config, opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		name:     cfg.Name,
		options:  make([]Option, len(cfg.Options)),
		index:    orderedmap.New[string, *Option](len(cfg.Options)),
		aliases:  make(map[string][]string, len(cfg.Options)),
		defaults: make(map[string]Value),
	}
	for i, opt := range cfg.Options {
		opt.Alias = slices.Clone(opt.Alias)
		p.options[i] = opt
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validate(); err != nil {
		p.debug("rejected schema", "parser", p.name, "error", err)
		return nil, err
	}
	p.buildTokenConfig()

	p.debug("parser ready", "parser", p.name,
		"options", len(p.options),
		"identifiers", p.index.Len(),
		"definite", p.countDefinite())
	return p, nil
}

// MustNew is like New but panics on an invalid schema
func MustNew(cfg Config, opts ...ParserOption) *Parser {
	p, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// validate walks options in declaration order, checking each name and then
// each of its aliases against every identifier seen so far. The first
// collision is reported.
func (p *Parser) validate() error {
	for i := range p.options {
		opt := &p.options[i]

		if opt.Name == "" {
			return newConfigError(ErrorTypeEmptyName, "", "Empty option name at position %d", i)
		}
		if _, seen := p.index.Get(opt.Name); seen {
			return newConfigError(ErrorTypeDuplicateName, opt.Name, "Duplicate option name: %s", opt.Name)
		}
		p.index.Set(opt.Name, opt)

		for _, alias := range opt.Alias {
			if alias == "" {
				return newConfigError(ErrorTypeEmptyName, opt.Name, "Empty alias for option: %s", opt.Name)
			}
			if _, seen := p.index.Get(alias); seen {
				return newConfigError(ErrorTypeDuplicateAlias, alias, "Duplicate option alias: %s", alias)
			}
			p.index.Set(alias, opt)
		}

		if err := checkType(opt); err != nil {
			return err
		}
	}
	return nil
}

// checkType verifies the type hint and that the default fits it
func checkType(opt *Option) error {
	var want Kind
	switch opt.Type {
	case TypeAuto:
		return nil
	case TypeBoolean:
		want = KindBool
	case TypeString:
		want = KindString
	default:
		return newConfigError(ErrorTypeInvalidType, opt.Name,
			"Invalid type for option %s: %q", opt.Name, string(opt.Type))
	}

	if !opt.Default.IsZero() && opt.Default.Kind() != want {
		return newConfigError(ErrorTypeInvalidDefault, opt.Name,
			"Invalid default for option %s: want %s, got %s", opt.Name, want, opt.Default.Kind())
	}
	return nil
}

// buildTokenConfig derives the token parser tables from the schema. Every
// name gets an alias entry, even an empty one, so that it counts as known.
func (p *Parser) buildTokenConfig() {
	for i := range p.options {
		opt := &p.options[i]

		aliases := opt.Alias
		if aliases == nil {
			aliases = []string{}
		}
		p.aliases[opt.Name] = aliases

		if !opt.Default.IsZero() {
			p.defaults[opt.Name] = opt.Default
		}

		switch opt.Type {
		case TypeBoolean:
			p.booleans = append(p.booleans, opt.Name)
		case TypeString:
			p.strings = append(p.strings, opt.Name)
		case TypeAuto:
		}
	}
}

// Name returns the program name shown in help
func (p *Parser) Name() string {
	return p.name
}

// Options returns a copy of the schema in declaration order
func (p *Parser) Options() []Option {
	out := make([]Option, len(p.options))
	for i, opt := range p.options {
		opt.Alias = slices.Clone(opt.Alias)
		out[i] = opt
	}
	return out
}

// Lookup returns the option declared under name, which may be an alias
func (p *Parser) Lookup(name string) (Option, bool) {
	opt, ok := p.index.Get(name)
	if !ok {
		return Option{}, false
	}
	found := *opt
	found.Alias = slices.Clone(opt.Alias)
	return found, true
}

// ParseString splits s with shell quoting rules and parses the tokens.
// Unbalanced quotes or a trailing escape yield a *CLIError.
func (p *Parser) ParseString(s string) (*Result, error) {
	argv, err := shlex.Split(s)
	if err != nil {
		cliErr := NewCLIError(ErrorTypeMalformedInput, "Malformed argument string: "+err.Error()).
			WithCause(err)
		p.debug("rejected arguments", "parser", p.name, "error", cliErr)
		return nil, cliErr
	}
	return p.Parse(argv)
}

// Parse parses already tokenized arguments. The first unknown option aborts
// parsing with a *CLIError; no partial result is returned.
func (p *Parser) Parse(argv []string) (*Result, error) {
	raw, err := getopts.Parse(argv, getopts.Config{
		Alias:   p.aliases,
		Default: p.defaults,
		Boolean: p.booleans,
		String:  p.strings,
		Unknown: p.unknownOption,
	})
	if err != nil {
		p.debug("rejected arguments", "parser", p.name, "error", err)
		return nil, err
	}

	result := p.fanOut(raw)
	p.debug("parsed arguments", "parser", p.name,
		"tokens", len(argv),
		"options", len(raw.Values),
		"positional", len(result.args))
	return result, nil
}

// fanOut copies every canonical entry to all of its aliases so that any
// identifier of an option yields the same occurrences
func (p *Parser) fanOut(raw *getopts.Result) *Result {
	result := &Result{
		values: make(map[string][]Value, p.index.Len()),
		args:   raw.Args,
	}

	for i := range p.options {
		opt := &p.options[i]
		occurrences, ok := raw.Values[opt.Name]
		if !ok {
			continue
		}
		result.values[opt.Name] = occurrences
		for _, alias := range opt.Alias {
			result.values[alias] = occurrences
		}
	}
	return result
}

// unknownOption builds the error for an option missing from the schema
func (p *Parser) unknownOption(name string) error {
	err := NewCLIError(ErrorTypeUnknownOption, "Unknown option: "+name).WithOption(name)
	if !p.suggest {
		return err
	}

	candidates := make([]string, 0, p.index.Len())
	for pair := p.index.Oldest(); pair != nil; pair = pair.Next() {
		candidates = append(candidates, pair.Key)
	}
	for _, match := range fuzzy.FindSuggestions(name, candidates, p.maxDistance, maxSuggestions) {
		_ = err.WithSuggestion(fmt.Sprintf("Did you mean '%s'?", dashed(match)))
	}
	return err
}

func (p *Parser) countDefinite() int {
	n := 0
	for i := range p.options {
		if p.options[i].definite() {
			n++
		}
	}
	return n
}

func (p *Parser) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
