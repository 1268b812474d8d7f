package declargs

import (
	"strings"
	"unicode/utf8"
)

// GenerateHelp renders usage text from the schema:
//
//	Usage
//	  <name> [options]
//
//	Options
//	  --foo, -f                   This is foo
//	  --say-hello, --hello, -s    Says hello. (default: false)
//
// Options appear in declaration order with descriptions aligned in one column.
func (p *Parser) GenerateHelp() string {
	var builder strings.Builder

	builder.WriteString("Usage\n  ")
	builder.WriteString(p.name)
	builder.WriteString(" [options]\n\nOptions\n")

	labels := make([]string, len(p.options))
	width := 0
	for i := range p.options {
		labels[i] = optionLabel(&p.options[i])
		width = max(width, utf8.RuneCountInString(labels[i]))
	}

	for i := range p.options {
		opt := &p.options[i]
		if i > 0 {
			builder.WriteByte('\n')
		}

		builder.WriteString("  ")
		builder.WriteString(labels[i])
		builder.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(labels[i])))
		builder.WriteString("    ")
		builder.WriteString(opt.Description)

		if !opt.Default.IsZero() {
			builder.WriteString(" (default: ")
			builder.WriteString(opt.Default.String())
			builder.WriteString(")")
		}
	}

	return builder.String()
}

// optionLabel joins the name and aliases as they are typed on the command line
func optionLabel(opt *Option) string {
	parts := make([]string, 0, len(opt.Alias)+1)
	parts = append(parts, dashed(opt.Name))
	for _, alias := range opt.Alias {
		parts = append(parts, dashed(alias))
	}
	return strings.Join(parts, ", ")
}

// dashed prefixes one-character identifiers with "-" and others with "--"
func dashed(identifier string) string {
	if utf8.RuneCountInString(identifier) == 1 {
		return "-" + identifier
	}
	return "--" + identifier
}
