//nolint:testpackage // using package name 'declargs' to access unexported fields for testing
package declargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateHelp(t *testing.T) {
	p := MustNew(helloworld(
		Option{Name: "foo", Alias: []string{"f"}, Description: "This is foo"},
		Option{
			Name:        "say-hello",
			Alias:       []string{"hello", "s"},
			Description: `The program will say "Hello".`,
			Default:     Bool(false),
			Type:        TypeBoolean,
		},
	))

	want := `Usage
  helloworld [options]

Options
  --foo, -f                   This is foo
  --say-hello, --hello, -s    The program will say "Hello". (default: false)`

	if diff := cmp.Diff(want, p.GenerateHelp()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateHelp_Cases(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		want    string
	}{
		{
			name:    "empty schema",
			options: nil,
			want:    "Usage\n  helloworld [options]\n\nOptions\n",
		},
		{
			name: "declaration order and default rendering",
			options: []Option{
				{Name: "z", Description: "Last letter", Default: Number(0)},
				{Name: "a", Alias: []string{"alpha"}, Description: "First letter", Default: String("hello")},
				{Name: "ratio", Description: "Ratio", Default: Number(1.5)},
			},
			want: "Usage\n  helloworld [options]\n\nOptions\n" +
				"  -z             Last letter (default: 0)\n" +
				"  -a, --alpha    First letter (default: hello)\n" +
				"  --ratio        Ratio (default: 1.5)",
		},
		{
			name: "empty string default is still declared",
			options: []Option{
				{Name: "prefix", Type: TypeString, Default: String(""), Description: "Prefix"},
			},
			want: "Usage\n  helloworld [options]\n\nOptions\n" +
				"  --prefix    Prefix (default: )",
		},
		{
			name: "multibyte identifiers",
			options: []Option{
				{Name: "é", Description: "Accent"},
				{Name: "long", Description: "Long"},
			},
			want: "Usage\n  helloworld [options]\n\nOptions\n" +
				"  -é        Accent\n" +
				"  --long    Long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(helloworld(tt.options...)).GenerateHelp()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("help mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateHelp_Deterministic(t *testing.T) {
	p := MustNew(helloworld(
		Option{Name: "b", Description: "B"},
		Option{Name: "a", Description: "A"},
		Option{Name: "c", Description: "C"},
	))

	first := p.GenerateHelp()
	for range 10 {
		if got := p.GenerateHelp(); got != first {
			t.Fatalf("help changed between calls:\n%s\n---\n%s", first, got)
		}
	}
}

func TestDashed(t *testing.T) {
	tests := map[string]string{
		"f":         "-f",
		"foo":       "--foo",
		"say-hello": "--say-hello",
		"1":         "-1",
	}
	for in, want := range tests {
		if got := dashed(in); got != want {
			t.Errorf("dashed(%q) = %q, want %q", in, got, want)
		}
	}
}
