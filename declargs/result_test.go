//nolint:testpackage // using package name 'declargs' to access unexported fields for testing
package declargs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResult_Accessors(t *testing.T) {
	p := MustNew(helloworld(
		Option{Name: "tag", Alias: []string{"t"}, Type: TypeString, Description: "d"},
		Option{Name: "verbose", Alias: []string{"v"}, Type: TypeBoolean, Description: "d"},
		Option{Name: "out", Description: "d"},
		Option{Name: "port", Default: Number(8080), Description: "d"},
	))

	result, err := p.Parse([]string{"-t", "a", "--tag", "b", "-v", "file.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Has("t") || !result.Has("tag") {
		t.Error("expected tag to be present under name and alias")
	}
	if result.Has("out") {
		t.Error("indefinite option should be absent")
	}
	if !result.Repeated("tag") || result.Repeated("verbose") {
		t.Error("unexpected Repeated result")
	}

	if s, ok := result.String("tag"); !ok || s != "b" {
		t.Errorf("String(tag) = %q, %v; want last occurrence", s, ok)
	}
	if diff := cmp.Diff([]string{"a", "b"}, result.Strings("t")); diff != "" {
		t.Errorf("Strings(t) mismatch (-want +got):\n%s", diff)
	}
	if !result.Bool("v") {
		t.Error("Bool(v) should be true")
	}
	if result.Bool("tag") {
		t.Error("Bool on a string option should be false")
	}
	if v, ok := result.Lookup("port"); !ok || v.Kind() != KindNumber {
		t.Errorf("Lookup(port) = %v, %v", v, ok)
	}
	if _, ok := result.Lookup("out"); ok {
		t.Error("Lookup(out) should report absence")
	}
	if diff := cmp.Diff([]string{"file.txt"}, result.Args()); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestResult_DoesNotShareState(t *testing.T) {
	p := MustNew(helloworld(
		Option{Name: "tag", Alias: []string{"t"}, Type: TypeString, Description: "d"},
	))

	result, err := p.Parse([]string{"--tag", "a", "pos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	values := result.Values("tag")
	values[0] = String("mutated")
	args := result.Args()
	args[0] = "mutated"

	if s, _ := result.String("t"); s != "a" {
		t.Errorf("alias value changed through Values copy: %q", s)
	}
	if result.Args()[0] != "pos" {
		t.Error("Args copy leaked into result")
	}

	again, err := p.Parse([]string{"--tag", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := result.String("tag"); s != "a" {
		t.Errorf("earlier result changed by later parse: %q", s)
	}
	if s, _ := again.String("tag"); s != "b" {
		t.Errorf("later result = %q, want b", s)
	}
}

func TestResult_MapAlwaysHasArgs(t *testing.T) {
	p := MustNew(helloworld())

	result, err := p.Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]any{ArgsKey: []string{}}
	if diff := cmp.Diff(want, result.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}
