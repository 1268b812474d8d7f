package benchmark_test

import (
	"testing"

	"github.com/dzonerzy/declargs/declargs"
)

// Category: parser

func buildHelloworld() *declargs.Parser {
	return declargs.MustNew(declargs.Config{
		Name: "helloworld",
		Options: []declargs.Option{
			{Name: "foo", Alias: []string{"f"}, Description: "This is foo"},
			{Name: "say-hello", Alias: []string{"hello", "s"}, Type: declargs.TypeBoolean, Default: declargs.Bool(false), Description: "Say hello"},
			{Name: "name", Alias: []string{"n"}, Type: declargs.TypeString, Description: "Name"},
		},
	})
}

func BenchmarkParseTokens(b *testing.B) {
	parser := buildHelloworld()
	args := []string{"-f", "bar", "--say-hello", "-n", "alice", "pos"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil {
			b.Fatal(err)
		}
		if !result.Bool("hello") {
			b.Fatalf("say-hello not fanned out")
		}
	}
}

func BenchmarkParseString(b *testing.B) {
	parser := buildHelloworld()
	line := `-f bar --say-hello --name "alice smith" pos`
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.ParseString(line); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnknownOptionWithSuggestions(b *testing.B) {
	parser := declargs.MustNew(declargs.Config{
		Name: "helloworld",
		Options: []declargs.Option{
			{Name: "verbose", Type: declargs.TypeBoolean, Description: "Verbose"},
			{Name: "version", Type: declargs.TypeBoolean, Description: "Version"},
			{Name: "output", Alias: []string{"o"}, Description: "Output"},
		},
	}, declargs.WithSuggestions(2))
	args := []string{"--outptu", "x"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(args); err == nil {
			b.Fatal("expected unknown option error")
		}
	}
}

func BenchmarkGenerateHelp(b *testing.B) {
	parser := buildHelloworld()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.GenerateHelp()
	}
}
