package parser_test

import (
	"testing"

	"github.com/asdl-go/asdl/internal/lexer"
	"github.com/asdl-go/asdl/internal/parser"
	"github.com/asdl-go/asdl/internal/pipeline"
)

// FuzzParseModule checks the lexer+parser never panic and never accept a
// module while also reporting errors silently dropped.
func FuzzParseModule(f *testing.F) {
	f.Add("module m { a = B | C(int x) }")
	f.Add("module m { p = (string s, int* ns, bool? b) }")
	f.Add("module m { e = X attributes (int lineno) }")
	f.Add("module m {")
	f.Add("module m { a = }")
	f.Add("-- comment only")

	f.Fuzz(func(t *testing.T, input string) {
		ctx := pipeline.NewPipelineContext(input)
		ctx = (&lexer.LexerProcessor{}).Process(ctx)
		ctx = (&parser.ParserProcessor{}).Process(ctx)

		if ctx.Module == nil && len(ctx.Errors) == 0 {
			t.Fatalf("no module and no diagnostics for input %q", input)
		}
	})
}
