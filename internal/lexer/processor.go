package lexer

import (
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/pipeline"
	"github.com/asdl-go/asdl/internal/token"
)

type LexerProcessor struct{}

// Process tokenizes the whole source into a buffered stream. Illegal
// characters are reported but lexing continues, so the parser can still
// surface later diagnostics in one pass.
func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(
				diagnostics.ErrL001,
				tok,
				"invalid character %q",
				tok.Lexeme,
			))
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.TokenStream = token.NewStream(tokens)
	return ctx
}
