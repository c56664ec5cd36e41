package parser

import (
	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/pipeline"
	"github.com/asdl-go/asdl/internal/token"
)

// Parser consumes the token stream for one module at a time, producing an
// unresolved declaration tree. Duplicate constructor and field names are
// flagged here, as soon as they are locally observable; everything that
// needs cross-declaration knowledge waits for the resolver.
type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	// Read two tokens so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances if the next token matches, otherwise reports P001.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected %s, got %s (%q)",
		t, p.peekToken.Type, p.peekToken.Lexeme,
	))
	return false
}

func (p *Parser) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, format, args...))
}

// ParseModule parses `module NAME { typedecl* }` and returns the tree, or
// nil when the module header itself is unusable.
func (p *Parser) ParseModule() *ast.Module {
	if !p.curTokenIs(token.MODULE) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected 'module', got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	mod := &ast.Module{Token: p.curToken}

	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	mod.Name = p.curToken.Lexeme

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken() // move past '{'

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		decl := p.parseTypeDecl()
		if decl == nil {
			p.skipToDeclBoundary()
			continue
		}
		mod.Decls = append(mod.Decls, decl)
	}

	if p.curTokenIs(token.EOF) {
		p.errorf(diagnostics.ErrP001, p.curToken, "expected '}' closing module %q", mod.Name)
		return mod
	}
	p.nextToken() // move past '}'

	if !p.curTokenIs(token.EOF) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"unexpected %s (%q) after module body", p.curToken.Type, p.curToken.Lexeme)
	}
	return mod
}

// skipToDeclBoundary recovers from a malformed declaration by skipping to a
// token that can plausibly start the next one.
func (p *Parser) skipToDeclBoundary() {
	for !p.curTokenIs(token.EOF) && !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.IDENT_LOWER) && p.peekTokenIs(token.ASSIGN) {
			return
		}
		p.nextToken()
	}
}
