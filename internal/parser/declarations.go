package parser

import (
	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/token"
)

// parseTypeDecl parses `NAME '=' ( product | sum )`. On entry curToken is
// the first token of the declaration; on success curToken is the first
// token after it.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	if p.curTokenIs(token.IDENT_UPPER) {
		p.errorf(diagnostics.ErrP004, p.curToken,
			"type name must start with a lowercase letter (got %q)", p.curToken.Lexeme)
		return nil
	}
	if !p.curTokenIs(token.IDENT_LOWER) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected type name, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
		return nil
	}

	decl := &ast.TypeDecl{Token: p.curToken, Name: p.curToken.Lexeme}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken() // move past '='

	// A parenthesized field list with no leading constructor name denotes a
	// product type; otherwise a pipe-separated constructor list.
	if p.curTokenIs(token.LPAREN) {
		fields := p.parseFieldList(decl.Name)
		if fields == nil {
			return nil
		}
		decl.Product = fields
		return decl
	}
	return p.parseSumBody(decl)
}

// parseSumBody parses `ctor ('|' ctor)* ['attributes' '(' field* ')']`.
func (p *Parser) parseSumBody(decl *ast.TypeDecl) *ast.TypeDecl {
	seen := map[string]bool{}
	for {
		ctor := p.parseConstructor(decl.Name)
		if ctor == nil {
			return nil
		}
		if seen[ctor.Name] {
			p.errorf(diagnostics.ErrP002, ctor.Token,
				"duplicate constructor %q in type %q", ctor.Name, decl.Name)
		}
		seen[ctor.Name] = true
		decl.Ctors = append(decl.Ctors, ctor)

		if !p.curTokenIs(token.PIPE) {
			break
		}
		p.nextToken() // move past '|'
	}

	if p.curTokenIs(token.ATTRIBUTES) {
		p.nextToken() // move past 'attributes'
		if !p.curTokenIs(token.LPAREN) {
			p.errorf(diagnostics.ErrP001, p.curToken,
				"expected '(' after attributes, got %s (%q)", p.curToken.Type, p.curToken.Lexeme)
			return nil
		}
		fields := p.parseFieldList(decl.Name)
		if fields == nil {
			return nil
		}
		decl.Attributes = fields
	}
	return decl
}

// parseConstructor parses `NAME ['(' field* ')']`. On success curToken is
// the first token after the constructor.
func (p *Parser) parseConstructor(typeName string) *ast.Constructor {
	if p.curTokenIs(token.IDENT_LOWER) {
		p.errorf(diagnostics.ErrP004, p.curToken,
			"constructor name must start with an uppercase letter (got %q)", p.curToken.Lexeme)
		return nil
	}
	if !p.curTokenIs(token.IDENT_UPPER) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected constructor name in type %q, got %s (%q)",
			typeName, p.curToken.Type, p.curToken.Lexeme)
		return nil
	}

	ctor := &ast.Constructor{Token: p.curToken, Name: p.curToken.Lexeme}
	p.nextToken()

	if p.curTokenIs(token.LPAREN) {
		fields := p.parseFieldList(typeName)
		if fields == nil {
			return nil
		}
		ctor.Fields = fields
	}
	return ctor
}

// parseFieldList parses `'(' field (',' field)* ')'`. On entry curToken is
// '('; on success curToken is the first token after ')'. An empty list
// `()` is rejected: a field-less constructor is written without parens.
func (p *Parser) parseFieldList(owner string) []*ast.Field {
	open := p.curToken
	p.nextToken() // move past '('

	if p.curTokenIs(token.RPAREN) {
		p.errorf(diagnostics.ErrP004, open, "empty field list in %q", owner)
		return nil
	}

	var fields []*ast.Field
	seen := map[string]bool{}
	for {
		f := p.parseField(owner)
		if f == nil {
			return nil
		}
		if seen[f.Name] {
			p.errorf(diagnostics.ErrP003, f.Token,
				"duplicate field %q in %q", f.Name, owner)
		}
		seen[f.Name] = true
		fields = append(fields, f)

		if p.curTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		break
	}

	if !p.curTokenIs(token.RPAREN) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected ')' or ',' in field list of %q, got %s (%q)",
			owner, p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	p.nextToken() // move past ')'
	return fields
}

// parseField parses `typename ['*'|'?'] name`. On success curToken is the
// first token after the field name.
func (p *Parser) parseField(owner string) *ast.Field {
	if !p.curTokenIs(token.IDENT_LOWER) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected field type name in %q, got %s (%q)",
			owner, p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	f := &ast.Field{Token: p.curToken, TypeName: p.curToken.Lexeme, Card: ast.Single}
	p.nextToken()

	switch p.curToken.Type {
	case token.ASTERISK:
		f.Card = ast.Repeated
		p.nextToken()
	case token.QUESTION:
		f.Card = ast.Optional
		p.nextToken()
	}

	if !p.curTokenIs(token.IDENT_LOWER) {
		p.errorf(diagnostics.ErrP001, p.curToken,
			"expected field name in %q, got %s (%q)",
			owner, p.curToken.Type, p.curToken.Lexeme)
		return nil
	}
	f.Name = p.curToken.Lexeme
	p.nextToken()
	return f
}
