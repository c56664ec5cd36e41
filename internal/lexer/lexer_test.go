package lexer

import (
	"testing"

	"github.com/asdl-go/asdl/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `-- control flow
module cflow {
  cflow = Break | Continue | Return(int status)
  source_location = (string path, int? line, int* cols)
}`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.MODULE, "module"},
		{token.IDENT_LOWER, "cflow"},
		{token.LBRACE, "{"},
		{token.IDENT_LOWER, "cflow"},
		{token.ASSIGN, "="},
		{token.IDENT_UPPER, "Break"},
		{token.PIPE, "|"},
		{token.IDENT_UPPER, "Continue"},
		{token.PIPE, "|"},
		{token.IDENT_UPPER, "Return"},
		{token.LPAREN, "("},
		{token.IDENT_LOWER, "int"},
		{token.IDENT_LOWER, "status"},
		{token.RPAREN, ")"},
		{token.IDENT_LOWER, "source_location"},
		{token.ASSIGN, "="},
		{token.LPAREN, "("},
		{token.IDENT_LOWER, "string"},
		{token.IDENT_LOWER, "path"},
		{token.COMMA, ","},
		{token.IDENT_LOWER, "int"},
		{token.QUESTION, "?"},
		{token.IDENT_LOWER, "line"},
		{token.COMMA, ","},
		{token.IDENT_LOWER, "int"},
		{token.ASTERISK, "*"},
		{token.IDENT_LOWER, "cols"},
		{token.RPAREN, ")"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tt.expectedLexeme != "" && tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	l := New("module m { -- trailing comment with punctuation = | ( )\n}")
	var types []token.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	want := []token.TokenType{token.MODULE, token.IDENT_LOWER, token.LBRACE, token.RBRACE, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("token %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestAttributesKeyword(t *testing.T) {
	l := New("attributes")
	tok := l.NextToken()
	if tok.Type != token.ATTRIBUTES {
		t.Fatalf("expected ATTRIBUTES, got %s", tok.Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("module m { a = B; }")
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			if tok.Lexeme != ";" {
				t.Fatalf("expected illegal %q, got %q", ";", tok.Lexeme)
			}
			return
		}
		if tok.Type == token.EOF {
			t.Fatal("expected an ILLEGAL token, got none")
		}
	}
}

func TestLoneDashIsIllegal(t *testing.T) {
	l := New("a - b")
	l.NextToken() // a
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for lone '-', got %s (%q)", tok.Type, tok.Lexeme)
	}
}

func TestPositions(t *testing.T) {
	l := New("module m {\n  t = C\n}")
	var tok token.Token
	for tok.Lexeme != "C" {
		tok = l.NextToken()
		if tok.Type == token.EOF {
			t.Fatal("did not find constructor token")
		}
	}
	if tok.Line != 2 {
		t.Errorf("expected line 2, got %d", tok.Line)
	}
	if tok.Column != 7 {
		t.Errorf("expected column 7, got %d", tok.Column)
	}
}
