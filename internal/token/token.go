package token

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers. ASDL distinguishes the two classes lexically: type and
	// field names are lowercase, constructor names are uppercase.
	IDENT_LOWER TokenType = "IDENT_LOWER"
	IDENT_UPPER TokenType = "IDENT_UPPER"

	// Keywords
	MODULE     TokenType = "MODULE"
	ATTRIBUTES TokenType = "ATTRIBUTES"

	// Punctuation
	ASSIGN   TokenType = "="
	PIPE     TokenType = "|"
	ASTERISK TokenType = "*"
	QUESTION TokenType = "?"
	COMMA    TokenType = ","
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

var keywords = map[string]TokenType{
	"module":     MODULE,
	"attributes": ATTRIBUTES,
}

// LookupIdent returns the keyword type for ident, or the identifier class
// determined by the first letter.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident[0] >= 'A' && ident[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}
