// Package diagnostics defines the positioned, coded errors produced while
// loading a schema. Loading either succeeds fully or surfaces these whole;
// a partially loaded schema is never exposed.
package diagnostics

import (
	"fmt"

	"github.com/asdl-go/asdl/internal/token"
)

type ErrorCode string

const (
	// Lexer
	ErrL001 ErrorCode = "L001" // invalid character

	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // duplicate constructor name
	ErrP003 ErrorCode = "P003" // duplicate field name
	ErrP004 ErrorCode = "P004" // malformed declaration

	// Resolver
	ErrR001 ErrorCode = "R001" // unresolved type name
	ErrR002 ErrorCode = "R002" // duplicate type declaration
	ErrR003 ErrorCode = "R003" // attribute field collides with constructor field
	ErrC001 ErrorCode = "C001" // illegal recursive embedding
)

// Kind maps a code to its stage of origin.
func (c ErrorCode) Kind() string {
	switch c[0] {
	case 'L':
		return "lex error"
	case 'P':
		return "parse error"
	case 'R':
		return "resolution error"
	case 'C':
		return "cycle error"
	}
	return "error"
}

type DiagnosticError struct {
	Code    ErrorCode
	File    string
	Line    int
	Column  int
	Message string
}

func (e *DiagnosticError) Error() string {
	loc := fmt.Sprintf("%d:%d", e.Line, e.Column)
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	return fmt.Sprintf("%s: %s [%s]: %s", loc, e.Code.Kind(), e.Code, e.Message)
}

func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Line:    tok.Line,
		Column:  tok.Column,
		Message: fmt.Sprintf(format, args...),
	}
}
