// Package ast holds the unresolved declaration tree produced by the parser.
// Type names are still plain strings here; the resolver turns them into
// concrete identities.
package ast

import "github.com/asdl-go/asdl/internal/token"

// Node is the base interface for all declaration tree nodes.
type Node interface {
	GetToken() token.Token
}

// Module is the root node: a named, ordered sequence of type declarations.
// module NAME { typedecl* }
type Module struct {
	Token token.Token // The 'module' token
	Name  string
	File  string // Source file path
	Decls []*TypeDecl
}

func (m *Module) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// TypeDecl is one declaration inside a module. Exactly one of the two shapes
// holds: a product type has Product set and no Ctors; a sum type has at
// least one constructor and may carry a trailing attributes field list,
// applied to every constructor at resolution time.
type TypeDecl struct {
	Token      token.Token // The type name token
	Name       string
	Product    []*Field // product: name = (field*)
	Ctors      []*Constructor
	Attributes []*Field
}

func (td *TypeDecl) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

// IsProduct reports whether the declaration is a product type.
func (td *TypeDecl) IsProduct() bool { return td.Ctors == nil }

// Constructor is one named variant of a sum type.
// NAME [ '(' field* ')' ]
type Constructor struct {
	Token  token.Token // The constructor name token
	Name   string
	Fields []*Field
}

func (c *Constructor) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Cardinality is the declared multiplicity of a field.
type Cardinality int

const (
	Single   Cardinality = iota // exactly one
	Optional                    // zero or one ('?')
	Repeated                    // zero or more ('*')
)

func (c Cardinality) String() string {
	switch c {
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	}
	return "single"
}

// Field is a typed, named slot of a constructor or product.
// typename ['*'|'?'] name
type Field struct {
	Token    token.Token // The type name token
	TypeName string
	Card     Cardinality
	Name     string
}

func (f *Field) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}
