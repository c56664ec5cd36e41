// Package schema is the resolved, immutable type model produced by loading
// ASDL source. Every name has been bound to a concrete identity, every
// constructor carries its declaration-order tag, and illegal recursion has
// been ruled out, so the model can be shared and read concurrently without
// synchronization.
package schema

import (
	"fmt"

	"github.com/google/uuid"
)

// Cardinality is the declared multiplicity of a field.
type Cardinality int

const (
	Single   Cardinality = iota // exactly one value
	Optional                    // zero or one
	Repeated                    // zero or more, ordered
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

// Primitive is one of the built-in leaf kinds.
type Primitive int

const (
	NoPrimitive Primitive = iota
	String
	Int
	Bool
)

func (p Primitive) String() string {
	switch p {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	}
	return "<invalid>"
}

// TypeRef is a resolved type identity: either a primitive kind or a pointer
// to a declared type. Exactly one side is set.
type TypeRef struct {
	Prim Primitive
	Decl *TypeDecl
}

func PrimRef(p Primitive) TypeRef   { return TypeRef{Prim: p} }
func DeclRef(d *TypeDecl) TypeRef   { return TypeRef{Decl: d} }
func (r TypeRef) IsPrimitive() bool { return r.Decl == nil }

func (r TypeRef) Name() string {
	if r.Decl != nil {
		return r.Decl.Name
	}
	return r.Prim.String()
}

// Field is one typed slot of a constructor.
type Field struct {
	Name  string
	Index int
	Ref   TypeRef
	Card  Cardinality
}

// Constructor is one variant of a sum type (or the single implicit variant
// of a product type). Tag is the 0-based declaration-order tag, stable for
// the lifetime of the model. NumOwn is the count of fields declared on the
// constructor itself; fields at index >= NumOwn were appended from the sum
// type's attributes clause.
type Constructor struct {
	Name   string
	Tag    int
	Fields []*Field
	NumOwn int
	Decl   *TypeDecl

	byName map[string]*Field
}

// FieldByName returns the named field, or nil if this constructor does not
// declare it.
func (c *Constructor) FieldByName(name string) *Field {
	return c.byName[name]
}

// TypeDecl is one resolved module-level type. A product type is represented
// as a degenerate sum with exactly one implicit constructor named after the
// type, so one code path serves construction and validation of both.
type TypeDecl struct {
	Name    string
	Module  *Module
	Product bool
	Ctors   []*Constructor

	byName map[string]*Constructor
}

// Ctor returns the named constructor of a sum type. For product types pass
// the empty string (or the type's own name) to get the implicit constructor.
func (d *TypeDecl) Ctor(name string) *Constructor {
	if d.Product && (name == "" || name == d.Name) {
		return d.Ctors[0]
	}
	return d.byName[name]
}

// Simple reports whether the declaration is a sum type whose constructors
// all carry zero fields — representable as a bare enum downstream.
func (d *TypeDecl) Simple() bool {
	if d.Product {
		return false
	}
	for _, c := range d.Ctors {
		if len(c.Fields) > 0 {
			return false
		}
	}
	return true
}

// Module is a named, ordered sequence of resolved type declarations.
type Module struct {
	Name  string
	Decls []*TypeDecl

	byName map[string]*TypeDecl
}

func (m *Module) Lookup(name string) *TypeDecl { return m.byName[name] }

// Model is the registry of every module of one load, in load order. Each
// model carries a unique identity so that values built against one model
// are never mistaken for values of an independently loaded one.
type Model struct {
	id      uuid.UUID
	modules []*Module
}

func (m *Model) ID() uuid.UUID      { return m.id }
func (m *Model) Modules() []*Module { return m.modules }

// Lookup finds a declared type by name, scanning modules in load order.
func (m *Model) Lookup(name string) *TypeDecl {
	for _, mod := range m.modules {
		if d := mod.byName[name]; d != nil {
			return d
		}
	}
	return nil
}

// Builder assembles a Model. It lives in this package so the resolved
// structures stay immutable from the outside: the resolver builds through
// it, everyone else only reads.
type Builder struct {
	model *Model
}

func NewBuilder() *Builder {
	return &Builder{model: &Model{id: uuid.New()}}
}

func (b *Builder) AddModule(name string) *Module {
	mod := &Module{Name: name, byName: map[string]*TypeDecl{}}
	b.model.modules = append(b.model.modules, mod)
	return mod
}

// AddType appends a declaration to mod. The caller guarantees name
// uniqueness; a violation here is a resolver bug, not bad input.
func (b *Builder) AddType(mod *Module, name string, product bool) *TypeDecl {
	if mod.byName[name] != nil {
		panic(fmt.Sprintf("schema: duplicate type %q in module %q", name, mod.Name))
	}
	d := &TypeDecl{Name: name, Module: mod, Product: product, byName: map[string]*Constructor{}}
	mod.Decls = append(mod.Decls, d)
	mod.byName[name] = d
	return d
}

// AddCtor appends a constructor to d, assigning the next tag in declaration
// order.
func (b *Builder) AddCtor(d *TypeDecl, name string) *Constructor {
	c := &Constructor{Name: name, Tag: len(d.Ctors), Decl: d, byName: map[string]*Field{}}
	d.Ctors = append(d.Ctors, c)
	d.byName[name] = c
	return c
}

// AddField appends a field to c, assigning the next index.
func (b *Builder) AddField(c *Constructor, name string, ref TypeRef, card Cardinality) *Field {
	f := &Field{Name: name, Index: len(c.Fields), Ref: ref, Card: card}
	c.Fields = append(c.Fields, f)
	c.byName[name] = f
	return f
}

// SealOwnFields records how many fields the constructor declared itself,
// before attribute fields are appended.
func (b *Builder) SealOwnFields(c *Constructor) { c.NumOwn = len(c.Fields) }

// Model returns the finished model. The builder must not be used afterwards.
func (b *Builder) Model() *Model {
	m := b.model
	b.model = nil
	return m
}
