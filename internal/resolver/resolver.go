// Package resolver turns parsed declaration trees into the immutable type
// model: every field's type name is bound to a primitive kind or a declared
// type, constructors get their declaration-order tags, attribute fields are
// appended to every constructor of their sum, and unguarded recursive
// embedding is rejected.
package resolver

import (
	"strings"

	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/config"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/pkg/schema"
)

type resolver struct {
	builder *schema.Builder
	modules []*moduleScope
	errors  []*diagnostics.DiagnosticError

	// declSite maps resolved decls back to their source for cycle reports.
	declSite map[*schema.TypeDecl]*declScope
}

type moduleScope struct {
	src *ast.Module
	out *schema.Module
}

type declScope struct {
	src  *ast.TypeDecl
	file string
	out  *schema.TypeDecl
}

// Resolve binds all modules of one load into a single model. Lookup order
// for a field's type name is the declaring module first, then the other
// modules in load order. On any diagnostic the model is withheld: loading
// either succeeds fully or fails whole.
func Resolve(mods []*ast.Module) (*schema.Model, []*diagnostics.DiagnosticError) {
	r := &resolver{
		builder:  schema.NewBuilder(),
		declSite: map[*schema.TypeDecl]*declScope{},
	}

	r.declareAll(mods)
	r.resolveAll()
	r.checkCycles()

	if len(r.errors) > 0 {
		return nil, r.errors
	}
	return r.builder.Model(), nil
}

func (r *resolver) errorf(code diagnostics.ErrorCode, node ast.Node, file string, format string, args ...interface{}) {
	err := diagnostics.NewError(code, node.GetToken(), format, args...)
	err.File = file
	r.errors = append(r.errors, err)
}

// declareAll registers every type name before any field is resolved, so
// declaration order never limits what a field may reference.
func (r *resolver) declareAll(mods []*ast.Module) {
	for _, src := range mods {
		scope := &moduleScope{src: src, out: r.builder.AddModule(src.Name)}
		r.modules = append(r.modules, scope)

		for _, d := range src.Decls {
			if scope.out.Lookup(d.Name) != nil {
				r.errorf(diagnostics.ErrR002, d, src.File,
					"type %q declared more than once in module %q", d.Name, src.Name)
				continue
			}
			out := r.builder.AddType(scope.out, d.Name, d.IsProduct())
			r.declSite[out] = &declScope{src: d, file: src.File, out: out}
		}
	}
}

func (r *resolver) resolveAll() {
	for _, scope := range r.modules {
		for _, out := range scope.out.Decls {
			site := r.declSite[out]
			if site.src.IsProduct() {
				// The implicit constructor of a product shares the type's name.
				ctor := r.builder.AddCtor(out, out.Name)
				r.addFields(scope, site, ctor, site.src.Product)
				r.builder.SealOwnFields(ctor)
				continue
			}
			for _, c := range site.src.Ctors {
				ctor := r.builder.AddCtor(out, c.Name)
				r.addFields(scope, site, ctor, c.Fields)
				r.builder.SealOwnFields(ctor)
				r.addAttributes(scope, site, ctor, site.src.Attributes)
			}
		}
	}
}

func (r *resolver) addFields(scope *moduleScope, site *declScope, ctor *schema.Constructor, fields []*ast.Field) {
	for _, f := range fields {
		ref, ok := r.resolveRef(scope, site, f)
		if !ok {
			continue
		}
		r.builder.AddField(ctor, f.Name, ref, cardOf(f.Card))
	}
}

// addAttributes appends the sum type's shared trailing fields to one
// constructor, after its own fields. A name collision with an own field is
// only observable here, once both lists exist for the same constructor.
func (r *resolver) addAttributes(scope *moduleScope, site *declScope, ctor *schema.Constructor, attrs []*ast.Field) {
	for _, f := range attrs {
		if ctor.FieldByName(f.Name) != nil {
			r.errorf(diagnostics.ErrR003, f, site.file,
				"attribute field %q collides with a field of constructor %q", f.Name, ctor.Name)
			continue
		}
		ref, ok := r.resolveRef(scope, site, f)
		if !ok {
			continue
		}
		r.builder.AddField(ctor, f.Name, ref, cardOf(f.Card))
	}
}

// resolveRef binds one field's type name: primitives first, then the
// declaring module, then the other modules in load order.
func (r *resolver) resolveRef(scope *moduleScope, site *declScope, f *ast.Field) (schema.TypeRef, bool) {
	switch f.TypeName {
	case config.StringTypeName:
		return schema.PrimRef(schema.String), true
	case config.IntTypeName:
		return schema.PrimRef(schema.Int), true
	case config.BoolTypeName:
		return schema.PrimRef(schema.Bool), true
	}

	if d := scope.out.Lookup(f.TypeName); d != nil {
		return schema.DeclRef(d), true
	}
	for _, other := range r.modules {
		if other == scope {
			continue
		}
		if d := other.out.Lookup(f.TypeName); d != nil {
			return schema.DeclRef(d), true
		}
	}

	r.errorf(diagnostics.ErrR001, f, site.file,
		"unresolved type name %q in field %q of %q", f.TypeName, f.Name, site.src.Name)
	return schema.TypeRef{}, false
}

func cardOf(c ast.Cardinality) schema.Cardinality {
	switch c {
	case ast.Optional:
		return schema.Optional
	case ast.Repeated:
		return schema.Repeated
	}
	return schema.Single
}

// checkCycles walks the dependency graph whose edges are single-cardinality
// fields referencing declared types. Optional and repeated fields are
// excluded: absence and the empty sequence give recursive shapes a finite
// representation, so only unguarded single embedding is illegal.
func (r *resolver) checkCycles() {
	const (
		white = iota // unvisited
		grey         // on the current DFS path
		black        // finished
	)
	color := map[*schema.TypeDecl]int{}
	var path []*schema.TypeDecl

	var visit func(d *schema.TypeDecl) bool
	visit = func(d *schema.TypeDecl) bool {
		color[d] = grey
		path = append(path, d)

		for _, ctor := range d.Ctors {
			for _, f := range ctor.Fields {
				if f.Card != schema.Single || f.Ref.IsPrimitive() {
					continue
				}
				next := f.Ref.Decl
				switch color[next] {
				case grey:
					r.reportCycle(append(path, next))
					return false
				case white:
					if !visit(next) {
						return false
					}
				}
			}
		}

		path = path[:len(path)-1]
		color[d] = black
		return true
	}

	for _, scope := range r.modules {
		for _, d := range scope.out.Decls {
			if color[d] == white {
				if !visit(d) {
					// One cycle per load is enough to abort it.
					return
				}
			}
		}
	}
}

func (r *resolver) reportCycle(path []*schema.TypeDecl) {
	// Trim the path to the cycle proper: everything from the first
	// occurrence of the repeated decl.
	last := path[len(path)-1]
	start := 0
	for i, d := range path[:len(path)-1] {
		if d == last {
			start = i
			break
		}
	}
	names := make([]string, 0, len(path)-start)
	for _, d := range path[start:] {
		names = append(names, d.Name)
	}

	site := r.declSite[last]
	r.errorf(diagnostics.ErrC001, site.src, site.file,
		"type %q embeds itself without optional or repeated indirection: %s",
		last.Name, strings.Join(names, " -> "))
}
