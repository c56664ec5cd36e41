package resolver_test

import (
	"strings"
	"testing"

	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/lexer"
	"github.com/asdl-go/asdl/internal/parser"
	"github.com/asdl-go/asdl/internal/pipeline"
	"github.com/asdl-go/asdl/internal/resolver"
	"github.com/asdl-go/asdl/pkg/schema"
)

func parseModules(t *testing.T, sources ...string) []*ast.Module {
	t.Helper()
	var mods []*ast.Module
	for _, src := range sources {
		ctx := pipeline.NewPipelineContext(src)
		ctx = (&lexer.LexerProcessor{}).Process(ctx)
		ctx = (&parser.ParserProcessor{}).Process(ctx)
		if len(ctx.Errors) > 0 {
			t.Fatalf("parse error: %s", ctx.Errors[0].Error())
		}
		mods = append(mods, ctx.Module)
	}
	return mods
}

func resolve(t *testing.T, sources ...string) *schema.Model {
	t.Helper()
	model, errs := resolver.Resolve(parseModules(t, sources...))
	if len(errs) > 0 {
		t.Fatalf("resolve error: %s", errs[0].Error())
	}
	return model
}

func resolveErr(t *testing.T, code diagnostics.ErrorCode, sources ...string) *diagnostics.DiagnosticError {
	t.Helper()
	model, errs := resolver.Resolve(parseModules(t, sources...))
	if model != nil {
		t.Fatal("expected resolution to fail, got a model")
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s", code, strings.Join(msgs, "\n"))
	return nil
}

func TestTagsAreDeclarationOrder(t *testing.T) {
	model := resolve(t, `module cflow {
  cflow = Break | Continue | Return(int status)
}`)

	decl := model.Lookup("cflow")
	if decl == nil {
		t.Fatal("type cflow not found")
	}
	if len(decl.Ctors) != 3 {
		t.Fatalf("expected 3 constructors, got %d", len(decl.Ctors))
	}
	seen := map[int]string{}
	for i, c := range decl.Ctors {
		if c.Tag != i {
			t.Errorf("constructor %s: expected tag %d, got %d", c.Name, i, c.Tag)
		}
		if prev, dup := seen[c.Tag]; dup {
			t.Errorf("tag %d used by both %s and %s", c.Tag, prev, c.Name)
		}
		seen[c.Tag] = c.Name
	}
}

func TestLoadingIsDeterministic(t *testing.T) {
	src := `module m {
  point = (int x, int y)
  shape = Circle(point center, int radius) | Poly(point* corners)
}`
	a := resolve(t, src)
	b := resolve(t, src)

	da, db := a.Lookup("shape"), b.Lookup("shape")
	for i := range da.Ctors {
		if da.Ctors[i].Tag != db.Ctors[i].Tag || da.Ctors[i].Name != db.Ctors[i].Name {
			t.Fatalf("constructor %d differs across identical loads", i)
		}
		for j := range da.Ctors[i].Fields {
			fa, fb := da.Ctors[i].Fields[j], db.Ctors[i].Fields[j]
			if fa.Index != fb.Index || fa.Name != fb.Name || fa.Card != fb.Card || fa.Ref.Name() != fb.Ref.Name() {
				t.Fatalf("field %d of constructor %d differs across identical loads", j, i)
			}
		}
	}
}

func TestProductGetsImplicitConstructor(t *testing.T) {
	model := resolve(t, `module m { point = (int x, int y) }`)

	decl := model.Lookup("point")
	if !decl.Product {
		t.Fatal("expected a product type")
	}
	if len(decl.Ctors) != 1 {
		t.Fatalf("expected exactly one implicit constructor, got %d", len(decl.Ctors))
	}
	ctor := decl.Ctor("")
	if ctor == nil || ctor.Tag != 0 || ctor.Name != "point" {
		t.Fatalf("implicit constructor: %+v", ctor)
	}
	if ctor.Fields[0].Index != 0 || ctor.Fields[1].Index != 1 {
		t.Error("field indices must follow declaration order")
	}
}

func TestPrimitiveResolution(t *testing.T) {
	model := resolve(t, `module m { rec = (string s, int i, bool b) }`)

	fields := model.Lookup("rec").Ctor("").Fields
	prims := []schema.Primitive{schema.String, schema.Int, schema.Bool}
	for i, want := range prims {
		if !fields[i].Ref.IsPrimitive() || fields[i].Ref.Prim != want {
			t.Errorf("field %d: expected primitive %s, got %s", i, want, fields[i].Ref.Name())
		}
	}
}

func TestForwardReferenceResolves(t *testing.T) {
	model := resolve(t, `module m {
  a = A(b child)
  b = (int x)
}`)
	ref := model.Lookup("a").Ctor("A").Fields[0].Ref
	if ref.Decl != model.Lookup("b") {
		t.Fatal("forward reference did not bind to the declared type")
	}
}

func TestCrossModuleResolution(t *testing.T) {
	model := resolve(t,
		`module base { word = (string val) }`,
		`module cmd { simple = Simple(word* words) }`,
	)
	ref := model.Lookup("simple").Ctor("Simple").Fields[0].Ref
	if ref.Decl == nil || ref.Decl.Module.Name != "base" {
		t.Fatal("cross-module reference did not bind")
	}
}

func TestOwnModuleWinsNameClash(t *testing.T) {
	model := resolve(t,
		`module a { word = (string val) }`,
		`module b {
  word = (int val)
  use = U(word w)
}`,
	)
	ref := model.Lookup("use").Ctor("U").Fields[0].Ref
	if ref.Decl.Module.Name != "b" {
		t.Fatalf("expected the declaring module's type to win, got module %q", ref.Decl.Module.Name)
	}
}

func TestAttributesAppendedToEveryConstructor(t *testing.T) {
	model := resolve(t, `module m {
  expr = Const(int val) | Var(string name) | Nop attributes (int lineno)
}`)

	decl := model.Lookup("expr")
	for _, c := range decl.Ctors {
		f := c.FieldByName("lineno")
		if f == nil {
			t.Fatalf("constructor %s missing attribute field", c.Name)
		}
		if f.Index < c.NumOwn {
			t.Errorf("constructor %s: attribute field must follow own fields", c.Name)
		}
	}
	if got := len(decl.Ctor("Nop").Fields); got != 1 {
		t.Errorf("Nop: expected 1 field (the attribute), got %d", got)
	}
}

func TestUnresolvedName(t *testing.T) {
	e := resolveErr(t, diagnostics.ErrR001, `module m { a = A(missing x) }`)
	if !strings.Contains(e.Message, `"missing"`) {
		t.Errorf("message should name the unresolved type: %s", e.Message)
	}
}

func TestDuplicateTypeDeclaration(t *testing.T) {
	resolveErr(t, diagnostics.ErrR002, `module m {
  a = A
  a = B
}`)
}

func TestAttributeCollision(t *testing.T) {
	resolveErr(t, diagnostics.ErrR003, `module m {
  e = C(int lineno) attributes (int lineno)
}`)
}

func TestSelfEmbeddingRejected(t *testing.T) {
	e := resolveErr(t, diagnostics.ErrC001, `module m { a = (a child) }`)
	if !strings.Contains(e.Message, "a -> a") {
		t.Errorf("message should show the cycle path: %s", e.Message)
	}
}

func TestIndirectCycleRejected(t *testing.T) {
	e := resolveErr(t, diagnostics.ErrC001, `module m {
  a = A(b child)
  b = B(a child)
}`)
	if !strings.Contains(e.Message, "->") {
		t.Errorf("message should show the cycle path: %s", e.Message)
	}
}

func TestRepeatedFieldBreaksCycle(t *testing.T) {
	resolve(t, `module m { tree = Node(tree* children) }`)
}

func TestOptionalFieldBreaksCycle(t *testing.T) {
	resolve(t, `module m { chain = Link(chain? next, int val) }`)
}

func TestGuardedIndirectCycle(t *testing.T) {
	resolve(t, `module m {
  a = A(b child)
  b = B(a* children)
}`)
}

func TestSimplePredicate(t *testing.T) {
	model := resolve(t, `module m {
  op = Plus | Minus
  expr = Const(int v) | Nop
  point = (int x, int y)
}`)
	if !model.Lookup("op").Simple() {
		t.Error("op should be simple")
	}
	if model.Lookup("expr").Simple() {
		t.Error("expr is not simple: Const has fields")
	}
	if model.Lookup("point").Simple() {
		t.Error("products are never simple")
	}
}

func TestModelIdentityDiffersPerLoad(t *testing.T) {
	src := `module m { a = A }`
	a := resolve(t, src)
	b := resolve(t, src)
	if a.ID() == b.ID() {
		t.Fatal("independent loads must have distinct model identities")
	}
}
