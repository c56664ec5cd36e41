// Package value is the runtime contract over a resolved schema model:
// typed construction, field access, structural validation, and canonical
// printing of immutable value instances.
package value

import (
	"fmt"

	"github.com/asdl-go/asdl/pkg/schema"
)

// Datum is one field value. The set of implementations is closed: String,
// Int, Bool, List, and *Value. An absent optional field is a nil Datum,
// which keeps "absent" distinct from the empty List.
type Datum interface {
	datum()
}

type String string

type Int int64

type Bool bool

// List is the ordered contents of a repeated field.
type List []Datum

func (String) datum() {}
func (Int) datum()    {}
func (Bool) datum()   {}
func (List) datum()   {}
func (*Value) datum() {}

// Value is one immutable instance of a declared type: its constructor
// identity plus field values in declared order. Values are created only by
// Construct/ConstructNamed and never mutated.
type Value struct {
	model  *schema.Model
	ctor   *schema.Constructor
	fields []Datum
}

func (v *Value) Model() *schema.Model            { return v.model }
func (v *Value) Type() *schema.TypeDecl          { return v.ctor.Decl }
func (v *Value) Constructor() *schema.Constructor { return v.ctor }
func (v *Value) Tag() int                        { return v.ctor.Tag }
func (v *Value) NumFields() int                  { return len(v.fields) }

// Get retrieves a field value by name. Different constructors of one sum
// type may declare disjoint field sets, so a name valid for the type can
// still be invalid for this value's concrete constructor.
func (v *Value) Get(name string) (Datum, error) {
	f := v.ctor.FieldByName(name)
	if f == nil {
		return nil, &FieldAccessError{Ctor: v.ctor.Name, Field: name, Index: -1}
	}
	return cloneDatum(v.fields[f.Index]), nil
}

// GetIndex retrieves a field value by its declared index.
func (v *Value) GetIndex(i int) (Datum, error) {
	if i < 0 || i >= len(v.fields) {
		return nil, &FieldAccessError{Ctor: v.ctor.Name, Index: i}
	}
	return cloneDatum(v.fields[i]), nil
}

// Construct builds a value of the named type from positional field values,
// one per declared field in declared order (nil for an absent optional).
// For product types ctorName is "" (or the type's own name). The supplied
// values are checked eagerly: every value that exists conforms to its
// declaration.
func Construct(model *schema.Model, typeName, ctorName string, args ...Datum) (*Value, error) {
	ctor, err := lookupCtor(model, typeName, ctorName)
	if err != nil {
		return nil, err
	}
	if len(args) != len(ctor.Fields) {
		return nil, newArityError(typeName, ctor.Name, len(ctor.Fields), len(args))
	}

	fields := make([]Datum, len(args))
	for i, d := range args {
		fields[i] = cloneDatum(d)
	}
	v := &Value{model: model, ctor: ctor, fields: fields}
	if err := validateFields(model, v, ""); err != nil {
		return nil, err
	}
	return v, nil
}

// ConstructNamed builds a value from named field values. Every non-optional
// field must be supplied; optional fields may be omitted. The declaration,
// not the map, determines field order, so construction order never affects
// the result.
func ConstructNamed(model *schema.Model, typeName, ctorName string, args map[string]Datum) (*Value, error) {
	ctor, err := lookupCtor(model, typeName, ctorName)
	if err != nil {
		return nil, err
	}

	for name := range args {
		if ctor.FieldByName(name) == nil {
			return nil, &ArityError{
				Type: typeName, Ctor: ctor.Name,
				Want: len(ctor.Fields), Got: len(args), Field: name,
			}
		}
	}

	fields := make([]Datum, len(ctor.Fields))
	for _, f := range ctor.Fields {
		d, ok := args[f.Name]
		if !ok && f.Card != schema.Optional {
			return nil, &ArityError{
				Type: typeName, Ctor: ctor.Name,
				Want: len(ctor.Fields), Got: len(args), Field: f.Name,
			}
		}
		fields[f.Index] = cloneDatum(d)
	}

	v := &Value{model: model, ctor: ctor, fields: fields}
	if err := validateFields(model, v, ""); err != nil {
		return nil, err
	}
	return v, nil
}

// cloneDatum detaches a supplied List from the caller's slice so the value
// stays immutable. Nested values were already detached at their own
// construction; primitives are values.
func cloneDatum(d Datum) Datum {
	if l, ok := d.(List); ok {
		out := make(List, len(l))
		for i, e := range l {
			out[i] = cloneDatum(e)
		}
		return out
	}
	return d
}

func lookupCtor(model *schema.Model, typeName, ctorName string) (*schema.Constructor, error) {
	decl := model.Lookup(typeName)
	if decl == nil {
		return nil, fmt.Errorf("unknown type %q", typeName)
	}
	ctor := decl.Ctor(ctorName)
	if ctor == nil {
		return nil, fmt.Errorf("type %q has no constructor %q", typeName, ctorName)
	}
	return ctor, nil
}
