package value

import (
	"fmt"

	"github.com/asdl-go/asdl/pkg/schema"
)

// Validate checks v against an expected type reference, recursively. It is
// the same check Construct runs eagerly; standalone it serves values that
// arrived from elsewhere, e.g. rebuilt from another representation. The
// first violation is reported with a field-qualified path; there is no
// exhaustive mode.
func Validate(v *Value, ref schema.TypeRef) error {
	return validateValue(v.model, v, ref, "")
}

func validateValue(model *schema.Model, v *Value, ref schema.TypeRef, path string) error {
	if ref.IsPrimitive() {
		return newMismatch(orRoot(path), ref.Name(), describeValue(v))
	}
	if v.ctor.Decl != ref.Decl {
		return newMismatch(orRoot(path), ref.Name(), describeValue(v))
	}
	if v.model.ID() != model.ID() {
		// Same type name, different registry: never interchangeable.
		return newMismatch(orRoot(path), ref.Name(), describeValue(v)+" (from a different model)")
	}
	return validateFields(model, v, path)
}

// validateFields checks every field of v's constructor against its
// declaration. The field count is fixed at construction, so only shapes
// need checking here.
func validateFields(model *schema.Model, v *Value, path string) error {
	if len(v.fields) != len(v.ctor.Fields) {
		// Only reachable for values forged outside Construct.
		return newMismatch(orRoot(path), fmt.Sprintf("%d fields", len(v.ctor.Fields)),
			fmt.Sprintf("%d fields", len(v.fields)))
	}
	for _, f := range v.ctor.Fields {
		if err := validateField(model, v.fields[f.Index], f, joinPath(path, f.Name)); err != nil {
			return err
		}
	}
	return nil
}

func validateField(model *schema.Model, d Datum, f *schema.Field, path string) error {
	switch f.Card {
	case schema.Repeated:
		list, ok := d.(List)
		if !ok {
			return newMismatch(path, "repeated "+f.Ref.Name(), describe(d))
		}
		for i, elem := range list {
			if err := validateElem(model, elem, f.Ref, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	case schema.Optional:
		if d == nil {
			return nil
		}
		return validateElem(model, d, f.Ref, path)
	default:
		if d == nil {
			return newMismatch(path, f.Ref.Name(), "nil")
		}
		return validateElem(model, d, f.Ref, path)
	}
}

func validateElem(model *schema.Model, d Datum, ref schema.TypeRef, path string) error {
	switch dv := d.(type) {
	case String:
		if ref.Prim != schema.String {
			return newMismatch(path, ref.Name(), "string")
		}
	case Int:
		if ref.Prim != schema.Int {
			return newMismatch(path, ref.Name(), "int")
		}
	case Bool:
		if ref.Prim != schema.Bool {
			return newMismatch(path, ref.Name(), "bool")
		}
	case *Value:
		return validateValue(model, dv, ref, path)
	case List:
		return newMismatch(path, ref.Name(), "list")
	default:
		return newMismatch(path, ref.Name(), "nil")
	}
	return nil
}

func describe(d Datum) string {
	switch dv := d.(type) {
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case List:
		return "list"
	case *Value:
		return describeValue(dv)
	}
	return "nil"
}

func describeValue(v *Value) string {
	if v.Type().Product {
		return v.Type().Name
	}
	return fmt.Sprintf("%s.%s", v.Type().Name, v.ctor.Name)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func orRoot(path string) string {
	if path == "" {
		return "value"
	}
	return path
}
