package value

import "fmt"

// ArityError reports a construction call whose supplied field set does not
// match the constructor's declaration: wrong positional count, an unknown
// field name, or a missing required field.
type ArityError struct {
	Type  string
	Ctor  string
	Want  int
	Got   int
	Field string // set when a specific named field is unknown or missing
}

func (e *ArityError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s.%s: field %q does not match the declared field set (%d declared, %d supplied)",
			e.Type, e.Ctor, e.Field, e.Want, e.Got)
	}
	return fmt.Sprintf("%s.%s: expected %d field values, got %d", e.Type, e.Ctor, e.Want, e.Got)
}

func newArityError(typeName, ctorName string, want, got int) *ArityError {
	return &ArityError{Type: typeName, Ctor: ctorName, Want: want, Got: got}
}

// TypeMismatchError reports the first value that does not conform to its
// declared field, identified by a field path like "status" or
// "body.parts[2].name".
type TypeMismatchError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}

func newMismatch(path, want, got string) *TypeMismatchError {
	return &TypeMismatchError{Path: path, Want: want, Got: got}
}

// FieldAccessError reports an accessor call for a field the value's
// concrete constructor does not declare. Index is -1 for access by name.
type FieldAccessError struct {
	Ctor  string
	Field string
	Index int
}

func (e *FieldAccessError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("constructor %s has no field at index %d", e.Ctor, e.Index)
	}
	return fmt.Sprintf("constructor %s has no field %q", e.Ctor, e.Field)
}

// RecursionLimitError reports a value graph deeper than the printer's
// ceiling. Values built through Construct cannot trigger it; foreign values
// that bypassed construction can.
type RecursionLimitError struct {
	Depth int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("value graph exceeds recursion depth limit (%d)", e.Depth)
}
