package value

import (
	"bytes"
	"strconv"

	"github.com/asdl-go/asdl/internal/config"
)

// Print renders a value to its canonical textual form. Output depends only
// on the value and the model's declared field order, so printing the same
// value always yields the same string.
//
// Sum values print as Ctor(f1=v1, f2=v2), field-less constructors as a bare
// Ctor, products as (v1, v2), repeated fields as [e1, e2], absent optionals
// as nil. The schema forbids unguarded recursion, so depth is bounded for
// every constructed value; the ceiling guards against foreign values that
// bypassed construction.
func Print(v *Value) (string, error) {
	p := &printer{maxDepth: config.MaxPrintDepth}
	if err := p.printValue(v); err != nil {
		return "", err
	}
	return p.buf.String(), nil
}

type printer struct {
	buf      bytes.Buffer
	depth    int
	maxDepth int
}

func (p *printer) printValue(v *Value) error {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return &RecursionLimitError{Depth: p.maxDepth}
	}

	if v.Type().Product {
		p.buf.WriteByte('(')
		for i, f := range v.ctor.Fields {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			if err := p.printDatum(v.fields[f.Index]); err != nil {
				return err
			}
		}
		p.buf.WriteByte(')')
		return nil
	}

	p.buf.WriteString(v.ctor.Name)
	if len(v.ctor.Fields) == 0 {
		return nil
	}
	p.buf.WriteByte('(')
	for i, f := range v.ctor.Fields {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.buf.WriteString(f.Name)
		p.buf.WriteByte('=')
		if err := p.printDatum(v.fields[f.Index]); err != nil {
			return err
		}
	}
	p.buf.WriteByte(')')
	return nil
}

func (p *printer) printDatum(d Datum) error {
	switch dv := d.(type) {
	case nil:
		p.buf.WriteString("nil")
	case String:
		p.buf.WriteString(strconv.Quote(string(dv)))
	case Int:
		p.buf.WriteString(strconv.FormatInt(int64(dv), 10))
	case Bool:
		p.buf.WriteString(strconv.FormatBool(bool(dv)))
	case List:
		p.buf.WriteByte('[')
		for i, elem := range dv {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			if err := p.printDatum(elem); err != nil {
				return err
			}
		}
		p.buf.WriteByte(']')
	case *Value:
		return p.printValue(dv)
	}
	return nil
}
