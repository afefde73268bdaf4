package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutType(t ast.Type) error {
	switch typ := t.(type) {
	case ast.TypePath:
		l.layoutPath(typ.Path)
	case ast.TypeReference:
		l.doc.Text("&")
		if typ.Lifetime != "" {
			l.doc.Text(typ.Lifetime).Text(" ")
		}
		if typ.Mutability == ast.Mutable {
			l.doc.Text("mut ")
		}
		return l.layoutType(typ.Inner)
	case ast.TypeTuple:
		l.doc.Text("(")
		for i, e := range typ.Elems {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutType(e); err != nil {
				return err
			}
		}
		if len(typ.Elems) == 1 {
			l.doc.Text(",")
		}
		l.doc.Text(")")
	case ast.TypeArray:
		l.doc.Text("[")
		if err := l.layoutType(typ.Elem); err != nil {
			return err
		}
		l.doc.Text("; ")
		if err := l.layoutExpr(typ.Length); err != nil {
			return err
		}
		l.doc.Text("]")
	case ast.TypeFn:
		l.doc.Text("fn(")
		for i, in := range typ.Inputs {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutType(in); err != nil {
				return err
			}
		}
		l.doc.Text(")")
		if typ.Output != nil {
			l.doc.Text(" -> ")
			return l.layoutType(typ.Output)
		}
	case ast.TypeInfer:
		l.doc.Text("_")
	case ast.TypeSelf:
		l.doc.Text("Self")
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Type", Type: fmt.Sprintf("%T", t)}
	}
	return nil
}
