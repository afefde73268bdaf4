package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutPattern(p ast.Pattern) error {
	switch pat := p.(type) {
	case ast.PatternWildcard:
		l.doc.Text("_")
	case ast.PatternIdent:
		if pat.Mutability == ast.Mutable {
			l.doc.Text("mut ")
		}
		l.doc.Text(pat.Name)
		if pat.Sub != nil {
			l.doc.Text(" @ ")
			return l.layoutPattern(pat.Sub)
		}
	case ast.PatternTuple:
		l.doc.Text("(")
		for i, e := range pat.Elems {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutPattern(e); err != nil {
				return err
			}
		}
		if len(pat.Elems) == 1 {
			l.doc.Text(",")
		}
		l.doc.Text(")")
	case ast.PatternStruct:
		l.layoutPath(pat.Path)
		l.doc.Text(" { ")
		for i, f := range pat.Fields {
			if i > 0 {
				l.doc.Text(", ")
			}
			if isShorthandFieldPattern(f) {
				l.doc.Text(f.Name)
				continue
			}
			l.doc.Text(f.Name).Text(": ")
			if err := l.layoutPattern(f.Pattern); err != nil {
				return err
			}
		}
		if pat.Rest {
			if len(pat.Fields) > 0 {
				l.doc.Text(", ")
			}
			l.doc.Text("..")
		}
		l.doc.Text(" }")
	case ast.PatternEnum:
		l.layoutPath(pat.Path)
		l.doc.Text("(")
		for i, e := range pat.Elems {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutPattern(e); err != nil {
				return err
			}
		}
		l.doc.Text(")")
	case ast.PatternLit:
		return l.layoutLiteral(pat.Value)
	case ast.PatternOr:
		for i, alt := range pat.Alternatives {
			if i > 0 {
				l.doc.Text(" | ")
			}
			if err := l.layoutPattern(alt); err != nil {
				return err
			}
		}
	case ast.PatternRange:
		if pat.Low != nil {
			if err := l.layoutPattern(pat.Low); err != nil {
				return err
			}
		}
		if pat.Inclusive {
			l.doc.Text("..=")
		} else {
			l.doc.Text("..")
		}
		if pat.High != nil {
			return l.layoutPattern(pat.High)
		}
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Pattern", Type: fmt.Sprintf("%T", p)}
	}
	return nil
}

func isShorthandFieldPattern(f ast.FieldPattern) bool {
	id, ok := f.Pattern.(ast.PatternIdent)
	return ok && id.Name == f.Name && id.Mutability == ast.Immutable && id.Sub == nil
}
