package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/layout"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutFile(f *ast.File) error {
	for _, c := range f.LeadingComments {
		if _, ok := c.(ast.InnerDocComment); !ok {
			return &invariant.CommentPlacementError{Kind: fmt.Sprintf("%T", c), Context: "File.LeadingComments"}
		}
		l.layoutComment(c)
	}

	for i, item := range f.Items {
		if i > 0 {
			l.doc.Break(2)
		} else if len(f.LeadingComments) > 0 {
			l.doc.Hardline()
		}
		if err := l.layoutItem(item); err != nil {
			return err
		}
	}

	if len(f.Items) > 0 {
		l.doc.Hardline()
	}

	return nil
}

func (l *lowerer) layoutComment(c ast.Comment) {
	switch cm := c.(type) {
	case ast.LineComment:
		for _, line := range splitLines(cm.Text) {
			l.doc.Text("// " + line).Hardline()
		}
	case ast.BlockComment:
		l.doc.Text("/* " + cm.Text + " */").Hardline()
	case ast.DocComment:
		for _, line := range splitLines(cm.Text) {
			l.doc.Text("/// " + line).Hardline()
		}
	case ast.InnerDocComment:
		for _, line := range splitLines(cm.Text) {
			l.doc.Text("//! " + line).Hardline()
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func (l *lowerer) layoutLeadingComments(comments []ast.Comment) {
	for _, c := range comments {
		l.layoutComment(c)
	}
}

// layoutItemLeadingComments renders an item's leading comments, rejecting an InnerDocComment,
// which is only valid at a File or Mod body's leading position or a Block's leading-inner
// position.
func (l *lowerer) layoutItemLeadingComments(comments []ast.Comment, context string) error {
	for _, c := range comments {
		if _, ok := c.(ast.InnerDocComment); ok {
			return &invariant.CommentPlacementError{Kind: "inner doc", Context: context}
		}
	}
	l.layoutLeadingComments(comments)
	return nil
}

// layoutBlockLeadingComments renders a Block's leading comments, rejecting a DocComment, which is
// only valid as the leading comment of an Item.
func (l *lowerer) layoutBlockLeadingComments(comments []ast.Comment, context string) error {
	for _, c := range comments {
		if _, ok := c.(ast.DocComment); ok {
			return &invariant.CommentPlacementError{Kind: "doc", Context: context}
		}
	}
	l.layoutLeadingComments(comments)
	return nil
}

// layoutStmtLeadingComments renders a Stmt's leading comments, rejecting a DocComment or
// InnerDocComment; neither is valid anywhere on a statement.
func (l *lowerer) layoutStmtLeadingComments(comments []ast.Comment, context string) error {
	for _, c := range comments {
		switch c.(type) {
		case ast.DocComment:
			return &invariant.CommentPlacementError{Kind: "doc", Context: context}
		case ast.InnerDocComment:
			return &invariant.CommentPlacementError{Kind: "inner doc", Context: context}
		}
	}
	l.layoutLeadingComments(comments)
	return nil
}

func (l *lowerer) layoutTrailingComments(comments []ast.Comment) {
	for _, c := range comments {
		l.doc.Hardline()
		l.layoutComment(c)
	}
}

// innerAttributeContexts names the enclosing item kinds an Inner attribute, `#![...]`, is
// permitted on, per [ast.Attribute]'s doc comment (File and Block carry no Attrs field of their
// own, so Mod, Impl, and Trait are the only reachable enclosing kinds).
var innerAttributeContexts = map[string]bool{
	"Mod":   true,
	"Impl":  true,
	"Trait": true,
}

func (l *lowerer) layoutAttrs(attrs []ast.Attribute, context string) error {
	for _, a := range attrs {
		switch a.Style {
		case ast.Outer:
			l.doc.Text("#[")
		case ast.Inner:
			if !innerAttributeContexts[context] {
				return &invariant.InnerAttributeError{Context: context}
			}
			l.doc.Text("#![")
		}
		if err := l.layoutMeta(a.Meta); err != nil {
			return err
		}
		l.doc.Text("]").Hardline()
	}
	return nil
}

func (l *lowerer) layoutMeta(m ast.Meta) error {
	switch meta := m.(type) {
	case ast.MetaPath:
		l.layoutPath(meta.Path)
	case ast.MetaList:
		l.layoutPath(meta.Path)
		l.doc.Text("(")
		for i, inner := range meta.Metas {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutMeta(inner); err != nil {
				return err
			}
		}
		l.doc.Text(")")
	case ast.MetaNameValue:
		l.layoutPath(meta.Path)
		l.doc.Text(" = ")
		if err := l.layoutLiteral(meta.Literal); err != nil {
			return err
		}
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Meta", Type: fmt.Sprintf("%T", m)}
	}
	return nil
}

func (l *lowerer) layoutVisibility(v ast.Visibility) {
	switch v.Kind {
	case ast.VisibilityPrivate:
		return
	case ast.VisibilityPublic:
		l.doc.Text("pub ")
	case ast.VisibilityCrate:
		l.doc.Text("pub(crate) ")
	case ast.VisibilityRestricted:
		l.doc.Text("pub(")
		l.layoutPath(v.Path)
		l.doc.Text(") ")
	}
}

func (l *lowerer) layoutPath(p ast.Path) {
	if p.Leading {
		l.doc.Text("::")
	}
	for i, seg := range p.Segments {
		if i > 0 {
			l.doc.Text("::")
		}
		l.doc.Text(seg.Name)
		if len(seg.GenericArgs) > 0 {
			l.doc.Text("<")
			for j, arg := range seg.GenericArgs {
				if j > 0 {
					l.doc.Text(", ")
				}
				l.layoutType(arg)
			}
			l.doc.Text(">")
		}
	}
}

func (l *lowerer) layoutGenerics(params []ast.GenericParam) {
	if len(params) == 0 {
		return
	}

	var lifetimes, types, consts []ast.GenericParam
	for _, p := range params {
		switch p.(type) {
		case ast.GenericLifetimeParam:
			lifetimes = append(lifetimes, p)
		case ast.GenericConstParam:
			consts = append(consts, p)
		default:
			types = append(types, p)
		}
	}
	ordered := append(append(lifetimes, types...), consts...)

	l.doc.Text("<")
	for i, p := range ordered {
		if i > 0 {
			l.doc.Text(", ")
		}
		switch param := p.(type) {
		case ast.GenericLifetimeParam:
			l.doc.Text(param.Name)
		case ast.GenericTypeParam:
			l.doc.Text(param.Name)
			l.layoutBounds(param.Bounds)
		case ast.GenericConstParam:
			l.doc.Text("const ").Text(param.Name).Text(": ")
			l.layoutType(param.Type)
		}
	}
	l.doc.Text(">")
}

func (l *lowerer) layoutBounds(bounds []ast.Path) {
	if len(bounds) == 0 {
		return
	}
	l.doc.Text(": ")
	for i, b := range bounds {
		if i > 0 {
			l.doc.Text(" + ")
		}
		l.layoutPath(b)
	}
}

func (l *lowerer) layoutWhere(w ast.WhereClause) {
	if len(w.Predicates) == 0 {
		return
	}
	l.doc.Hardline().Text("where")
	l.doc.Nest(1, func(d *layout.Doc) {
		for _, pred := range w.Predicates {
			l.doc.Hardline()
			l.layoutType(pred.Type)
			l.layoutBounds(pred.Bounds)
			l.doc.Text(",")
		}
	})
	l.doc.Hardline()
}
