package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/layout"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutItem(item ast.Item) error {
	switch it := item.(type) {
	case ast.Fn:
		return l.layoutFn(it)
	case ast.Struct:
		return l.layoutStruct(it)
	case ast.Enum:
		return l.layoutEnum(it)
	case ast.Trait:
		return l.layoutTrait(it)
	case ast.Impl:
		return l.layoutImpl(it)
	case ast.Use:
		return l.layoutUse(it)
	case ast.Mod:
		return l.layoutMod(it)
	case ast.Const:
		return l.layoutConst(it)
	case ast.Static:
		return l.layoutStatic(it)
	case ast.TypeAlias:
		return l.layoutTypeAlias(it)
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Item", Type: fmt.Sprintf("%T", item)}
	}
}

func (l *lowerer) layoutAssocItem(item ast.AssocItem) error {
	return l.layoutItem(item)
}

func (l *lowerer) layoutFn(fn ast.Fn) error {
	if fn.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Fn.Name"}
	}
	if err := l.layoutItemLeadingComments(fn.LeadingComments, "Fn"); err != nil {
		return err
	}
	if err := l.layoutAttrs(fn.Attrs, "Fn"); err != nil {
		return err
	}
	l.layoutVisibility(fn.Visibility)

	l.doc.Text("fn ").Text(fn.Name)
	l.layoutGenerics(fn.Generics)

	n := len(fn.Params)
	hasReceiver := fn.Receiver != ""
	if hasReceiver {
		n++
	}
	if err := l.layoutList("(", ")", n, false, func(i int) error {
		if hasReceiver {
			if i == 0 {
				l.doc.Text(fn.Receiver)
				return nil
			}
			i--
		}
		p := fn.Params[i]
		if err := l.layoutPattern(p.Pattern); err != nil {
			return err
		}
		if p.Type != nil {
			l.doc.Text(": ")
			return l.layoutType(p.Type)
		}
		return nil
	}); err != nil {
		return err
	}

	if fn.Output != nil {
		l.doc.Text(" -> ")
		if err := l.layoutType(fn.Output); err != nil {
			return err
		}
	}

	l.layoutWhere(fn.Where)

	if !fn.HasBody {
		l.doc.Text(";")
		l.layoutTrailingComments(fn.TrailingComments)
		return nil
	}

	l.doc.Text(" ")
	if err := l.layoutBlock(fn.Body); err != nil {
		return err
	}
	l.layoutTrailingComments(fn.TrailingComments)
	return nil
}

func (l *lowerer) layoutFieldList(fields []ast.Field, named bool) error {
	open, close := "(", ")"
	if named {
		open, close = "{", "}"
	}

	return l.layoutList(open, close, len(fields), named, func(i int) error {
		f := fields[i]
		l.layoutLeadingComments(f.LeadingComments)
		if err := l.layoutAttrs(f.Attrs, "Field"); err != nil {
			return err
		}
		l.layoutVisibility(f.Visibility)
		if named {
			l.doc.Text(f.Name).Text(": ")
		}
		return l.layoutType(f.Type)
	})
}

// layoutNamedFieldsBroken renders a struct item's named field list with one field per line,
// unlike a struct literal expression's field list, which groups and fits where it can.
func (l *lowerer) layoutNamedFieldsBroken(fields []ast.Field) error {
	if len(fields) == 0 {
		l.doc.Text("{}")
		return nil
	}

	l.doc.Text("{")
	var fieldErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for _, f := range fields {
			l.doc.Hardline()
			l.layoutLeadingComments(f.LeadingComments)
			if err := l.layoutAttrs(f.Attrs, "Field"); err != nil {
				fieldErr = err
				return
			}
			l.layoutVisibility(f.Visibility)
			l.doc.Text(f.Name).Text(": ")
			if err := l.layoutType(f.Type); err != nil {
				fieldErr = err
				return
			}
			l.doc.Text(",")
		}
	})
	if fieldErr != nil {
		return fieldErr
	}
	l.doc.Hardline().Text("}")
	return nil
}

func (l *lowerer) layoutStruct(s ast.Struct) error {
	if s.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Struct.Name"}
	}
	if err := l.layoutItemLeadingComments(s.LeadingComments, "Struct"); err != nil {
		return err
	}
	if err := l.layoutAttrs(s.Attrs, "Struct"); err != nil {
		return err
	}
	l.layoutVisibility(s.Visibility)
	l.doc.Text("struct ").Text(s.Name)
	l.layoutGenerics(s.Generics)

	switch s.Kind {
	case ast.StructUnit:
		l.layoutWhere(s.Where)
		l.doc.Text(";")
	case ast.StructTuple:
		if err := l.layoutFieldList(s.Fields, false); err != nil {
			return err
		}
		l.layoutWhere(s.Where)
		l.doc.Text(";")
	case ast.StructNamed:
		if len(s.Where.Predicates) > 0 {
			l.layoutWhere(s.Where)
		} else {
			l.doc.Text(" ")
		}
		if err := l.layoutNamedFieldsBroken(s.Fields); err != nil {
			return err
		}
	}
	l.layoutTrailingComments(s.TrailingComments)
	return nil
}

func (l *lowerer) layoutEnum(e ast.Enum) error {
	if e.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Enum.Name"}
	}
	if err := l.layoutItemLeadingComments(e.LeadingComments, "Enum"); err != nil {
		return err
	}
	if err := l.layoutAttrs(e.Attrs, "Enum"); err != nil {
		return err
	}
	l.layoutVisibility(e.Visibility)
	l.doc.Text("enum ").Text(e.Name)
	l.layoutGenerics(e.Generics)
	l.layoutWhere(e.Where)
	l.doc.Text(" {")
	var variantErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for _, v := range e.Variants {
			l.doc.Hardline()
			l.layoutLeadingComments(v.LeadingComments)
			if err := l.layoutAttrs(v.Attrs, "EnumVariant"); err != nil {
				variantErr = err
				return
			}
			l.doc.Text(v.Name)
			switch v.Kind {
			case ast.StructTuple:
				if err := l.layoutFieldList(v.Fields, false); err != nil {
					variantErr = err
					return
				}
			case ast.StructNamed:
				l.doc.Text(" ")
				if err := l.layoutFieldList(v.Fields, true); err != nil {
					variantErr = err
					return
				}
			}
			if v.Discriminant != nil {
				l.doc.Text(" = ")
				if err := l.layoutExpr(v.Discriminant); err != nil {
					variantErr = err
					return
				}
			}
			l.doc.Text(",")
		}
	})
	if variantErr != nil {
		return variantErr
	}
	l.doc.Hardline().Text("}")
	l.layoutTrailingComments(e.TrailingComments)
	return nil
}

func (l *lowerer) layoutTrait(t ast.Trait) error {
	if t.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Trait.Name"}
	}
	if err := l.layoutItemLeadingComments(t.LeadingComments, "Trait"); err != nil {
		return err
	}
	if err := l.layoutAttrs(t.Attrs, "Trait"); err != nil {
		return err
	}
	l.layoutVisibility(t.Visibility)
	l.doc.Text("trait ").Text(t.Name)
	l.layoutGenerics(t.Generics)
	l.layoutBounds(t.Supertraits)
	l.layoutWhere(t.Where)
	l.doc.Text(" {")
	var itemErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for i, item := range t.Items {
			if i > 0 {
				l.doc.Break(2)
			} else {
				l.doc.Hardline()
			}
			if err := l.layoutAssocItem(item); err != nil {
				itemErr = err
				return
			}
		}
	})
	if itemErr != nil {
		return itemErr
	}
	l.doc.Hardline().Text("}")
	l.layoutTrailingComments(t.TrailingComments)
	return nil
}

func (l *lowerer) layoutImpl(im ast.Impl) error {
	if err := l.layoutItemLeadingComments(im.LeadingComments, "Impl"); err != nil {
		return err
	}
	if err := l.layoutAttrs(im.Attrs, "Impl"); err != nil {
		return err
	}
	l.doc.Text("impl")
	l.layoutGenerics(im.Generics)
	l.doc.Text(" ")
	if len(im.Trait.Segments) > 0 {
		l.layoutPath(im.Trait)
		l.doc.Text(" for ")
	}
	if err := l.layoutType(im.Type); err != nil {
		return err
	}
	l.layoutWhere(im.Where)
	l.doc.Text(" {")
	var itemErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for i, item := range im.Items {
			if i > 0 {
				l.doc.Break(2)
			} else {
				l.doc.Hardline()
			}
			if err := l.layoutAssocItem(item); err != nil {
				itemErr = err
				return
			}
		}
	})
	if itemErr != nil {
		return itemErr
	}
	l.doc.Hardline().Text("}")
	l.layoutTrailingComments(im.TrailingComments)
	return nil
}

func (l *lowerer) layoutUseTree(t ast.UseTree) {
	switch tree := t.(type) {
	case ast.UseTreePath:
		for i, seg := range tree.Segments {
			if i > 0 {
				l.doc.Text("::")
			}
			l.doc.Text(seg)
		}
		if tree.Nested != nil {
			if len(tree.Segments) > 0 {
				l.doc.Text("::")
			}
			l.layoutUseTree(tree.Nested)
		} else if tree.Rename != "" {
			l.doc.Text(" as ").Text(tree.Rename)
		}
	case ast.UseTreeGroup:
		l.doc.Text("{")
		for i, item := range tree.Items {
			if i > 0 {
				l.doc.Text(", ")
			}
			l.layoutUseTree(item)
		}
		l.doc.Text("}")
	case ast.UseTreeGlob:
		l.doc.Text("*")
	}
}

func (l *lowerer) layoutUse(u ast.Use) error {
	if err := l.layoutItemLeadingComments(u.LeadingComments, "Use"); err != nil {
		return err
	}
	if err := l.layoutAttrs(u.Attrs, "Use"); err != nil {
		return err
	}
	l.layoutVisibility(u.Visibility)
	l.doc.Text("use ")
	if u.Leading {
		l.doc.Text("::")
	}
	l.layoutUseTree(u.Tree)
	l.doc.Text(";")
	l.layoutTrailingComments(u.TrailingComments)
	return nil
}

func (l *lowerer) layoutMod(m ast.Mod) error {
	if m.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Mod.Name"}
	}
	if err := l.layoutItemLeadingComments(m.LeadingComments, "Mod"); err != nil {
		return err
	}
	if err := l.layoutAttrs(m.Attrs, "Mod"); err != nil {
		return err
	}
	l.layoutVisibility(m.Visibility)
	l.doc.Text("mod ").Text(m.Name)
	if !m.HasBody {
		l.doc.Text(";")
		l.layoutTrailingComments(m.TrailingComments)
		return nil
	}
	l.doc.Text(" {")
	var itemErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for i, item := range m.Items {
			if i > 0 {
				l.doc.Break(2)
			} else {
				l.doc.Hardline()
			}
			if err := l.layoutItem(item); err != nil {
				itemErr = err
				return
			}
		}
	})
	if itemErr != nil {
		return itemErr
	}
	l.doc.Hardline().Text("}")
	l.layoutTrailingComments(m.TrailingComments)
	return nil
}

func (l *lowerer) layoutConst(c ast.Const) error {
	if c.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Const.Name"}
	}
	if err := l.layoutItemLeadingComments(c.LeadingComments, "Const"); err != nil {
		return err
	}
	if err := l.layoutAttrs(c.Attrs, "Const"); err != nil {
		return err
	}
	l.layoutVisibility(c.Visibility)
	l.doc.Text("const ").Text(c.Name).Text(": ")
	if err := l.layoutType(c.Type); err != nil {
		return err
	}
	l.doc.Text(" = ")
	if err := l.layoutExpr(c.Value); err != nil {
		return err
	}
	l.doc.Text(";")
	l.layoutTrailingComments(c.TrailingComments)
	return nil
}

func (l *lowerer) layoutStatic(s ast.Static) error {
	if s.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "Static.Name"}
	}
	if err := l.layoutItemLeadingComments(s.LeadingComments, "Static"); err != nil {
		return err
	}
	if err := l.layoutAttrs(s.Attrs, "Static"); err != nil {
		return err
	}
	l.layoutVisibility(s.Visibility)
	l.doc.Text("static ")
	if s.Mutability == ast.Mutable {
		l.doc.Text("mut ")
	}
	l.doc.Text(s.Name).Text(": ")
	if err := l.layoutType(s.Type); err != nil {
		return err
	}
	l.doc.Text(" = ")
	if err := l.layoutExpr(s.Value); err != nil {
		return err
	}
	l.doc.Text(";")
	l.layoutTrailingComments(s.TrailingComments)
	return nil
}

func (l *lowerer) layoutTypeAlias(t ast.TypeAlias) error {
	if t.Name == "" {
		return &invariant.EmptyIdentifierError{Field: "TypeAlias.Name"}
	}
	if err := l.layoutItemLeadingComments(t.LeadingComments, "TypeAlias"); err != nil {
		return err
	}
	if err := l.layoutAttrs(t.Attrs, "TypeAlias"); err != nil {
		return err
	}
	l.layoutVisibility(t.Visibility)
	l.doc.Text("type ").Text(t.Name)
	l.layoutGenerics(t.Generics)
	l.layoutWhere(t.Where)
	if t.Type != nil {
		l.doc.Text(" = ")
		if err := l.layoutType(t.Type); err != nil {
			return err
		}
	}
	l.doc.Text(";")
	l.layoutTrailingComments(t.TrailingComments)
	return nil
}
