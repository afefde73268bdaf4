package rustfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutLiteral(lit ast.Literal) error {
	switch v := lit.(type) {
	case ast.LitInt:
		if v.Negative {
			l.doc.Text("-")
		}
		l.doc.Text(v.Value).Text(v.Suffix)
	case ast.LitFloat:
		if v.Negative {
			l.doc.Text("-")
		}
		value := v.Value
		if !strings.Contains(value, ".") {
			value += ".0"
		}
		l.doc.Text(value).Text(v.Suffix)
	case ast.LitString:
		l.doc.Text(renderStringLit(v))
	case ast.LitBool:
		if v.Value {
			l.doc.Text("true")
		} else {
			l.doc.Text("false")
		}
	case ast.LitChar:
		l.doc.Text(renderCharLit(v.Value))
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Literal", Type: fmt.Sprintf("%T", lit)}
	}
	return nil
}

func renderStringLit(v ast.LitString) string {
	if v.Raw {
		if strings.Contains(v.Value, `"`) {
			return `r#"` + v.Value + `"#`
		}
		return `r"` + v.Value + `"`
	}
	return `"` + escapeRustText(v.Value) + `"`
}

func renderCharLit(r rune) string {
	return "'" + escapeRustText(string(r)) + "'"
}

func escapeRustText(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if strconv.IsPrint(r) {
				sb.WriteRune(r)
			} else {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			}
		}
	}
	return sb.String()
}
