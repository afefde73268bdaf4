package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/layout"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

func (l *lowerer) layoutBlock(b ast.Block) error {
	l.doc.Text("{")

	if len(b.Stmts) == 0 && len(b.LeadingComments) == 0 && len(b.TrailingComments) == 0 {
		l.doc.Text("}")
		return nil
	}

	var bodyErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		if err := l.layoutBlockLeadingComments(b.LeadingComments, "Block"); err != nil {
			bodyErr = err
			return
		}
		for i, stmt := range b.Stmts {
			l.doc.Hardline()
			trailing := b.HasTrailingExpression && i == len(b.Stmts)-1
			if err := l.layoutStmt(stmt, trailing); err != nil {
				bodyErr = err
				return
			}
		}
		if len(b.TrailingComments) > 0 {
			l.doc.Hardline()
			if err := l.layoutBlockLeadingComments(b.TrailingComments, "Block"); err != nil {
				bodyErr = err
				return
			}
		}
	})
	if bodyErr != nil {
		return bodyErr
	}

	l.doc.Hardline().Text("}")
	return nil
}

// layoutStmt renders stmt. tailPosition is set for the final statement of a block when
// Block.HasTrailingExpression is true, and suppresses the trailing `;` of an StmtExpr
// regardless of its own Semi field, per invariant 2.
func (l *lowerer) layoutStmt(stmt ast.Stmt, tailPosition bool) error {
	switch s := stmt.(type) {
	case ast.StmtLocal:
		if err := l.layoutStmtLeadingComments(s.LeadingComments, "StmtLocal"); err != nil {
			return err
		}
		l.doc.Text("let ")
		if err := l.layoutPattern(s.Pattern); err != nil {
			return err
		}
		if s.Type != nil {
			l.doc.Text(": ")
			if err := l.layoutType(s.Type); err != nil {
				return err
			}
		}
		if s.Init != nil {
			l.doc.Text(" = ")
			if err := l.layoutExprPrec(s.Init, 0); err != nil {
				return err
			}
		}
		if s.Else.Stmts != nil || s.Else.HasTrailingExpression {
			l.doc.Text(" else ")
			if err := l.layoutBlock(s.Else); err != nil {
				return err
			}
		}
		l.doc.Text(";")
	case ast.StmtExpr:
		if err := l.layoutStmtLeadingComments(s.LeadingComments, "StmtExpr"); err != nil {
			return err
		}
		if err := l.layoutExprPrec(s.Expr, 0); err != nil {
			return err
		}
		if s.Semi && !tailPosition {
			l.doc.Text(";")
		}
	case ast.StmtItem:
		if err := l.layoutStmtLeadingComments(s.LeadingComments, "StmtItem"); err != nil {
			return err
		}
		return l.layoutItem(s.Item)
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Stmt", Type: fmt.Sprintf("%T", stmt)}
	}
	return nil
}
