package rustfmt

import (
	"fmt"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/layout"
	"github.com/gorustfmt/rustfmt/rustfmt/invariant"
)

// Precedence levels, lowest-binds-loosest, following spec.md's operator precedence table.
// Atoms (literals, identifiers, calls, and every other expression with no ambiguous operator of
// its own) sit at precAtom, the highest level, so they never require parenthesization.
const (
	precAssign = iota + 1
	precRange
	precOr
	precAnd
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
	precCast
	precUnary
	precAtom
)

func binOpPrec(op ast.BinOp) int {
	switch op {
	case ast.OpAssign, ast.OpAddAssign, ast.OpSubAssign, ast.OpMulAssign, ast.OpDivAssign, ast.OpRemAssign:
		return precAssign
	case ast.OpRange, ast.OpRangeIncl:
		return precRange
	case ast.OpOr:
		return precOr
	case ast.OpAnd:
		return precAnd
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		return precCompare
	case ast.OpBitOr:
		return precBitOr
	case ast.OpBitXor:
		return precBitXor
	case ast.OpBitAnd:
		return precBitAnd
	case ast.OpShl, ast.OpShr:
		return precShift
	case ast.OpAdd, ast.OpSub:
		return precAdditive
	case ast.OpMul, ast.OpDiv, ast.OpRem:
		return precMultiplicative
	default:
		return precAtom
	}
}

// isAssign reports whether op is one of the right-associative assignment operators.
func isAssign(op ast.BinOp) bool {
	return binOpPrec(op) == precAssign
}

func exprPrec(e ast.Expr) int {
	switch v := e.(type) {
	case ast.ExprBinary:
		return binOpPrec(v.Op)
	case ast.ExprUnary:
		return precUnary
	case ast.ExprCast:
		return precCast
	case ast.ExprReference:
		return precUnary
	default:
		return precAtom
	}
}

// layoutExpr renders e at the lowest precedence, so a top-level expression is never
// parenthesized by this call alone.
func (l *lowerer) layoutExpr(e ast.Expr) error {
	return l.layoutExprPrec(e, 0)
}

// layoutExprPrec renders e, wrapping it in parentheses when its own precedence is lower than
// minPrec would require to parse unambiguously in its parent's position.
func (l *lowerer) layoutExprPrec(e ast.Expr, minPrec int) error {
	prec := exprPrec(e)
	needsParens := prec < minPrec

	if needsParens {
		l.doc.Text("(")
	}
	if err := l.layoutExprAtom(e, prec); err != nil {
		return err
	}
	if needsParens {
		l.doc.Text(")")
	}
	return nil
}

func (l *lowerer) layoutExprAtom(e ast.Expr, prec int) error {
	switch v := e.(type) {
	case ast.ExprLit:
		return l.layoutLiteral(v.Value)
	case ast.ExprIdent:
		l.doc.Text(v.Name)
	case ast.ExprPath:
		l.layoutPath(v.Path)
	case ast.ExprBinary:
		lhsMin, rhsMin := prec, prec+1
		if isAssign(v.Op) {
			lhsMin, rhsMin = prec+1, prec
		}
		var exprErr error
		l.doc.Group(func(d *layout.Doc) {
			if err := l.layoutExprPrec(v.LHS, lhsMin); err != nil {
				exprErr = err
				return
			}
			l.doc.Text(" ").Text(v.Op.String())
			l.doc.Nest(1, func(d *layout.Doc) {
				l.doc.Line()
				if err := l.layoutExprPrec(v.RHS, rhsMin); err != nil {
					exprErr = err
					return
				}
			})
		})
		return exprErr
	case ast.ExprUnary:
		l.doc.Text(v.Op.String())
		return l.layoutExprPrec(v.Operand, prec)
	case ast.ExprCall:
		if err := l.layoutExprPrec(v.Callee, precAtom); err != nil {
			return err
		}
		return l.layoutCallArgs(v.Args)
	case ast.ExprMethodCall:
		if err := l.layoutExprPrec(v.Receiver, precAtom); err != nil {
			return err
		}
		l.doc.Text(".").Text(v.Name)
		if len(v.GenericArgs) > 0 {
			l.doc.Text("::<")
			for i, a := range v.GenericArgs {
				if i > 0 {
					l.doc.Text(", ")
				}
				if err := l.layoutType(a); err != nil {
					return err
				}
			}
			l.doc.Text(">")
		}
		return l.layoutCallArgs(v.Args)
	case ast.ExprField:
		if err := l.layoutExprPrec(v.Base, precAtom); err != nil {
			return err
		}
		l.doc.Text(".").Text(v.Name)
	case ast.ExprIndex:
		if err := l.layoutExprPrec(v.Base, precAtom); err != nil {
			return err
		}
		l.doc.Text("[")
		if err := l.layoutExprPrec(v.Index, 0); err != nil {
			return err
		}
		l.doc.Text("]")
	case ast.ExprTuple:
		l.doc.Text("(")
		for i, el := range v.Elems {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutExprPrec(el, 0); err != nil {
				return err
			}
		}
		if len(v.Elems) == 1 {
			l.doc.Text(",")
		}
		l.doc.Text(")")
	case ast.ExprArray:
		l.doc.Text("[")
		for i, el := range v.Elems {
			if i > 0 {
				l.doc.Text(", ")
			}
			if err := l.layoutExprPrec(el, 0); err != nil {
				return err
			}
		}
		l.doc.Text("]")
	case ast.ExprStruct:
		return l.layoutExprStruct(v)
	case ast.ExprIf:
		return l.layoutExprIf(v)
	case ast.ExprMatch:
		return l.layoutExprMatch(v)
	case ast.ExprLoop:
		l.layoutLabel(v.Label)
		l.doc.Text("loop ")
		return l.layoutBlock(v.Body)
	case ast.ExprWhile:
		l.layoutLabel(v.Label)
		l.doc.Text("while ")
		if err := l.layoutExprPrec(v.Cond, 0); err != nil {
			return err
		}
		l.doc.Text(" ")
		return l.layoutBlock(v.Body)
	case ast.ExprFor:
		l.layoutLabel(v.Label)
		l.doc.Text("for ")
		if err := l.layoutPattern(v.Pattern); err != nil {
			return err
		}
		l.doc.Text(" in ")
		if err := l.layoutExprPrec(v.Iter, 0); err != nil {
			return err
		}
		l.doc.Text(" ")
		return l.layoutBlock(v.Body)
	case ast.ExprBlock:
		return l.layoutBlock(v.Block)
	case ast.ExprReturn:
		l.doc.Text("return")
		if v.Value != nil {
			l.doc.Text(" ")
			return l.layoutExprPrec(v.Value, 0)
		}
	case ast.ExprBreak:
		l.doc.Text("break")
		if v.Label != "" {
			l.doc.Text(" ").Text(v.Label)
		}
		if v.Value != nil {
			l.doc.Text(" ")
			return l.layoutExprPrec(v.Value, 0)
		}
	case ast.ExprContinue:
		l.doc.Text("continue")
		if v.Label != "" {
			l.doc.Text(" ").Text(v.Label)
		}
	case ast.ExprClosure:
		return l.layoutExprClosure(v)
	case ast.ExprCast:
		if err := l.layoutExprPrec(v.Expr, precCast); err != nil {
			return err
		}
		l.doc.Text(" as ")
		return l.layoutType(v.Type)
	case ast.ExprReference:
		l.doc.Text("&")
		if v.Mutability == ast.Mutable {
			l.doc.Text("mut ")
		}
		return l.layoutExprPrec(v.Expr, precUnary)
	case ast.ExprParen:
		l.doc.Text("(")
		if err := l.layoutExprPrec(v.Expr, 0); err != nil {
			return err
		}
		l.doc.Text(")")
	default:
		return &invariant.UnsupportedNodeError{Interface: "ast.Expr", Type: fmt.Sprintf("%T", e)}
	}
	return nil
}

func (l *lowerer) layoutLabel(label string) {
	if label != "" {
		l.doc.Text(label).Text(": ")
	}
}

func (l *lowerer) layoutCallArgs(args []ast.Expr) error {
	return l.layoutList("(", ")", len(args), false, func(i int) error {
		return l.layoutExprPrec(args[i], 0)
	})
}

func (l *lowerer) layoutExprStruct(v ast.ExprStruct) error {
	l.layoutPath(v.Path)

	hasBase := v.Base != nil
	n := len(v.Fields)
	if hasBase {
		n++
	}
	if n == 0 {
		l.doc.Text(" {}")
		return nil
	}

	l.doc.Text(" {")
	var fieldErr error
	l.doc.Group(func(d *layout.Doc) {
		l.doc.Nest(1, func(d *layout.Doc) {
			for i := 0; i < n; i++ {
				if i > 0 {
					l.doc.Text(",")
				}
				l.doc.Line()
				if hasBase && i == n-1 {
					l.doc.Text("..")
					if err := l.layoutExprPrec(v.Base, 0); err != nil {
						fieldErr = err
						return
					}
					continue
				}
				f := v.Fields[i]
				if id, ok := f.Value.(ast.ExprIdent); ok && id.Name == f.Name {
					l.doc.Text(f.Name)
					continue
				}
				l.doc.Text(f.Name).Text(": ")
				if err := l.layoutExprPrec(f.Value, 0); err != nil {
					fieldErr = err
					return
				}
			}
			// a trailing comma after `..base` is not valid Rust syntax.
			if fieldErr == nil && !hasBase {
				l.doc.TextIf(",", layout.Broken)
			}
		})
		if fieldErr == nil {
			l.doc.Line()
		}
	})
	if fieldErr != nil {
		return fieldErr
	}
	l.doc.Text("}")
	return nil
}

func (l *lowerer) layoutExprIf(v ast.ExprIf) error {
	l.doc.Text("if ")
	if err := l.layoutExprPrec(v.Cond, 0); err != nil {
		return err
	}
	l.doc.Text(" ")
	if err := l.layoutBlock(v.Then); err != nil {
		return err
	}
	if v.Else != nil {
		l.doc.Text(" else ")
		if elseIf, ok := v.Else.(ast.ExprIf); ok {
			return l.layoutExprIf(elseIf)
		}
		return l.layoutExprPrec(v.Else, 0)
	}
	return nil
}

func (l *lowerer) layoutExprMatch(v ast.ExprMatch) error {
	l.doc.Text("match ")
	if err := l.layoutExprPrec(v.Scrutinee, 0); err != nil {
		return err
	}
	l.doc.Text(" {")
	var armErr error
	l.doc.Nest(1, func(d *layout.Doc) {
		for _, arm := range v.Arms {
			l.doc.Hardline()
			if err := l.layoutPattern(arm.Pattern); err != nil {
				armErr = err
				return
			}
			if arm.Guard != nil {
				l.doc.Text(" if ")
				if err := l.layoutExprPrec(arm.Guard, 0); err != nil {
					armErr = err
					return
				}
			}
			l.doc.Text(" => ")
			if err := l.layoutExprPrec(arm.Body, 0); err != nil {
				armErr = err
				return
			}
			l.doc.Text(",")
		}
	})
	if armErr != nil {
		return armErr
	}
	l.doc.Hardline().Text("}")
	return nil
}

func (l *lowerer) layoutExprClosure(v ast.ExprClosure) error {
	if v.Move {
		l.doc.Text("move ")
	}
	l.doc.Text("|")
	for i, p := range v.Params {
		if i > 0 {
			l.doc.Text(", ")
		}
		if err := l.layoutPattern(p.Pattern); err != nil {
			return err
		}
		if p.Type != nil {
			l.doc.Text(": ")
			if err := l.layoutType(p.Type); err != nil {
				return err
			}
		}
	}
	l.doc.Text("| ")
	if v.Output != nil {
		l.doc.Text("-> ")
		if err := l.layoutType(v.Output); err != nil {
			return err
		}
		l.doc.Text(" ")
		if block, ok := v.Body.(ast.ExprBlock); ok {
			return l.layoutBlock(block.Block)
		}
		l.doc.Text("{ ")
		if err := l.layoutExprPrec(v.Body, 0); err != nil {
			return err
		}
		l.doc.Text(" }")
		return nil
	}
	return l.layoutExprPrec(v.Body, 0)
}
