package ast

import "testing"

func TestBinOpString(t *testing.T) {
	tests := map[string]struct {
		in   BinOp
		want string
	}{
		"Assign":     {in: OpAssign, want: "="},
		"AddAssign":  {in: OpAddAssign, want: "+="},
		"RangeIncl":  {in: OpRangeIncl, want: "..="},
		"Or":         {in: OpOr, want: "||"},
		"Eq":         {in: OpEq, want: "=="},
		"Shl":        {in: OpShl, want: "<<"},
		"Add":        {in: OpAdd, want: "+"},
		"Mul":        {in: OpMul, want: "*"},
		"Rem":        {in: OpRem, want: "%"},
		"BitXor":     {in: OpBitXor, want: "^"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.in.String()
			if got != test.want {
				t.Fatalf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestUnOpString(t *testing.T) {
	tests := map[string]struct {
		in   UnOp
		want string
	}{
		"Neg": {in: UnNeg, want: "-"},
		"Not": {in: UnNot, want: "!"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.in.String()
			if got != test.want {
				t.Fatalf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestVisibilityKindString(t *testing.T) {
	tests := map[string]struct {
		in   VisibilityKind
		want string
	}{
		"Private":    {in: VisibilityPrivate, want: "private"},
		"Public":     {in: VisibilityPublic, want: "public"},
		"Crate":      {in: VisibilityCrate, want: "crate"},
		"Restricted": {in: VisibilityRestricted, want: "restricted"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.in.String()
			if got != test.want {
				t.Fatalf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestMutabilityString(t *testing.T) {
	tests := map[string]struct {
		in   Mutability
		want string
	}{
		"Immutable": {in: Immutable, want: "immutable"},
		"Mutable":   {in: Mutable, want: "mut"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := test.in.String()
			if got != test.want {
				t.Fatalf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

// Variant structs compile-time satisfy their closed interfaces; this is enforced by the compiler,
// not by these tests, but keeping one literal of each here catches a missing marker method early.
var (
	_ Item    = Fn{}
	_ Expr    = ExprLit{}
	_ Stmt    = StmtExpr{}
	_ Type    = TypePath{}
	_ Pattern = PatternIdent{}
	_ Literal = LitInt{}
	_ Comment = LineComment{}
)
