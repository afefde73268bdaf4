package rustfmt_test

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/teleivo/assertive/require"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/rustfmt"
)

// wideFn builds a function with nParams short, single-character-ish params, so that a broken
// parameter list's individual lines are guaranteed to fit even at the narrowest widths this file
// tests with. Width-bound tests cover the engine's break decision, not its ability to hyphenate
// an unbreakable atom, so every identifier here stays well under the narrowest tested width.
func wideFn(nParams int) *ast.File {
	params := make([]ast.Param, nParams)
	for i := range params {
		params[i] = ast.Param{Pattern: ident("a"), Type: typePath("T")}
	}
	return &ast.File{
		Items: []ast.Item{
			ast.Fn{
				Visibility: ast.Visibility{Kind: ast.VisibilityPublic},
				Name:       "f",
				Params:     params,
				Output:     typePath("R"),
			},
		},
	}
}

func TestPrettyRespectsWidthBound(t *testing.T) {
	for _, width := range []int{20, 40, 80, 100} {
		t.Run("Width"+strconv.Itoa(width), func(t *testing.T) {
			got, err := rustfmt.Pretty(wideFn(5), rustfmt.WithWidth(width))
			require.NoErrorf(t, err, "Pretty(width=%d)", width)

			for _, line := range strings.Split(got, "\n") {
				if n := utf8.RuneCountInString(line); n > width {
					t.Fatalf("line %q is %d runes wide, exceeds width %d", line, n, width)
				}
			}
		})
	}
}

// wideBinary builds a left-deep chain of n additions between short identifiers, so a narrow
// width forces the chain to break before a right operand rather than exceeding the width.
func wideBinary(n int) *ast.File {
	var expr ast.Expr = ast.ExprIdent{Name: "a"}
	for i := 0; i < n; i++ {
		expr = ast.ExprBinary{Op: ast.OpAdd, LHS: expr, RHS: ast.ExprIdent{Name: "a"}}
	}
	return &ast.File{
		Items: []ast.Item{
			ast.Const{Name: "X", Type: typePath("i32"), Value: expr},
		},
	}
}

func TestPrettyBinaryExpressionBreaksWhenNarrow(t *testing.T) {
	got, err := rustfmt.Pretty(wideBinary(20), rustfmt.WithWidth(20))
	require.NoErrorf(t, err, "Pretty()")

	for _, line := range strings.Split(got, "\n") {
		if n := utf8.RuneCountInString(line); n > 20 {
			t.Fatalf("line %q is %d runes wide, exceeds width 20", line, n)
		}
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected a long binary chain to break across lines, got:\n%s", got)
	}
}

func TestPrettyIsDeterministic(t *testing.T) {
	file := wideFn(3)

	first, err := rustfmt.Pretty(file, rustfmt.WithWidth(30))
	require.NoErrorf(t, err, "Pretty() first run")
	second, err := rustfmt.Pretty(file, rustfmt.WithWidth(30))
	require.NoErrorf(t, err, "Pretty() second run")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Pretty() is not deterministic (-first +second):\n%s", diff)
	}
}

func TestPrettyIsStableUnderEquivalentRebuild(t *testing.T) {
	build := func() *ast.File {
		return &ast.File{
			Items: []ast.Item{
				ast.Struct{
					Visibility: ast.Visibility{Kind: ast.VisibilityPublic},
					Name:       "Point",
					Kind:       ast.StructNamed,
					Fields: []ast.Field{
						{Name: "x", Type: typePath("i32")},
						{Name: "y", Type: typePath("i32")},
					},
				},
			},
		}
	}

	a, b := build(), build()
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("two independently built, semantically equal trees differ (-a +b):\n%s", diff)
	}

	outA, err := rustfmt.Pretty(a)
	require.NoErrorf(t, err, "Pretty(a)")
	outB, err := rustfmt.Pretty(b)
	require.NoErrorf(t, err, "Pretty(b)")
	if outA != outB {
		t.Fatalf("rendering diverged for equivalent trees:\n%s\n\nvs\n\n%s", outA, outB)
	}
}

func TestPrettyIndentationIsConsistent(t *testing.T) {
	file := wideFn(4)

	got, err := rustfmt.Pretty(file, rustfmt.WithWidth(20), rustfmt.WithIndent(4))
	require.NoErrorf(t, err, "Pretty()")

	for _, line := range strings.Split(got, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		if indent%4 != 0 {
			t.Fatalf("line %q has indentation %d, not a multiple of the configured indent width 4", line, indent)
		}
	}
}

func TestPrettyPreservesDocComments(t *testing.T) {
	file := &ast.File{
		Items: []ast.Item{
			ast.Struct{
				LeadingComments: []ast.Comment{ast.DocComment{Text: "A point in 2D space."}},
				Visibility:      ast.Visibility{Kind: ast.VisibilityPublic},
				Name:            "Point",
				Kind:            ast.StructUnit,
			},
		},
	}

	got, err := rustfmt.Pretty(file)
	require.NoErrorf(t, err, "Pretty()")

	if !strings.Contains(got, "/// A point in 2D space.") {
		t.Fatalf("rendered output lost the doc comment:\n%s", got)
	}
}
