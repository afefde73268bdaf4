package rustfmt_test

import (
	"testing"

	"github.com/teleivo/assertive/require"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/rustfmt"
)

func typePath(name string) ast.Type {
	return ast.TypePath{Path: ast.Path{Segments: []ast.PathSegment{{Name: name}}}}
}

func ident(name string) ast.Pattern {
	return ast.PatternIdent{Name: name}
}

func TestPretty(t *testing.T) {
	tests := map[string]struct {
		in   *ast.File
		opts []rustfmt.Option
		want string
	}{
		"EmptyPublicFunction": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						Visibility: ast.Visibility{Kind: ast.VisibilityPublic},
						Name:       "foo",
						HasBody:    true,
					},
				},
			},
			want: "pub fn foo() {}\n",
		},
		"FunctionWithTrailingExpression": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						Name: "add",
						Params: []ast.Param{
							{Pattern: ident("a"), Type: typePath("i32")},
							{Pattern: ident("b"), Type: typePath("i32")},
						},
						Output: typePath("i32"),
						Body: ast.Block{
							Stmts: []ast.Stmt{
								ast.StmtExpr{
									Expr: ast.ExprBinary{
										Op:  ast.OpAdd,
										LHS: ast.ExprIdent{Name: "a"},
										RHS: ast.ExprIdent{Name: "b"},
									},
								},
							},
							HasTrailingExpression: true,
						},
						HasBody: true,
					},
				},
			},
			want: "fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n",
		},
		"DocCommentedPublicFunction": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						LeadingComments: []ast.Comment{ast.DocComment{Text: "Adds two numbers."}},
						Visibility:      ast.Visibility{Kind: ast.VisibilityPublic},
						Name:            "add",
						Params: []ast.Param{
							{Pattern: ident("a"), Type: typePath("i32")},
							{Pattern: ident("b"), Type: typePath("i32")},
						},
						Output: typePath("i32"),
						Body: ast.Block{
							Stmts: []ast.Stmt{
								ast.StmtExpr{
									Expr: ast.ExprBinary{
										Op:  ast.OpAdd,
										LHS: ast.ExprIdent{Name: "a"},
										RHS: ast.ExprIdent{Name: "b"},
									},
								},
							},
							HasTrailingExpression: true,
						},
						HasBody: true,
					},
				},
			},
			want: "/// Adds two numbers.\npub fn add(a: i32, b: i32) -> i32 {\n    a + b\n}\n",
		},
		"NamedStructFieldsAlwaysBreak": {
			in: &ast.File{
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
			},
			want: "pub struct Point {\n    x: i32,\n    y: i32,\n}\n",
		},
		"ParamListBreaksWhenNarrow": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						Name: "f",
						Params: []ast.Param{
							{Pattern: ident("a"), Type: typePath("i32")},
							{Pattern: ident("b"), Type: typePath("i32")},
						},
					},
				},
			},
			opts: []rustfmt.Option{rustfmt.WithWidth(10)},
			want: "fn f(\n    a: i32,\n    b: i32,\n);\n",
		},
		"AdditionBindsLooserThanMultiplication": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Const{
						Name: "X",
						Type: typePath("i32"),
						Value: ast.ExprBinary{
							Op:  ast.OpAdd,
							LHS: ast.ExprLit{Value: ast.LitInt{Value: "1"}},
							RHS: ast.ExprBinary{
								Op:  ast.OpMul,
								LHS: ast.ExprLit{Value: ast.LitInt{Value: "2"}},
								RHS: ast.ExprLit{Value: ast.LitInt{Value: "3"}},
							},
						},
					},
				},
			},
			want: "const X: i32 = 1 + 2 * 3;\n",
		},
		"FunctionWithSemicolonStatement": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						Name: "foo",
						Body: ast.Block{
							Stmts: []ast.Stmt{
								ast.StmtExpr{Expr: ast.ExprLit{Value: ast.LitInt{Value: "42"}}, Semi: true},
							},
						},
						HasBody: true,
					},
				},
			},
			want: "fn foo() {\n    42;\n}\n",
		},
		"FunctionWithDocCommentAttributeAndComments": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Fn{
						LeadingComments: []ast.Comment{ast.DocComment{Text: "This is a doc comment for my_function."}},
						Attrs:           []ast.Attribute{{Style: ast.Outer, Meta: ast.MetaPath{Path: ast.Path{Segments: []ast.PathSegment{{Name: "test"}}}}}},
						Visibility:      ast.Visibility{Kind: ast.VisibilityPublic},
						Name:            "my_function",
						Generics:        []ast.GenericParam{ast.GenericTypeParam{Name: "T"}},
						Params:          []ast.Param{{Pattern: ident("arg"), Type: typePath("T")}},
						Output:          typePath("T"),
						Body: ast.Block{
							Stmts: []ast.Stmt{
								ast.StmtLocal{
									LeadingComments: []ast.Comment{ast.BlockComment{Text: "An inner block comment."}},
									Pattern:         ident("x"),
									Init:            ast.ExprLit{Value: ast.LitInt{Value: "42"}},
								},
								ast.StmtExpr{Expr: ast.ExprField{Base: ast.ExprIdent{Name: "arg"}, Name: "field"}, Semi: true},
							},
						},
						HasBody:          true,
						TrailingComments: []ast.Comment{ast.LineComment{Text: "A trailing line comment."}},
					},
				},
			},
			want: "/// This is a doc comment for my_function.\n#[test]\npub fn my_function<T>(arg: T) -> T {\n    /* An inner block comment. */\n    let x = 42;\n    arg.field;\n}\n// A trailing line comment.\n",
		},
		"StructThenImpl": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Struct{
						Visibility: ast.Visibility{Kind: ast.VisibilityPublic},
						Name:       "MyStruct",
						Kind:       ast.StructNamed,
						Fields: []ast.Field{
							{Name: "x", Type: typePath("i32")},
							{Name: "y", Type: typePath("i32")},
						},
					},
					ast.Impl{
						Type: typePath("MyStruct"),
						Items: []ast.AssocItem{
							ast.Fn{
								Visibility: ast.Visibility{Kind: ast.VisibilityPublic},
								Name:       "new",
								Output:     ast.TypeSelf{},
								Body: ast.Block{
									Stmts: []ast.Stmt{
										ast.StmtExpr{
											Expr: ast.ExprStruct{
												Path: ast.Path{Segments: []ast.PathSegment{{Name: "Self"}}},
												Fields: []ast.StructFieldValue{
													{Name: "x", Value: ast.ExprLit{Value: ast.LitInt{Value: "0"}}},
													{Name: "y", Value: ast.ExprLit{Value: ast.LitInt{Value: "0"}}},
												},
											},
										},
									},
									HasTrailingExpression: true,
								},
								HasBody: true,
							},
						},
					},
				},
			},
			want: "pub struct MyStruct {\n    x: i32,\n    y: i32,\n}\n\nimpl MyStruct {\n    pub fn new() -> Self {\n        Self { x: 0, y: 0 }\n    }\n}\n",
		},
		"LowerPrecedenceOperandIsParenthesized": {
			in: &ast.File{
				Items: []ast.Item{
					ast.Const{
						Name: "Y",
						Type: typePath("i32"),
						Value: ast.ExprBinary{
							Op: ast.OpMul,
							LHS: ast.ExprBinary{
								Op:  ast.OpAdd,
								LHS: ast.ExprLit{Value: ast.LitInt{Value: "1"}},
								RHS: ast.ExprLit{Value: ast.LitInt{Value: "2"}},
							},
							RHS: ast.ExprLit{Value: ast.LitInt{Value: "3"}},
						},
					},
				},
			},
			want: "const Y: i32 = (1 + 2) * 3;\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := rustfmt.Pretty(test.in, test.opts...)
			require.NoErrorf(t, err, "Pretty(%v)", name)

			if got != test.want {
				t.Fatalf("\n\ngot:\n%s\n\nwant:\n%s\n", got, test.want)
			}

			t.Logf("format again to ensure determinism")
			gotAgain, err := rustfmt.Pretty(test.in, test.opts...)
			require.NoErrorf(t, err, "Pretty(%v) second run", name)
			if gotAgain != got {
				t.Fatalf("\n\nfirst:\n%s\n\nsecond:\n%s\n", got, gotAgain)
			}
		})
	}
}

func TestPrettyDefaultsWidthAndIndent(t *testing.T) {
	file := &ast.File{
		Items: []ast.Item{
			ast.Const{Name: "X", Type: typePath("i32"), Value: ast.ExprLit{Value: ast.LitInt{Value: "1"}}},
		},
	}

	got, err := rustfmt.Pretty(file)
	require.NoErrorf(t, err, "Pretty(%v)", file)
	want := "const X: i32 = 1;\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrettyRejectsNonInnerDocFileComment(t *testing.T) {
	file := &ast.File{
		LeadingComments: []ast.Comment{ast.LineComment{Text: "not an inner doc comment"}},
	}

	_, err := rustfmt.Pretty(file)
	require.NotNilf(t, err, "Pretty(%v)", file)
}
