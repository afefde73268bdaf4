package layout_test

import (
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/gorustfmt/rustfmt/layout"
)

func TestLayout(t *testing.T) {
	tests := map[string]struct {
		in            *layout.Doc
		wantDefault   string
		wantStructure string
	}{
		"EmptyDoc": {
			in:          layout.NewDoc(80),
			wantDefault: "",
		},
		"EmptyGroup": {
			in:          layout.NewDoc(80).Group(func(d *layout.Doc) {}),
			wantDefault: "",
			wantStructure: `<group width=0>
</group>
`,
		},
		"EmptyNest": {
			in:          layout.NewDoc(80).Nest(1, func(d *layout.Doc) {}),
			wantDefault: "",
			wantStructure: `<nest columns=1>
</nest>
`,
		},
		"RootDocIsConsideredBroken": {
			in:          layout.NewDoc(10).TextIf("hello", layout.Broken),
			wantDefault: "hello",
			wantStructure: `<text cond="broken" content="hello"/>
`,
		},
		"GroupDoesNotBreakIfOnDocLimit": {
			in: layout.NewDoc(10).Group(func(d *layout.Doc) {
				d.Text("01234").BreakIf(3, layout.Broken).Text("56789")
			}),
			wantDefault: "0123456789",
		},
		"GroupBreaksIfExceedsDocLimit": {
			in: layout.NewDoc(10).Group(func(d *layout.Doc) {
				d.Text("01234").BreakIf(3, layout.Broken).Text("56789a")
			}),
			wantDefault: "01234\n\n\n56789a",
		},
		"Hardline": {
			in: layout.NewDoc(80).Group(func(d *layout.Doc) {
				d.Text("{").Hardline().Nest(1, func(d *layout.Doc) {
					d.Text("42;").Hardline()
				}).Text("}")
			}),
			wantDefault: "{\n    42;\n}",
		},
		"LineRendersAsSpaceWhenFlat": {
			in: layout.NewDoc(80).Group(func(d *layout.Doc) {
				d.Text("1").Line().Text("+").Line().Text("2")
			}),
			wantDefault: "1 + 2",
		},
		"LineRendersAsNewlineWhenBroken": {
			in: layout.NewDoc(5).Group(func(d *layout.Doc) {
				d.Text("111").Line().Text("+").Line().Text("222")
			}),
			wantDefault: "111\n+\n222",
		},
		"SoftlineRendersAsNothingWhenFlat": {
			in: layout.NewDoc(80).Group(func(d *layout.Doc) {
				d.Text("(").Softline().Text("1").Softline().Text(")")
			}),
			wantDefault: "(1)",
		},
		"SoftlineRendersAsNewlineWhenBroken": {
			in: layout.NewDoc(3).Group(func(d *layout.Doc) {
				d.Text("(").Softline().Text("11").Softline().Text(")")
			}),
			wantDefault: "(\n11\n)",
		},
		"IndentAndDeIndent": {
			in: layout.NewDoc(10).Nest(2, func(d *layout.Doc) {
				d.
					Break(1).
					Text("hello").
					Nest(-1, func(d *layout.Doc) {
						d.
							Break(1).
							Text("world")
					})
			}),
			wantDefault: "\n        hello\n    world",
		},
		"IndentNotDoneAtStartOfLine": {
			in: layout.NewDoc(10).Nest(1, func(d *layout.Doc) {
				d.Text("hello")
			}),
			wantDefault: "hello",
		},
		"SkipTrailingSpaces": {
			in:          layout.NewDoc(10).Space().Text("012345678").Space().Break(1),
			wantDefault: " 012345678\n",
		},
		"MergeConsecutiveUnconditionalSpaces": {
			in:          layout.NewDoc(80).Space().Space().Text("in between"),
			wantDefault: ` in between`,
		},
		"GroupWithTrailingCommaOnlyWhenBroken": {
			in: layout.NewDoc(4).Group(func(d *layout.Doc) {
				d.Text("(").Softline()
				d.Text("a").TextIf(",", layout.Broken).Softline()
				d.Text("b").TextIf(",", layout.Flat)
				d.Softline().Text(")")
			}),
			wantDefault: "(\na,\nb\n)",
		},
		"MergeConsecutiveBreaks": {
			in: layout.NewDoc(80).Break(3).Break(2).Text("in between").Break(1),
			wantDefault: "\n\n\nin between\n",
		},
		"NestedDoc": {
			in: layout.NewDoc(30).
				Text("fn").
				Space().
				Text("foo()").
				Space().
				Group(func(d *layout.Doc) {
					d.
						Text("{").
						Nest(1, func(d *layout.Doc) {
							d.
								Hardline().
								Text("1").
								Space().
								Text("+").
								Space().
								Text("2").
								Text(";")
						}).
						Hardline().
						Text("}")
				}),
			wantDefault: "fn foo() {\n    1 + 2;\n}",
		},
	}

	t.Run("RenderDefault", func(t *testing.T) {
		for name, tc := range tests {
			t.Run(name, func(t *testing.T) {
				var got strings.Builder
				err := tc.in.Clone().Render(&got, layout.Default)
				require.NoErrorf(t, err, "failed to render default format")

				assert.EqualValues(t, got.String(), tc.wantDefault)
			})
		}
	})
	t.Run("RenderStructure", func(t *testing.T) {
		for name, tc := range tests {
			if tc.wantStructure == "" {
				continue
			}
			t.Run(name, func(t *testing.T) {
				var got strings.Builder
				err := tc.in.Clone().Render(&got, layout.Structure)
				require.NoErrorf(t, err, "failed to render structure format")

				assert.EqualValues(t, got.String(), tc.wantStructure)
			})
		}
	})
}

func TestDocRenderIsIdempotentAcrossClones(t *testing.T) {
	build := func() *layout.Doc {
		d := layout.NewDoc(10)
		d.Group(func(d *layout.Doc) {
			d.Text("hello").Line().Text("world")
		})
		return d
	}

	d := build()
	var first, second strings.Builder
	require.NoError(t, d.Clone().Render(&first, layout.Default))
	require.NoError(t, d.Clone().Render(&second, layout.Default))

	assert.EqualValues(t, first.String(), second.String())
}

func TestSetIndentWidth(t *testing.T) {
	d := layout.NewDoc(80).SetIndentWidth(2)
	d.Group(func(d *layout.Doc) {
		d.Text("{").Hardline().Nest(1, func(d *layout.Doc) {
			d.Text("x")
		}).Hardline().Text("}")
	})

	var got strings.Builder
	require.NoError(t, d.Render(&got, layout.Default))
	assert.EqualValues(t, got.String(), "{\n  x\n}")
}

func TestGroupContainingHardlineNeverFlattens(t *testing.T) {
	d := layout.NewDoc(80).Group(func(d *layout.Doc) {
		d.Text("a").Hardline().Text("b")
	})

	var got strings.Builder
	require.NoError(t, d.Render(&got, layout.Default))
	assert.EqualValues(t, got.String(), "a\nb")
}

func TestNewFormat(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := map[string]layout.Format{
			"default":   layout.Default,
			"structure": layout.Structure,
			"go":        layout.Go,
		}
		for in, want := range tests {
			t.Run(in, func(t *testing.T) {
				got, err := layout.NewFormat(in)
				require.NoError(t, err)
				assert.Equals(t, got, want)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := layout.NewFormat("bogus")
		require.NotNil(t, err)
	})
}

func TestGoStringReproducesDoc(t *testing.T) {
	d := layout.NewDoc(10).Group(func(d *layout.Doc) {
		d.Text("hello").Line().Text("world")
	})

	got := d.GoString()
	assert.Truef(t, strings.Contains(got, "layout.NewDoc(10)"), "GoString() = %q, want it to contain the Doc constructor", got)
	assert.Truef(t, strings.Contains(got, `Text("hello")`), "GoString() = %q, want it to contain the Text tags", got)
	assert.Truef(t, strings.Contains(got, "Group(func(d *layout.Doc) {"), "GoString() = %q, want it to contain the Group call", got)
}

func TestBreakPanicsOnNonPositiveCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Break(0): want panic but got none")
		}
	}()
	layout.NewDoc(80).Break(0)
}
