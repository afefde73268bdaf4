package rustfmt

import "github.com/gorustfmt/rustfmt/layout"

// layoutList renders a parenthesized or braced n-element list that stays on one line when it
// fits within the configured width and otherwise breaks one element per line with a trailing
// comma, the conventional Wadler-style "trailing comma only when broken" list.
//
// pad controls whether the flattened form gets an inner space right inside the delimiters, e.g.
// "{ x: i32 }" for a braced struct field list versus "(x: i32)" for a parameter list; broken
// layout is unaffected either way since the newline supplies the separation.
//
// render is called once per element in order; it may return an error, which aborts the list and
// propagates out of layoutList.
func (l *lowerer) layoutList(open, close string, n int, pad bool, render func(i int) error) error {
	l.doc.Text(open)
	var renderErr error
	l.doc.Group(func(d *layout.Doc) {
		l.doc.Nest(1, func(d *layout.Doc) {
			for i := 0; i < n; i++ {
				if i > 0 {
					l.doc.Text(",")
					l.doc.Line()
				} else if pad {
					l.doc.Line()
				} else {
					l.doc.Softline()
				}
				if err := render(i); err != nil {
					renderErr = err
					return
				}
			}
			if n > 0 {
				l.doc.TextIf(",", layout.Broken)
			}
		})
		if renderErr == nil && n > 0 {
			if pad {
				l.doc.Line()
			} else {
				l.doc.Softline()
			}
		}
	})
	if renderErr != nil {
		return renderErr
	}
	l.doc.Text(close)
	return nil
}
