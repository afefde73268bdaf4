// Package layout implements a Wadler/Leijen-style document algebra and a
// greedy, single-pass layout engine for it.
//
// A [Doc] is a tree of tags describing formatting intent rather than
// explicit formatting decisions: [Doc.Text] for literal content,
// [Doc.Line]/[Doc.Softline]/[Doc.Hardline] for the three flavors of
// conditional line break, [Doc.Group] for a scope whose breaks either all
// flatten or all fire together, and [Doc.Nest] for indentation that applies
// to newlines rendered inside it.
//
// Build a document by chaining method calls:
//
//	d := layout.NewDoc(80)
//	d.Text("fn").Space().Text("foo").Text("()").Space().Group(func(d *layout.Doc) {
//		d.Text("{").Hardline().Nest(1, func(d *layout.Doc) {
//			d.Text("42;").Hardline()
//		}).Text("}")
//	})
//
// Rendering is a two-phase pass: [Doc.Render] first measures the flattened
// width of every group, then walks the tags again to decide, group by
// group, whether it fits on the current line. A group is forced into break
// mode if it contains a [Doc.Hardline] or if its flattened width would
// exceed the target column. The decision for any one group costs O(1)
// given the memoized measurement, so the whole pass is linear in document
// size — there is no backtracking and no re-measuring.
//
// # Acknowledgments
//
// The tagged flat-array representation and two-phase measure/layout
// algorithm are adapted from [allman] by mcyoung, described in
// ["The Art of Formatting Code"].
//
// [allman]: https://github.com/mcy/strings/tree/main/allman
// ["The Art of Formatting Code"]: https://mcyoung.xyz/2025/03/11/formatters/
package layout

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gorustfmt/rustfmt/internal/assert"
)

// Format specifies the output representation for rendering a [Doc].
type Format int

const (
	// Default renders the formatted output as text.
	Default Format = iota
	// Structure renders the document structure using HTML-like syntax, showing all tags
	// including those that may not appear in the final output. Useful for debugging why a
	// group broke.
	Structure
	// Go renders the document as a runnable Go program that reproduces the layout as rendered
	// by [Default]. Useful for isolating a layout decision outside the lowering code that
	// produced it.
	Go
)

var formats = map[string]Format{
	"default":   Default,
	"go":        Go,
	"structure": Structure,
}

var validFormats = [3]string{"default", "go", "structure"}

// NewFormat converts a string to a [Format] constant. Valid values are "default", "structure",
// and "go". Returns an error if the format string is invalid.
func NewFormat(format string) (Format, error) {
	if f, ok := formats[format]; ok {
		return f, nil
	}
	return Default, fmt.Errorf("invalid format string: %q, valid ones are: %q", format, validFormats)
}

const defaultIndentWidth = 4

// Doc represents a document for layout formatting. Build it by chaining method calls like
// [Doc.Text], [Doc.Line], [Doc.Softline], [Doc.Hardline], [Doc.Group], and [Doc.Nest]. Render it
// using [Doc.Render]. Rendering mutates the document, so use [Doc.Clone] to render it more than
// once.
type Doc struct {
	maxColumn   int
	indentWidth int
	tags        []*node
}

// NewDoc creates a new document with the given maximum column width and the default indent width
// of 4 columns. Use [Doc.SetIndentWidth] to change it.
func NewDoc(maxColumn int) *Doc {
	return &Doc{maxColumn: maxColumn, indentWidth: defaultIndentWidth}
}

// SetIndentWidth sets the number of columns one level of [Doc.Nest] renders as. It returns the
// receiver so it can be chained right after [NewDoc].
func (d *Doc) SetIndentWidth(columns int) *Doc {
	assert.That(columns >= 0, "SetIndentWidth: columns must not be negative, got %d", columns)
	d.indentWidth = columns
	return d
}

// Clone creates a deep copy of the Doc. Use this if you want to [Doc.Render] a Doc multiple times.
func (d *Doc) Clone() *Doc {
	clone := &Doc{
		maxColumn:   d.maxColumn,
		indentWidth: d.indentWidth,
		tags:        make([]*node, len(d.tags)),
	}
	for i, t := range d.tags {
		clone.tags[i] = &node{
			tag:     t.tag,
			len:     t.len,
			cond:    t.cond,
			measure: &measure{},
		}
	}
	return clone
}

type tagIterator func(yield func(*node, tagIterator) bool)

// All returns an iterator over all tags in the document. Used internally by the layout engine
// and by [Doc.String] / [Doc.GoString].
func (d *Doc) All() tagIterator {
	return d.newTagIterator(0, len(d.tags))
}

func (d *Doc) newTagIterator(i, j int) tagIterator {
	return func(yield func(*node, tagIterator) bool) {
		for i < j {
			if d.tags[i].len == 0 {
				if !yield(d.tags[i], d.newTagIterator(i, i)) {
					return
				}
				i++
			} else {
				if !yield(d.tags[i], d.newTagIterator(i+1, i+1+d.tags[i].len)) {
					return
				}
				i = i + 1 + d.tags[i].len
			}
		}
	}
}

// Text adds literal text content (TEXT in the document algebra) to the document. content must
// not contain a newline.
func (d *Doc) Text(content string) *Doc {
	return d.tag(&text{content: content})
}

// TextIf adds literal text content that only renders when the enclosing group is in the given
// mode. Used for fragments such as a trailing comma that appears only when a group breaks.
func (d *Doc) TextIf(content string, cond Condition) *Doc {
	return d.tagIf(&text{content: content}, cond)
}

// Space adds a single space to the document.
func (d *Doc) Space() *Doc {
	return d.tag(singleSpace)
}

// SpaceIf adds a single space that only renders when the enclosing group is in the given mode.
func (d *Doc) SpaceIf(cond Condition) *Doc {
	return d.tagIf(singleSpace, cond)
}

// Line adds a LINE: a conditional break that renders as a single space when its enclosing group
// fits on the current line, or as a newline followed by the current indentation otherwise.
func (d *Doc) Line() *Doc {
	return d.Space().BreakIf(1, Broken)
}

// Softline adds a SOFTLINE: like [Doc.Line] but renders as nothing at all when the group fits.
func (d *Doc) Softline() *Doc {
	return d.BreakIf(1, Broken)
}

// Hardline adds a HARDLINE: an unconditional newline that also forces the enclosing [Doc.Group]
// into break mode.
func (d *Doc) Hardline() *Doc {
	return d.Break(1)
}

// Break adds count unconditional newlines. count must be positive. Prefer [Doc.Hardline] unless
// you specifically need to force more than one blank line, e.g. between top-level items.
func (d *Doc) Break(count int) *Doc {
	assert.That(count > 0, "Break: count must be positive, got %d", count)
	return d.tag(newlines{count: count})
}

// BreakIf adds count newlines that only render when the enclosing group is in the given mode.
// count must be positive.
func (d *Doc) BreakIf(count int, cond Condition) *Doc {
	assert.That(count > 0, "BreakIf: count must be positive, got %d", count)
	return d.tagIf(newlines{count: count}, cond)
}

// Group marks a sequence of content (GROUP in the document algebra) that renders flat — every
// contained [Doc.Line]/[Doc.Softline] collapses — if it fits within the maximum column width and
// contains no [Doc.Hardline]; otherwise every break in it fires.
func (d *Doc) Group(body func(*Doc)) *Doc {
	return d.tagWith(&group{}, body)
}

// Nest increases the indentation level by columns levels, i.e. columns * indentWidth spaces, for
// the content added in body (NEST in the document algebra). The indentation is only applied
// immediately after a rendered newline inside body.
func (d *Doc) Nest(columns int, body func(*Doc)) *Doc {
	return d.tagWith(&indentation{columns: columns}, body)
}

func (d *Doc) tag(t tag) *Doc {
	return d.tagIfWith(t, Always, func(d *Doc) {})
}

func (d *Doc) tagIf(t tag, cond Condition) *Doc {
	return d.tagIfWith(t, cond, func(d *Doc) {})
}

func (d *Doc) tagWith(t tag, body func(*Doc)) *Doc {
	return d.tagIfWith(t, Always, body)
}

func (d *Doc) tagIfWith(t tag, cond Condition, body func(*Doc)) *Doc {
	i := len(d.tags)

	// merge consecutive spaces of the same condition
	if _, ok := t.(space); ok && i > 0 {
		if _, ok := d.tags[i-1].tag.(space); ok && cond == d.tags[i-1].cond {
			return d
		}
	}

	d.tags = append(d.tags, &node{tag: t, len: 0, cond: cond, measure: &measure{}})
	body(d)
	if j := len(d.tags); j != i {
		d.tags[i].len = j - i - 1
	}
	return d
}

// Render writes the formatted document to w in the given format. Rendering mutates the document,
// so re-rendering the same Doc produces incorrect results; use [Doc.Clone] first if you need to
// render more than once or to more than one writer.
func (d *Doc) Render(w io.Writer, format Format) error {
	d.measure()
	d.layout(d.All(), 0, 0)
	r := &renderer{w: w, indentWidth: d.indentWidth}

	var err error
	switch format {
	case Default:
		err = r.render(d.All(), true)
	case Structure:
		_, err = fmt.Fprint(w, d)
	case Go:
		goTemplate := `package main

import (
	"os"

	"github.com/gorustfmt/rustfmt/layout"
)

func main() {
	d := %s
	d.Render(os.Stdout, layout.Default)
}
`
		_, err = fmt.Fprintf(w, goTemplate, goString(d, 1))
	}

	return err
}

type renderer struct {
	w               io.Writer // w writer to output formatted text to
	indent          int       // indent is the current level of indentation
	indentWidth     int       // indentWidth is the number of spaces one indentation level renders as
	pendingSpace    bool      // pendingSpace indicates a space that will only be rendered if it's not trailing
	writtenNewlines int       // writtenNewlines indicates the number of newlines written, to merge consecutive newlines
}

func (r *renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}

func (d *Doc) measure() {
	for t, children := range d.All() {
		measureIter(t, children)
	}
	for t, children := range d.All() {
		sumWidths(t, children)
	}
}

func measureIter(parent *node, children tagIterator) {
	tagWidth(parent)
	for t, children := range children {
		measureIter(t, children)
	}
}

func tagWidth(t *node) {
	if t.cond == Broken { // only measure flat width
		return
	}

	switch tag := t.tag.(type) {
	case *text:
		t.measure.width = len([]rune(tag.content))
	case space:
		// Spaces start as pending - they'll be included in width during sumWidths if
		// followed by content
		t.measure.pendingSpace = true
	case newlines:
		t.measure.broken = true
	}
}

func sumWidths(parent *node, children tagIterator) measure {
	for t, children := range children {
		child := sumWidths(t, children)
		parent.measure.add(child)
	}
	return *parent.measure
}

func (d *Doc) layout(iter tagIterator, indent, column int) {
	for t, children := range iter {
		switch tag := t.tag.(type) {
		case *group:
			if t.measure.broken || column+t.measure.width > d.maxColumn {
				t.measure.broken = true
				d.layout(children, indent, column)
			} else {
				column += t.measure.width
			}
		case *indentation:
			d.layout(children, safeAdd(indent, tag.columns*d.indentWidth), column)
		case *text:
			column += len([]rune(tag.content))
		case space:
			column++
		case newlines:
			column = indent
		}
	}
}

func safeAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		panic(fmt.Errorf("overflow adding %d to %d", a, b))
	}
	if b < 0 && a < math.MinInt-b {
		panic(fmt.Errorf("underflow adding %d to %d", a, b))
	}

	return a + b
}

func (r *renderer) render(iter tagIterator, isParentBroken bool) error {
	for t, children := range iter {
		if t.cond == Flat && isParentBroken || t.cond == Broken && !isParentBroken {
			continue
		}

		switch tag := t.tag.(type) {
		case *group:
			if err := r.render(children, t.measure.broken); err != nil {
				return err
			}
		case *indentation:
			r.indent = safeAdd(r.indent, tag.columns)
			if err := r.render(children, isParentBroken); err != nil {
				return err
			}
			r.indent -= tag.columns
		case *text:
			if r.pendingSpace { // space is not trailing so write it
				if err := r.write(" "); err != nil {
					return err
				}
				r.pendingSpace = false
			}
			if r.writtenNewlines > 0 {
				if err := r.write(strings.Repeat(" ", r.indent*r.indentWidth)); err != nil {
					return err
				}
			}
			if err := r.write(tag.content); err != nil {
				return err
			}
			r.writtenNewlines = 0 // reset newlines as text means we do not deal with consecutive newlines
		case space:
			r.pendingSpace = true // writing space is delayed as it might be trailing
		case newlines:
			r.pendingSpace = false // discard pending space which would be trailing
			// merge consecutive Breaks
			for ; r.writtenNewlines < tag.count; r.writtenNewlines++ {
				if err := r.write("\n"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// String returns the document structure as HTML-like markup, showing all tags and their
// properties. Like rendering with [Structure] except the measure and layout phases are not run.
// Useful for debugging the layout algorithm.
func (d *Doc) String() string {
	var sb strings.Builder
	stringIter(&sb, d.All(), 0)
	return sb.String()
}

func stringIter(w io.Writer, iter tagIterator, indent int) {
	for t, children := range iter {
		switch tag := t.tag.(type) {
		case *group:
			writeIndent(w, indent)
			fmt.Fprintf(w, "<group width=%s>\n", t.measure)
			stringIter(w, children, indent+1)
			writeIndent(w, indent)
			fmt.Fprintf(w, "</group>\n")
		case *indentation:
			writeIndent(w, indent)
			fmt.Fprintf(w, "<nest columns=%d>\n", tag.columns)
			stringIter(w, children, indent+1)
			writeIndent(w, indent)
			fmt.Fprintf(w, "</nest>\n")
		case *text:
			writeIndent(w, indent)
			switch t.cond { // width is not computed for text that only renders when layout is Broken
			case Always:
				fmt.Fprintf(w, "<text width=%s content=%q/>\n", t.measure, tag.content)
			case Flat:
				fmt.Fprintf(w, "<text cond=%q width=%s content=%q/>\n", t.cond, t.measure, tag.content)
			default:
				fmt.Fprintf(w, "<text cond=%q content=%q/>\n", t.cond, tag.content)
			}
		case space:
			writeIndent(w, indent)
			if t.cond == Always {
				fmt.Fprintf(w, "<space/>\n")
			} else {
				fmt.Fprintf(w, "<space cond=%q/>\n", t.cond)
			}
		case newlines:
			writeIndent(w, indent)
			if t.cond == Always {
				fmt.Fprintf(w, "<break count=%d/>\n", tag.count)
			} else {
				fmt.Fprintf(w, "<break cond=%q count=%d/>\n", t.cond, tag.count)
			}
		}
	}
}

func writeIndent(w io.Writer, columns int) {
	for range columns {
		fmt.Fprint(w, "\t")
	}
}

// GoString returns the document as runnable Go code that reproduces the layout. Like rendering
// with [Go] except the measure and layout phases are not run. Useful for isolating a layout
// decision in a standalone program.
func (d *Doc) GoString() string {
	return goString(d, 0)
}

func goString(d *Doc, indent int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "layout.NewDoc(%d)\n", d.maxColumn)
	goStringIter(&sb, d.All(), indent)
	return sb.String()
}

func goStringIter(w io.Writer, iter tagIterator, indent int) {
	first := true
	for t, children := range iter {
		if first {
			writeIndent(w, indent)
			fmt.Fprint(w, "d.\n")
			indent++
		} else {
			fmt.Fprint(w, ".\n")
		}
		writeIndent(w, indent)

		switch tag := t.tag.(type) {
		case *group:
			fmt.Fprint(w, "Group(func(d *layout.Doc) {\n")
			goStringIter(w, children, indent+1)
			fmt.Fprintln(w)
			writeIndent(w, indent)
			fmt.Fprintf(w, "})")
		case *indentation:
			fmt.Fprintf(w, "Nest(%d, func(d *layout.Doc) {\n", tag.columns)
			goStringIter(w, children, indent+1)
			fmt.Fprintln(w)
			writeIndent(w, indent)
			fmt.Fprint(w, "})")
		case *text:
			if t.cond == Always {
				fmt.Fprintf(w, "Text(%q)", tag.content)
			} else {
				fmt.Fprintf(w, "TextIf(%q, layout.%#v)", tag.content, t.cond)
			}
		case space:
			if t.cond == Always {
				fmt.Fprint(w, "Space()")
			} else {
				fmt.Fprintf(w, "SpaceIf(layout.%#v)", t.cond)
			}
		case newlines:
			if t.cond == Always {
				fmt.Fprintf(w, "Break(%d)", tag.count)
			} else {
				fmt.Fprintf(w, "BreakIf(%d, layout.%#v)", tag.count, t.cond)
			}
		}
		first = false
	}
}

// Condition determines when content added with the *If methods should be rendered.
type Condition int

const (
	// Always renders the content unconditionally.
	Always Condition = iota

	// Flat renders the content only when the containing group fits on a single line.
	Flat

	// Broken renders the content only when the containing group is broken across multiple lines.
	Broken
)

func (c Condition) String() string {
	switch c {
	case Always:
		return "always"
	case Flat:
		return "flat"
	case Broken:
		return "broken"
	default:
		panic("condition string not implemented")
	}
}

func (c Condition) GoString() string {
	switch c {
	case Always:
		return "Always"
	case Flat:
		return "Flat"
	case Broken:
		return "Broken"
	default:
		panic("condition string not implemented")
	}
}

type node struct {
	tag     tag
	len     int
	cond    Condition
	measure *measure
}

func (t *node) String() string {
	return fmt.Sprintf("Node{tag=%s, len=%d, cond=%s, measure=%s}", t.tag, t.len, t.cond, t.measure)
}

// measure represents the calculated width of a tag sequence during the measurement phase.
//
// A space is "trailing" if there's no content after it before the end of a sequence (or a
// break). The algorithm defers counting spaces until we know if they're trailing.
//
// Invariant: At any point, measure represents:
//   - width: definite width of non-trailing content
//   - pendingSpace: whether we have a space pending inclusion in width (if followed by content)
//   - broken: whether this sequence contains unconditional breaks
type measure struct {
	width        int
	broken       bool
	pendingSpace bool
}

func (m *measure) add(b measure) {
	if m.broken || b.broken {
		m.broken = true
		m.pendingSpace = false
	} else {
		// If b has content (width > 0) or has a pending space,
		// then our pending space gets included in width
		if b.width > 0 || b.pendingSpace {
			if m.pendingSpace {
				m.width++ // include pending space in width
			}
			m.pendingSpace = b.pendingSpace
		}
		m.width += b.width
	}
}

func (m *measure) String() string {
	if m.broken {
		return "broken"
	}
	return fmt.Sprint(m.width)
}

type tag interface {
	tag()
}

// group is a sequence of tags to be rendered as one line, or broken across multiple lines if it
// doesn't fit the maximum column or contains a hardline.
type group struct{}

func (g *group) tag() {}

func (g *group) String() string {
	return "Group"
}

type indentation struct {
	columns int
}

func (i *indentation) tag() {}

func (i *indentation) String() string {
	return fmt.Sprintf("Nest(%d)", i.columns)
}

type text struct {
	content string
}

func (t *text) tag() {}

func (t *text) String() string {
	return fmt.Sprintf("Text(%q)", t.content)
}

var singleSpace = space{}

type space struct{}

func (s space) tag() {}

func (s space) String() string {
	return "Space"
}

type newlines struct {
	count int
}

func (n newlines) tag() {}

func (n newlines) String() string {
	return fmt.Sprintf("Break(%d)", n.count)
}
