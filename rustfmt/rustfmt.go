// Package rustfmt lowers a [github.com/gorustfmt/rustfmt/ast] tree into a [layout.Doc] document
// and renders it to formatted Rust source.
//
// [layout.Doc]: https://pkg.go.dev/github.com/gorustfmt/rustfmt/layout#Doc
package rustfmt

import (
	"fmt"
	"strings"

	"github.com/gorustfmt/rustfmt/ast"
	"github.com/gorustfmt/rustfmt/layout"
)

const (
	defaultWidth  = 100
	defaultIndent = 4
)

// Option configures [Pretty].
type Option func(*options)

type options struct {
	width  int
	indent int
}

// WithWidth sets the column at which a group is broken onto multiple lines. The default is 100.
func WithWidth(columns int) Option {
	return func(o *options) {
		o.width = columns
	}
}

// WithIndent sets the number of columns a nesting level indents by. The default is 4.
func WithIndent(columns int) Option {
	return func(o *options) {
		o.indent = columns
	}
}

// Pretty formats file as Rust source code at the given options, defaulting to a width of 100
// columns and an indent width of 4. It is the sole public entry point of the package.
func Pretty(file *ast.File, opts ...Option) (string, error) {
	o := options{width: defaultWidth, indent: defaultIndent}
	for _, opt := range opts {
		opt(&o)
	}

	doc := layout.NewDoc(o.width).SetIndentWidth(o.indent)

	l := &lowerer{doc: doc}
	if err := l.layoutFile(file); err != nil {
		return "", fmt.Errorf("rustfmt: %w", err)
	}

	var sb strings.Builder
	if err := doc.Render(&sb, layout.Default); err != nil {
		return "", fmt.Errorf("rustfmt: %w", err)
	}

	return sb.String(), nil
}

// lowerer walks an ast.File and appends the equivalent layout.Doc tags. Every layoutX method
// owns its own error return so a single malformed node does not require unwinding a deep call
// stack with panics; the failure is threaded back up through the caller chain instead.
type lowerer struct {
	doc *layout.Doc
}
