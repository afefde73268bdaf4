// Package invariant defines the structured errors rustfmt returns when an AST given to
// [github.com/gorustfmt/rustfmt/rustfmt.Pretty] violates one of the invariants named in the AST's doc
// comments.
package invariant

import "fmt"

// EmptyIdentifierError indicates an [github.com/gorustfmt/rustfmt/ast.Ident] was the empty
// string where a non-empty identifier is required.
type EmptyIdentifierError struct {
	Field string // Field names the struct field that held the empty identifier, e.g. "Fn.Name".
}

func (e *EmptyIdentifierError) Error() string {
	return fmt.Sprintf("%s: identifier must not be empty", e.Field)
}

// InnerAttributeError indicates an inner attribute, `#![...]`, was found somewhere other than
// the leading position of a [github.com/gorustfmt/rustfmt/ast.File], [github.com/gorustfmt/rustfmt/ast.Mod]
// body, [github.com/gorustfmt/rustfmt/ast.Block], [github.com/gorustfmt/rustfmt/ast.Impl], or
// [github.com/gorustfmt/rustfmt/ast.Trait].
type InnerAttributeError struct {
	Context string // Context names the enclosing node kind, e.g. "Struct".
}

func (e *InnerAttributeError) Error() string {
	return fmt.Sprintf("inner attribute is not permitted on %s", e.Context)
}

// CommentPlacementError indicates a comment was attached at a position its kind is not permitted
// at: a [github.com/gorustfmt/rustfmt/ast.DocComment] or
// [github.com/gorustfmt/rustfmt/ast.InnerDocComment] outside the positions permitted by
// [github.com/gorustfmt/rustfmt/ast.Comment]'s doc comment, or any comment other than an
// InnerDocComment among a [github.com/gorustfmt/rustfmt/ast.File]'s leading comments.
type CommentPlacementError struct {
	Kind    string // Kind is "doc" or "inner doc", or the comment's Go type (e.g. "ast.LineComment") for a File's leading comments.
	Context string // Context names the enclosing node kind the comment was found attached to.
}

func (e *CommentPlacementError) Error() string {
	return fmt.Sprintf("%s comment is not permitted on %s", e.Kind, e.Context)
}

// TrailingExpressionMismatchError indicates a [github.com/gorustfmt/rustfmt/ast.Block] whose
// HasTrailingExpression flag disagrees with its last statement: either the flag is set and the
// last statement is not a semicolon-free [github.com/gorustfmt/rustfmt/ast.StmtExpr], or an
// [github.com/gorustfmt/rustfmt/ast.StmtExpr] other than the last one has Semi false.
type TrailingExpressionMismatchError struct {
	Context string
}

func (e *TrailingExpressionMismatchError) Error() string {
	return fmt.Sprintf("%s: trailing expression flag disagrees with statement list", e.Context)
}

// UnsupportedNodeError indicates the lowering rule encountered a concrete type implementing an
// AST interface that it does not recognize, which can only happen when a caller defines its own
// implementation of [github.com/gorustfmt/rustfmt/ast.Expr] or a sibling interface instead of
// using one of the variants the package exports.
type UnsupportedNodeError struct {
	Interface string // Interface names the AST interface, e.g. "ast.Expr".
	Type      string // Type is the dynamic %T of the offending value.
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("unsupported %s implementation: %s", e.Interface, e.Type)
}
