// Package ast contains an abstract syntax tree representation of Rust source code.
//
// The tree is a set of tagged variants, fully owned: parents own children, there is no sharing
// and no cycles. Identifiers are immutable strings. Unless stated otherwise, an ordered list
// field preserves source order and is rendered in that order.
//
// Values are constructed, optionally mutated by the caller, and then consumed by
// [github.com/gorustfmt/rustfmt/rustfmt.Pretty], which reads but never mutates the tree.
package ast

// File is the root of a Rust source file: an ordered sequence of top-level items.
type File struct {
	LeadingComments []Comment // LeadingComments holds a File's leading inner doc comments, e.g. //! module docs.
	Items           []Item
}

// Node is implemented by every AST node.
type Node interface {
	node()
}

// Item is implemented by every top-level or nested item: [Fn], [Struct], [Enum], [Trait],
// [Impl], [Use], [Mod], [Const], [Static], and [TypeAlias].
type Item interface {
	Node
	itemNode()
}

// AssocItem is implemented by items that may appear inside a [Trait] or [Impl] body. Only [Fn]
// and [TypeAlias] implement it.
type AssocItem interface {
	Item
	assocItemNode()
}

// Ident is a Rust identifier. The library does not validate that it is a legal identifier beyond
// requiring it be non-empty (invariant 1): that is caught as an [github.com/gorustfmt/rustfmt/rustfmt/invariant.EmptyIdentifierError]
// at lowering time, not at construction time.
type Ident = string

// Visibility is a Rust item visibility modifier.
type Visibility struct {
	Kind VisibilityKind
	Path Path // Path is set only when Kind is [VisibilityRestricted], e.g. `pub(in crate::foo)` or `pub(super)`.
}

// VisibilityKind enumerates the forms of [Visibility].
type VisibilityKind int

const (
	VisibilityPrivate    VisibilityKind = iota // VisibilityPrivate is the default, implicit visibility.
	VisibilityPublic                           // VisibilityPublic is `pub`.
	VisibilityCrate                            // VisibilityCrate is `pub(crate)`.
	VisibilityRestricted                       // VisibilityRestricted is `pub(in ...)`, `pub(super)`, or `pub(self)`.
)

func (v VisibilityKind) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilityCrate:
		return "crate"
	case VisibilityRestricted:
		return "restricted"
	default:
		return "unknown visibility"
	}
}

// Mutability distinguishes a shared reference/binding from a mutable one.
type Mutability int

const (
	Immutable Mutability = iota
	Mutable
)

func (m Mutability) String() string {
	if m == Mutable {
		return "mut"
	}
	return "immutable"
}

// Path is a sequence of `::`-separated segments, each with optional generic arguments, e.g.
// `std::collections::HashMap<K, V>`.
type Path struct {
	Leading  bool // Leading indicates a leading `::`, e.g. `::std::mem::swap`.
	Segments []PathSegment
}

// PathSegment is one `::`-separated component of a [Path].
type PathSegment struct {
	Name     Ident
	GenericArgs []Type // GenericArgs renders as `::<...>` in expression position and `<...>` in type position.
}

// GenericParam is implemented by [GenericTypeParam], [GenericLifetimeParam], and
// [GenericConstParam]. A generic parameter list renders lifetimes first, then types, then consts
// (spec.md's "Generic parameters" lowering rule), regardless of the order they are stored in.
type GenericParam interface {
	Node
	genericParamNode()
}

// GenericTypeParam is a type parameter, optionally bounded, e.g. `T: Display + Clone`.
type GenericTypeParam struct {
	Name   Ident
	Bounds []Path
}

func (GenericTypeParam) node()             {}
func (GenericTypeParam) genericParamNode() {}

// GenericLifetimeParam is a lifetime parameter, e.g. `'a`.
type GenericLifetimeParam struct {
	Name Ident // Name includes the leading apostrophe, e.g. "'a".
}

func (GenericLifetimeParam) node()             {}
func (GenericLifetimeParam) genericParamNode() {}

// GenericConstParam is a const generic parameter, e.g. `const N: usize`.
type GenericConstParam struct {
	Name Ident
	Type Type
}

func (GenericConstParam) node()             {}
func (GenericConstParam) genericParamNode() {}

// WhereClause is an optional list of additional bounds printed on their own line between a
// signature and its body.
type WhereClause struct {
	Predicates []WherePredicate
}

// WherePredicate bounds a single type by a list of trait paths, e.g. `T: Clone + Send`.
type WherePredicate struct {
	Type   Type
	Bounds []Path
}

// AttributeStyle distinguishes an outer attribute, `#[...]`, which annotates the item that
// follows it, from an inner attribute, `#![...]`, which annotates the enclosing item.
type AttributeStyle int

const (
	Outer AttributeStyle = iota
	Inner
)

// Attribute is a Rust attribute, e.g. `#[derive(Debug)]` or `#![allow(dead_code)]`.
//
// Invariant 5: [Inner] attributes only appear on entities that enclose other items: [File],
// a [Mod]'s inline body, [Block], [Impl], and [Trait]. This is checked at lowering time.
type Attribute struct {
	Style AttributeStyle
	Meta  Meta
}

// Meta is the content of an [Attribute]: implemented by [MetaPath], [MetaList], and
// [MetaNameValue].
type Meta interface {
	Node
	metaNode()
}

// MetaPath is a bare attribute path, e.g. `#[test]`.
type MetaPath struct {
	Path Path
}

func (MetaPath) node()     {}
func (MetaPath) metaNode() {}

// MetaList is an attribute with a parenthesized list of nested metas, e.g.
// `#[derive(Debug, Clone)]`.
type MetaList struct {
	Path  Path
	Metas []Meta
}

func (MetaList) node()     {}
func (MetaList) metaNode() {}

// MetaNameValue is an attribute of the form `path = literal`, e.g. `#[doc = "hello"]`.
type MetaNameValue struct {
	Path    Path
	Literal Literal
}

func (MetaNameValue) node()     {}
func (MetaNameValue) metaNode() {}

// Comment is implemented by [LineComment], [BlockComment], [DocComment], and [InnerDocComment].
//
// Comments attach only at the positions named in spec.md §3: as leading/trailing comments of
// [Item]s, as leading/trailing comments of [Block]s, and as a leading comment of a [Stmt]. They
// do not attach to arbitrary expressions or types; a consumer producing an AST must fold stray
// comments into the nearest permitted anchor before constructing the tree.
type Comment interface {
	Node
	commentNode()
}

// LineComment is `// text`.
type LineComment struct {
	Text string
}

func (LineComment) node()        {}
func (LineComment) commentNode() {}

// BlockComment is `/* text */`.
type BlockComment struct {
	Text string
}

func (BlockComment) node()        {}
func (BlockComment) commentNode() {}

// DocComment is an outer doc comment, `/// text`. Invariant 4: only valid as the leading comment
// of an [Item].
type DocComment struct {
	Text string
}

func (DocComment) node()        {}
func (DocComment) commentNode() {}

// InnerDocComment is an inner doc comment, `//! text`. Invariant 4: only valid as the first
// leading-inner comment of a [File] or [Mod] body, or as a [Block]'s leading-inner comment.
type InnerDocComment struct {
	Text string
}

func (InnerDocComment) node()        {}
func (InnerDocComment) commentNode() {}
