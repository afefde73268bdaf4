package ast

// Field is one named field of a [Struct] or one field pattern target; also reused for a tuple
// struct's unnamed fields, in which case Name is empty and position conveys identity.
type Field struct {
	LeadingComments []Comment
	Attrs           []Attribute
	Visibility      Visibility
	Name            Ident // Name is empty for a tuple struct field.
	Type            Type
}

// Fn is a function or method item, an [AssocItem] when nested inside a [Trait] or [Impl].
//
// Receiver distinguishes a method from a free function: it is one of "", "self", "&self", or
// "&mut self". When non-empty it renders as the first parameter instead of a [Param] and is not
// duplicated in Params.
type Fn struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Generics         []GenericParam
	Receiver         string
	Params           []Param
	Output           Type // Output is nil when the return type is the unit type `()`.
	Where            WhereClause
	Body             Block // Body is ignored when HasBody is false, as for a trait method with no body; the signature then ends in `;`.
	HasBody          bool
	TrailingComments []Comment
}

func (Fn) node()          {}
func (Fn) itemNode()      {}
func (Fn) assocItemNode() {}

// StructKind distinguishes the three struct forms.
type StructKind int

const (
	StructNamed StructKind = iota // StructNamed is `struct S { field: T, ... }`.
	StructTuple                   // StructTuple is `struct S(T, ...);`.
	StructUnit                    // StructUnit is `struct S;`.
)

// Struct is a struct item.
type Struct struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Generics         []GenericParam
	Where            WhereClause
	Kind             StructKind
	Fields           []Field
	TrailingComments []Comment
}

func (Struct) node()     {}
func (Struct) itemNode() {}

// EnumVariant is one variant of an [Enum].
type EnumVariant struct {
	LeadingComments []Comment
	Attrs           []Attribute
	Name            Ident
	Kind            StructKind // Kind is one of [StructUnit], [StructTuple], or [StructNamed]; a plain `Name` variant uses StructUnit.
	Fields          []Field
	Discriminant    Expr // Discriminant is the optional `= value` of a unit variant; nil when absent.
}

// Enum is an enum item.
type Enum struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Generics         []GenericParam
	Where            WhereClause
	Variants         []EnumVariant
	TrailingComments []Comment
}

func (Enum) node()     {}
func (Enum) itemNode() {}

// Trait is a trait item.
type Trait struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Generics         []GenericParam
	Supertraits      []Path
	Where            WhereClause
	Items            []AssocItem
	TrailingComments []Comment
}

func (Trait) node()     {}
func (Trait) itemNode() {}

// Impl is an inherent or trait implementation block: `impl<...> Trait for Type where ... { ... }`
// or `impl<...> Type where ... { ... }` when Trait is the zero [Path].
type Impl struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Generics         []GenericParam
	Trait            Path // Trait is the zero value (empty Segments) for an inherent impl.
	Type             Type
	Where            WhereClause
	Items            []AssocItem
	TrailingComments []Comment
}

func (Impl) node()     {}
func (Impl) itemNode() {}

// UseTree is implemented by [UseTreePath], [UseTreeGroup], and [UseTreeGlob], modeling the
// possibly-nested structure of a `use` declaration's path, e.g. `use std::{io, io::Write as W};`.
type UseTree interface {
	Node
	useTreeNode()
}

// UseTreePath is a single path, optionally renamed and optionally continued by a nested tree,
// e.g. `foo::bar`, `foo as bar`, or `foo::{bar, baz}`.
type UseTreePath struct {
	Segments []Ident
	Rename   Ident   // Rename is the `as` target; empty when absent.
	Nested   UseTree // Nested is set when Segments is followed by `::{...}` or `::*`; nil for a leaf path.
}

func (UseTreePath) node()        {}
func (UseTreePath) useTreeNode() {}

// UseTreeGroup is a brace-delimited list of alternatives, `{a, b::c}`.
type UseTreeGroup struct {
	Items []UseTree
}

func (UseTreeGroup) node()        {}
func (UseTreeGroup) useTreeNode() {}

// UseTreeGlob is `*`.
type UseTreeGlob struct{}

func (UseTreeGlob) node()        {}
func (UseTreeGlob) useTreeNode() {}

// Use is a `use` declaration.
type Use struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Leading          bool // Leading mirrors Path.Leading: a use tree rooted at `::`.
	Tree             UseTree
	TrailingComments []Comment
}

func (Use) node()     {}
func (Use) itemNode() {}

// Mod is a module item, either with an inline body (`mod m { ... }`, HasBody true) or a file
// reference (`mod m;`, HasBody false).
type Mod struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Items            []Item // Items is ignored when HasBody is false.
	HasBody          bool
	TrailingComments []Comment
}

func (Mod) node()     {}
func (Mod) itemNode() {}

// Const is a `const` item.
type Const struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident // Name is "_" for an anonymous const.
	Type             Type
	Value            Expr
	TrailingComments []Comment
}

func (Const) node()     {}
func (Const) itemNode() {}

// Static is a `static` item.
type Static struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Mutability       Mutability
	Name             Ident
	Type             Type
	Value            Expr
	TrailingComments []Comment
}

func (Static) node()     {}
func (Static) itemNode() {}

// TypeAlias is a `type` item, an [AssocItem] when nested inside a [Trait] or [Impl].
type TypeAlias struct {
	LeadingComments  []Comment
	Attrs            []Attribute
	Visibility       Visibility
	Name             Ident
	Generics         []GenericParam
	Where            WhereClause
	Type             Type // Type is nil for a trait's associated type declaration with no default.
	TrailingComments []Comment
}

func (TypeAlias) node()          {}
func (TypeAlias) itemNode()      {}
func (TypeAlias) assocItemNode() {}
