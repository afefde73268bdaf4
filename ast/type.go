package ast

// Type is implemented by [TypePath], [TypeReference], [TypeTuple], [TypeArray], [TypeFn],
// [TypeInfer], and [TypeSelf].
type Type interface {
	Node
	typeNode()
}

// TypePath is a named type, possibly generic, e.g. `Vec<T>` or `std::io::Error`.
type TypePath struct {
	Path Path
}

func (TypePath) node()     {}
func (TypePath) typeNode() {}

// TypeReference is `&T`, `&mut T`, `&'a T`, or `&'a mut T`.
type TypeReference struct {
	Mutability Mutability
	Lifetime   string // Lifetime is empty when absent, otherwise includes the leading apostrophe.
	Inner      Type
}

func (TypeReference) node()     {}
func (TypeReference) typeNode() {}

// TypeTuple is `(T1, T2, ...)`. A single-element list still renders the disambiguating trailing
// comma, `(T,)`; an empty list renders `()`, the unit type.
type TypeTuple struct {
	Elems []Type
}

func (TypeTuple) node()     {}
func (TypeTuple) typeNode() {}

// TypeArray is `[T; N]`.
type TypeArray struct {
	Elem   Type
	Length Expr
}

func (TypeArray) node()     {}
func (TypeArray) typeNode() {}

// TypeFn is a function pointer type, `fn(T1, T2) -> R`.
type TypeFn struct {
	Inputs []Type
	Output Type // Output is nil when the return type is the unit type `()`.
}

func (TypeFn) node()     {}
func (TypeFn) typeNode() {}

// TypeInfer is the placeholder type `_`.
type TypeInfer struct{}

func (TypeInfer) node()     {}
func (TypeInfer) typeNode() {}

// TypeSelf is the `Self` type.
type TypeSelf struct{}

func (TypeSelf) node()     {}
func (TypeSelf) typeNode() {}
