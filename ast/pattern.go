package ast

// Pattern is implemented by [PatternWildcard], [PatternIdent], [PatternTuple], [PatternStruct],
// [PatternEnum], [PatternLit], [PatternOr], and [PatternRange].
type Pattern interface {
	Node
	patternNode()
}

// PatternWildcard is `_`.
type PatternWildcard struct{}

func (PatternWildcard) node()        {}
func (PatternWildcard) patternNode() {}

// PatternIdent binds a value to a name, optionally destructuring further via Sub, e.g.
// `x @ Some(y)`.
type PatternIdent struct {
	Name       Ident
	Mutability Mutability
	Sub        Pattern // Sub is nil when there is no `@` subpattern.
}

func (PatternIdent) node()        {}
func (PatternIdent) patternNode() {}

// PatternTuple is `(p1, p2, ...)`.
type PatternTuple struct {
	Elems []Pattern
}

func (PatternTuple) node()        {}
func (PatternTuple) patternNode() {}

// FieldPattern is one `name: pattern` entry of a [PatternStruct]. Shorthand (`name` standing for
// `name: name`) is detected the same way as in a struct literal: when Pattern is exactly
// `PatternIdent{Name: name}` and no subpattern or differing mutability annotation is requested.
type FieldPattern struct {
	Name    Ident
	Pattern Pattern
}

// PatternStruct is `Path { field: pattern, ..., .. }`.
type PatternStruct struct {
	Path   Path
	Fields []FieldPattern
	Rest   bool // Rest renders a trailing `..` to allow omitted fields.
}

func (PatternStruct) node()        {}
func (PatternStruct) patternNode() {}

// PatternEnum is a tuple-variant pattern, `Path(p1, p2, ...)`.
type PatternEnum struct {
	Path  Path
	Elems []Pattern
}

func (PatternEnum) node()        {}
func (PatternEnum) patternNode() {}

// PatternLit matches a literal value exactly.
type PatternLit struct {
	Value Literal
}

func (PatternLit) node()        {}
func (PatternLit) patternNode() {}

// PatternOr is a list of alternative patterns joined by `|`, e.g. `Some(1) | Some(2)`.
type PatternOr struct {
	Alternatives []Pattern
}

func (PatternOr) node()        {}
func (PatternOr) patternNode() {}

// PatternRange is `lo..hi` or `lo..=hi`.
type PatternRange struct {
	Low       Pattern
	High      Pattern
	Inclusive bool
}

func (PatternRange) node()        {}
func (PatternRange) patternNode() {}
