package ast

// Literal is implemented by [LitInt], [LitFloat], [LitString], [LitBool], and [LitChar].
type Literal interface {
	Node
	literalNode()
}

// LitInt is an integer literal. Value is stored as the decimal digits without a sign; Negative
// records a leading unary minus folded in by the AST producer. Suffix is an optional type
// suffix, e.g. "u32" in `42u32`.
type LitInt struct {
	Value    string
	Negative bool
	Suffix   string
}

func (LitInt) node()        {}
func (LitInt) literalNode() {}

// LitFloat is a floating point literal. Value always renders with at least one fractional digit.
type LitFloat struct {
	Value    string
	Negative bool
	Suffix   string
}

func (LitFloat) node()        {}
func (LitFloat) literalNode() {}

// LitString is a string literal. Value is the unescaped string content; the lowering rule is
// responsible for re-escaping backslash, double quote, newline, tab, carriage return, and
// non-printable bytes as `\u{...}`.
type LitString struct {
	Value string
	Raw   bool // Raw renders as `r"..."` (or `r#"..."#` if Value contains an unescaped `"`), without escaping.
}

func (LitString) node()        {}
func (LitString) literalNode() {}

// LitBool is `true` or `false`.
type LitBool struct {
	Value bool
}

func (LitBool) node()        {}
func (LitBool) literalNode() {}

// LitChar is a character literal, e.g. 'a'. Value holds the single rune; the lowering rule
// applies the same escaping rules as [LitString].
type LitChar struct {
	Value rune
}

func (LitChar) node()        {}
func (LitChar) literalNode() {}
