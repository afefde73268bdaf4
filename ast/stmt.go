package ast

// Stmt is implemented by [StmtLocal], [StmtExpr], and [StmtItem].
type Stmt interface {
	Node
	stmtNode()
}

// StmtLocal is a `let` binding, optionally with a type annotation and/or an initializer, e.g.
// `let mut x: i32 = 1;` or `let (a, b) = pair else { return };`.
type StmtLocal struct {
	LeadingComments []Comment
	Pattern         Pattern
	Type            Type // Type is nil when there is no `: T` annotation.
	Init            Expr // Init is nil for a `let` without an initializer.
	Else            Block // Else is the `else { ... }` block of a let-else statement; its Stmts is nil when there is none.
}

func (StmtLocal) node()     {}
func (StmtLocal) stmtNode() {}

// StmtExpr is an expression used as a statement. Semi records whether the statement carries a
// trailing `;` as opposed to being the block's final, value-producing expression; a [Block]'s
// HasTrailingExpression flag is the authoritative signal for which one applies to the block's
// last statement, so Semi is consulted only when the expression is not in tail position.
type StmtExpr struct {
	LeadingComments []Comment
	Expr            Expr
	Semi            bool
}

func (StmtExpr) node()     {}
func (StmtExpr) stmtNode() {}

// StmtItem is a nested item declaration appearing inside a [Block].
type StmtItem struct {
	LeadingComments []Comment
	Item            Item
}

func (StmtItem) node()     {}
func (StmtItem) stmtNode() {}

// Block is `{ stmts... }`, the body of a function, loop, conditional, or a bare block expression.
//
// When HasTrailingExpression is true, the last entry of Stmts is an [StmtExpr] whose Semi is
// false and which is rendered without a trailing `;` as the block's value; invariant 2 requires
// that every other [StmtExpr] in the list carry Semi true.
type Block struct {
	LeadingComments        []Comment // LeadingComments are attached inside the opening brace, before the first statement.
	Stmts                  []Stmt
	HasTrailingExpression  bool
	TrailingComments       []Comment // TrailingComments are attached inside the closing brace, after the last statement.
}
