package ast

import "tinyscript/internal/lexer"

type Operator int

const (
	Plus Operator = iota
	Minus
	Times
	Divides
)

func (op Operator) String() string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "*"
	case Divides:
		return "/"
	default:
		panic("Operator.String(): received illegal operator")
	}
}

type Comparator int

const (
	Eq Comparator = iota
	NotEq
	Gt
	GtEq
	Lt
	LtEq
)

func (cmp Comparator) String() string {
	switch cmp {
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	default:
		panic("Comparator.String(): received illegal comparator")
	}
}

// NumberExpr keeps the literal's original text. Numeric parsing happens
// only when an arithmetic operation or comparison consumes the value.
type NumberExpr struct {
	StartToken *lexer.Token

	Value string
}

type StringExpr struct {
	StartToken *lexer.Token

	Value string
}

type IdentExpr struct {
	StartToken *lexer.Token

	Value string
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    Operator
	Right Expr
}

type UnaryExpr struct {
	StartToken *lexer.Token

	Op    Operator
	Right Expr
}

// Condition appears only in if/elseif/while heads; it is not an Expr.
type Condition struct {
	Left  Expr
	Cmp   Comparator
	Right Expr
}

func (n *NumberExpr) AstNode() {}
func (s *StringExpr) AstNode() {}
func (i *IdentExpr) AstNode()  {}
func (b *BinaryExpr) AstNode() {}
func (u *UnaryExpr) AstNode()  {}

func (n *NumberExpr) ExprNode() {}
func (s *StringExpr) ExprNode() {}
func (i *IdentExpr) ExprNode()  {}
func (b *BinaryExpr) ExprNode() {}
func (u *UnaryExpr) ExprNode()  {}

func (n *NumberExpr) FirstToken() *lexer.Token { return n.StartToken }
func (s *StringExpr) FirstToken() *lexer.Token { return s.StartToken }
func (i *IdentExpr) FirstToken() *lexer.Token  { return i.StartToken }
func (b *BinaryExpr) FirstToken() *lexer.Token { return b.StartToken }
func (u *UnaryExpr) FirstToken() *lexer.Token  { return u.StartToken }
