package ast

import "tinyscript/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is a flat ordered list of statements. Nesting occurs only via
// if/while bodies; the parser builds it once and nothing mutates it after.
type Program struct {
	Stmts []Stmt
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}
