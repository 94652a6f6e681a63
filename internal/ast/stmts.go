package ast

import "tinyscript/internal/lexer"

type Block struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type PrintStmt struct {
	StartToken *lexer.Token

	Expr Expr
}

// VarDeclStmt is a `let` statement. Declarations are flat: a `let`
// inside an if or while body registers the name globally.
type VarDeclStmt struct {
	StartToken *lexer.Token

	Name  string
	Value Expr
}

type AssignStmt struct {
	StartToken *lexer.Token

	Name  string
	Value Expr
}

// IfStmt is one clause of an if/elseif/else chain. Cond is nil only for
// a terminal else clause; Next is nil at the end of the chain.
type IfStmt struct {
	StartToken *lexer.Token

	Cond *Condition
	Body *Block
	Next *IfStmt
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond *Condition
	Body *Block
}

func (b *Block) AstNode()       {}
func (p *PrintStmt) AstNode()   {}
func (v *VarDeclStmt) AstNode() {}
func (a *AssignStmt) AstNode()  {}
func (i *IfStmt) AstNode()      {}
func (w *WhileStmt) AstNode()   {}

func (p *PrintStmt) StmtNode()   {}
func (v *VarDeclStmt) StmtNode() {}
func (a *AssignStmt) StmtNode()  {}
func (i *IfStmt) StmtNode()      {}
func (w *WhileStmt) StmtNode()   {}

func (b *Block) FirstToken() *lexer.Token       { return b.StartToken }
func (p *PrintStmt) FirstToken() *lexer.Token   { return p.StartToken }
func (v *VarDeclStmt) FirstToken() *lexer.Token { return v.StartToken }
func (a *AssignStmt) FirstToken() *lexer.Token  { return a.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token      { return i.StartToken }
func (w *WhileStmt) FirstToken() *lexer.Token   { return w.StartToken }
