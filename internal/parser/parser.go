package parser

import (
	"fmt"
	"slices"

	"tinyscript/internal/ast"
	"tinyscript/internal/compiler_errors"
	"tinyscript/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: '%s'", e.Unexpected.String(), e.Expected.String())
}

func (e *UnexpectedExpectedError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedExpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedExpectedError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedExpectedError) GetLength() int {
	return e.Length
}

type UnexpectedExpectedManyError struct {
	Unexpected lexer.TokenKind
	Expected   []lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedExpectedManyError) GetMessage() string {
	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected token: '%s', expected one of: '%s'", e.Unexpected.String(), expectedKinds)
}

func (e *UnexpectedExpectedManyError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedExpectedManyError) GetLine() int {
	return e.Line
}

func (e *UnexpectedExpectedManyError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedExpectedManyError) GetLength() int {
	return e.Length
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

func (e *UnexpectedError) GetFileName() string {
	return e.FileName
}

func (e *UnexpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedError) GetColumn() int {
	return e.Column
}

func (e *UnexpectedError) GetLength() int {
	return e.Length
}

// Parser builds the syntax tree straight off the token stream with a
// two token window: the held current token plus one token of lookahead.
type Parser struct {
	fileName string

	source lexer.TokenSource
	eh     compiler_errors.ErrorHandler

	curr lexer.Token
	next lexer.Token
}

func NewParser(fileName string, source lexer.TokenSource, eh compiler_errors.ErrorHandler) *Parser {
	p := &Parser{
		fileName: fileName,
		source:   source,
		eh:       eh,
	}

	// Prime both halves of the window.
	p.read()
	p.read()

	return p
}

func (p *Parser) Parse() *ast.Program {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.EOF {
		stmts = append(stmts, p.parseStmt())
	}

	return &ast.Program{
		Stmts: stmts,
	}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.PRINT:
		return p.parsePrintStmt()
	case lexer.LET:
		return p.parseVarDeclStmt()
	case lexer.IDENT:
		return p.parseAssignStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	}

	p.expectAny(lexer.PRINT, lexer.LET, lexer.IDENT, lexer.IF, lexer.WHILE)
	panic("unreachable")
}

func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	startToken := p.curr
	p.read()

	expr := p.parseExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return &ast.PrintStmt{
		StartToken: &startToken,

		Expr: expr,
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	startToken := p.curr
	p.read()

	p.expect(lexer.IDENT)
	name := p.curr.Value
	p.read()

	p.expect(lexer.ASSIGN)
	p.read()

	value := p.parseExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return &ast.VarDeclStmt{
		StartToken: &startToken,

		Name:  name,
		Value: value,
	}
}

func (p *Parser) parseAssignStmt() *ast.AssignStmt {
	startToken := p.curr
	name := p.curr.Value
	p.read()

	p.expect(lexer.ASSIGN)
	p.read()

	value := p.parseExpr()

	p.expect(lexer.SEMICOLON)
	p.read()

	return &ast.AssignStmt{
		StartToken: &startToken,

		Name:  name,
		Value: value,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	startToken := p.curr
	p.read()

	cond := p.parseCondition()

	p.expect(lexer.THEN)
	p.read()

	body := p.parseBlock(&startToken)

	p.expect(lexer.END)
	p.read()

	return &ast.WhileStmt{
		StartToken: &startToken,

		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseBlock(startToken *lexer.Token) *ast.Block {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.END {
		stmts = append(stmts, p.parseStmt())
	}

	return &ast.Block{
		StartToken: startToken,

		Stmts: stmts,
	}
}

// parseIfStmt parses one clause and recurses for its elseif/else tail.
// Inner clauses never consume the closing 'end'; only the outermost
// 'if' does, once the whole chain has been built.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	clauseKind := p.curr.Kind
	startToken := p.curr
	p.read()

	var cond *ast.Condition
	if clauseKind != lexer.ELSE {
		cond = p.parseCondition()

		p.expect(lexer.THEN)
		p.read()
	}

	stmts := make([]ast.Stmt, 0)
	var next *ast.IfStmt
	for p.curr.Kind != lexer.END {
		if p.curr.Kind == lexer.ELSEIF || p.curr.Kind == lexer.ELSE {
			// An else clause terminates the chain; nothing may follow it.
			if clauseKind == lexer.ELSE {
				p.unexpected(p.curr.Kind)
			}

			next = p.parseIfStmt()
			continue
		}

		stmts = append(stmts, p.parseStmt())
	}

	if clauseKind == lexer.IF {
		p.expect(lexer.END)
		p.read()
	}

	return &ast.IfStmt{
		StartToken: &startToken,

		Cond: cond,
		Body: &ast.Block{
			StartToken: &startToken,

			Stmts: stmts,
		},
		Next: next,
	}
}

func (p *Parser) parseCondition() *ast.Condition {
	left := p.parseExpr()

	var cmp ast.Comparator
	switch p.curr.Kind {
	case lexer.EQ:
		cmp = ast.Eq
	case lexer.NEQ:
		cmp = ast.NotEq
	case lexer.GT:
		cmp = ast.Gt
	case lexer.GEQ:
		cmp = ast.GtEq
	case lexer.LT:
		cmp = ast.Lt
	case lexer.LEQ:
		cmp = ast.LtEq
	default:
		p.expectAny(lexer.EQ, lexer.NEQ, lexer.GT, lexer.GEQ, lexer.LT, lexer.LEQ)
		panic("unreachable")
	}
	p.read()

	right := p.parseExpr()

	return &ast.Condition{
		Left:  left,
		Cmp:   cmp,
		Right: right,
	}
}

// parseExpr handles the lowest precedence level. A string literal is a
// complete expression on its own: it never mixes with arithmetic.
func (p *Parser) parseExpr() ast.Expr {
	if p.curr.Kind == lexer.STRING {
		startToken := p.curr
		p.read()

		return &ast.StringExpr{
			StartToken: &startToken,

			Value: startToken.Value,
		}
	}

	expr := p.parseTerm()
	for p.curr.Kind == lexer.PLUS || p.curr.Kind == lexer.MINUS {
		op := ast.Plus
		if p.curr.Kind == lexer.MINUS {
			op = ast.Minus
		}
		p.read()

		right := p.parseTerm()
		expr = &ast.BinaryExpr{
			StartToken: expr.FirstToken(),

			Left:  expr,
			Op:    op,
			Right: right,
		}
	}

	return expr
}

func (p *Parser) parseTerm() ast.Expr {
	expr := p.parseUnary()
	for p.curr.Kind == lexer.ASTERISK || p.curr.Kind == lexer.SLASH {
		op := ast.Times
		if p.curr.Kind == lexer.SLASH {
			op = ast.Divides
		}
		p.read()

		right := p.parseUnary()
		expr = &ast.BinaryExpr{
			StartToken: expr.FirstToken(),

			Left:  expr,
			Op:    op,
			Right: right,
		}
	}

	return expr
}

func (p *Parser) parseUnary() ast.Expr {
	if p.curr.Kind == lexer.PLUS || p.curr.Kind == lexer.MINUS {
		startToken := p.curr
		op := ast.Plus
		if p.curr.Kind == lexer.MINUS {
			op = ast.Minus
		}
		p.read()

		right := p.parsePrimary()
		return &ast.UnaryExpr{
			StartToken: &startToken,

			Op:    op,
			Right: right,
		}
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() ast.Expr {
	startToken := p.curr

	switch p.curr.Kind {
	case lexer.NUMBER:
		p.read()
		return &ast.NumberExpr{
			StartToken: &startToken,

			Value: startToken.Value,
		}
	case lexer.IDENT:
		p.read()
		return &ast.IdentExpr{
			StartToken: &startToken,

			Value: startToken.Value,
		}
	}

	p.expectAny(lexer.NUMBER, lexer.IDENT)
	panic("unreachable")
}

func (p *Parser) read() lexer.Token {
	p.curr = p.next
	p.next = p.source.NextToken()
	return p.curr
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if p.curr.Kind != kind {
		p.eh.AddError(&UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,

			FileName: p.fileName,
			Line:     p.curr.Metadata.Line,
			Column:   p.curr.Metadata.Column,
			Length:   p.curr.Metadata.Length,
		})
		p.eh.FailNow()
	}
}

func (p *Parser) expectAny(kinds ...lexer.TokenKind) {
	found := p.isCurrAny(kinds...)
	if found {
		return
	}

	p.eh.AddError(&UnexpectedExpectedManyError{
		Unexpected: p.curr.Kind,
		Expected:   kinds,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) unexpected(kind lexer.TokenKind) {
	p.eh.AddError(&UnexpectedError{
		Unexpected: kind,

		FileName: p.fileName,
		Line:     p.curr.Metadata.Line,
		Column:   p.curr.Metadata.Column,
		Length:   p.curr.Metadata.Length,
	})
	p.eh.FailNow()
}
