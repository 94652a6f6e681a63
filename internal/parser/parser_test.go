package parser_test

import (
	"testing"

	"tinyscript/internal/ast"
	"tinyscript/internal/compiler_errors"
	"tinyscript/internal/lexer"
	"tinyscript/internal/parser"
)

type abortHandler struct {
	errors []compiler_errors.CompilerError
}

func (h *abortHandler) AddError(err compiler_errors.CompilerError) {
	h.errors = append(h.errors, err)
}

func (h *abortHandler) FailNow() {
	panic(h)
}

func (h *abortHandler) lastMessage() string {
	if len(h.errors) == 0 {
		return ""
	}
	return h.errors[len(h.errors)-1].GetMessage()
}

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()

	eh := &abortHandler{}
	l := lexer.NewLexer("test.tny", []byte(src), eh)
	p := parser.NewParser("test.tny", l, eh)

	var program *ast.Program
	defer func() {
		if r := recover(); r != nil {
			if failed, ok := r.(*abortHandler); ok && failed == eh {
				t.Fatalf("parsing %q failed: %s", src, eh.lastMessage())
			}
			panic(r)
		}
	}()

	program = p.Parse()
	return program
}

func parseExpectError(t *testing.T, src string) (msg string) {
	t.Helper()

	eh := &abortHandler{}
	l := lexer.NewLexer("test.tny", []byte(src), eh)

	defer func() {
		if r := recover(); r != nil {
			msg = eh.lastMessage()
		}
	}()

	parser.NewParser("test.tny", l, eh).Parse()
	t.Fatalf("parsing %q succeeded, expected a fatal error", src)
	return
}

func singleStmt(t *testing.T, src string) ast.Stmt {
	t.Helper()

	program := parse(t, src)
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d statements, expected 1", len(program.Stmts))
	}
	return program.Stmts[0]
}

func numberValue(t *testing.T, expr ast.Expr) string {
	t.Helper()

	number, ok := expr.(*ast.NumberExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.NumberExpr", expr)
	}
	return number.Value
}

func TestPrintStringIsAWholeExpression(t *testing.T) {
	stmt := singleStmt(t, `print "hello";`)

	printStmt, ok := stmt.(*ast.PrintStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.PrintStmt", stmt)
	}

	str, ok := printStmt.Expr.(*ast.StringExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.StringExpr", printStmt.Expr)
	}
	if str.Value != "hello" {
		t.Errorf("got %q, expected %q", str.Value, "hello")
	}
}

func TestVarDeclAndAssign(t *testing.T) {
	program := parse(t, "let x = 1; x = 2;")
	if len(program.Stmts) != 2 {
		t.Fatalf("got %d statements, expected 2", len(program.Stmts))
	}

	decl, ok := program.Stmts[0].(*ast.VarDeclStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.VarDeclStmt", program.Stmts[0])
	}
	if decl.Name != "x" {
		t.Errorf("got name %q, expected %q", decl.Name, "x")
	}
	if got := numberValue(t, decl.Value); got != "1" {
		t.Errorf("got value %q, expected %q", got, "1")
	}

	assign, ok := program.Stmts[1].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.AssignStmt", program.Stmts[1])
	}
	if assign.Name != "x" {
		t.Errorf("got name %q, expected %q", assign.Name, "x")
	}
	if got := numberValue(t, assign.Value); got != "2" {
		t.Errorf("got value %q, expected %q", got, "2")
	}
}

// term binds tighter than expression: 2 + 3 * 4 parses as 2 + (3 * 4).
func TestMultiplicationBindsTighter(t *testing.T) {
	stmt := singleStmt(t, "print 2 + 3 * 4;")

	printStmt := stmt.(*ast.PrintStmt)
	sum, ok := printStmt.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.BinaryExpr", printStmt.Expr)
	}
	if sum.Op != ast.Plus {
		t.Fatalf("got operator %s at the root, expected +", sum.Op)
	}
	if got := numberValue(t, sum.Left); got != "2" {
		t.Errorf("got left operand %q, expected %q", got, "2")
	}

	product, ok := sum.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T on the right, expected *ast.BinaryExpr", sum.Right)
	}
	if product.Op != ast.Times {
		t.Errorf("got operator %s, expected *", product.Op)
	}
	if got := numberValue(t, product.Left); got != "3" {
		t.Errorf("got left factor %q, expected %q", got, "3")
	}
	if got := numberValue(t, product.Right); got != "4" {
		t.Errorf("got right factor %q, expected %q", got, "4")
	}
}

// 8 - 3 - 2 folds into a left leaning tree: (8 - 3) - 2.
func TestSubtractionIsLeftAssociative(t *testing.T) {
	stmt := singleStmt(t, "print 8 - 3 - 2;")

	printStmt := stmt.(*ast.PrintStmt)
	outer, ok := printStmt.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.BinaryExpr", printStmt.Expr)
	}
	if outer.Op != ast.Minus {
		t.Fatalf("got operator %s at the root, expected -", outer.Op)
	}
	if got := numberValue(t, outer.Right); got != "2" {
		t.Errorf("got right operand %q, expected %q", got, "2")
	}

	inner, ok := outer.Left.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T on the left, expected *ast.BinaryExpr", outer.Left)
	}
	if got := numberValue(t, inner.Left); got != "8" {
		t.Errorf("got left operand %q, expected %q", got, "8")
	}
	if got := numberValue(t, inner.Right); got != "3" {
		t.Errorf("got right operand %q, expected %q", got, "3")
	}
}

func TestUnaryParsing(t *testing.T) {
	stmt := singleStmt(t, "print -5 * 2;")

	printStmt := stmt.(*ast.PrintStmt)
	product, ok := printStmt.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.BinaryExpr", printStmt.Expr)
	}

	unary, ok := product.Left.(*ast.UnaryExpr)
	if !ok {
		t.Fatalf("got %T, expected *ast.UnaryExpr", product.Left)
	}
	if unary.Op != ast.Minus {
		t.Errorf("got operator %s, expected -", unary.Op)
	}
	if got := numberValue(t, unary.Right); got != "5" {
		t.Errorf("got operand %q, expected %q", got, "5")
	}
}

func TestWhileStmt(t *testing.T) {
	stmt := singleStmt(t, "while i < 3 then print i; i = i + 1; end")

	while, ok := stmt.(*ast.WhileStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.WhileStmt", stmt)
	}
	if while.Cond.Cmp != ast.Lt {
		t.Errorf("got comparator %s, expected <", while.Cond.Cmp)
	}
	if len(while.Body.Stmts) != 2 {
		t.Fatalf("got %d body statements, expected 2", len(while.Body.Stmts))
	}
}

func TestIfChainWiring(t *testing.T) {
	src := `
		if x == 1 then
			print "one";
		elseif x == 2 then
			print "two";
		else
			print "other";
		end
	`
	stmt := singleStmt(t, src)

	head, ok := stmt.(*ast.IfStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.IfStmt", stmt)
	}
	if head.Cond == nil || head.Cond.Cmp != ast.Eq {
		t.Fatal("if clause is missing its condition")
	}
	if len(head.Body.Stmts) != 1 {
		t.Fatalf("got %d statements in the if body, expected 1", len(head.Body.Stmts))
	}

	elseif := head.Next
	if elseif == nil {
		t.Fatal("if clause has no elseif tail")
	}
	if elseif.Cond == nil {
		t.Fatal("elseif clause is missing its condition")
	}

	elseClause := elseif.Next
	if elseClause == nil {
		t.Fatal("elseif clause has no else tail")
	}
	if elseClause.Cond != nil {
		t.Fatal("else clause must carry no condition")
	}
	if elseClause.Next != nil {
		t.Fatal("else clause must terminate the chain")
	}
}

func TestIfWithoutTail(t *testing.T) {
	stmt := singleStmt(t, `if x == 1 then print "one"; end`)

	head := stmt.(*ast.IfStmt)
	if head.Next != nil {
		t.Fatal("plain if must have no tail clause")
	}
}

func TestNestedIfConsumesItsOwnEnd(t *testing.T) {
	src := `
		if x == 1 then
			if y == 2 then
				print "inner";
			end
			print "outer";
		end
	`
	stmt := singleStmt(t, src)

	head := stmt.(*ast.IfStmt)
	if len(head.Body.Stmts) != 2 {
		t.Fatalf("got %d statements in the outer body, expected 2", len(head.Body.Stmts))
	}
	if _, ok := head.Body.Stmts[0].(*ast.IfStmt); !ok {
		t.Fatalf("got %T, expected the inner *ast.IfStmt", head.Body.Stmts[0])
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "missing semicolon", src: "print 1"},
		{name: "missing then after while condition", src: "while i < 3 print i; end"},
		{name: "missing end", src: "while i < 3 then print i;"},
		{name: "missing assignment value", src: "let x = ;"},
		{name: "missing comparator in condition", src: "if x then print 1; end"},
		{name: "else followed by elseif", src: `if x == 1 then else print 1; elseif x == 2 then print 2; end`},
		{name: "else followed by else", src: `if x == 1 then else print 1; else print 2; end`},
		{name: "statement starts with operator", src: "* 2;"},
		{name: "statement starts with orphan elseif", src: "elseif x == 1 then print 1; end"},
		{name: "illegal token consumed", src: "let x = @;"},
		{name: "string mixed with arithmetic", src: `print "a" + 1;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := parseExpectError(t, tt.src)
			if msg == "" {
				t.Error("fatal parse error carried no message")
			}
		})
	}
}

// The parser works off any TokenSource, so a hand-built token stream
// can drive it without the lexer.
func TestParseFromTokenScanner(t *testing.T) {
	eh := &abortHandler{}
	scanner := lexer.NewTokenScanner([]lexer.Token{
		{Kind: lexer.PRINT, Value: "print"},
		{Kind: lexer.NUMBER, Value: "42"},
		{Kind: lexer.SEMICOLON, Value: ";"},
		{Kind: lexer.EOF, Value: "EOF"},
	})

	program := parser.NewParser("scanner.tny", scanner, eh).Parse()
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d statements, expected 1", len(program.Stmts))
	}

	printStmt, ok := program.Stmts[0].(*ast.PrintStmt)
	if !ok {
		t.Fatalf("got %T, expected *ast.PrintStmt", program.Stmts[0])
	}
	if got := numberValue(t, printStmt.Expr); got != "42" {
		t.Errorf("got %q, expected %q", got, "42")
	}
}
