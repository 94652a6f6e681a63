package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"tinyscript/internal/ast"
	"tinyscript/internal/compiler_errors"
	"tinyscript/internal/lexer"
	"tinyscript/internal/semantic_analyzer"
)

type RuntimeError struct {
	message string

	fileName string
	line     int
	column   int
}

func (re *RuntimeError) GetMessage() string  { return re.message }
func (re *RuntimeError) GetFileName() string { return re.fileName }
func (re *RuntimeError) GetLine() int        { return re.line }
func (re *RuntimeError) GetColumn() int      { return re.column }

func newRuntimeError(message string, fileName string, token *lexer.Token) *RuntimeError {
	err := &RuntimeError{
		message: message,

		fileName: fileName,
	}

	if token != nil {
		err.line = token.Metadata.Line
		err.column = token.Metadata.Column
	}

	return err
}

// Interpreter walks the tree and executes it against one flat variable
// store. Values live as text and are parsed to float32 only when an
// arithmetic operation or comparison consumes them; the symbol table
// from the resolver is consulted independently of that store.
type Interpreter struct {
	fileName string

	eh      compiler_errors.ErrorHandler
	program *ast.Program
	symbols *semantic_analyzer.SymbolTable

	globals map[string]string
	out     io.Writer
}

func NewInterpreter(
	fileName string,
	eh compiler_errors.ErrorHandler,
	program *ast.Program,
	symbols *semantic_analyzer.SymbolTable,
	out io.Writer,
) *Interpreter {
	return &Interpreter{
		fileName: fileName,

		eh:      eh,
		program: program,
		symbols: symbols,

		globals: make(map[string]string),
		out:     out,
	}
}

func (in *Interpreter) Run() {
	in.execStmts(in.program.Stmts)
}

func (in *Interpreter) execStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		in.execStmt(stmt)
	}
}

func (in *Interpreter) execStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.PrintStmt:
		fmt.Fprintln(in.out, in.evalExpr(stmt.Expr))
	case *ast.VarDeclStmt:
		in.assign(stmt.Name, stmt.StartToken, stmt.Value)
	case *ast.AssignStmt:
		in.assign(stmt.Name, stmt.StartToken, stmt.Value)
	case *ast.IfStmt:
		in.execIfChain(stmt)
	case *ast.WhileStmt:
		for in.evalCondition(stmt.Cond) {
			in.execStmts(stmt.Body.Stmts)
		}
	default:
		panic(fmt.Sprintf("execStmt: received unknown statement: %T", stmt))
	}
}

// execIfChain tries the clauses head to tail; the first true condition
// wins and a terminal else runs unconditionally.
func (in *Interpreter) execIfChain(clause *ast.IfStmt) {
	for ; clause != nil; clause = clause.Next {
		if clause.Cond == nil || in.evalCondition(clause.Cond) {
			in.execStmts(clause.Body.Stmts)
			return
		}
	}
}

// assign re-checks the declaration table even though the resolver
// already validated assignment targets. The table and the runtime
// store are deliberately separate checks.
func (in *Interpreter) assign(name string, token *lexer.Token, value ast.Expr) {
	text := in.evalExpr(value)

	if _, ok := in.symbols.Lookup(name); !ok {
		in.eh.AddError(newRuntimeError(
			fmt.Sprintf("assignment target '%s' is not declared", name),
			in.fileName,
			token))
		in.eh.FailNow()
	}

	in.globals[name] = text
}

func (in *Interpreter) evalExpr(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.NumberExpr:
		return expr.Value
	case *ast.StringExpr:
		return expr.Value
	case *ast.IdentExpr:
		value, ok := in.globals[expr.Value]
		if !ok {
			in.eh.AddError(newRuntimeError(
				fmt.Sprintf("variable '%s' used before assignment", expr.Value),
				in.fileName,
				expr.StartToken))
			in.eh.FailNow()
		}
		return value
	case *ast.BinaryExpr:
		return in.evalBinaryExpr(expr)
	case *ast.UnaryExpr:
		return in.evalUnaryExpr(expr)
	default:
		panic(fmt.Sprintf("evalExpr: received unknown expression: %T", expr))
	}
}

func (in *Interpreter) evalBinaryExpr(expr *ast.BinaryExpr) string {
	left := in.evalNumber(expr.Left)
	right := in.evalNumber(expr.Right)

	switch expr.Op {
	case ast.Plus:
		return formatNumber(left + right)
	case ast.Minus:
		return formatNumber(left - right)
	case ast.Times:
		return formatNumber(left * right)
	case ast.Divides:
		return formatNumber(left / right)
	default:
		panic("evalBinaryExpr: received illegal operator")
	}
}

func (in *Interpreter) evalUnaryExpr(expr *ast.UnaryExpr) string {
	value := in.evalNumber(expr.Right)

	if expr.Op == ast.Minus {
		value = -value
	}

	return formatNumber(value)
}

func (in *Interpreter) evalCondition(cond *ast.Condition) bool {
	left := in.evalNumber(cond.Left)
	right := in.evalNumber(cond.Right)

	switch cond.Cmp {
	case ast.Eq:
		return left == right
	case ast.NotEq:
		return left != right
	case ast.Gt:
		return left > right
	case ast.GtEq:
		return left >= right
	case ast.Lt:
		return left < right
	case ast.LtEq:
		return left <= right
	default:
		panic("evalCondition: received illegal comparator")
	}
}

// evalNumber evaluates an operand and parses its text as float32. Any
// value that cannot be parsed, string literals included, is a fatal
// runtime error naming the offending text.
func (in *Interpreter) evalNumber(expr ast.Expr) float32 {
	text := in.evalExpr(expr)

	value, err := strconv.ParseFloat(text, 32)
	if err != nil {
		in.eh.AddError(newRuntimeError(
			fmt.Sprintf("'%s' is not a number", text),
			in.fileName,
			expr.FirstToken()))
		in.eh.FailNow()
	}

	return float32(value)
}

// formatNumber produces the shortest decimal text that round-trips the
// float32 result, so whole numbers print without a trailing fraction.
func formatNumber(value float32) string {
	return strconv.FormatFloat(float64(value), 'f', -1, 32)
}
