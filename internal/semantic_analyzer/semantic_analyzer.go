package semantic_analyzer

import (
	"fmt"

	"tinyscript/internal/ast"
	"tinyscript/internal/compiler_errors"
	"tinyscript/internal/lexer"
)

type SemanticError struct {
	message string

	fileName string
	line     int
	column   int
}

func (se *SemanticError) GetMessage() string  { return se.message }
func (se *SemanticError) GetFileName() string { return se.fileName }
func (se *SemanticError) GetLine() int        { return se.line }
func (se *SemanticError) GetColumn() int      { return se.column }

func newSemanticError(message string, fileName string, token *lexer.Token) *SemanticError {
	err := &SemanticError{
		message: message,

		fileName: fileName,
	}

	if token != nil {
		err.line = token.Metadata.Line
		err.column = token.Metadata.Column
	}

	return err
}

type Symbol struct {
	Name string
}

// SymbolTable is a single flat namespace. The language has no lexical
// block scope: declarations inside if and while bodies register here
// and stay visible before and after the block.
type SymbolTable struct {
	symbols map[string]Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]Symbol),
	}
}

func (st *SymbolTable) Define(symbol Symbol) {
	st.symbols[symbol.Name] = symbol
}

func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	symbol, ok := st.symbols[name]
	return symbol, ok
}

// SemanticAnalyzer runs the single pre-execution pass over the tree. It
// registers every `let` target and rejects assignment to a name no
// `let` has declared. Identifier uses inside expressions are not
// checked here; those surface at evaluation time.
type SemanticAnalyzer struct {
	fileName string

	eh      compiler_errors.ErrorHandler
	program *ast.Program

	symbols *SymbolTable
}

func NewSemanticAnalyzer(
	fileName string,
	eh compiler_errors.ErrorHandler,
	program *ast.Program,
) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		fileName: fileName,

		eh:      eh,
		program: program,

		symbols: NewSymbolTable(),
	}
}

func (sa *SemanticAnalyzer) Analyze() *SymbolTable {
	sa.analyzeStmts(sa.program.Stmts)
	return sa.symbols
}

func (sa *SemanticAnalyzer) analyzeStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		sa.analyzeStmt(stmt)
	}
}

func (sa *SemanticAnalyzer) analyzeStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.VarDeclStmt:
		sa.symbols.Define(Symbol{Name: stmt.Name})
	case *ast.AssignStmt:
		if _, ok := sa.symbols.Lookup(stmt.Name); !ok {
			sa.eh.AddError(newSemanticError(
				fmt.Sprintf("assignment to undeclared variable '%s'", stmt.Name),
				sa.fileName,
				stmt.StartToken))
			sa.eh.FailNow()
		}
	case *ast.IfStmt:
		for clause := stmt; clause != nil; clause = clause.Next {
			sa.analyzeStmts(clause.Body.Stmts)
		}
	case *ast.WhileStmt:
		sa.analyzeStmts(stmt.Body.Stmts)
	}
}
