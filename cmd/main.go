package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"tinyscript/internal/compiler_errors"
	"tinyscript/internal/interpreter"
	l "tinyscript/internal/lexer"
	"tinyscript/internal/parser"
	"tinyscript/internal/semantic_analyzer"
)

func main() {
	dumpAst := flag.Bool("ast", false, "print the parsed syntax tree instead of running the program")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-ast] <script file>\n", os.Args[0])
		os.Exit(1)
	}

	fileName := flag.Arg(0)
	fileData, err := os.ReadFile(fileName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eh := compiler_errors.NewErrorHandler(os.Stderr)

	lexer := l.NewLexer(fileName, fileData, eh)
	parser := parser.NewParser(fileName, lexer, eh)
	program := parser.Parse()

	if *dumpAst {
		litter.Dump(program)
		return
	}

	analyzer := semantic_analyzer.NewSemanticAnalyzer(fileName, eh, program)
	symbols := analyzer.Analyze()

	interpreter.NewInterpreter(fileName, eh, program, symbols, os.Stdout).Run()
}
