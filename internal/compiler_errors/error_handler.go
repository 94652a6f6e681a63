package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// PositionedError is implemented by errors that know where in the source
// file they occurred.
type PositionedError interface {
	CompilerError

	GetFileName() string
	GetLine() int
	GetColumn() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	FailNow()
}

type InterpreterErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &InterpreterErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *InterpreterErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *InterpreterErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Run failed with errors:")

	for _, err := range eh.errors {
		if perr, ok := err.(PositionedError); ok && perr.GetLine() > 0 {
			fmt.Fprintf(
				eh.writer,
				"ERROR: %s:%d:%d: %s\n",
				perr.GetFileName(),
				perr.GetLine(),
				perr.GetColumn(),
				perr.GetMessage())
			continue
		}

		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}

	os.Exit(1)
}
