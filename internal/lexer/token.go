package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER
	STRING

	IDENT

	ILLEGAL

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	ASSIGN // =

	EQ  // ==
	NEQ // !=
	LT  // <
	LEQ // <=
	GT  // >
	GEQ // >=

	SEMICOLON // ;

	LET
	PRINT
	END
	IF
	THEN
	WHILE
	ELSEIF
	ELSE
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case ILLEGAL:
		return "ILLEGAL"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case ASSIGN:
		return "ASSIGN"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case SEMICOLON:
		return "SEMICOLON"
	case LET:
		return "LET"
	case PRINT:
		return "PRINT"
	case END:
		return "END"
	case IF:
		return "IF"
	case THEN:
		return "THEN"
	case WHILE:
		return "WHILE"
	case ELSEIF:
		return "ELSEIF"
	case ELSE:
		return "ELSE"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type TokenMetadata struct {
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind     TokenKind
	Value    string
	Metadata TokenMetadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, STRING, IDENT, ILLEGAL:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
