package lexer

import (
	"fmt"
	"strings"

	"tinyscript/internal/compiler_errors"
)

type LexerError struct {
	Message string

	FileName string
	Line     int
	Column   int
}

func (e *LexerError) GetMessage() string  { return e.Message }
func (e *LexerError) GetFileName() string { return e.FileName }
func (e *LexerError) GetLine() int        { return e.Line }
func (e *LexerError) GetColumn() int      { return e.Column }

func (l *Lexer) newUnexpectedExpectedError(unexpected byte, expected byte) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf(
			"expected '%s', but got: '%s', instead",
			string(expected),
			string(unexpected)),

		FileName: l.fileName,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *Lexer) newExpectedError(expected byte) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("expected '%s'", string(expected)),

		FileName: l.fileName,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *Lexer) newUnterminatedStringError() *LexerError {
	return &LexerError{
		Message: "unterminated string literal",

		FileName: l.fileName,
		Line:     l.line,
		Column:   l.col,
	}
}

func (l *Lexer) newMalformedNumberError() *LexerError {
	return &LexerError{
		Message: "malformed number literal: expected digit after '.'",

		FileName: l.fileName,
		Line:     l.line,
		Column:   l.col,
	}
}

var keywords = map[string]TokenKind{
	"LET":    LET,
	"PRINT":  PRINT,
	"END":    END,
	"IF":     IF,
	"THEN":   THEN,
	"WHILE":  WHILE,
	"ELSEIF": ELSEIF,
	"ELSE":   ELSE,
}

// lookupKeyword matches case-insensitively, so If, IF and if all lex to
// the same keyword kind. Identifiers keep their original case.
func lookupKeyword(identifier string) (TokenKind, bool) {
	kind, ok := keywords[strings.ToUpper(identifier)]
	return kind, ok
}

type Lexer struct {
	fileName string

	buf []byte
	pos int

	line, col int

	eh compiler_errors.ErrorHandler
}

func NewLexer(fileName string, buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		fileName: fileName,

		buf: buf,
		pos: 0,

		line: 1,
		col:  1,

		eh: eh,
	}
}

// HasMore reports whether any unconsumed characters remain. The token
// produced next may still be EOF when only whitespace is left.
func (l *Lexer) HasMore() bool {
	return l.hasChars()
}

// NextToken produces one token per call. Once the input is exhausted it
// yields EOF tokens on every subsequent call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if !l.hasChars() {
		return Token{
			Kind:     EOF,
			Value:    EOF.String(),
			Metadata: l.metadata(0),
		}
	}

	switch {
	case l.isCurrDigit():
		return l.processNumber()
	case l.isCurrAlpha():
		return l.processIdentifier()
	case l.read() == '"':
		return l.processStringLiteral()
	case l.isCurrPunctuation():
		return l.processPunctuation()
	}

	illegal := l.read()
	token := Token{
		Kind:     ILLEGAL,
		Value:    string(illegal),
		Metadata: l.metadata(1),
	}
	l.advance()
	return token
}

// Tokenize drains the input through the pull API.
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0)

	for {
		token := l.NextToken()
		tokens = append(tokens, token)

		if token.Kind == EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.hasChars() && l.isCurrSkippable() {
		l.advance()
	}
}

func (l *Lexer) isCurrAlpha() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z')
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '=', '!', '<', '>', ';':
		return true
	}
	return false
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	metadata := l.metadata(0)

	identifierBuf := make([]byte, 0)
	identifierBuf = append(identifierBuf, l.read())
	l.advance()

	for l.hasChars() && (l.isCurrAlpha() || l.isCurrDigit()) {
		identifierBuf = append(identifierBuf, l.read())
		l.advance()
	}
	identifier := string(identifierBuf)
	metadata.Length = len(identifier)

	if kind, ok := lookupKeyword(identifier); ok {
		return Token{
			Kind:     kind,
			Value:    identifier,
			Metadata: metadata,
		}
	}

	return Token{
		Kind:     IDENT,
		Value:    identifier,
		Metadata: metadata,
	}
}

func (l *Lexer) processNumber() Token {
	metadata := l.metadata(0)

	numberBuf := make([]byte, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	for l.hasChars() && l.isCurrDigit() {
		numberBuf = append(numberBuf, l.read())
		l.advance()
	}

	if l.hasChars() && l.read() == '.' {
		numberBuf = append(numberBuf, l.read())
		l.advance()

		if !l.hasChars() || !l.isCurrDigit() {
			l.eh.AddError(l.newMalformedNumberError())
			l.eh.FailNow()
		}

		for l.hasChars() && l.isCurrDigit() {
			numberBuf = append(numberBuf, l.read())
			l.advance()
		}
	}

	metadata.Length = len(numberBuf)
	return Token{
		Kind:     NUMBER,
		Value:    string(numberBuf),
		Metadata: metadata,
	}
}

func (l *Lexer) processStringLiteral() Token {
	metadata := l.metadata(0)
	l.advance()

	stringBuf := make([]byte, 0)
	for l.hasChars() && l.read() != '"' {
		stringBuf = append(stringBuf, l.read())
		l.advance()
	}

	if !l.hasChars() {
		l.eh.AddError(l.newUnterminatedStringError())
		l.eh.FailNow()
	}

	// Closing quote; the stored text excludes both quotes.
	l.advance()

	metadata.Length = len(stringBuf) + 2
	return Token{
		Kind:     STRING,
		Value:    string(stringBuf),
		Metadata: metadata,
	}
}

func (l *Lexer) processPunctuation() Token {
	switch l.read() {
	case '+':
		return l.processSingle(PLUS, "+")
	case '-':
		return l.processSingle(MINUS, "-")
	case '*':
		return l.processSingle(ASTERISK, "*")
	case '/':
		return l.processSingle(SLASH, "/")
	case ';':
		return l.processSingle(SEMICOLON, ";")
	case '=':
		return l.processEquals()
	case '>':
		return l.processGreaterThan()
	case '<':
		return l.processLessThan()
	case '!':
		return l.processExclamationMark()
	}

	panic("unreachable")
}

func (l *Lexer) processSingle(kind TokenKind, value string) Token {
	token := Token{
		Kind:     kind,
		Value:    value,
		Metadata: l.metadata(1),
	}
	l.advance()
	return token
}

func (l *Lexer) processEquals() Token {
	metadata := l.metadata(1)
	l.advance()

	if l.hasChars() && l.read() == '=' {
		l.advance()
		metadata.Length = 2
		return Token{
			Kind:     EQ,
			Value:    "==",
			Metadata: metadata,
		}
	}

	return Token{
		Kind:     ASSIGN,
		Value:    "=",
		Metadata: metadata,
	}
}

func (l *Lexer) processGreaterThan() Token {
	metadata := l.metadata(1)
	l.advance()

	if l.hasChars() && l.read() == '=' {
		l.advance()
		metadata.Length = 2
		return Token{
			Kind:     GEQ,
			Value:    ">=",
			Metadata: metadata,
		}
	}

	return Token{
		Kind:     GT,
		Value:    ">",
		Metadata: metadata,
	}
}

func (l *Lexer) processLessThan() Token {
	metadata := l.metadata(1)
	l.advance()

	if l.hasChars() && l.read() == '=' {
		l.advance()
		metadata.Length = 2
		return Token{
			Kind:     LEQ,
			Value:    "<=",
			Metadata: metadata,
		}
	}

	return Token{
		Kind:     LT,
		Value:    "<",
		Metadata: metadata,
	}
}

func (l *Lexer) processExclamationMark() Token {
	metadata := l.metadata(1)
	l.advance()

	if l.hasChars() && l.read() == '=' {
		l.advance()
		metadata.Length = 2
		return Token{
			Kind:     NEQ,
			Value:    "!=",
			Metadata: metadata,
		}
	}

	if !l.hasChars() {
		l.eh.AddError(l.newExpectedError('='))
		l.eh.FailNow()
	}

	l.eh.AddError(l.newUnexpectedExpectedError(l.read(), '='))
	l.eh.FailNow()
	panic("unreachable")
}

func (l *Lexer) metadata(length int) TokenMetadata {
	return TokenMetadata{
		Line:   l.line,
		Column: l.col,
		Length: length,
	}
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance() {
	if l.buf[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) read() byte { return l.buf[l.pos] }
