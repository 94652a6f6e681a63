package lexer

// TokenSource is what the parser pulls tokens from. *Lexer is the
// production implementation; SimpleTokenScanner replays a pre-built
// slice, which keeps parser tests independent of the lexer.
type TokenSource interface {
	NextToken() Token
	HasMore() bool
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) *SimpleTokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) NextToken() Token {
	if s.pos >= len(s.tokens) {
		return Token{
			Kind:  EOF,
			Value: EOF.String(),
		}
	}

	token := s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) HasMore() bool {
	return s.pos < len(s.tokens)
}
