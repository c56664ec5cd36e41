package token

// Stream is a fully buffered token sequence with lookahead. The lexer fills
// it once; the parser consumes it. Past the end it yields EOF forever.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

func (s *Stream) Next() Token {
	tok := s.at(s.pos)
	s.pos++
	return tok
}

// Peek returns up to n upcoming tokens without consuming them.
func (s *Stream) Peek(n int) []Token {
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.at(s.pos+i))
	}
	return out
}

func (s *Stream) at(i int) Token {
	if i >= len(s.tokens) {
		if len(s.tokens) > 0 {
			last := s.tokens[len(s.tokens)-1]
			return Token{Type: EOF, Line: last.Line, Column: last.Column}
		}
		return Token{Type: EOF, Line: 1, Column: 0}
	}
	return s.tokens[i]
}
