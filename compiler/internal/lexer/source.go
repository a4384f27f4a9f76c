package lexer

// Source is a minimal token source a parser can consume.
type Source interface {
	Next() Token
}

// Stream walks a scanned token slice. Once exhausted it keeps returning
// the final EOF token, so parsers can over-read safely.
type Stream struct {
	toks []Token
	i    int
}

var _ Source = (*Stream)(nil)

// NewStream returns a Stream over the tokens of r.
func NewStream(r Result) *Stream { return &Stream{toks: r.Tokens()} }

// HasNext reports whether there is another token.
func (s *Stream) HasNext() bool { return s.i < len(s.toks) }

// Peek returns the next token without advancing.
func (s *Stream) Peek() Token {
	if s.i < len(s.toks) {
		return s.toks[s.i]
	}
	return s.tail()
}

// Next returns the next token and advances.
func (s *Stream) Next() Token {
	t := s.Peek()
	if s.i < len(s.toks) {
		s.i++
	}
	return t
}

// Reset moves the iterator to the beginning.
func (s *Stream) Reset() { s.i = 0 }

func (s *Stream) tail() Token {
	if n := len(s.toks); n > 0 {
		last := s.toks[n-1]
		return Token{Kind: EOF, Line: last.Line, Col: last.Col}
	}
	return Token{Kind: EOF, Line: 1, Col: 1}
}
