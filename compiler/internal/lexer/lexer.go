package lexer

import (
	"unicode/utf8"

	"github.com/pyrope-lang/pyrope/compiler/internal/diag"
)

// Options tunes a scan. The zero value uses DefaultKeywords.
type Options struct {
	Keywords Keywords
}

// Scan converts src into tokens, producing Newline/Indent/Dedent like
// Python. It stops at the first lexical error.
func Scan(src string) Result { return ScanWith(src, Options{}) }

// ScanWith is Scan with a caller-owned keyword table.
func ScanWith(src string, opts Options) Result {
	kw := opts.Keywords
	if kw.m == nil {
		kw = DefaultKeywords()
	}
	s := &scanner{
		cur:     newCursor(src),
		kw:      kw,
		indents: []int{0},
		bol:     true,
	}
	return s.run()
}

// Tokenize is Scan for callers that prefer an error return. On failure the
// tokens end with the Unknown token and err is a diag.Diagnostic.
func Tokenize(src string) ([]Token, error) {
	r := Scan(src)
	return r.Tokens(), Err(r)
}

// scanner is the per-call state; nothing outlives a single Scan.
type scanner struct {
	cur     cursor
	kw      Keywords
	indents []int // stack of indent widths; starts with 0
	bol     bool  // beginning-of-line: next line decides indentation
	toks    []Token
}

func (s *scanner) run() Result {
	for !s.cur.eof() {
		var d *diag.Diagnostic
		if s.bol {
			d = s.handleBOL()
		} else {
			d = s.next()
		}
		if d != nil {
			return &Failure{Toks: s.toks, Diag: *d}
		}
	}
	return s.finish()
}

func (s *scanner) emit(kind Kind, lex string, at diag.Pos) {
	s.toks = append(s.toks, Token{Kind: kind, Lex: lex, Line: at.Line, Col: at.Col})
}

// fail appends the Unknown token for lex and builds the diagnostic. The
// span runs from at to the cursor when both sit on the same line.
func (s *scanner) fail(k diag.Kind, at diag.Pos, lex string) *diag.Diagnostic {
	s.emit(Unknown, lex, at)
	end := s.cur.pos()
	if end.Line != at.Line || end.Col <= at.Col {
		end = diag.Pos{Line: at.Line, Col: at.Col + 1}
	}
	d := diag.New(k, diag.Span{Start: at, End: end})
	return &d
}

// handleBOL measures the indentation of the next logical line and emits
// Indent/Dedent. Blank and comment-only lines are consumed without tokens.
func (s *scanner) handleBOL() *diag.Diagnostic {
	lineOff := s.cur.off
	lineNo := s.cur.line

	width := 0
	for s.cur.peek() == ' ' {
		s.cur.advance()
		width++
	}

	j := 0
	for isBlank(s.cur.peekAt(j)) {
		j++
	}
	if s.cur.off+j >= len(s.cur.src) {
		s.cur.skip(j)
		return nil
	}
	switch s.cur.peekAt(j) {
	case '\n':
		s.cur.skip(j)
		s.cur.advance()
		return nil
	case '#':
		s.skipComment()
		s.cur.advance()
		return nil
	}

	at := s.cur.pos()
	top := s.indents[len(s.indents)-1]
	if width > top {
		s.indents = append(s.indents, width)
		s.emit(Indent, "", at)
	} else {
		for width < top {
			s.indents = s.indents[:len(s.indents)-1]
			top = s.indents[len(s.indents)-1]
			s.emit(Dedent, "", at)
		}
		if width != top {
			return s.fail(diag.BadDedent, diag.Pos{Line: lineNo, Col: 1}, s.cur.slice(lineOff))
		}
	}
	s.bol = false
	return nil
}

// skipComment consumes up to, not including, the next '\n'.
func (s *scanner) skipComment() {
	for !s.cur.eof() && s.cur.peek() != '\n' {
		s.cur.advance()
	}
}

// next scans one token, or skips whitespace or a comment.
func (s *scanner) next() *diag.Diagnostic {
	ch := s.cur.peek()
	at := s.cur.pos()

	switch {
	case ch == '\n':
		s.cur.advance()
		s.emit(Newline, newlineLex, at)
		s.bol = true
	case isBlank(ch):
		s.cur.advance()
	case ch == '#':
		s.skipComment()
	case isIdentStart(ch):
		lex := s.scanIdent()
		s.emit(s.kw.Lookup(lex), lex, at)
	case isDigit(ch):
		kind, lex := s.scanNumber()
		s.emit(kind, lex, at)
	case ch == '"':
		return s.scanString(at)
	case ch == '\'':
		return s.scanChar(at)
	default:
		if op, ok := matchOperator(s.cur.rest()); ok {
			s.cur.skip(len(op.lit))
			s.emit(op.kind, op.lit, at)
			return nil
		}
		start := s.cur.off
		_, size := utf8.DecodeRuneInString(s.cur.rest())
		s.cur.skip(size)
		return s.fail(diag.UnexpectedChar, at, s.cur.slice(start))
	}
	return nil
}

func (s *scanner) scanIdent() string {
	start := s.cur.off
	for isIdentPart(s.cur.peek()) {
		s.cur.advance()
	}
	return s.cur.slice(start)
}

// scanNumber reads digits, and a fraction when '.' is followed by a digit.
// A bare trailing '.' is left for member access.
func (s *scanner) scanNumber() (Kind, string) {
	start := s.cur.off
	for isDigit(s.cur.peek()) {
		s.cur.advance()
	}
	if s.cur.peek() != '.' || !isDigit(s.cur.peekAt(1)) {
		return LiteralNumber, s.cur.slice(start)
	}
	s.cur.advance()
	for isDigit(s.cur.peek()) {
		s.cur.advance()
	}
	return LiteralFloat, s.cur.slice(start)
}

// scanString keeps the text between the quotes verbatim; a backslash only
// stops the next byte from closing the literal.
func (s *scanner) scanString(at diag.Pos) *diag.Diagnostic {
	s.cur.advance()
	start := s.cur.off
	for !s.cur.eof() && s.cur.peek() != '"' {
		if s.cur.peek() == '\\' {
			s.cur.advance()
			if s.cur.eof() {
				break
			}
		}
		if s.cur.peek() == '\n' {
			return s.fail(diag.UnterminatedString, at, s.cur.slice(start))
		}
		s.cur.advance()
	}
	if s.cur.eof() {
		return s.fail(diag.UnterminatedString, at, s.cur.slice(start))
	}
	lex := s.cur.slice(start)
	s.cur.advance()
	s.emit(LiteralString, lex, at)
	return nil
}

// scanChar decodes exactly one, possibly escaped, byte between quotes.
func (s *scanner) scanChar(at diag.Pos) *diag.Diagnostic {
	s.cur.advance()
	start := s.cur.off
	if s.cur.eof() {
		return s.fail(diag.UnterminatedChar, at, "")
	}

	var val byte
	switch s.cur.peek() {
	case '\\':
		s.cur.advance()
		if s.cur.eof() {
			return s.fail(diag.UnterminatedCharEscape, at, s.cur.slice(start))
		}
		val = unescape(s.cur.advance())
	case '\'':
		return s.fail(diag.EmptyChar, at, "")
	default:
		val = s.cur.advance()
	}

	if s.cur.eof() || s.cur.peek() != '\'' {
		return s.fail(diag.CharTooLong, at, s.cur.slice(start))
	}
	s.cur.advance()
	s.emit(LiteralChar, string([]byte{val}), at)
	return nil
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default: // '\\', '\'' and anything else stand for themselves
		return ch
	}
}

// finish closes the last logical line and unwinds the indent stack.
func (s *scanner) finish() Result {
	at := s.cur.pos()
	if !s.bol {
		s.emit(Newline, newlineLex, at)
	}
	for len(s.indents) > 1 {
		s.indents = s.indents[:len(s.indents)-1]
		s.emit(Dedent, "", at)
	}
	s.emit(EOF, "", at)
	return &Success{Toks: s.toks}
}
