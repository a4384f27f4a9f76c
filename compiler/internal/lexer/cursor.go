package lexer

import "github.com/pyrope-lang/pyrope/compiler/internal/diag"

// cursor tracks the byte offset together with the line and the offset at
// which the current line starts. Columns are 1-based byte columns.
type cursor struct {
	src       string
	off       int
	line      int
	lineStart int
}

func newCursor(src string) cursor { return cursor{src: src, line: 1} }

func (c *cursor) eof() bool { return c.off >= len(c.src) }

// peek returns the current byte, or 0 at end of input.
func (c *cursor) peek() byte { return c.peekAt(0) }

func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.src) {
		return 0
	}
	return c.src[c.off+n]
}

// advance consumes one byte. Consuming '\n' moves to the next line.
func (c *cursor) advance() byte {
	if c.eof() {
		return 0
	}
	ch := c.src[c.off]
	c.off++
	if ch == '\n' {
		c.line++
		c.lineStart = c.off
	}
	return ch
}

// skip consumes n bytes that are known not to contain '\n'.
func (c *cursor) skip(n int) { c.off = min(c.off+n, len(c.src)) }

func (c *cursor) col() int { return c.off - c.lineStart + 1 }

func (c *cursor) pos() diag.Pos { return diag.Pos{Line: c.line, Col: c.col()} }

func (c *cursor) rest() string { return c.src[c.off:] }

func (c *cursor) slice(from int) string { return c.src[from:c.off] }

// ASCII classification; bytes >= 0x80 are never letters, digits or spaces.

func isAlpha(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool { return isAlpha(ch) || ch == '_' }

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

// isBlank reports horizontal whitespace: everything isspace accepts except '\n'.
func isBlank(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\v' || ch == '\f'
}
