package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Category is the label printed in front of a diagnostic message.
type Category string

const (
	IndentationError Category = "IndentationError"
	SyntaxError      Category = "SyntaxError"
)

// Kind is one entry of the fixed lexical error taxonomy.
type Kind int

const (
	KindNone Kind = iota
	BadDedent
	UnterminatedString
	UnterminatedChar
	UnterminatedCharEscape
	EmptyChar
	CharTooLong
	UnexpectedChar
)

var kindInfo = [...]struct {
	cat Category
	msg string
	key string
}{
	KindNone:               {"", "", ""},
	BadDedent:              {IndentationError, "unindent does not match any outer indentation level", "bad_dedent"},
	UnterminatedString:     {SyntaxError, "Unterminated string literal", "unterminated_string"},
	UnterminatedChar:       {SyntaxError, "Unterminated char literal", "unterminated_char"},
	UnterminatedCharEscape: {SyntaxError, "Unterminated char escape sequence", "unterminated_char_escape"},
	EmptyChar:              {SyntaxError, "Empty char literal", "empty_char"},
	CharTooLong:            {SyntaxError, "Char literal must contain only one single character", "char_too_long"},
	UnexpectedChar:         {SyntaxError, "Unexpected character", "unexpected_char"},
}

func (k Kind) valid() bool { return k > KindNone && int(k) < len(kindInfo) }

// Category reports whether k is an indentation or a syntax error.
func (k Kind) Category() Category {
	if !k.valid() {
		return SyntaxError
	}
	return kindInfo[k].cat
}

// Message is the static text attached to k.
func (k Kind) Message() string {
	if !k.valid() {
		return "unknown lexical error"
	}
	return kindInfo[k].msg
}

// Key is the stable catalog key (see codes.json).
func (k Kind) Key() string {
	if !k.valid() {
		return ""
	}
	return kindInfo[k].key
}

func (k Kind) String() string {
	if k.valid() {
		return kindInfo[k].key
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is a lexical error anchored at the start of the offending construct.
type Diagnostic struct {
	Kind Kind
	Span Span
	Msg  string
}

// New builds a diagnostic of kind k covering span.
func New(k Kind, span Span) Diagnostic {
	return Diagnostic{Kind: k, Span: span, Msg: k.Message()}
}

// Line is the 1-based line of the diagnostic start.
func (d Diagnostic) Line() int { return d.Span.Start.Line }

// Col is the 1-based column of the diagnostic start.
func (d Diagnostic) Col() int { return d.Span.Start.Col }

// Code returns the catalog ID for d, or "" when the catalog has no entry.
func (d Diagnostic) Code() string {
	if ce, ok := LookupLexer(d.Kind.Key()); ok {
		return ce.ID
	}
	return ""
}

// Error renders d as "<category>: <message> at line <line> column <column>".
func (d Diagnostic) Error() string {
	if d.Span.Start.Line == 0 {
		return fmt.Sprintf("%s: %s", d.Kind.Category(), d.Msg)
	}
	return fmt.Sprintf("%s: %s at line %d column %d", d.Kind.Category(), d.Msg, d.Span.Start.Line, d.Span.Start.Col)
}

// KindFromKey maps a catalog key such as "bad_dedent" back to its Kind.
func KindFromKey(key string) (Kind, bool) {
	for k := BadDedent; k.valid(); k++ {
		if kindInfo[k].key == key {
			return k, true
		}
	}
	return KindNone, false
}
