package lexer

// Kind enumerates token kinds produced by the lexer. The set is closed.
type Kind int

const (
	Type          Kind = iota // NONE, CHAR, INT8, ... LIST
	Keyword                   // IF, WHILE, FOR, IMPORT, RETURN, FUNCTION
	Identifier
	LiteralString // "raw text"
	LiteralChar   // 'c'
	LiteralNumber // 123
	LiteralFloat  // 1.5
	LiteralBool   // True, False
	Operator      // + - * / // % ** > >= < <= | ^ & == != || &&
	Assignment    // = &= += -= *= /= %= //= **=
	Punctuator    // ; : , [ ] ( ) .
	Follow        // ->
	Indent
	Dedent
	Newline
	EOF
	Unknown
)

var kindNames = [...]string{
	Type:          "Type",
	Keyword:       "Keyword",
	Identifier:    "Identifier",
	LiteralString: "LiteralString",
	LiteralChar:   "LiteralChar",
	LiteralNumber: "LiteralNumber",
	LiteralFloat:  "LiteralFloat",
	LiteralBool:   "LiteralBool",
	Operator:      "Operator",
	Assignment:    "Assignment",
	Punctuator:    "Punctuator",
	Follow:        "Follow",
	Indent:        "Indent",
	Dedent:        "Dedent",
	Newline:       "Newline",
	EOF:           "EOF",
	Unknown:       "Unknown",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Unknown, false
}

// newlineLex is the canonical lexeme of a Newline token.
const newlineLex = `\n`

// Token is a single lexeme with source position. Lex is empty for
// Indent, Dedent and EOF.
type Token struct {
	Kind Kind
	Lex  string
	Line int
	Col  int
}
