package lexer

import "github.com/pyrope-lang/pyrope/compiler/internal/diag"

// Result is the outcome of a scan: exactly one of *Success or *Failure.
//
//	switch r := lexer.Scan(src).(type) {
//	case *lexer.Success:
//		use(r.Tokens())
//	case *lexer.Failure:
//		report(r.Diag)
//	}
type Result interface {
	// Tokens returns the produced stream. For a failure it ends with the
	// Unknown token of the offending lexeme.
	Tokens() []Token
	result()
}

// Success carries a complete stream terminated by exactly one EOF token.
type Success struct {
	Toks []Token
}

func (s *Success) Tokens() []Token { return s.Toks }
func (*Success) result()           {}

// Failure carries the first lexical error and the tokens scanned before it.
type Failure struct {
	Toks []Token
	Diag diag.Diagnostic
}

func (f *Failure) Tokens() []Token { return f.Toks }
func (*Failure) result()           {}

// Err returns the diagnostic of r, or nil when r is a success.
func Err(r Result) error {
	switch r := r.(type) {
	case *Success:
		return nil
	case *Failure:
		return r.Diag
	default:
		panic("lexer: unknown Result variant")
	}
}
