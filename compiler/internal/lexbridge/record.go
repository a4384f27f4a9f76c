// Package lexbridge hands scan results to consumers outside the lexer:
// NDJSON and BSON encodings, a readable table, a debug dump and a golden
// diff.
package lexbridge

import (
	"fmt"

	"github.com/pyrope-lang/pyrope/compiler/internal/diag"
	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
)

// ErrKind marks the trailing row that carries the diagnostic of a failed scan.
const ErrKind = "ERR"

// Record is the flat, serialisable form of one token or of the diagnostic.
// Example rows:
//
//	{"kind":"Identifier","text":"foo","line":3,"col":5}
//	{"kind":"ERR","text":"Unterminated string literal","line":1,"col":9,"end_col":13,"key":"unterminated_string"}
type Record struct {
	Kind string `json:"kind" bson:"kind"`
	Text string `json:"text" bson:"text"`
	Line int    `json:"line" bson:"line"`
	Col  int    `json:"col" bson:"col"`
	// Set on the ERR row only.
	EndCol int    `json:"end_col,omitempty" bson:"end_col,omitempty"`
	Key    string `json:"key,omitempty" bson:"key,omitempty"`
}

// FromResult flattens r. A failure contributes one extra ERR row.
func FromResult(r lexer.Result) []Record {
	toks := r.Tokens()
	recs := make([]Record, 0, len(toks)+1)
	for _, t := range toks {
		recs = append(recs, Record{Kind: t.Kind.String(), Text: t.Lex, Line: t.Line, Col: t.Col})
	}
	switch r := r.(type) {
	case *lexer.Success:
	case *lexer.Failure:
		d := r.Diag
		recs = append(recs, Record{
			Kind:   ErrKind,
			Text:   d.Msg,
			Line:   d.Line(),
			Col:    d.Col(),
			EndCol: d.Span.End.Col,
			Key:    d.Kind.Key(),
		})
	}
	return recs
}

// ToResult rebuilds a scan result from its records.
func ToResult(recs []Record) (lexer.Result, error) {
	toks := make([]lexer.Token, 0, len(recs))
	for i, rec := range recs {
		if rec.Kind == ErrKind {
			if i != len(recs)-1 {
				return nil, fmt.Errorf("record %d: %s row must be last", i, ErrKind)
			}
			k, ok := diag.KindFromKey(rec.Key)
			if !ok {
				return nil, fmt.Errorf("record %d: unknown diagnostic key %q", i, rec.Key)
			}
			d := diag.New(k, diag.Span{
				Start: diag.Pos{Line: rec.Line, Col: rec.Col},
				End:   diag.Pos{Line: rec.Line, Col: rec.EndCol},
			})
			return &lexer.Failure{Toks: toks, Diag: d}, nil
		}
		kind, ok := lexer.ParseKind(rec.Kind)
		if !ok {
			return nil, fmt.Errorf("record %d: unknown token kind %q", i, rec.Kind)
		}
		toks = append(toks, lexer.Token{Kind: kind, Lex: rec.Text, Line: rec.Line, Col: rec.Col})
	}
	return &lexer.Success{Toks: toks}, nil
}
