package lexer

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keywords maps reserved words to their token kind. The zero value is an
// empty table; values are never modified after construction.
type Keywords struct {
	m map[string]Kind
}

// DefaultKeywords builds the PyropeScript reserved word table.
func DefaultKeywords() Keywords {
	m := make(map[string]Kind, 28)
	for _, w := range []string{
		"NONE", "CHAR", "UCHAR",
		"INT2", "UINT2", "INT4", "UINT4", "INT8", "UINT8",
		"INT16", "UINT16", "INT32", "UINT32",
		"INT", "UINT", "FLOAT", "DOUBLE", "STRING", "USTRING", "LIST",
	} {
		m[w] = Type
	}
	for _, w := range []string{"IF", "WHILE", "FOR", "IMPORT", "RETURN", "FUNCTION"} {
		m[w] = Keyword
	}
	m["True"] = LiteralBool
	m["False"] = LiteralBool
	return Keywords{m: m}
}

// NewKeywords copies words into a new table.
func NewKeywords(words map[string]Kind) Keywords {
	m := make(map[string]Kind, len(words))
	for w, k := range words {
		m[w] = k
	}
	return Keywords{m: m}
}

// Lookup classifies an identifier-shaped lexeme.
func (kw Keywords) Lookup(lex string) Kind {
	if k, ok := kw.m[lex]; ok {
		return k
	}
	return Identifier
}

// Len reports the number of reserved words.
func (kw Keywords) Len() int { return len(kw.m) }

// Names returns the reserved words in lexical order.
func (kw Keywords) Names() []string {
	names := make([]string, 0, len(kw.m))
	for w := range kw.m {
		names = append(names, w)
	}
	sort.Strings(names)
	return names
}

// Suggest ranks reserved words that fuzzily contain word, closest first.
// Matching ignores case and diacritics.
func (kw Keywords) Suggest(word string) []string {
	if word == "" {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(word, kw.Names())
	sort.Sort(ranks)
	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}

// Hint flags an identifier that is probably a misspelt reserved word.
type Hint struct {
	Token      Token
	Suggestion string
}

// Hints reports identifiers within one edit of a reserved word, such as
// "while" for WHILE or "retrn" for RETURN.
func Hints(toks []Token, kw Keywords) []Hint {
	var out []Hint
	names := kw.Names()
	for _, t := range toks {
		if t.Kind != Identifier || len(t.Lex) < 2 {
			continue
		}
		best, bestDist := "", -1
		for _, name := range names {
			d := fuzzy.RankMatchNormalizedFold(t.Lex, name)
			if d < 0 || d > 1 {
				continue
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = name, d
			}
		}
		if bestDist >= 0 {
			out = append(out, Hint{Token: t, Suggestion: best})
		}
	}
	return out
}
