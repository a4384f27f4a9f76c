package diag

import (
	_ "embed"
	"encoding/json"
	"sort"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "PYL0002"
	Title string `json:"title"` // short human title e.g., "unterminated string literal"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format.
// Only the lexer section exists until a parser lands.
type Registry struct {
	Lexer map[string]CodeEntry `json:"lexer"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key). "lexer" is the only domain.
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	if domain != "lexer" || reg.Lexer == nil {
		return CodeEntry{}, false
	}
	ce, ok := reg.Lexer[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise a placeholder built from
// defaultID and defaultTitle, so codes stay stable with a broken catalog.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// LookupLexer is a convenience for the "lexer" domain.
func LookupLexer(key string) (CodeEntry, bool) { return Lookup("lexer", key) }

// LexerCodes lists the lexer catalog ordered by ID.
func LexerCodes() []CodeEntry {
	if err := load(); err != nil {
		return nil
	}
	out := make([]CodeEntry, 0, len(reg.Lexer))
	for _, ce := range reg.Lexer {
		out = append(out, ce)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
