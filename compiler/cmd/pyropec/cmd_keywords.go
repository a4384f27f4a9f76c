package main

import (
	"strings"

	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

/* ---------- keywords: list or fuzzy-rank the reserved words ---------- */

func cmdKeywords(args []string) int {
	kw := lexer.DefaultKeywords()
	switch len(args) {
	case 0:
		for _, name := range kw.Names() {
			term.Printf("%-12s %s\n", kw.Lookup(name), name)
		}
		return 0
	case 1:
		got := kw.Suggest(args[0])
		if len(got) == 0 {
			term.Eprintf("no reserved word matches %q\n", args[0])
			return 1
		}
		term.Printf("%s\n", strings.Join(got, "\n"))
		return 0
	default:
		term.Eprintln("usage: pyropec keywords [word]")
		return 2
	}
}
