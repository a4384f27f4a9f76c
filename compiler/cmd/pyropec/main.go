package main

import (
	"os"

	"github.com/pyrope-lang/pyrope/compiler/internal/term"
	"github.com/pyrope-lang/pyrope/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
	case "help", "--help", "-h":
		usage()
	case "lex":
		return cmdLex(args[1:])
	case "lex-diff":
		return cmdLexDiff(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	case "keywords":
		return cmdKeywords(args[1:])
	case "pool":
		return cmdPool(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
	return 0
}
