package main

import "github.com/pyrope-lang/pyrope/compiler/internal/term"

func usage() {
	term.Eprintln("pyropec — PyropeScript toolchain (lexer stage)")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  pyropec <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex [--format=pretty|ndjson|bson|dump] [--limit=N] [--hints] [--no-color] [--verbose] <file|->")
	term.Eprintln("                                            Scan a file (or stdin) and print its tokens")
	term.Eprintln("  lex-diff [--limit=N] [--all] [--update] <file> <golden.ndjson>")
	term.Eprintln("                                            Compare a file's tokens with an NDJSON golden")
	term.Eprintln("  repl [--sentinel=;;] [--no-color]          Read submissions interactively and print tokens")
	term.Eprintln("  keywords [word]                           List reserved words, or rank them against word")
	term.Eprintln("  pool [--reserve=N] [--size=N]             Run the slot allocator demo")
	term.Eprintln("")
	term.Eprintln("Environment:")
	term.Eprintln("  PYROPE_HISTORY   repl history file (default ~/.pyrope_history)")
	term.Eprintln("  NO_COLOR         disable coloured diagnostics")
	term.Eprintln("")
	term.Eprintln("Exit codes: 0 ok, 1 lexical error or mismatch, 2 usage or I/O error")
}
