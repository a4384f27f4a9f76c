package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pyrope-lang/pyrope/compiler/internal/lexbridge"
	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

/* ---------- lex-diff: compare against an NDJSON golden ---------- */

type lexDiffArgs struct {
	file   string
	golden string
	limit  int
	all    bool
	update bool
}

func parseLexDiffArgs(argv []string) (lexDiffArgs, error) {
	var a lexDiffArgs
	for _, s := range argv {
		switch {
		case strings.HasPrefix(s, "--limit="):
			n, err := strconv.Atoi(strings.TrimPrefix(s, "--limit="))
			if err != nil || n < 0 {
				return a, flag.ErrHelp
			}
			a.limit = n
		case s == "--all":
			a.all = true
		case s == "--update":
			a.update = true
		case strings.HasPrefix(s, "-"):
			return a, flag.ErrHelp
		case a.file == "":
			a.file = s
		case a.golden == "":
			a.golden = s
		default:
			return a, flag.ErrHelp
		}
	}
	if a.file == "" || a.golden == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}

func cmdLexDiff(args []string) int {
	a, err := parseLexDiffArgs(args)
	if err != nil {
		term.Eprintln("usage: pyropec lex-diff [--limit=N] [--all] [--update] <file> <golden.ndjson>")
		return 2
	}
	src, err := readSource(a.file)
	if err != nil {
		term.Eprintf("lex-diff: %v\n", err)
		return 2
	}
	got := lexbridge.FromResult(lexer.Scan(src))

	if a.update {
		f, err := os.Create(a.golden)
		if err != nil {
			term.Eprintf("lex-diff: %v\n", err)
			return 2
		}
		werr := lexbridge.WriteNDJSON(f, got)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			term.Eprintf("lex-diff: write %s: %v\n", a.golden, werr)
			return 2
		}
		term.Printf("wrote %d records to %s\n", len(got), a.golden)
		return 0
	}

	gf, err := os.Open(a.golden)
	if err != nil {
		term.Eprintf("lex-diff: %v\n", err)
		return 2
	}
	defer gf.Close()
	want, perr := lexbridge.ParseNDJSON(gf)
	if perr != nil {
		term.Eprintf("ndjson parse warning: %v\n", perr)
	}

	rows := lexbridge.Diff(got, want)
	bad := lexbridge.Mismatches(rows)
	if bad == 0 {
		term.Printf("no differences (%d records)\n", len(rows))
		return 0
	}
	term.Printf("%s", lexbridge.FormatDiff(rows, a.limit, !a.all))
	term.Eprintf("%d of %d records differ\n", bad, len(rows))
	return 1
}
