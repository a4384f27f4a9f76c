package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pyrope-lang/pyrope/compiler/internal/diag"
	"github.com/pyrope-lang/pyrope/compiler/internal/lexbridge"
	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

/* ---------- lex (flags anywhere) ---------- */

// stdin is read when the file argument is "-".
var stdin io.Reader = os.Stdin

type lexArgs struct {
	file    string
	format  string // "pretty" | "ndjson" | "bson" | "dump"
	limit   int
	hints   bool
	noColor bool
	verbose bool
}

func validFormat(f string) bool {
	switch f {
	case "pretty", "ndjson", "bson", "dump":
		return true
	}
	return false
}

func parseLexArgs(argv []string) (lexArgs, error) {
	a := lexArgs{format: "pretty"}
	for i := 0; i < len(argv); i++ {
		s := argv[i]
		switch {
		case strings.HasPrefix(s, "--format="):
			a.format = strings.TrimPrefix(s, "--format=")
			if !validFormat(a.format) {
				return a, flag.ErrHelp
			}
			continue
		case strings.HasPrefix(s, "--limit="):
			n, err := strconv.Atoi(strings.TrimPrefix(s, "--limit="))
			if err != nil || n < 0 {
				return a, flag.ErrHelp
			}
			a.limit = n
			continue
		case s == "--hints":
			a.hints = true
			continue
		case s == "--no-color":
			a.noColor = true
			continue
		case s == "--verbose":
			a.verbose = true
			continue
		}
		if (s == "-" || !strings.HasPrefix(s, "-")) && a.file == "" {
			a.file = s
			continue
		}
		return a, flag.ErrHelp
	}
	if a.file == "" {
		return a, flag.ErrHelp
	}
	return a, nil
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func cmdLex(args []string) int {
	a, err := parseLexArgs(args)
	if err != nil {
		term.Eprintln("usage: pyropec lex [--format=pretty|ndjson|bson|dump] [--limit=N] [--hints] [--no-color] [--verbose] <file|->")
		return 2
	}
	src, err := readSource(a.file)
	if err != nil {
		term.Eprintf("lex: %v\n", err)
		return 2
	}
	if a.verbose {
		term.Eprintf("[pyropec] scanning %s (%d bytes)\n", a.file, len(src))
	}

	r := lexer.Scan(src)
	if err := writeResult(term.Out, r, a.format, a.limit); err != nil {
		term.Eprintf("lex: %v\n", err)
		return 2
	}
	if a.verbose {
		term.Eprintf("[pyropec] %d tokens\n", len(r.Tokens()))
	}

	color := term.AutoColor(a.noColor)
	if a.hints {
		for _, h := range lexer.Hints(r.Tokens(), lexer.DefaultKeywords()) {
			term.Eprintf("%s:%d:%d: %s %q looks like the reserved word %s\n",
				a.file, h.Token.Line, h.Token.Col, color.Yellow("hint:"), h.Token.Lex, h.Suggestion)
		}
	}

	switch r := r.(type) {
	case *lexer.Success:
		return 0
	case *lexer.Failure:
		term.Eprintf("%s", color.Red(diag.Render(r.Diag, a.file, src)))
		return 1
	}
	return 0
}

// writeResult prints r in the requested format. The pretty table lists
// tokens only; the diagnostic is reported separately.
func writeResult(w io.Writer, r lexer.Result, format string, limit int) error {
	recs := lexbridge.FromResult(r)
	switch format {
	case "ndjson":
		return lexbridge.WriteNDJSON(w, limitRecords(recs, limit))
	case "bson":
		data, err := lexbridge.EncodeBSON(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "dump":
		term.Wprintf(w, "%s", lexbridge.Dump(r))
		return nil
	default:
		if _, failed := r.(*lexer.Failure); failed {
			recs = recs[:len(recs)-1]
		}
		term.Wprintf(w, "%s", lexbridge.DebugFormat(recs, limit))
		return nil
	}
}

func limitRecords(recs []lexbridge.Record, limit int) []lexbridge.Record {
	if limit > 0 && limit < len(recs) {
		return recs[:limit]
	}
	return recs
}
