package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/pyrope-lang/pyrope/compiler/internal/lexbridge"
	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

const (
	historyFile     = ".pyrope_history"
	promptMain      = "pyrope> "
	promptCont      = "....... "
	defaultSentinel = ";;"
)

// lineReader is the part of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func historyPath() string {
	if p := os.Getenv("PYROPE_HISTORY"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(term.Err)
	sentinel := fs.String("sentinel", defaultSentinel, "line that submits the accumulated input")
	noColor := fs.Bool("no-color", false, "disable coloured diagnostics")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*sentinel) == "" {
		term.Eprintln("repl: --sentinel must not be blank")
		return 2
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	term.Printf("PyropeScript lexer. End a submission with %q, :quit to exit.\n", *sentinel)
	return repl(ln, strings.TrimSpace(*sentinel), term.AutoColor(*noColor))
}

// repl runs the read loop until end of input or :quit.
func repl(ln lineReader, sentinel string, color term.Color) int {
	for {
		src, ok := readSubmission(ln, sentinel)
		if !ok {
			term.Println()
			return 0
		}

		if cmd := strings.TrimSpace(src); strings.HasPrefix(cmd, ":") {
			if quit := replCommand(cmd); quit {
				return 0
			}
			continue
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		r := lexer.Scan(src)
		recs := lexbridge.FromResult(r)
		switch r := r.(type) {
		case *lexer.Success:
			term.Printf("%s", lexbridge.DebugFormat(recs, 0))
		case *lexer.Failure:
			term.Printf("%s", lexbridge.DebugFormat(recs[:len(recs)-1], 0))
			term.Eprintln(color.Red(r.Diag.Error()))
		}
	}
}

// replCommand handles a ":" command and reports whether the loop should stop.
func replCommand(cmd string) bool {
	name, arg, _ := strings.Cut(cmd, " ")
	switch strings.ToLower(name) {
	case ":quit", ":q":
		return true
	case ":kw":
		arg = strings.TrimSpace(arg)
		if arg == "" {
			term.Printf("%s\n", strings.Join(lexer.DefaultKeywords().Names(), " "))
			return false
		}
		if got := lexer.DefaultKeywords().Suggest(arg); len(got) > 0 {
			term.Printf("%s\n", strings.Join(got, " "))
		} else {
			term.Printf("no reserved word matches %q\n", arg)
		}
	default:
		term.Printf("unknown command. Commands: :kw [word], :quit\n")
	}
	return false
}

// readSubmission accumulates raw lines until one equals sentinel. A ":"
// command on the first line is returned at once. ok is false at end of
// input.
func readSubmission(ln lineReader, sentinel string) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending submission.
			return "", true
		}
		if err != nil {
			return "", false
		}
		ln.AppendHistory(line)

		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		if strings.TrimSpace(line) == sentinel {
			return b.String(), true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
