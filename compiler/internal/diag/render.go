package diag

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Render formats d in a compiler-style block:
//
//	error[PYL0002]: Unterminated string literal
//	 --> main.pyr:3:9
//	 3 | x = "abc
//	   |     ^~~~ SyntaxError
//	help: close the string with '"' before the end of the line
//
// file may be empty; src is the scanned text and is only used to quote the
// offending line.
func Render(d Diagnostic, file, src string) string {
	var b strings.Builder
	ce, hasCode := LookupLexer(d.Kind.Key())
	if hasCode {
		fmt.Fprintf(&b, "error[%s]: %s\n", ce.ID, d.Msg)
	} else {
		fmt.Fprintf(&b, "error: %s\n", d.Msg)
	}
	if d.Line() > 0 {
		if file == "" {
			file = "<input>"
		}
		fmt.Fprintf(&b, " --> %s:%d:%d\n", file, d.Line(), d.Col())
		printLineWithUnderline(&b, d, src)
	}
	if hasCode && strings.TrimSpace(ce.Help) != "" {
		fmt.Fprintf(&b, "help: %s\n", ce.Help)
	}
	return b.String()
}

func printLineWithUnderline(b *strings.Builder, d Diagnostic, src string) {
	lineText, ok := getLineText(src, d.Line())
	if !ok {
		return
	}
	lnStr := fmt.Sprintf("%d", d.Line())
	fmt.Fprintf(b, " %s | %s\n", lnStr, string(visualize(lineText)))
	fmt.Fprintf(b, " %s | ", strings.Repeat(" ", len(lnStr)))
	endCol := 0
	if d.Span.End.Line == d.Span.Start.Line {
		endCol = d.Span.End.Col
	}
	writeUnderline(b, lineText, d.Col(), endCol, string(d.Kind.Category()))
	b.WriteByte('\n')
}

// writeUnderline converts byte columns into visual offsets before drawing.
func writeUnderline(b *strings.Builder, line string, col, endCol int, label string) {
	start := visualWidth(line[:clamp(col-1, 0, len(line))])
	width := 1
	if endCol > col {
		end := visualWidth(line[:clamp(endCol-1, 0, len(line))])
		width = max(end-start, 1)
	}
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	b.WriteString(strings.Repeat("~", width-1))
	if strings.TrimSpace(label) != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
}

func getLineText(src string, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}
	cur := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			if cur == line {
				return src[start:i], true
			}
			cur++
			start = i + 1
		}
	}
	if cur == line {
		return src[start:], true
	}
	return "", false
}

func visualize(s string) []rune {
	const tabw = 4
	var vis []rune
	for len(s) > 0 {
		r, sz := utf8.DecodeRuneInString(s)
		switch {
		case r == '\t':
			for i := 0; i < tabw; i++ {
				vis = append(vis, ' ')
			}
		case r == '\r':
		case r == utf8.RuneError && sz == 1:
			vis = append(vis, '�')
		default:
			vis = append(vis, r)
		}
		s = s[sz:]
	}
	return vis
}

func visualWidth(s string) int { return len(visualize(s)) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
