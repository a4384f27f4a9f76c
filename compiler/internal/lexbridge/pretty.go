package lexbridge

import (
	"strings"

	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

// DebugFormat returns a readable dump, one record per line:
// "line:col  KIND  'text'". limit<=0 prints everything.
func DebugFormat(recs []Record, limit int) string {
	var b strings.Builder
	n := len(recs)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, r := range recs[:n] {
		if r.Text == "" {
			term.Wprintf(&b, "%d:%d  %s\n", r.Line, r.Col, r.Kind)
			continue
		}
		term.Wprintf(&b, "%d:%d  %-13s  '%s'\n", r.Line, r.Col, r.Kind, normalizeShort(r.Text))
	}
	return b.String()
}

// normalizeShort trims long texts and escapes newlines/tabs for one-line display.
func normalizeShort(s string) string {
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
