package lexbridge

import (
	"strings"

	"github.com/pyrope-lang/pyrope/compiler/internal/term"
)

// DiffRow is one aligned pair of records (by index).
type DiffRow struct {
	Index int
	Got   Record
	Want  Record
	// Missing sides are zero Records.
	HasGot, HasWant bool
}

// Equal reports whether both sides are present and identical.
func (r DiffRow) Equal() bool { return r.HasGot && r.HasWant && r.Got == r.Want }

// Diff aligns got and want by index; len(rows) is max(len(got), len(want)).
func Diff(got, want []Record) []DiffRow {
	n := max(len(got), len(want))
	rows := make([]DiffRow, n)
	for i := 0; i < n; i++ {
		row := DiffRow{Index: i}
		if i < len(got) {
			row.Got, row.HasGot = got[i], true
		}
		if i < len(want) {
			row.Want, row.HasWant = want[i], true
		}
		rows[i] = row
	}
	return rows
}

// Mismatches counts rows that are not Equal.
func Mismatches(rows []DiffRow) int {
	n := 0
	for _, r := range rows {
		if !r.Equal() {
			n++
		}
	}
	return n
}

// FormatDiff pretty prints a side-by-side diff table. If limit>0, only the
// first limit rows are printed; onlyMismatch hides equal rows.
func FormatDiff(rows []DiffRow, limit int, onlyMismatch bool) string {
	var b strings.Builder

	term.Wprintf(&b, "%-6s | %-9s | %-13s | %-24s || %-9s | %-13s | %-24s\n",
		"idx", "got pos", "got KIND", "got TEXT", "want pos", "want KIND", "want TEXT")
	term.Wprintf(&b, "%s\n", strings.Repeat("-", 6+3+9+3+13+3+24+4+9+3+13+3+24))

	printed := 0
	for _, r := range rows {
		if limit > 0 && printed >= limit {
			break
		}
		if onlyMismatch && r.Equal() {
			continue
		}
		mark := " "
		if !r.Equal() {
			mark = "!"
		}
		gPos, gKind, gText := side(r.Got, r.HasGot)
		wPos, wKind, wText := side(r.Want, r.HasWant)
		term.Wprintf(&b, "%s%-5d | %-9s | %-13s | %-24s || %-9s | %-13s | %-24s\n",
			mark, r.Index, gPos, gKind, gText, wPos, wKind, wText)
		printed++
	}
	return b.String()
}

func side(rec Record, ok bool) (pos, kind, text string) {
	if !ok {
		return "—", "—", ""
	}
	var b strings.Builder
	term.Bprintf(&b, "%d:%d", rec.Line, rec.Col)
	return b.String(), rec.Kind, "'" + normalizeShort(rec.Text) + "'"
}
