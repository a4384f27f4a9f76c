package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Wprintf writes formatted text to any io.Writer and ignores (n, err)
// so linters don't complain about unhandled fmt.Fprintf results.
func Wprintf(w io.Writer, format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// Color decides whether Red and Yellow emit ANSI escapes.
type Color bool

// AutoColor enables colour unless NO_COLOR is set or noColor was requested.
func AutoColor(noColor bool) Color {
	if noColor {
		return false
	}
	_, off := os.LookupEnv("NO_COLOR")
	return Color(!off)
}

func (c Color) Red(s string) string    { return c.wrap(ansiRed, s) }
func (c Color) Yellow(s string) string { return c.wrap(ansiYellow, s) }

func (c Color) wrap(code, s string) string {
	if !c || s == "" {
		return s
	}
	return code + s + ansiReset
}

// Bprintf writes formatted text into a strings.Builder and ignores (n, err).
func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }
