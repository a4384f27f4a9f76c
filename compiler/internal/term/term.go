package term

import (
	"fmt"
	"io"
	"os"
)

// Out and Err are where Printf and Eprintf write. Commands under test swap
// them for buffers.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Stdout/Stderr print helpers that ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Fprintf(Out, format, a...) }
func Println(a ...any)                { _, _ = fmt.Fprintln(Out, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Err, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Err, a...) }

// Redirect points Out and Err at the given writers and returns a func that
// restores the previous ones.
func Redirect(out, err io.Writer) (restore func()) {
	prevOut, prevErr := Out, Err
	Out, Err = out, err
	return func() { Out, Err = prevOut, prevErr }
}
