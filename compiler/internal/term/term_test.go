package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirect(t *testing.T) {
	var out, errb bytes.Buffer
	restore := Redirect(&out, &errb)
	Printf("%d tokens\n", 3)
	Eprintln("boom")
	restore()

	assert.Equal(t, "3 tokens\n", out.String())
	assert.Equal(t, "boom\n", errb.String())
}

func TestBuilders(t *testing.T) {
	var b strings.Builder
	Bprintf(&b, "%s:%d", "a", 1)
	Wprintf(&b, "|%s", "b")
	assert.Equal(t, "a:1|b", b.String())
}

func TestColor(t *testing.T) {
	assert.Equal(t, "x", Color(false).Red("x"))
	assert.Equal(t, "\x1b[31mx\x1b[0m", Color(true).Red("x"))
	assert.Equal(t, "\x1b[33mw\x1b[0m", Color(true).Yellow("w"))
	assert.Equal(t, "", Color(true).Red(""))
	assert.Equal(t, Color(false), AutoColor(true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, Color(false), AutoColor(false))
}
