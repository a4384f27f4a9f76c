package lexbridge

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump renders r with its Go types, for debugging the scanner itself.
func Dump(r lexer.Result) string {
	return dumpConfig.Sdump(r)
}
