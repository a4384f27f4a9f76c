package lexer

import "strings"

type opEntry struct {
	lit  string
	kind Kind
}

// operators is ordered longest-first so the first prefix match is the
// maximal munch. It is never modified.
var operators = [...]opEntry{
	{"//=", Assignment},
	{"**=", Assignment},

	{"//", Operator},
	{"**", Operator},
	{"&=", Assignment},
	{"+=", Assignment},
	{"-=", Assignment},
	{"*=", Assignment},
	{"/=", Assignment},
	{"%=", Assignment},
	{"->", Follow},
	{"==", Operator},
	{"!=", Operator},
	{"&&", Operator},
	{"||", Operator},
	{">=", Operator},
	{"<=", Operator},

	{"+", Operator},
	{"-", Operator},
	{"*", Operator},
	{"/", Operator},
	{"%", Operator},
	{"=", Assignment},
	{";", Punctuator},
	{":", Punctuator},
	{".", Punctuator},
	{",", Punctuator},
	{"[", Punctuator},
	{"]", Punctuator},
	{"(", Punctuator},
	{")", Punctuator},
	{">", Operator},
	{"<", Operator},
	{"&", Operator},
	{"^", Operator},
	{"|", Operator},
}

// matchOperator returns the longest operator or punctuator prefixing s.
func matchOperator(s string) (opEntry, bool) {
	for _, op := range operators {
		if strings.HasPrefix(s, op.lit) {
			return op, true
		}
	}
	return opEntry{}, false
}
