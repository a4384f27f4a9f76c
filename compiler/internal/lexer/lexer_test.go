package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyrope-lang/pyrope/compiler/internal/diag"
)

func kindsFrom(src string) []Kind {
	var kinds []Kind
	for _, t := range Scan(src).Tokens() {
		kinds = append(kinds, t.Kind)
	}
	return kinds
}

func expectKinds(t *testing.T, src string, want ...Kind) {
	t.Helper()
	ks := kindsFrom(src)
	if len(ks) != len(want) {
		t.Fatalf("token count mismatch: got %d, want %d (%v)", len(ks), len(want), ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("ks[%d]=%v, want %v (full=%v)", i, ks[i], want[i], ks)
		}
	}
}

func mustSucceed(t *testing.T, src string) []Token {
	t.Helper()
	r := Scan(src)
	ok, isOK := r.(*Success)
	require.True(t, isOK, "scan of %q failed: %v", src, Err(r))
	return ok.Toks
}

func mustFail(t *testing.T, src string) *Failure {
	t.Helper()
	r := Scan(src)
	f, isFail := r.(*Failure)
	require.True(t, isFail, "scan of %q unexpectedly succeeded: %v", src, r.Tokens())
	return f
}

func TestEmptyInput(t *testing.T) {
	toks := mustSucceed(t, "")
	assert.Equal(t, []Token{{Kind: EOF, Line: 1, Col: 1}}, toks)
}

func TestAssignmentLine(t *testing.T) {
	toks := mustSucceed(t, "x = 1\n")
	assert.Equal(t, []Token{
		{Identifier, "x", 1, 1},
		{Assignment, "=", 1, 3},
		{LiteralNumber, "1", 1, 5},
		{Newline, `\n`, 1, 6},
		{EOF, "", 2, 1},
	}, toks)
}

func TestIndentDedent(t *testing.T) {
	toks := mustSucceed(t, "IF x:\n    y = 1\n")
	assert.Equal(t, []Token{
		{Keyword, "IF", 1, 1},
		{Identifier, "x", 1, 4},
		{Punctuator, ":", 1, 5},
		{Newline, `\n`, 1, 6},
		{Indent, "", 2, 5},
		{Identifier, "y", 2, 5},
		{Assignment, "=", 2, 7},
		{LiteralNumber, "1", 2, 9},
		{Newline, `\n`, 2, 10},
		{Dedent, "", 3, 1},
		{EOF, "", 3, 1},
	}, toks)
}

func TestNestedDedents(t *testing.T) {
	expectKinds(t, "A:\n  B:\n    c\nd\n",
		Identifier, Punctuator, Newline,
		Indent, Identifier, Punctuator, Newline,
		Indent, Identifier, Newline,
		Dedent, Dedent, Identifier, Newline,
		EOF,
	)
}

func TestBlankAndCommentLinesAreTransparent(t *testing.T) {
	toks := mustSucceed(t, "IF a:\n\n    # note\n    b\n   \n# top\nc\n")
	var kinds []Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{
		Keyword, Identifier, Punctuator, Newline,
		Indent, Identifier, Newline,
		Dedent, Identifier, Newline,
		EOF,
	}, kinds)
	assert.Equal(t, Token{Indent, "", 4, 5}, toks[4])
	assert.Equal(t, Token{Dedent, "", 7, 1}, toks[7])
}

func TestColumnsAfterBlankLines(t *testing.T) {
	toks := mustSucceed(t, "\n\n  \nx")
	assert.Equal(t, Token{Identifier, "x", 4, 1}, toks[0])
}

func TestMissingFinalNewline(t *testing.T) {
	toks := mustSucceed(t, "IF a:\n    b")
	n := len(toks)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, []Token{
		{Newline, `\n`, 2, 6},
		{Dedent, "", 2, 6},
		{EOF, "", 2, 6},
	}, toks[n-3:])
}

func TestTrailingWhitespaceLine(t *testing.T) {
	expectKinds(t, "x\n    ", Identifier, Newline, EOF)
	expectKinds(t, "x\n# done", Identifier, Newline, EOF)
}

func TestCommentMidLine(t *testing.T) {
	expectKinds(t, "x # hi\ny\n", Identifier, Newline, Identifier, Newline, EOF)
}

func TestTabsAreNotIndentation(t *testing.T) {
	expectKinds(t, "IF a:\n\tb\n",
		Keyword, Identifier, Punctuator, Newline,
		Identifier, Newline,
		EOF,
	)
	// a tab after leading spaces ends the measured width
	toks := mustSucceed(t, "IF a:\n  \tb\n")
	assert.Equal(t, Token{Indent, "", 2, 3}, toks[4])
}

func TestCRLF(t *testing.T) {
	toks := mustSucceed(t, "x = 1\r\n\r\ny\r\n")
	var kinds []Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []Kind{Identifier, Assignment, LiteralNumber, Newline, Identifier, Newline, EOF}, kinds)
	assert.Equal(t, Token{Newline, `\n`, 1, 7}, toks[3])
}

func TestKeywordsTypesAndBools(t *testing.T) {
	toks := mustSucceed(t, "INT32 x True False FUNCTION foo_1 _bar NONE Int")
	var got []Kind
	for _, tk := range toks {
		got = append(got, tk.Kind)
	}
	assert.Equal(t, []Kind{
		Type, Identifier, LiteralBool, LiteralBool, Keyword, Identifier, Identifier, Type, Identifier,
		Newline, EOF,
	}, got)
	assert.Equal(t, "foo_1", toks[5].Lex)
}

func TestCustomKeywordTable(t *testing.T) {
	kw := NewKeywords(map[string]Kind{"let": Keyword})
	r := ScanWith("let IF", Options{Keywords: kw})
	toks := r.Tokens()
	require.Len(t, toks, 4)
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, Identifier, toks[1].Kind)
}

func TestNumbers(t *testing.T) {
	toks := mustSucceed(t, "1.5 2. 3 007 10.25.5")
	assert.Equal(t, []Token{
		{LiteralFloat, "1.5", 1, 1},
		{LiteralNumber, "2", 1, 5},
		{Punctuator, ".", 1, 6},
		{LiteralNumber, "3", 1, 8},
		{LiteralNumber, "007", 1, 10},
		{LiteralFloat, "10.25", 1, 14},
		{Punctuator, ".", 1, 19},
		{LiteralNumber, "5", 1, 20},
		{Newline, `\n`, 1, 21},
		{EOF, "", 1, 21},
	}, toks)
}

func TestStringsKeepEscapesRaw(t *testing.T) {
	toks := mustSucceed(t, `s = "a\"b\n" + "" + "\\"`)
	assert.Equal(t, Token{LiteralString, `a\"b\n`, 1, 5}, toks[2])
	assert.Equal(t, Token{LiteralString, "", 1, 16}, toks[4])
	assert.Equal(t, Token{LiteralString, `\\`, 1, 21}, toks[6])
}

func TestCharLiterals(t *testing.T) {
	toks := mustSucceed(t, `'a' '\n' '\'' '\q' '\\' '\t' '\r' '"'`)
	want := []string{"a", "\n", "'", "q", "\\", "\t", "\r", `"`}
	for i, w := range want {
		assert.Equal(t, LiteralChar, toks[i].Kind, "token %d", i)
		assert.Equal(t, w, toks[i].Lex, "token %d", i)
	}
	assert.Equal(t, 5, toks[1].Col)
}

func TestOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"//=", Assignment}, {"**=", Assignment},
		{"//", Operator}, {"**", Operator},
		{"&=", Assignment}, {"+=", Assignment}, {"-=", Assignment},
		{"*=", Assignment}, {"/=", Assignment}, {"%=", Assignment},
		{"->", Follow},
		{"==", Operator}, {"!=", Operator}, {"&&", Operator}, {"||", Operator},
		{">=", Operator}, {"<=", Operator},
		{"+", Operator}, {"-", Operator}, {"*", Operator}, {"/", Operator}, {"%", Operator},
		{"=", Assignment},
		{";", Punctuator}, {":", Punctuator}, {".", Punctuator}, {",", Punctuator},
		{"[", Punctuator}, {"]", Punctuator}, {"(", Punctuator}, {")", Punctuator},
		{">", Operator}, {"<", Operator}, {"&", Operator}, {"^", Operator}, {"|", Operator},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := mustSucceed(t, tt.src)
			require.Len(t, toks, 3)
			assert.Equal(t, Token{tt.kind, tt.src, 1, 1}, toks[0])
		})
	}
}

func TestMaximalMunch(t *testing.T) {
	toks := mustSucceed(t, "a //= b")
	assert.Equal(t, Token{Assignment, "//=", 1, 3}, toks[1])
	expectKinds(t, "a ***= b", Identifier, Operator, Assignment, Identifier, Newline, EOF)
	expectKinds(t, "f() -> INT", Identifier, Punctuator, Punctuator, Follow, Type, Newline, EOF)
	expectKinds(t, "a-=-b", Identifier, Assignment, Operator, Identifier, Newline, EOF)
}

func TestUnterminatedString(t *testing.T) {
	f := mustFail(t, `"abc`)
	assert.Equal(t, diag.UnterminatedString, f.Diag.Kind)
	assert.Equal(t, 1, f.Diag.Line())
	assert.Equal(t, 1, f.Diag.Col())
	assert.Equal(t, "SyntaxError: Unterminated string literal at line 1 column 1", f.Diag.Error())
	assert.Equal(t, []Token{{Unknown, "abc", 1, 1}}, f.Toks)
}

func TestStringBrokenByNewline(t *testing.T) {
	f := mustFail(t, "x = \"ab\ny\"\n")
	assert.Equal(t, diag.UnterminatedString, f.Diag.Kind)
	assert.Equal(t, diag.Pos{Line: 1, Col: 5}, f.Diag.Span.Start)
	assert.Equal(t, Token{Unknown, "ab", 1, 5}, f.Toks[len(f.Toks)-1])

	f = mustFail(t, "\"ab\\\ncd\"")
	assert.Equal(t, diag.UnterminatedString, f.Diag.Kind)

	f = mustFail(t, `"ab\`)
	assert.Equal(t, diag.UnterminatedString, f.Diag.Kind)
	assert.Equal(t, `ab\`, f.Toks[0].Lex)
}

func TestCharErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind diag.Kind
		lex  string
	}{
		{"'", diag.UnterminatedChar, ""},
		{"''", diag.EmptyChar, ""},
		{"'ab'", diag.CharTooLong, "a"},
		{"'a", diag.CharTooLong, "a"},
		{`'\`, diag.UnterminatedCharEscape, `\`},
		{`'\nx'`, diag.CharTooLong, `\n`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			f := mustFail(t, "c = "+tt.src)
			assert.Equal(t, tt.kind, f.Diag.Kind)
			assert.Equal(t, diag.Pos{Line: 1, Col: 5}, f.Diag.Span.Start)
			assert.Equal(t, Token{Unknown, tt.lex, 1, 5}, f.Toks[len(f.Toks)-1])
			assert.Len(t, f.Toks, 3)
		})
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	f := mustFail(t, "x = $ + 1\n")
	assert.Equal(t, diag.UnexpectedChar, f.Diag.Kind)
	assert.Equal(t, "SyntaxError: Unexpected character at line 1 column 5", f.Diag.Error())
	assert.Equal(t, []Token{
		{Identifier, "x", 1, 1},
		{Assignment, "=", 1, 3},
		{Unknown, "$", 1, 5},
	}, f.Toks)

	f = mustFail(t, "a ! b")
	assert.Equal(t, Token{Unknown, "!", 1, 3}, f.Toks[len(f.Toks)-1])

	f = mustFail(t, "é")
	assert.Equal(t, Token{Unknown, "é", 1, 1}, f.Toks[0])
	assert.Equal(t, diag.Pos{Line: 1, Col: 3}, f.Diag.Span.End)
}

func TestInconsistentDedent(t *testing.T) {
	f := mustFail(t, "IF a:\n    b\n  c\n")
	assert.Equal(t, diag.BadDedent, f.Diag.Kind)
	assert.Equal(t, diag.IndentationError, f.Diag.Kind.Category())
	assert.Equal(t, diag.Span{Start: diag.Pos{Line: 3, Col: 1}, End: diag.Pos{Line: 3, Col: 3}}, f.Diag.Span)
	assert.Equal(t,
		"IndentationError: unindent does not match any outer indentation level at line 3 column 1",
		f.Diag.Error())
	n := len(f.Toks)
	assert.Equal(t, []Token{{Dedent, "", 3, 3}, {Unknown, "  ", 3, 1}}, f.Toks[n-2:])
}

func TestFailFast(t *testing.T) {
	f := mustFail(t, "x = $\ny = @\n")
	assert.Equal(t, 1, f.Diag.Line())
	for _, tk := range f.Toks {
		assert.NotEqual(t, EOF, tk.Kind)
	}
}

func TestTokenize(t *testing.T) {
	toks, err := Tokenize("x\n")
	require.NoError(t, err)
	assert.Len(t, toks, 3)

	toks, err = Tokenize("'")
	require.Error(t, err)
	var d diag.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, diag.UnterminatedChar, d.Kind)
	assert.Equal(t, Unknown, toks[len(toks)-1].Kind)
}

func TestKindNames(t *testing.T) {
	for k := Type; k <= Unknown; k++ {
		back, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, back)
	}
	assert.Equal(t, "Unknown", Kind(-1).String())
	_, ok := ParseKind("Bogus")
	assert.False(t, ok)
}
