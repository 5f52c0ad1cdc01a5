package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestAllEndsWithEOF(t *testing.T) {
	toks := All("")
	require.Len(t, toks, 1)
	assert.Equal(t, EOF, toks[0].Kind)
}

func TestIdentVsKeyword(t *testing.T) {
	toks := All("fn foo")
	require.Len(t, toks, 3) // fn, foo, EOF
	assert.Equal(t, Keyword, toks[0].Kind)
	assert.Equal(t, Ident, toks[1].Kind)
	assert.Equal(t, "foo", toks[1].Text)
}

func TestIntVsFloat(t *testing.T) {
	toks := All("42 3.14")
	assert.Equal(t, Int, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Text)
	assert.Equal(t, Float, toks[1].Kind)
	assert.Equal(t, "3.14", toks[1].Text)
}

func TestStringLiteralIncludesQuotesAndHandlesEscapes(t *testing.T) {
	toks := All(`"a\"b"`)
	require.Equal(t, String, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Text)
}

func TestMultiCharOperatorsPreferLongestMatch(t *testing.T) {
	toks := All("a <= b")
	assert.Equal(t, []Kind{Ident, Op, Ident, EOF}, kinds(toks))
	assert.Equal(t, "<=", toks[1].Text)
}

func TestMayPostfixAndArrowOperators(t *testing.T) {
	toks := All("f().? -> x => y")
	texts := texts(toks)
	assert.Contains(t, texts, ".?")
	assert.Contains(t, texts, "->")
	assert.Contains(t, texts, "=>")
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := All("1 // trailing comment\n2 /* block */ 3")
	require.Len(t, toks, 4) // 1, 2, 3, EOF
	assert.Equal(t, []string{"1", "2", "3"}, texts(toks[:3]))
}

func TestPunctuationTokens(t *testing.T) {
	toks := All("(){}[],:;")
	require.Len(t, toks, 10)
	for _, tok := range toks[:9] {
		assert.Equal(t, Punct, tok.Kind)
	}
}
