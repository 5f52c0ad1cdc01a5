package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/auto-stack/autolang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererPlainNoColor(t *testing.T) {
	src := "fn f() int {\n  return true\n}"
	d := New(Error, "auto_type_E0101", ast.Span{Start: 19, End: 23}, "type mismatch")

	var buf bytes.Buffer
	r := TerminalRenderer{Color: false}
	require.NoError(t, r.Render(&buf, src, d))

	out := buf.String()
	assert.Contains(t, out, "auto_type_E0101")
	assert.Contains(t, out, "type mismatch")
	assert.Contains(t, out, "line 2")
}

func TestTerminalRendererIncludesHelpAndSuggestion(t *testing.T) {
	src := "x"
	d := New(Error, "E0201", ast.Span{Start: 0, End: 1}, "undefined name").WithHelp("did you mean y?", "y")

	var buf bytes.Buffer
	r := TerminalRenderer{Color: false}
	require.NoError(t, r.Render(&buf, src, d))

	out := buf.String()
	assert.Contains(t, out, "help: did you mean y?")
	assert.Contains(t, out, "suggestion: y")
}

func TestJSONRendererEmitsExpectedShape(t *testing.T) {
	d := New(Warning, "W0004", ast.Span{Start: 3, End: 7}, "unreachable arm")
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, "source", d))

	var got jsonDiagnostic
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "warning", got.Severity)
	assert.Equal(t, "W0004", got.Code)
	assert.Equal(t, 3, got.Start)
	assert.Equal(t, 7, got.End)
}
