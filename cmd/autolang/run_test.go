package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "t.auto")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunScriptSuccess(t *testing.T) {
	path := writeScript(t, `fn add(a int, b int) int { return a + b }
add(2, 3)`)
	var buf bytes.Buffer
	code := runScript(context.Background(), path, 20, &buf)
	assert.Equal(t, exitSuccess, code)
}

func TestRunScriptParseErrorReturnsCompileErrorCode(t *testing.T) {
	path := writeScript(t, `fn ( {`)
	var buf bytes.Buffer
	code := runScript(context.Background(), path, 20, &buf)
	assert.Equal(t, exitCompileError, code)
}

func TestRunScriptTypeErrorReturnsCompileErrorCode(t *testing.T) {
	path := writeScript(t, `fn f() int { return true }`)
	var buf bytes.Buffer
	code := runScript(context.Background(), path, 20, &buf)
	assert.Equal(t, exitCompileError, code)
	assert.Contains(t, buf.String(), "error[")
}

func TestRunScriptRuntimeErrorReturnsEvalErrorCode(t *testing.T) {
	path := writeScript(t, `fn f() int { return 1 / 0 }
f()`)
	var buf bytes.Buffer
	code := runScript(context.Background(), path, 20, &buf)
	assert.Equal(t, exitEvalError, code)
}

func TestRunScriptMissingFileReturnsIOErrorCode(t *testing.T) {
	var buf bytes.Buffer
	code := runScript(context.Background(), filepath.Join(t.TempDir(), "missing.auto"), 20, &buf)
	assert.Equal(t, exitIOError, code)
}
