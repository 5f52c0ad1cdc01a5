package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestREPLEvaluatesExpressionAndPrintsValue(t *testing.T) {
	in := strings.NewReader("1 + 2\nexit\n")
	var out bytes.Buffer
	code := runREPL(context.Background(), in, &out, 20, false)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out.String(), "3")
}

func TestREPLStatsCommand(t *testing.T) {
	in := strings.NewReader("fn f() int { return 1 }\n:stats\nexit\n")
	var out bytes.Buffer
	code := runREPL(context.Background(), in, &out, 20, false)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out.String(), "fragments=1")
}

func TestREPLResetCommand(t *testing.T) {
	in := strings.NewReader(":reset\nexit\n")
	var out bytes.Buffer
	code := runREPL(context.Background(), in, &out, 20, false)
	assert.Equal(t, exitSuccess, code)
	assert.Contains(t, out.String(), "runtime reset")
}

func TestREPLRuntimeErrorDoesNotTerminateLoop(t *testing.T) {
	in := strings.NewReader("1 / 0\n1 + 1\nexit\n")
	var out bytes.Buffer
	code := runREPL(context.Background(), in, &out, 20, false)
	assert.Equal(t, exitSuccess, code, "a runtime error in the REPL must not terminate the process")
	assert.Contains(t, out.String(), "2")
}

func TestREPLQuitCommand(t *testing.T) {
	in := strings.NewReader("quit\n")
	var out bytes.Buffer
	code := runREPL(context.Background(), in, &out, 20, false)
	assert.Equal(t, exitSuccess, code)
}
