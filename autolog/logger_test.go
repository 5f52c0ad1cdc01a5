package autolog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSuppressesBelowMinSeverity(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, Warning)
	l.Info("should not appear")
	l.Warning("should appear")
	assert.NotContains(t, buf.String(), "should not appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestFromReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, Debug)
	ctx := Context(context.Background(), l)
	From(ctx).Error("boom %d", 42)
	assert.True(t, strings.Contains(buf.String(), "boom 42"))
}

func TestFromFallsBackToDefaultForUnattachedContext(t *testing.T) {
	l := From(context.Background())
	assert.NotNil(t, l.w)
}
