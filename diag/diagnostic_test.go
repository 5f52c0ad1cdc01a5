package diag

import (
	"testing"

	"github.com/auto-stack/autolang/ast"
	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "note", Note.String())
}

func TestNewFormatsMessage(t *testing.T) {
	d := New(Error, "auto_type_E0107", ast.Span{Start: 1, End: 2}, "bad %s", "thing")
	assert.Equal(t, "bad thing", d.Message)
	assert.Equal(t, "bad thing", d.Error())
}

func TestWithHelpAttachesAndChains(t *testing.T) {
	d := New(Warning, "W0004", ast.Span{}, "unreachable arm").WithHelp("remove it", "delete the arm")
	assert.Equal(t, "remove it", d.Help)
	assert.Equal(t, "delete the arm", d.Suggestion)
}

func TestListHasErrorsOnlyWhenAnErrorSeverityPresent(t *testing.T) {
	var l List
	l.Add(New(Warning, "W0001", ast.Span{}, "just a warning"))
	assert.False(t, l.HasErrors())

	l.Add(New(Error, "E0001", ast.Span{}, "a real error"))
	assert.True(t, l.HasErrors())
	assert.Len(t, l.Items, 2)
}
