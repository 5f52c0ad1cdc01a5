package parser

import "github.com/auto-stack/autolang/ast"

// Error is a single syntax diagnostic, analogous to the teacher's
// `core/text/parse.Error` (a message bound to an AST span).
type Error struct {
	Message string
	Span    ast.Span
}

func (e Error) Error() string { return e.Message }

// ErrorList accumulates parse errors up to a configurable limit (spec
// §7: "reported together up to a configurable limit, default 20").
type ErrorList struct {
	Limit  int
	Errors []Error
}

// Add appends err unless the limit has already been reached.
func (l *ErrorList) Add(err Error) {
	limit := l.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(l.Errors) >= limit {
		return
	}
	l.Errors = append(l.Errors, err)
}

func (l *ErrorList) Full() bool {
	limit := l.Limit
	if limit <= 0 {
		limit = 20
	}
	return len(l.Errors) >= limit
}
