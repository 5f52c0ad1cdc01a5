// Package diag implements AutoLang's diagnostic model: severities,
// error-code ranges, and renderers for terminal and IDE (JSON)
// consumption (spec §6 "Diagnostic format", §7 "Error Handling Design").
package diag

import (
	"fmt"

	"github.com/auto-stack/autolang/ast"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Error-code prefixes per spec §6.
const (
	CodeSyntaxPrefix  = "auto_syntax_E00"
	CodeTypePrefix    = "auto_type_E01"
	CodeNamePrefix    = "auto_name_E02"
	CodeRuntimePrefix = "auto_runtime_E03"
	CodeWarningPrefix = "auto_warning_W0"
)

// Diagnostic is a single user-facing compiler message: a span, a
// severity, an error code, and optional help/suggestion text.
type Diagnostic struct {
	Severity   Severity
	Code       string
	Message    string
	Span       ast.Span
	Related    []RelatedSpan
	Help       string
	Suggestion string
}

// RelatedSpan attaches a secondary location to a diagnostic, e.g. the
// site of a conflicting prior declaration.
type RelatedSpan struct {
	Span    ast.Span
	Message string
}

func (d *Diagnostic) Error() string { return d.Message }

// New builds a Diagnostic with a formatted message.
func New(sev Severity, code string, span ast.Span, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Severity: sev, Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

// WithHelp attaches help/suggestion text ("did you mean '...'?") and
// returns d for chaining.
func (d *Diagnostic) WithHelp(help, suggestion string) *Diagnostic {
	d.Help = help
	d.Suggestion = suggestion
	return d
}

// List accumulates diagnostics produced across a compile, independent
// of the parser's own ErrorList (which is syntax-only).
type List struct {
	Items []*Diagnostic
}

func (l *List) Add(d *Diagnostic) { l.Items = append(l.Items, d) }

func (l *List) HasErrors() bool {
	for _, d := range l.Items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
