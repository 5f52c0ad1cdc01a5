package diag

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Renderer formats diagnostics for a particular consumer.
type Renderer interface {
	Render(w io.Writer, source string, d *Diagnostic) error
}

// TerminalRenderer prints a source snippet with a caret underline,
// colourised by severity when Color is enabled (spec §7 "colourised by
// severity when the output is a terminal").
type TerminalRenderer struct {
	Color bool
}

func severityColor(sev Severity) *color.Color {
	switch sev {
	case Error:
		return color.New(color.FgRed, color.Bold)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func (r TerminalRenderer) Render(w io.Writer, source string, d *Diagnostic) error {
	line, col, snippet := locate(source, d.Span.Start)
	header := fmt.Sprintf("%s[%s]: %s (line %d, col %d)", d.Severity, d.Code, d.Message, line, col)
	if r.Color {
		c := severityColor(d.Severity)
		c.Fprintln(w, header)
	} else {
		fmt.Fprintln(w, header)
	}
	if snippet != "" {
		fmt.Fprintln(w, "  "+snippet)
		width := d.Span.End - d.Span.Start
		if width < 1 {
			width = 1
		}
		fmt.Fprintln(w, "  "+strings.Repeat(" ", col-1)+strings.Repeat("^", width))
	}
	if d.Help != "" {
		fmt.Fprintf(w, "  help: %s\n", d.Help)
	}
	if d.Suggestion != "" {
		fmt.Fprintf(w, "  suggestion: %s\n", d.Suggestion)
	}
	return nil
}

// locate converts a byte offset into a 1-based (line, column) plus the
// offending line's text.
func locate(source string, offset int) (line, col int, snippet string) {
	if offset > len(source) {
		offset = len(source)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1
	lineEnd := strings.IndexByte(source[lineStart:], '\n')
	if lineEnd < 0 {
		snippet = source[lineStart:]
	} else {
		snippet = source[lineStart : lineStart+lineEnd]
	}
	return
}

// jsonDiagnostic is the wire shape consumed by IDE integrations (spec
// §6: "All diagnostics expose the same JSON shape for IDE consumption").
type jsonDiagnostic struct {
	Severity   string `json:"severity"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Help       string `json:"help,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONRenderer emits the IDE-consumable shape.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, source string, d *Diagnostic) error {
	enc := json.NewEncoder(w)
	return enc.Encode(jsonDiagnostic{
		Severity:   d.Severity.String(),
		Code:       d.Code,
		Message:    d.Message,
		Start:      d.Span.Start,
		End:        d.Span.End,
		Help:       d.Help,
		Suggestion: d.Suggestion,
	})
}
