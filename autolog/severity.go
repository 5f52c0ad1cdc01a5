// Package autolog is a trimmed adaptation of gapid/core/log's
// Logger/severity model: a small severity-leveled logger obtained from
// a context.Context, colourised by severity via fatih/color when
// writing to a terminal. Unlike the teacher's jot/note/severity stack
// (a full structured-event pipeline with tags, handlers and filters),
// autolog only keeps what the session layer needs — four severities
// and a context-carried Logger.
package autolog

// Severity orders autolog's four levels, narrowed from the teacher's
// six (Verbose/Debug/Info/Warning/Error/Fatal) to the ones the
// compiler/session layer actually emits.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
