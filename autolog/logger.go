package autolog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger writes severity-leveled messages to an underlying writer,
// printing each whole line in its severity's fatih/color colour when
// colour is enabled. It plays the role the teacher's jot.Jotter
// plays for Logger, minus the tag/trace-chain machinery this module
// has no use for.
type Logger struct {
	mu    *sync.Mutex
	w     io.Writer
	color bool
	min   Severity
}

// New returns a Logger writing to w. color prints each line in its
// severity's colour; min suppresses any message below that severity.
func New(w io.Writer, color bool, min Severity) Logger {
	return Logger{mu: &sync.Mutex{}, w: w, color: color, min: min}
}

func severityColor(s Severity) *color.Color {
	switch s {
	case Debug:
		return color.New(color.FgCyan)
	case Info:
		return color.New(color.FgWhite)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	case Error:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New()
	}
}

func (l Logger) log(sev Severity, msg string) {
	if l.w == nil || sev < l.min {
		return
	}
	tag := fmt.Sprintf("[%s]", sev)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.color {
		severityColor(sev).Fprintf(l.w, "%s %s %s\n", time.Now().Format(time.RFC3339), tag, msg)
	} else {
		fmt.Fprintf(l.w, "%s %s %s\n", time.Now().Format(time.RFC3339), tag, msg)
	}
}

func (l Logger) Debug(format string, args ...interface{})   { l.log(Debug, fmt.Sprintf(format, args...)) }
func (l Logger) Info(format string, args ...interface{})    { l.log(Info, fmt.Sprintf(format, args...)) }
func (l Logger) Warning(format string, args ...interface{}) { l.log(Warning, fmt.Sprintf(format, args...)) }
func (l Logger) Error(format string, args ...interface{})   { l.log(Error, fmt.Sprintf(format, args...)) }
