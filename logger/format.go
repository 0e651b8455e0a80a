package logger

import (
	"fmt"
	"strings"
	"time"

	"github.com/kdar/factorlog"
	"github.com/mgutz/ansi"
)

// Level identifies the severity of a log record.
type Level int

const (
	// InfoLevel marks routine informational records.
	InfoLevel Level = iota
	// WarnLevel marks records that need attention but are not failures.
	WarnLevel
	// ErrorLevel marks failures; error records may carry a stack trace.
	ErrorLevel
	// HTTPLevel marks request/response traffic records.
	HTTPLevel
)

// severity maps a Level onto the engine's severity scale.
func (l Level) severity() factorlog.Severity {
	switch l {
	case WarnLevel:
		return factorlog.WARN
	case ErrorLevel:
		return factorlog.ERROR
	default:
		return factorlog.INFO
	}
}

// Console colors per level. Unknown levels fall back to the info color.
var levelColors = map[Level]string{
	ErrorLevel: ansi.ColorCode("red"),
	WarnLevel:  ansi.ColorCode("yellow"),
	InfoLevel:  ansi.ColorCode("blue"),
	HTTPLevel:  ansi.ColorCode("green"),
}

func colorFor(level Level) string {
	if code, ok := levelColors[level]; ok {
		return code
	}
	return levelColors[InfoLevel]
}

type instanceKind int

const (
	instanceDefault instanceKind = iota
	instanceLabel
	instanceCluster
)

// Instance overrides the bracketed label of a single log line.
// The zero value applies no override: the line shows the logger's
// configured default label.
type Instance struct {
	kind    instanceKind
	label   string
	cluster int
}

// As labels the line with the given text verbatim.
func As(label string) Instance {
	return Instance{kind: instanceLabel, label: label}
}

// Cluster labels the line with the numbered worker form "Cluster <n>".
func Cluster(n int) Instance {
	return Instance{kind: instanceCluster, cluster: n}
}

// render resolves the displayed label, falling back to the logger's
// configured default when no override was supplied.
func (i Instance) render(fallback string) string {
	switch i.kind {
	case instanceLabel:
		return i.label
	case instanceCluster:
		return fmt.Sprintf("Cluster %d", i.cluster)
	default:
		return fallback
	}
}

// record is the transient value produced by one logging call. The
// timestamp is stamped once, before the sinks run, so every sink
// renders the same text.
type record struct {
	time     time.Time
	level    Level
	message  string
	instance Instance
	stack    string
}

const (
	timeLayout = "2006-01-02 15:04:05"

	// prefixWidth keeps the message column aligned across instance
	// labels of different lengths.
	prefixWidth = 39
)

// formatRecord renders the uncolored line shared by every sink:
// "[<timestamp>] [<instance>]" padded to prefixWidth, then the
// message, then an optional Stack continuation.
func formatRecord(fallback string, rec *record) string {
	prefix := fmt.Sprintf("[%s] [%s]", rec.time.Format(timeLayout), rec.instance.render(fallback))
	if pad := prefixWidth - len(prefix); pad > 0 {
		prefix += strings.Repeat(" ", pad)
	}
	line := prefix + ": " + rec.message
	if rec.stack != "" {
		line += "\nStack: " + rec.stack
	}
	return line
}

// lineFormatter adapts formatRecord to the engine's Formatter
// contract. Both sinks share this type; only the colorize flag
// differs, so console and file output stay structurally identical.
type lineFormatter struct {
	instance string
	colorize bool
}

func (f *lineFormatter) ShouldRuntimeCaller() bool { return false }

func (f *lineFormatter) Format(ctx factorlog.LogContext) []byte {
	if len(ctx.Args) != 1 {
		return []byte(fmt.Sprintln(ctx.Args...))
	}
	rec, ok := ctx.Args[0].(*record)
	if !ok {
		return []byte(fmt.Sprintln(ctx.Args...))
	}
	line := formatRecord(f.instance, rec)
	if f.colorize {
		line = colorFor(rec.level) + line + ansi.Reset
	}
	return []byte(line + "\n")
}
