package logger

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/kdar/factorlog"
)

// Config defines options for New. Every option has a usable default;
// the zero value yields a console-only logger labeled "Manager".
// Options are resolved once during construction and never mutated
// afterward.
type Config struct {
	// LogToFile enables the append-mode file sink.
	// Default: false (console only)
	LogToFile bool
	// LogDir is the directory holding the log file. Only the
	// directory itself is created; missing parent segments fail
	// construction.
	// Default: "logs"
	LogDir string
	// LogFile is the file name inside LogDir.
	// Default: "<unix-millis>.logs"
	LogFile string
	// Instance is the default bracketed label shown per line when a
	// call supplies no override.
	// Default: "Manager"
	Instance string
	// SkipGitignore disables writing a .gitignore (pattern "*.log")
	// into a newly created log directory.
	// Default: false (the file is written)
	SkipGitignore bool
}

// withDefaults fills unset options. Value receiver: the caller's
// Config is never mutated.
func (c Config) withDefaults() Config {
	if c.LogDir == "" {
		c.LogDir = "logs"
	}
	if c.LogFile == "" {
		c.LogFile = fmt.Sprintf("%d.logs", time.Now().UnixMilli())
	}
	if c.Instance == "" {
		c.Instance = "Manager"
	}
	return c
}

// Dependency injection point for testing console output.
var stdout io.Writer = os.Stdout

// Logger owns a colorized console sink and, when configured, a plain
// append-mode file sink. Both sinks are built once at construction
// and live for the logger's lifetime.
type Logger struct {
	console *factorlog.FactorLog
	file    *factorlog.FactorLog
	handle  *os.File
}

// New builds a ready-to-use Logger from cfg. The console sink is
// always assembled; the file sink only when LogToFile is set, after
// ensuring the log directory exists. Filesystem failures abort
// construction and propagate.
// Call Close to release the log file when shutting down.
func New(cfg Config) (*Logger, error) {
	cfg = cfg.withDefaults()
	l := &Logger{
		console: factorlog.New(stdout, &lineFormatter{instance: cfg.Instance, colorize: true}),
	}

	if cfg.LogToFile {
		if err := ensureLogDir(cfg.LogDir, !cfg.SkipGitignore); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, cfg.LogFile), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return nil, err
		}
		l.handle = f
		l.file = factorlog.New(f, &lineFormatter{instance: cfg.Instance})
	}

	return l, nil
}

// ensureLogDir creates dir if it does not exist. Creation is
// deliberately non-recursive: a missing parent segment is an error.
// The .gitignore is only written for a directory this call created,
// so repeated calls against an existing directory are no-ops.
func ensureLogDir(dir string, gitignore bool) error {
	err := os.Mkdir(dir, 0755)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if gitignore {
		return os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\n"), 0644)
	}
	return nil
}

// Close releases the append-mode log file, if one was opened.
func (l *Logger) Close() error {
	if l.handle != nil {
		err := l.handle.Close()
		l.handle = nil
		return err
	}
	return nil
}

// emit stamps the record and hands it to every configured sink. The
// engine serializes writes per sink, so emit is safe for concurrent
// callers.
func (l *Logger) emit(level Level, message string, inst Instance, stack string) {
	rec := &record{
		time:     time.Now(),
		level:    level,
		message:  message,
		instance: inst,
		stack:    stack,
	}
	l.console.Output(level.severity(), 1, rec)
	if l.file != nil {
		l.file.Output(level.severity(), 1, rec)
	}
}

// Info logs an informational message. An optional Instance overrides
// the line's label.
func (l *Logger) Info(message string, inst ...Instance) {
	l.emit(InfoLevel, message, override(inst), "")
}

// Warn logs a warning message. An optional Instance overrides the
// line's label.
func (l *Logger) Warn(message string, inst ...Instance) {
	l.emit(WarnLevel, message, override(inst), "")
}

// HTTP logs a request/response traffic message. An optional Instance
// overrides the line's label.
func (l *Logger) HTTP(message string, inst ...Instance) {
	l.emit(HTTPLevel, message, override(inst), "")
}

// Error logs a failure. When err is non-nil the line gains a Stack
// continuation holding the error text and the call site's stack
// trace; a nil err degrades gracefully and only the message is
// logged. Pass Cluster(n) to attribute the failure to a worker.
func (l *Logger) Error(message string, err error, inst ...Instance) {
	stack := ""
	if err != nil {
		stack = fmt.Sprintf("%v\n%s", err, strings.TrimRight(string(debug.Stack()), "\n"))
	}
	l.emit(ErrorLevel, message, override(inst), stack)
}

func override(inst []Instance) Instance {
	if len(inst) > 0 {
		return inst[0]
	}
	return Instance{}
}
