// Package logging provides the leveled console logger used across svg2asset.
// Console lines go to stdout (errors to stderr) in a fixed
// "timestamp [LEVEL] message" layout; an optional log file receives the
// same events as JSON lines tagged with a per-run id.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/backmassage/svg2asset/internal/config"
	"github.com/backmassage/svg2asset/internal/term"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	runIDField   = "run"
	successLevel = "success"
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	mu    sync.Mutex
	zl    zerolog.Logger
	file  *os.File
	runID string
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return NewLoggerTo(cfg, os.Stdout, os.Stderr)
}

// NewLoggerTo is NewLogger with the console routed to stdout and stderr
// instead of the process streams.
func NewLoggerTo(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return newLogger(cfg, stdout, stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	l := &Logger{runID: uuid.NewString()}

	var w io.Writer = levelRouter{out: consoleWriter(stdout), errOut: consoleWriter(stderr)}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		w = zerolog.MultiLevelWriter(w, f)
	}
	l.zl = zerolog.New(w).With().Timestamp().Str(runIDField, l.runID).Logger()
	return l, nil
}

// consoleWriter renders events as "2006-01-02 15:04:05 [LEVEL] message".
// Color comes from the term styles so --color/--no-color apply uniformly.
func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           out,
		NoColor:       true,
		TimeFormat:    timeFormat,
		FormatLevel:   formatLevel,
		FieldsExclude: []string{runIDField},
	}
}

func formatLevel(i interface{}) string {
	level, _ := i.(string)
	switch level {
	case zerolog.LevelInfoValue:
		return term.Blue.Sprint("[INFO]")
	case successLevel:
		return term.Green.Sprint("[SUCCESS]")
	case zerolog.LevelWarnValue:
		return term.Yellow.Sprint("[WARN]")
	case zerolog.LevelErrorValue:
		return term.Red.Sprint("[ERROR]")
	case zerolog.LevelDebugValue:
		return term.Cyan.Sprint("[DEBUG]")
	default:
		return "[" + level + "]"
	}
}

// levelRouter sends error-level events to errOut and everything else to out.
type levelRouter struct {
	out, errOut io.Writer
}

func (r levelRouter) Write(p []byte) (int, error) { return r.out.Write(p) }

func (r levelRouter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level < zerolog.NoLevel {
		return r.errOut.Write(p)
	}
	return r.out.Write(p)
}

// RunID returns the id attached to every file log line of this run.
func (l *Logger) RunID() string { return l.runID }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) emit(e *zerolog.Event, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.Msg(text)
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(l.zl.Info(), fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(l.zl.Log().Str(zerolog.LevelFieldName, successLevel), fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(l.zl.Warn(), fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(l.zl.Error(), fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.emit(l.zl.Debug(), fmt.Sprintf(format, args...))
}
