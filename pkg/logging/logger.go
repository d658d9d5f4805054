package logging

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. All of its methods are safe
// for concurrent usage.
type Logger struct {
	// level is the maximum level at which messages are emitted.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
	// lock serializes access to the underlying logger.
	lock *sync.Mutex
	// logger is the underlying log sink.
	logger *log.Logger
}

// NewLogger creates a new logger that emits messages at or below the
// specified level to the specified writer.
func NewLogger(level Level, writer io.Writer) *Logger {
	return &Logger{
		level:  level,
		lock:   &sync.Mutex{},
		logger: log.New(writer, "", log.LstdFlags),
	}
}

// Sublogger creates a new sublogger with the specified name. Subloggers share
// the parent's level and sink but prefix their messages with a dotted name
// path.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
		lock:   l.lock,
		logger: l.logger,
	}
}

// Level returns the logger's level. A nil logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// output is the internal logging method.
func (l *Logger) output(level Level, line string) {
	// Filter by level.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	l.lock.Lock()
	defer l.lock.Unlock()
	l.logger.Output(2, line)
}

// Error logs error information with semantics equivalent to fmt.Print.
func (l *Logger) Error(v ...interface{}) {
	l.output(LevelError, fmt.Sprint(v...))
}

// Errorf logs error information with semantics equivalent to fmt.Printf.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.output(LevelError, fmt.Sprintf(format, v...))
}

// Warn logs warning information with semantics equivalent to fmt.Print.
func (l *Logger) Warn(v ...interface{}) {
	l.output(LevelWarn, fmt.Sprint(v...))
}

// Warnf logs warning information with semantics equivalent to fmt.Printf.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.output(LevelWarn, fmt.Sprintf(format, v...))
}

// Info logs execution information with semantics equivalent to fmt.Print.
func (l *Logger) Info(v ...interface{}) {
	l.output(LevelInfo, fmt.Sprint(v...))
}

// Infof logs execution information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.output(LevelInfo, fmt.Sprintf(format, v...))
}

// Debug logs debugging information with semantics equivalent to fmt.Print.
func (l *Logger) Debug(v ...interface{}) {
	l.output(LevelDebug, fmt.Sprint(v...))
}

// Debugf logs debugging information with semantics equivalent to fmt.Printf.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.output(LevelDebug, fmt.Sprintf(format, v...))
}

// Trace logs low-level execution information with semantics equivalent to
// fmt.Print.
func (l *Logger) Trace(v ...interface{}) {
	l.output(LevelTrace, fmt.Sprint(v...))
}

// Tracef logs low-level execution information with semantics equivalent to
// fmt.Printf.
func (l *Logger) Tracef(format string, v ...interface{}) {
	l.output(LevelTrace, fmt.Sprintf(format, v...))
}
