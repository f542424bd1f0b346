package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/handler"
)

// Logger is a named, process-lifetime log emitter. Instances are
// created and configured through a Registry; every caller asking for
// the same name shares the same instance. A Logger is never destroyed.
type Logger struct {
	reg  *Registry
	key  string // registry key, "" for the root logger
	name string // display name rendered into records

	mu        sync.RWMutex
	level     core.Level
	propagate bool
	handlers  []handler.Handler

	// fields and origin are set on derived views created by With;
	// a derived view shares sinks and threshold with its origin.
	fields []core.Field
	origin *Logger
}

// Name returns the display name of the logger ("root" for the root logger)
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current severity threshold
func (l *Logger) Level() core.Level {
	o := l.backing()
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.level
}

// Propagate reports whether records bubble to ancestor loggers
func (l *Logger) Propagate() bool {
	o := l.backing()
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.propagate
}

// Handlers returns a snapshot of the attached sinks
func (l *Logger) Handlers() []handler.Handler {
	o := l.backing()
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]handler.Handler, len(o.handlers))
	copy(out, o.handlers)
	return out
}

// With returns a derived view of the logger that carries additional
// default fields. The view shares the origin's sinks, threshold and
// registry entry; it is not itself registered.
func (l *Logger) With(fields ...core.Field) *Logger {
	o := l.backing()
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		reg:    o.reg,
		key:    o.key,
		name:   o.name,
		fields: newFields,
		origin: o,
	}
}

// backing resolves a derived view to its registered origin
func (l *Logger) backing() *Logger {
	if l.origin != nil {
		return l.origin
	}
	return l
}

// Log emits a message at the given level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.Level() {
		return
	}
	l.log(level, msg, fields)
}

// log builds a pooled entry and delivers it to the attached sinks and,
// when propagation is on, to ancestor loggers' sinks.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	o := l.backing()

	entry := core.GetEntry()
	entry.Name = l.name
	entry.Level = level
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	o.deliver(entry)
	core.PutEntry(entry)
}

// deliver hands the entry to this logger's sinks, then walks up the
// dotted-name hierarchy. Ancestor thresholds are not re-checked; the
// record was already accepted by the emitting logger.
func (l *Logger) deliver(entry *core.Entry) {
	l.mu.RLock()
	hs := make([]handler.Handler, len(l.handlers))
	copy(hs, l.handlers)
	propagate := l.propagate
	l.mu.RUnlock()

	for _, h := range hs {
		_ = h.Handle(entry)
	}

	if propagate && l.key != "" {
		if p := l.reg.parentOf(l.key); p != nil {
			p.deliver(entry)
		}
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an informational message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	if core.WarningLevel < l.Level() {
		return
	}
	l.log(core.WarningLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if core.CriticalLevel < l.Level() {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an informational message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if core.WarningLevel < l.Level() {
		return
	}
	l.log(core.WarningLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.Level() {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes all attached sinks
func (l *Logger) Close() error {
	o := l.backing()
	o.mu.Lock()
	defer o.mu.Unlock()

	var lastErr error
	for _, h := range o.handlers {
		if err := h.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// displayName maps a registry key to the name rendered into records
func displayName(key string) string {
	if key == "" {
		return "root"
	}
	return key
}

// parentKey trims the last dotted segment; "a.b.c" -> "a.b", "a" -> ""
func parentKey(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[:i]
	}
	return ""
}
