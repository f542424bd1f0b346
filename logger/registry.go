package logger

import (
	"io"
	"sync"

	"github.com/cartoworks/geolog/bridge"
	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/formatter"
	"github.com/cartoworks/geolog/handler"
)

// Config holds the options for one provisioning call. The zero value
// matches the documented defaults: INFO threshold, console sink
// attached, propagation on, no file sink, no bridge sink.
type Config struct {
	// Level is a severity name (DEBUG, INFO, WARNING, ERROR, CRITICAL,
	// or the aliases WARN and FATAL) or a numeric code (0, 10, 20, 30,
	// 40, 50). Empty means INFO. Anything else fails with
	// core.ErrInvalidLevel before any logger state is touched.
	Level string
	// LogfilePath attaches a file sink appending to this path; missing
	// parent directories are created. Each call with a path attaches a
	// fresh file sink.
	LogfilePath string
	// FileMaxSize enables size-based rotation of the file sink, in
	// bytes (0 = no rotation)
	FileMaxSize int64
	// FileMaxBackups limits how many rotated files are kept (0 = all)
	FileMaxBackups int
	// Formatter is shared by every sink attached in this call
	// (default: PipeFormatter)
	Formatter formatter.Formatter
	// ConsoleWriter is the console sink's destination (default: stdout)
	ConsoleWriter io.Writer
	// NoConsole skips the console sink
	NoConsole bool
	// NoPropagate stops records from bubbling to ancestor loggers
	NoPropagate bool
	// AttachBridge attaches a host-bridge sink when the messaging
	// bridge was detected at registry construction; silently ignored
	// otherwise
	AttachBridge bool
}

// Registry is the process-wide map of logger names to instances.
// Loggers are created on first request and live for the process
// lifetime. All registry operations are safe for concurrent use; the
// create-or-fetch and sink-dedup steps run under one lock so two
// goroutines provisioning the same name cannot double-attach a
// console sink.
type Registry struct {
	mu              sync.Mutex
	loggers         map[string]*Logger
	bridgeAvailable bool
}

// NewRegistry creates an empty registry. Host-bridge availability is
// probed once here and carried as a flag for the registry's lifetime,
// so Register the bridge before constructing registries that should
// see it.
func NewRegistry() *Registry {
	return &Registry{
		loggers:         make(map[string]*Logger),
		bridgeAvailable: bridge.Detect(),
	}
}

// BridgeAvailable reports the result of the construction-time probe
func (r *Registry) BridgeAvailable() bool {
	return r.bridgeAvailable
}

// Get creates or fetches the logger registered under name (empty for
// the root logger) and applies cfg: it validates and sets the severity
// threshold, sets the propagation flag, reuses-or-attaches the console
// sink, and attaches file and bridge sinks as requested. Repeated
// calls with the same name return the same instance and never
// duplicate its console sink.
func (r *Registry) Get(name string, cfg Config) (*Logger, error) {
	// Validate the level before any state is mutated
	level := core.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = core.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
	}

	fmtr := cfg.Formatter
	if fmtr == nil {
		fmtr = formatter.NewPipeFormatter(formatter.Config{})
	}

	// Open the file sink before touching the logger so an open failure
	// leaves prior state unchanged
	var fileSink *handler.FileHandler
	if cfg.LogfilePath != "" {
		var err error
		fileSink, err = handler.NewFileHandler(handler.FileConfig{
			Filename:   cfg.LogfilePath,
			Formatter:  fmtr,
			MaxSize:    cfg.FileMaxSize,
			MaxBackups: cfg.FileMaxBackups,
		})
		if err != nil {
			return nil, err
		}
	}

	var bridgeSink *handler.BridgeHandler
	if cfg.AttachBridge && r.bridgeAvailable {
		var err error
		bridgeSink, err = handler.NewBridgeHandler(handler.BridgeConfig{Formatter: fmtr})
		if err != nil {
			// Bridge disappeared after the probe
			if fileSink != nil {
				_ = fileSink.Close()
			}
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.loggers[name]
	if !ok {
		l = &Logger{
			reg:  r,
			key:  name,
			name: displayName(name),
		}
	}

	l.mu.Lock()
	l.level = level
	l.propagate = !cfg.NoPropagate

	if !cfg.NoConsole {
		// Reuse an existing console sink, only refreshing its
		// formatter; at most one console sink per logger identity
		var console *handler.ConsoleHandler
		for _, h := range l.handlers {
			if ch, isConsole := h.(*handler.ConsoleHandler); isConsole {
				console = ch
				break
			}
		}
		if console == nil {
			console = handler.NewConsoleHandler(handler.ConsoleConfig{
				Writer:    cfg.ConsoleWriter,
				Formatter: fmtr,
			})
			l.handlers = append(l.handlers, console)
		} else {
			console.SetFormatter(fmtr)
		}
	}

	if bridgeSink != nil {
		l.handlers = append(l.handlers, bridgeSink)
	}

	if fileSink != nil {
		l.handlers = append(l.handlers, fileSink)
	}
	l.mu.Unlock()

	if !ok {
		r.loggers[name] = l
	}
	return l, nil
}

// Lookup returns the logger registered under name without creating or
// reconfiguring anything
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// parentOf walks the dotted-name hierarchy upward from key and returns
// the nearest registered ancestor, ending at the root logger
func (r *Registry) parentOf(key string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key != "" {
		key = parentKey(key)
		if l, ok := r.loggers[key]; ok {
			return l
		}
		if key == "" {
			break
		}
	}
	return nil
}

// Close closes every sink of every registered logger
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var lastErr error
	for _, l := range r.loggers {
		if err := l.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the package-level registry, constructing it (and
// probing the bridge) on first use
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}

// Get provisions a logger from the default registry
func Get(name string, cfg Config) (*Logger, error) {
	return Default().Get(name, cfg)
}
