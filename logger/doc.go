// Package logger is the public API of geolog. Most scripts only need
// to import this package.
//
// Loggers are provisioned through a Registry, a process-wide map of
// name to instance. Get creates-or-fetches the named logger (empty
// name for the root logger), validates and applies the severity
// threshold, and attaches sinks: a console sink (at most one per
// logger, its formatter refreshed on reuse), an optional
// appending file sink whose parent directories are created on demand,
// and an optional GIS-host bridge sink that is attached only when the
// host messaging surface was detected.
//
// A library package takes a quiet logger once at import time:
//
//	var log, _ = logger.Get("myproject.utils", logger.Config{
//	    Level:     "DEBUG",
//	    NoConsole: true,
//	})
//
// and an entry-point script configures the root logger for its own
// execution context, typically with a timestamped logfile:
//
//	log, err := logger.Get("", logger.Config{
//	    Level:       "INFO",
//	    LogfilePath: filepath.Join("data", "logs", runStamp+".log"),
//	})
//	if err != nil {
//	    // a bad level or an unopenable logfile; nothing was attached
//	}
//	log.Info("processing started")
//
// Records accepted by a named logger's threshold also reach the sinks
// of its dotted-name ancestors (ending at root) unless NoPropagate is
// set, so library messages surface in the script's logfile without the
// library knowing about it.
//
// An invalid severity, anything outside the names DEBUG, INFO,
// WARNING, ERROR, CRITICAL, WARN, FATAL and the codes 0 through 50 in
// tens, fails with ErrInvalidLevel before any logger state is mutated.
package logger
