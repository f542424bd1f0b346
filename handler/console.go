package handler

import (
	"io"
	"os"
	"sync"

	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/formatter"
)

// ConsoleHandler writes formatted log entries to a stream, stdout by
// default. A logger carries at most one console handler; repeated
// provisioning calls reuse the existing one and only swap its
// formatter via SetFormatter.
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: PipeFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPipeFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the no-copy path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// SetFormatter replaces the handler's formatter. Safe to call while
// other goroutines are logging.
func (h *ConsoleHandler) SetFormatter(f formatter.Formatter) {
	if f == nil {
		return
	}
	h.mu.Lock()
	h.formatter = f
	h.writerFormatter, _ = f.(formatter.WriterFormatter)
	h.mu.Unlock()
}

// Handle formats and writes an entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.writer)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Close closes the handler. The underlying stream is not owned by the
// handler and stays open.
func (h *ConsoleHandler) Close() error {
	return nil
}
