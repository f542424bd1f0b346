package handler

import (
	"strings"

	"github.com/cartoworks/geolog/bridge"
	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/formatter"
)

// BridgeHandler forwards formatted log entries to the GIS-host
// messaging bridge. DEBUG and INFO records go to the informational
// channel, WARNING records to the warning channel, and everything
// above WARNING to the error channel.
type BridgeHandler struct {
	target    bridge.Bridge
	formatter formatter.Formatter
}

// BridgeConfig holds configuration for the bridge handler
type BridgeConfig struct {
	// Formatter to use (default: PipeFormatter)
	Formatter formatter.Formatter
}

// NewBridgeHandler creates a handler bound to the registered bridge.
// It fails with bridge.ErrUnavailable when no bridge is present; the
// provisioning operation checks availability first and never hits
// this, but direct construction outside a host must fail loudly.
func NewBridgeHandler(cfg BridgeConfig) (*BridgeHandler, error) {
	target := bridge.Active()
	if target == nil {
		return nil, bridge.ErrUnavailable
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPipeFormatter(formatter.Config{})
	}
	return &BridgeHandler{
		target:    target,
		formatter: cfg.Formatter,
	}, nil
}

// Handle formats an entry and routes it to the severity-matched
// channel. The host renders its own line breaks, so the formatter's
// trailing newline is stripped.
func (h *BridgeHandler) Handle(entry *core.Entry) error {
	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	msg := strings.TrimSuffix(string(data), "\n")

	switch {
	case entry.Level <= core.InfoLevel:
		h.target.AddMessage(msg)
	case entry.Level == core.WarningLevel:
		h.target.AddWarning(msg)
	default:
		h.target.AddError(msg)
	}
	return nil
}

// Close closes the handler. The bridge belongs to the host and is left
// untouched.
func (h *BridgeHandler) Close() error {
	return nil
}
