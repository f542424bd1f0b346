package handler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/cartoworks/geolog/core"
)

func TestSlogHandler_Basic(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	log := slog.New(NewSlogHandler("adapter", h, core.InfoLevel))

	log.Debug("hidden")
	if buf.Len() > 0 {
		t.Errorf("debug record leaked through InfoLevel gate: %s", buf.String())
	}

	log.Info("visible", "rows", 12)
	got := buf.String()
	if !strings.Contains(got, " | adapter | INFO | visible") {
		t.Errorf("unexpected output: %s", got)
	}
	if !strings.Contains(got, "rows=12") {
		t.Errorf("expected attr in output, got: %s", got)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	log := slog.New(NewSlogHandler("adapter", h, core.DebugLevel)).
		With("script", "make_data").
		WithGroup("io")

	log.Warn("slow read", "path", "input.csv")
	got := buf.String()
	if !strings.Contains(got, "script=make_data") {
		t.Errorf("expected pre-configured attr, got: %s", got)
	}
	if !strings.Contains(got, "io.path=input.csv") {
		t.Errorf("expected group-prefixed attr, got: %s", got)
	}
	if !strings.Contains(got, "WARNING") {
		t.Errorf("expected WARNING level, got: %s", got)
	}
}
