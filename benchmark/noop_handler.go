package benchmark

import (
	"github.com/cartoworks/geolog/core"
	"github.com/cartoworks/geolog/handler"
)

// noopHandler accepts every record and drops it. It isolates dispatch
// cost from formatting and I/O in the handler benchmarks.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
