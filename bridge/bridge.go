package bridge

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned when a host-bridge sink is constructed in
// a process where no messaging bridge has been registered.
var ErrUnavailable = errors.New("host messaging bridge unavailable")

// Bridge is the external GIS-host messaging surface. It exposes three
// severity-routed delivery channels; the host decides how each channel
// is surfaced in its tool-execution UI.
type Bridge interface {
	// AddMessage delivers an informational message
	AddMessage(text string)
	// AddWarning delivers a warning message
	AddWarning(text string)
	// AddError delivers an error message
	AddError(text string)
}

var (
	mu     sync.RWMutex
	active Bridge
)

// Register installs the process-wide bridge. Host integrations call
// this once during startup, before any logger is provisioned.
// Registering nil removes the bridge.
func Register(b Bridge) {
	mu.Lock()
	defer mu.Unlock()
	active = b
}

// Detect reports whether a bridge is registered. Registries probe this
// once at construction and carry the result as a configuration flag.
func Detect() bool {
	mu.RLock()
	defer mu.RUnlock()
	return active != nil
}

// Active returns the registered bridge, or nil when none is present.
func Active() Bridge {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// Recorder is a Bridge that captures delivered messages per channel.
// It exists for tests and for dry-running scripts outside a host.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
	Warnings []string
	Errors   []string
}

// AddMessage records an informational message
func (r *Recorder) AddMessage(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, text)
}

// AddWarning records a warning message
func (r *Recorder) AddWarning(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, text)
}

// AddError records an error message
func (r *Recorder) AddError(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, text)
}
