package logger

import (
	"github.com/cartoworks/geolog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NotsetLevel   = core.NotsetLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ErrInvalidLevel is re-exported so callers of the provisioning API can
// match it without importing core
var ErrInvalidLevel = core.ErrInvalidLevel

// ParseLevel converts a severity name or numeric code string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
