package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLevel is returned when a severity outside the recognized
// set of names and numeric codes is supplied.
var ErrInvalidLevel = errors.New("invalid log level")

// Level represents the severity of a log entry. Values mirror the
// numeric codes accepted by the provisioning API: 0, 10, 20, 30, 40, 50.
type Level int8

const (
	// NotsetLevel passes every record through (code 0)
	NotsetLevel Level = 0
	// DebugLevel for detailed debugging information (code 10)
	DebugLevel Level = 10
	// InfoLevel for general informational messages, the default (code 20)
	InfoLevel Level = 20
	// WarningLevel for warning messages (code 30)
	WarningLevel Level = 30
	// ErrorLevel for error messages (code 40)
	ErrorLevel Level = 40
	// CriticalLevel for severe failures (code 50)
	CriticalLevel Level = 50
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case NotsetLevel:
		return "NOTSET"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a severity name or a numeric code string to a
// Level. Recognized names are DEBUG, INFO, WARNING, ERROR, CRITICAL and
// the aliases WARN and FATAL; recognized codes are 0, 10, 20, 30, 40
// and 50. Anything else fails with ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	}
	if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return LevelFromCode(code)
	}
	return NotsetLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// LevelFromCode converts one of the numeric codes 0, 10, 20, 30, 40, 50
// to a Level. Any other code fails with ErrInvalidLevel.
func LevelFromCode(code int) (Level, error) {
	switch code {
	case 0, 10, 20, 30, 40, 50:
		return Level(code), nil
	}
	return NotsetLevel, fmt.Errorf("%w: %d", ErrInvalidLevel, code)
}
