package tablefmt

import (
	"errors"
	"strings"
	"sync"
)

// DefaultLinePrefix is the indentation put in front of every rendered
// line so the table reads as a block inside a log message.
const DefaultLinePrefix = "\t\t"

// ErrMissingRenderer is returned by Format when no Renderer has been
// registered. Importing the render subpackage registers one.
var ErrMissingRenderer = errors.New("no table renderer registered")

// Table is a plain tabular value: a header row and data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// Renderer turns a Table into its textual form. Implementations live
// outside this package so the rendering library stays an optional
// dependency.
type Renderer interface {
	Render(t Table) (string, error)
}

var (
	rendererMu sync.RWMutex
	renderer   Renderer
)

// RegisterRenderer installs r as the process-wide renderer. Passing
// nil clears it.
func RegisterRenderer(r Renderer) {
	rendererMu.Lock()
	renderer = r
	rendererMu.Unlock()
}

func activeRenderer() Renderer {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	return renderer
}

// Format renders t under a title with the default indentation.
func Format(t Table, title string) (string, error) {
	return FormatPrefixed(t, title, DefaultLinePrefix)
}

// FormatPrefixed renders t under a title, prefixing every line of the
// rendering with prefix. The result is meant to be passed as a log
// message:
//
//	log.Info(tablefmt.Format(tbl, "Summary Statistics"))
//
// It fails with ErrMissingRenderer when no renderer is registered.
func FormatPrefixed(t Table, title, prefix string) (string, error) {
	r := activeRenderer()
	if r == nil {
		return "", ErrMissingRenderer
	}

	rendered, err := r.Render(t)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":")
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		b.WriteString("\n")
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String(), nil
}
