package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/cartoworks/geolog/core"
)

// DefaultTimestampFormat is the timestamp layout used by PipeFormatter
// when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

// PipeFormatter renders log entries as pipe-separated text:
//
//	<timestamp> | <logger-name> | <LEVEL> | <message>
//
// Structured fields are appended after the message as key=value pairs.
type PipeFormatter struct {
	Config
}

// NewPipeFormatter creates a new pipe-separated text formatter
func NewPipeFormatter(cfg Config) *PipeFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &PipeFormatter{Config: cfg}
}

// Format formats an entry as pipe-separated text
func (f *PipeFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *PipeFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *PipeFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" | ")
	buf.WriteString(entry.Name)
	buf.WriteString(" | ")
	buf.WriteString(entry.Level.String())
	buf.WriteString(" | ")

	// Caller info if enabled
	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteString("] ")
	}

	// Message
	buf.WriteString(entry.Message)

	// Fields
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
