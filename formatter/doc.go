// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// PipeFormatter produces the canonical logfile line used throughout
// the toolkit:
//
//	2026-03-01 09:30:00 | make_data | WARNING | low disk space
//
// All sinks attached in one provisioning call share a single
// formatter instance, so console, file and host-bridge output stay
// textually consistent. JSONFormatter is available for sinks that feed
// log aggregation instead of human readers.
//
// Both formatters implement both interfaces. They use a pooled
// bytes.Buffer internally and rely on Go's Append-style functions
// (time.AppendFormat, strconv.AppendInt) to avoid per-call
// allocations. Buffers larger than 64 KiB are not returned to the pool
// to prevent a single large log line from permanently inflating memory
// usage.
package formatter
