// Package handler provides the Handler interface and the built-in
// sinks used by the provisioning operation.
//
// All handlers are synchronous: Handle formats the entry and performs
// the write before returning, so there are no background queues to
// drain and no records in flight when a script exits. Each handler
// guards its writes with a mutex and is safe for concurrent use.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer
//     (default: stdout). Its formatter can be swapped after
//     construction, which is how repeated provisioning calls update a
//     reused console sink instead of attaching a duplicate.
//   - FileHandler appends to a logfile, creating missing parent
//     directories, with optional size-based rotation and backup
//     cleanup.
//   - BridgeHandler forwards entries to the registered GIS-host
//     messaging bridge, routed by severity (informational, warning,
//     error channels). Constructing one without a registered bridge
//     fails with bridge.ErrUnavailable.
//   - SlogHandler adapts any Handler to log/slog.Handler, allowing a
//     provisioned sink to back the standard library logger.
package handler
