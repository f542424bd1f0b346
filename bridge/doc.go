// Package bridge models the optional GIS-host messaging surface as an
// explicit capability.
//
// A hosting environment that wants log records surfaced in its
// interactive tool UI registers a Bridge implementation at startup:
//
//	bridge.Register(myHostBridge{})
//
// The provisioning registry probes Detect once when it is constructed
// and only then allows host-bridge sinks to be attached. Outside a
// host nothing is registered, Detect returns false, and asking for a
// bridge sink through the public provisioning operation is a silent
// no-op. Constructing a bridge handler directly without a registered
// bridge fails with ErrUnavailable; that asymmetry is deliberate —
// graceful degradation at the public boundary, hard failure on direct
// misuse.
package bridge
