package sipbridge

import (
	"context"

	"braces.dev/errtrace"
)

// version is reported by [Version]. It is valid for the whole process
// lifetime and never changes.
const version = "sipbridge-0.1.0"

// Version returns the fixed version identifier of the package.
func Version() string { return version }

var defBridge = NewBridge(nil)

// Default returns the shared [Bridge] driven by the package-level
// operations.
func Default() *Bridge { return defBridge }

// Reset returns the shared bridge to its quiescent state.
// See [Bridge.Reset].
func Reset() error { return errtrace.Wrap(defBridge.Reset()) }

// OnEvent registers cb on the shared bridge. See [Bridge.OnEvent].
func OnEvent(cb EventCallback) { defBridge.OnEvent(cb) }

// ClearOnEvent removes the shared bridge's callback.
// See [Bridge.ClearOnEvent].
func ClearOnEvent() { defBridge.ClearOnEvent() }

// StartListener starts the shared bridge's background UDP listener on the
// given port. See [Bridge.StartListener].
func StartListener(port uint16) error {
	return errtrace.Wrap(defBridge.StartListener(context.Background(), port))
}

// StopListener stops the shared bridge's listener and clears its callback.
// See [Bridge.StopListener].
func StopListener() { defBridge.StopListener() }

// Send transmits a one-shot datagram via the shared bridge.
// See [Bridge.Send].
func Send(destHost string, destPort uint16, payload []byte) error {
	return errtrace.Wrap(defBridge.Send(context.Background(), destHost, destPort, payload))
}
