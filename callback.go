package sipbridge

import (
	"strings"
	"sync"
)

// EventKind identifies the kind of an event delivered to the callback.
type EventKind string

// Event kinds delivered to the callback.
const (
	// EventRx carries an inbound datagram payload.
	EventRx EventKind = "sip_rx"
	// EventError carries a description of a transient receive error.
	EventError EventKind = "error"

	// fallbackKind is substituted when an event kind cannot be
	// represented as boundary-safe text.
	fallbackKind EventKind = "err"
)

// EventCallback receives events from the bridge. The kind and payload are
// valid only for the duration of the call: the callback must copy anything
// it needs to retain. Callbacks must not re-enter the registering bridge's
// OnEvent, ClearOnEvent or StopListener, that would deadlock.
type EventCallback func(kind EventKind, payload string)

// callbackRegistry holds at most one registered callback.
// Registering replaces any prior registration.
type callbackRegistry struct {
	mu sync.Mutex
	cb EventCallback
}

func (r *callbackRegistry) set(cb EventCallback) {
	r.mu.Lock()
	r.cb = cb
	r.mu.Unlock()
}

func (r *callbackRegistry) clear() {
	r.mu.Lock()
	r.cb = nil
	r.mu.Unlock()
}

// dispatch invokes the registered callback with boundary-safe text,
// or does nothing when the registry is empty. The invocation happens
// under the registry lock, so two dispatches never interleave.
func (r *callbackRegistry) dispatch(kind EventKind, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cb == nil {
		return
	}
	k, ok := safeText(string(kind))
	if !ok {
		k = string(fallbackKind)
	}
	p, ok := safeText(payload)
	if !ok {
		p = ""
	}
	r.cb(EventKind(k), p)
}

// safeText converts s into text safe to hand across the callback boundary.
// Invalid UTF-8 sequences are replaced with U+FFFD and NUL bytes are
// stripped, since boundary text is null-terminated on the caller's side.
// ok is false only when nothing of s survives sanitization while the
// input was non-empty.
func safeText(s string) (_ string, ok bool) {
	s = strings.ToValidUTF8(s, "�")
	if strings.IndexByte(s, 0) >= 0 {
		s = strings.ReplaceAll(s, "\x00", "")
		if s == "" {
			return "", false
		}
	}
	return s, true
}
