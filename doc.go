// Package sipbridge provides a minimal SIP datagram bridge: lifecycle
// management of a single background UDP receive loop, delivery of inbound
// datagrams and receive errors through a caller-registered event callback,
// and one-shot best-effort outbound sends.
//
// The package is not a SIP stack. Payloads are forwarded as raw, unvalidated
// text; there is no message parsing, no transaction handling and no
// retransmission. The only invariants it maintains are lifecycle ones:
// at most one listener is active at a time, shutdown joins the background
// loop before returning, and event data handed to the callback is valid only
// for the duration of the call.
//
// Most callers use the package-level operations, which drive a single shared
// [Bridge]. Construct a [Bridge] directly when explicit lifetime control or
// test isolation is needed.
package sipbridge
