package sipbridge

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"
)

// Lifecycle states and triggers.
const (
	stateIdle      = "idle"
	stateListening = "listening"

	triggerStart = "start"
	triggerStop  = "stop"
)

// Bridge manages the lifecycle of a single background UDP listener together
// with the event-callback registration used to deliver inbound datagrams
// and receive errors. At most one listener is active per Bridge at a time.
//
// The zero value is not usable, use [NewBridge]. Package-level operations
// drive one shared Bridge for callers that want a process-wide instance.
type Bridge struct {
	opts Options
	log  *slog.Logger
	reg  callbackRegistry

	// mu guards lifecycle transitions. It is never held while invoking
	// the callback, only across state changes and the shutdown join.
	mu      sync.Mutex
	fsm     *stateless.StateMachine
	running atomic.Bool
	conn    *closeOncePacketConn
	wg      sync.WaitGroup
}

// NewBridge creates a new [Bridge].
// Options are optional, default options are used if nil.
func NewBridge(opts *Options) *Bridge {
	b := new(Bridge)
	if opts != nil {
		b.opts = *opts
	}
	b.log = b.opts.log().With("bridge", b)

	b.fsm = stateless.NewStateMachine(stateIdle)
	b.fsm.Configure(stateIdle).
		Permit(triggerStart, stateListening).
		Ignore(triggerStop)
	b.fsm.Configure(stateListening).
		Permit(triggerStop, stateIdle)
	return b
}

// OnEvent registers cb to receive bridge events, replacing any prior
// registration. The bridge does not own or validate the callback's
// lifetime: the caller must keep it valid while it stays registered.
// See [EventCallback] for the re-entrancy contract.
func (b *Bridge) OnEvent(cb EventCallback) { b.reg.set(cb) }

// ClearOnEvent removes the registered callback, if any.
func (b *Bridge) ClearOnEvent() { b.reg.clear() }

// LocalAddr returns the active listener's bound address, or nil when no
// listener is active.
func (b *Bridge) LocalAddr() net.Addr {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil
	}
	return b.conn.LocalAddr()
}

// Listening reports whether a background listener is currently active.
func (b *Bridge) Listening() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fsm.MustState() == stateListening
}

// StartListener binds a UDP socket on all interfaces at the given port and
// spawns the background receive loop. It returns [ErrListenerActive] when a
// listener is already active and a bind error when the port cannot be bound,
// in both cases with no state change. On success exactly one listener
// loop is active.
func (b *Bridge) StartListener(ctx context.Context, port uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ok, _ := b.fsm.CanFire(triggerStart); !ok {
		return errtrace.Wrap(ErrListenerActive)
	}

	pc, err := b.opts.listenPacket(ctx, "udp", ":"+strconv.Itoa(int(port)))
	if err != nil {
		b.log.Error("listener bind failed", "port", port, "error", err)
		return errtrace.Wrap(err)
	}

	b.conn = newCloseOncePacketConn(pc)
	b.running.Store(true)

	lst := &listener{
		conn:            b.conn,
		reg:             &b.reg,
		running:         &b.running,
		readTimeout:     b.opts.readTimeout(),
		errorRetryDelay: b.opts.errorRetryDelay(),
		log:             b.log.With("local_addr", pc.LocalAddr()),
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		lst.serve()
	}()

	if err := b.fsm.Fire(triggerStart); err != nil {
		panic(err) // unreachable, transition checked under mu
	}

	b.log.Info("listener started", "local_addr", pc.LocalAddr())
	return nil
}

// StopListener signals the background loop to stop, blocks until it has
// fully exited and clears the callback registration. It is idempotent and
// safe to call with no active listener. Callbacks must not call it from
// within an event invocation, that would deadlock on the join.
func (b *Bridge) StopListener() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fsm.MustState() == stateListening {
		b.running.Store(false)
		// Unblock a pending receive instead of waiting out the poll window.
		b.conn.Close()
		b.wg.Wait()
		b.conn = nil

		if err := b.fsm.Fire(triggerStop); err != nil {
			panic(err) // unreachable, transition checked under mu
		}
		b.log.Info("listener stopped")
	}

	b.reg.clear()
}

// Reset returns the bridge to its quiescent state: running flag false, no
// callback registered. It does not stop an active listener, calling it
// while one is running is an error, use [Bridge.StopListener] instead.
func (b *Bridge) Reset() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.fsm.MustState() == stateListening {
		return errtrace.Wrap(ErrListenerActive)
	}

	b.running.Store(false)
	b.reg.clear()
	return nil
}

func (b *Bridge) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", fmt.Sprintf("%T", b)),
		slog.String("ptr", fmt.Sprintf("%p", b)),
	)
}
