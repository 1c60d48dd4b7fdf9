package sipbridge

import (
	"errors"
	"log/slog"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/ghettovoice/sipbridge/log"
)

// listener owns a bound packet connection and forwards inbound datagrams
// as events until signaled to stop.
type listener struct {
	conn            net.PacketConn
	reg             *callbackRegistry
	running         *atomic.Bool
	readTimeout     time.Duration
	errorRetryDelay time.Duration
	log             *slog.Logger
}

// serve runs the receive loop. Individual receive errors are reported via
// the callback and are non-fatal: the loop exits only when the running flag
// is cleared, observed at the top of each iteration and after every
// deadline expiry. The connection is closed on exit.
func (l *listener) serve() {
	defer l.conn.Close()

	l.log.Debug("listener loop started", "connection", l.conn)
	defer l.log.Debug("listener loop finished", "connection", l.conn)

	buf := make([]byte, maxDatagramSize)
	for l.running.Load() {
		if err := l.conn.SetReadDeadline(time.Now().Add(l.readTimeout)); err != nil {
			if l.reportErr(err) {
				time.Sleep(l.errorRetryDelay)
			}
			continue
		}

		n, raddr, err := l.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				// No traffic within the poll window, re-check the flag.
				continue
			}
			if l.reportErr(err) {
				time.Sleep(l.errorRetryDelay)
			}
			continue
		}
		if n == 0 {
			continue
		}

		payload := lossyText(buf[:n])
		l.log.Debug("datagram received",
			"remote_addr", raddr,
			"size", n,
			"dump", log.StringValue(payload),
		)
		l.reg.dispatch(EventRx, payload)
	}
}

// reportErr dispatches a receive error to the callback.
// Errors observed once the stop signal is set are suppressed: closing the
// connection is part of a normal shutdown, not a transient failure.
func (l *listener) reportErr(err error) bool {
	if !l.running.Load() {
		return false
	}
	l.log.Warn("receive failed, retrying", "error", err)
	l.reg.dispatch(EventError, "recv_err:"+err.Error())
	return true
}

// lossyText decodes b as text, replacing invalid byte sequences instead
// of failing.
func lossyText(b []byte) string {
	s, _ := safeText(string(b))
	return s
}
