package sipbridge

import (
	"net"
	"sync"

	"braces.dev/errtrace"
)

// closeOncePacketConn makes Close idempotent: the listener closes the
// connection when its loop exits and the controller closes it to unblock
// a pending receive on stop.
type closeOncePacketConn struct {
	net.PacketConn
	closeOnce sync.Once
	closeErr  error
}

func newCloseOncePacketConn(c net.PacketConn) *closeOncePacketConn {
	if c, ok := c.(*closeOncePacketConn); ok {
		return c
	}
	return &closeOncePacketConn{PacketConn: c}
}

func (c *closeOncePacketConn) Close() error {
	c.closeOnce.Do(func() {
		if err := c.PacketConn.Close(); err != nil {
			c.closeErr = err
		}
	})
	return errtrace.Wrap(c.closeErr)
}
