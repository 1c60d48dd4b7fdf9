package sipbridge

import (
	"context"
	"net"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipbridge/log"
)

// Send transmits payload as a single datagram to destHost:destPort from an
// ephemeral local port. It retains no state and is independent of the
// listener lifecycle, safe to call with or without an active listener.
//
// An empty destination host or a nil payload is rejected with
// [ErrInvalidArgument] and no action is taken. A local bind failure is
// returned as an error. Past a successful bind the send is best-effort:
// resolution and transmit failures are logged and absorbed, a nil result
// does not mean the datagram reached the destination.
func (b *Bridge) Send(ctx context.Context, destHost string, destPort uint16, payload []byte) error {
	if destHost == "" {
		return errtrace.Wrap(NewInvalidArgumentError("empty destination host"))
	}
	if payload == nil {
		return errtrace.Wrap(NewInvalidArgumentError("nil payload"))
	}

	conn, err := b.opts.listenPacket(ctx, "udp", ":0")
	if err != nil {
		b.log.Error("sender bind failed", "error", err)
		return errtrace.Wrap(err)
	}
	defer conn.Close()

	ips, err := b.opts.dnsResolver().LookupIP(ctx, "ip", destHost)
	if err != nil || len(ips) == 0 {
		b.log.Warn("destination not resolved, datagram dropped",
			"dest_host", destHost,
			"error", err,
		)
		return nil
	}

	raddr := &net.UDPAddr{IP: ips[0], Port: int(destPort)}
	if d, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(d); err != nil {
			b.log.Warn("set write deadline failed", "error", err)
			return nil
		}
	}
	if _, err := conn.WriteTo(payload, raddr); err != nil {
		b.log.Warn("send failed", "remote_addr", raddr, "error", err)
		return nil
	}

	b.log.Debug("datagram sent",
		"remote_addr", raddr,
		"size", len(payload),
		"dump", log.StringValue(payload),
	)
	return nil
}
