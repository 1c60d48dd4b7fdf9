package sipbridge

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/ghettovoice/sipbridge/dns"
	"github.com/ghettovoice/sipbridge/log"
)

const (
	// maxDatagramSize is the receive buffer size, the maximum
	// possible UDP payload.
	maxDatagramSize = 65535

	defReadTimeout     = 250 * time.Millisecond
	defErrorRetryDelay = 50 * time.Millisecond
)

// Options contains bridge options.
// The zero value and nil are both valid and select the defaults.
type Options struct {
	// Logger is a logger used to log bridge events, warnings and errors.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
	// DNSResolver is a resolver used to resolve send destinations.
	// If nil, [dns.DefaultResolver] is used.
	DNSResolver DNSResolver
	// ListenPacket opens packet connections for the listener and the sender.
	// If nil, a net.ListenConfig is used.
	ListenPacket func(ctx context.Context, network, addr string) (net.PacketConn, error)
	// ReadTimeout bounds each blocking receive so the loop can observe
	// a stop request with no traffic arriving. Default is 250ms.
	ReadTimeout time.Duration
	// ErrorRetryDelay is the pause after a failed receive before the next
	// attempt, to avoid a tight error loop. Default is 50ms.
	ErrorRetryDelay time.Duration
}

// DNSResolver resolves host names to addresses.
type DNSResolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

func (o *Options) dnsResolver() DNSResolver {
	if o == nil || o.DNSResolver == nil {
		return dns.DefaultResolver()
	}
	return o.DNSResolver
}

func (o *Options) listenPacket(ctx context.Context, network, addr string) (net.PacketConn, error) {
	if o == nil || o.ListenPacket == nil {
		var lc net.ListenConfig
		return lc.ListenPacket(ctx, network, addr) //errtrace:skip
	}
	return o.ListenPacket(ctx, network, addr) //errtrace:skip
}

func (o *Options) readTimeout() time.Duration {
	if o == nil || o.ReadTimeout <= 0 {
		return defReadTimeout
	}
	return o.ReadTimeout
}

func (o *Options) errorRetryDelay() time.Duration {
	if o == nil || o.ErrorRetryDelay <= 0 {
		return defErrorRetryDelay
	}
	return o.ErrorRetryDelay
}
