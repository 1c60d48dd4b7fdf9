// Package dns provides destination host resolution for the bridge.
package dns

//go:generate errtrace -w .

import (
	"context"
	"net"
	"time"

	"braces.dev/errtrace"
	"github.com/miekg/dns"
)

// Resolver wraps net.Resolver with an optional direct lookup path
// against a specific nameserver.
type Resolver struct {
	net.Resolver

	// NameServer specifies the DNS server address (e.g., "8.8.8.8:53").
	// If empty, the system's default resolver configuration is used.
	NameServer string
	// Timeout specifies the timeout for direct DNS queries.
	// If zero, defaults to 5 seconds.
	Timeout time.Duration
}

// LookupIP resolves host to a list of addresses.
// An IP literal resolves to itself without any query.
// When NameServer is set, A and AAAA records are queried directly,
// otherwise the lookup goes through the embedded net.Resolver.
func (r *Resolver) LookupIP(ctx context.Context, network, host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []net.IP{ip}, nil
	}

	if r.NameServer != "" {
		return errtrace.Wrap2(r.exchangeIP(ctx, network, host))
	}

	ips, err := r.Resolver.LookupIP(ctx, network, host)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	for i, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			ips[i] = ip4
		}
	}
	return ips, nil
}

// exchangeIP queries the configured nameserver for A and/or AAAA records.
func (r *Resolver) exchangeIP(ctx context.Context, network, host string) ([]net.IP, error) {
	var qtypes []uint16
	switch network {
	case "ip4":
		qtypes = []uint16{dns.TypeA}
	case "ip6":
		qtypes = []uint16{dns.TypeAAAA}
	default:
		qtypes = []uint16{dns.TypeA, dns.TypeAAAA}
	}

	client := &dns.Client{Timeout: r.timeout()}
	nameserver := r.nameserver()

	var ips []net.IP
	var lastErr error
	for _, qtype := range qtypes {
		m := new(dns.Msg)
		m.SetQuestion(dns.Fqdn(host), qtype)
		m.RecursionDesired = true

		resp, _, err := client.ExchangeContext(ctx, m, nameserver)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.Rcode != dns.RcodeSuccess {
			lastErr = &net.DNSError{
				Err:        dns.RcodeToString[resp.Rcode],
				Name:       host,
				IsNotFound: resp.Rcode == dns.RcodeNameError,
			}
			continue
		}
		for _, ans := range resp.Answer {
			switch rr := ans.(type) {
			case *dns.A:
				ips = append(ips, rr.A)
			case *dns.AAAA:
				ips = append(ips, rr.AAAA)
			}
		}
	}

	if len(ips) == 0 {
		if lastErr != nil {
			return nil, errtrace.Wrap(lastErr)
		}
		return nil, errtrace.Wrap(&net.DNSError{
			Err:        "no addresses found",
			Name:       host,
			IsNotFound: true,
		})
	}
	return ips, nil
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *Resolver) nameserver() string {
	if _, _, err := net.SplitHostPort(r.NameServer); err != nil {
		return net.JoinHostPort(r.NameServer, "53") //nolint:nilerr
	}
	return r.NameServer
}

var defResolver = &Resolver{}

// DefaultResolver returns the resolver used when no resolver is configured.
func DefaultResolver() *Resolver { return defResolver }

// LookupIP resolves host using [DefaultResolver].
func LookupIP(ctx context.Context, host string) ([]net.IP, error) {
	return errtrace.Wrap2(defResolver.LookupIP(ctx, "ip", host))
}
