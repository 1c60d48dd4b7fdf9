package dns

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolver_LookupIP_Literal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host string
		want []net.IP
	}{
		{"ipv4", "127.0.0.1", []net.IP{net.ParseIP("127.0.0.1")}},
		{"ipv6", "::1", []net.IP{net.ParseIP("::1")}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			// A literal must short-circuit: the unreachable nameserver
			// would fail any actual query.
			r := &Resolver{NameServer: "192.0.2.1:53"}
			got, err := r.LookupIP(t.Context(), "ip", c.host)
			if err != nil {
				t.Fatalf("r.LookupIP(ctx, \"ip\", %q) error = %v, want nil", c.host, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("r.LookupIP(ctx, \"ip\", %q) = %v, want %v\ndiff (-got +want):\n%v",
					c.host, got, c.want, diff)
			}
		})
	}
}

func TestResolver_Nameserver(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"host only gets default port", "8.8.8.8", "8.8.8.8:53"},
		{"host and port kept", "8.8.8.8:5353", "8.8.8.8:5353"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			r := &Resolver{NameServer: c.in}
			if got := r.nameserver(); got != c.want {
				t.Errorf("r.nameserver() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestDefaultResolver(t *testing.T) {
	t.Parallel()

	if DefaultResolver() == nil {
		t.Fatal("DefaultResolver() = nil, want resolver")
	}
}
