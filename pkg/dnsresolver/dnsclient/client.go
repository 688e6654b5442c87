// Package dnsclient provides a dnsresolver.Resolver that queries upstream DNS
// servers directly with github.com/miekg/dns.
package dnsclient

import (
	"context"
	"errors"
	"fmt"
	"lookalike/pkg/dnsresolver"
	"lookalike/pkg/serrors"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
)

const (
	// DefaultResolvConf is read when no upstream server is configured.
	DefaultResolvConf = "/etc/resolv.conf"
	// fallbackTimeout bounds an exchange whose context has no deadline.
	fallbackTimeout = 5 * time.Second
)

// Options configure the upstream servers and transport.
type Options struct {
	// Servers are upstream resolvers as "host" or "host:port". Port 53 is
	// assumed when missing. When empty, ResolvConf is read.
	Servers []string
	// Network is "udp" (default), "tcp" or "tcp-tls".
	Network string
	// ResolvConf is the resolv.conf file used when Servers is empty.
	ResolvConf string
}

// Client sends A queries to its upstream servers in round-robin order. It is
// safe for concurrent use.
type Client struct {
	network string
	servers []string
	next    atomic.Uint64
}

// Ensure Client conforms to the dnsresolver.Resolver interface at compile time.
var _ dnsresolver.Resolver = (*Client)(nil)

// New creates a Client. It fails with serrors.ErrInvalidConfig when no usable
// upstream server is found, since no lookup could ever be dispatched.
func New(opts Options) (*Client, error) {
	network := opts.Network
	if network == "" {
		network = "udp"
	}
	switch network {
	case "udp", "tcp", "tcp-tls":
	default:
		return nil, serrors.With(serrors.ErrInvalidConfig, "unsupported DNS network %q", network)
	}

	servers := make([]string, 0, len(opts.Servers))
	for _, s := range opts.Servers {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		addr, err := normalizeServer(s)
		if err != nil {
			return nil, err
		}
		servers = append(servers, addr)
	}

	if len(servers) == 0 {
		path := opts.ResolvConf
		if path == "" {
			path = DefaultResolvConf
		}
		cfg, err := dns.ClientConfigFromFile(path)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "no DNS servers configured and %s is unreadable", path)
		}
		for _, s := range cfg.Servers {
			servers = append(servers, net.JoinHostPort(s, cfg.Port))
		}
	}

	if len(servers) == 0 {
		return nil, serrors.With(serrors.ErrInvalidConfig, "no DNS servers configured")
	}

	return &Client{network: network, servers: servers}, nil
}

// normalizeServer appends the default port to addresses without one.
func normalizeServer(addr string) (string, error) {
	if host, port, err := net.SplitHostPort(addr); err == nil {
		if host == "" || port == "" {
			return "", serrors.With(serrors.ErrInvalidConfig, "invalid DNS server address %q", addr)
		}

		return addr, nil
	}

	host := strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	if net.ParseIP(host) == nil && strings.Contains(host, ":") {
		return "", serrors.With(serrors.ErrInvalidConfig, "invalid DNS server address %q", addr)
	}

	return net.JoinHostPort(host, "53"), nil
}

// Servers returns the upstream servers in use.
func (c *Client) Servers() []string {
	return append([]string(nil), c.servers...)
}

func (c *Client) server() string {
	n := c.next.Add(1) - 1

	return c.servers[n%uint64(len(c.servers))]
}

// LookupA sends one recursive A query for name. A truncated UDP answer is
// repeated over TCP against the same server.
func (c *Client) LookupA(ctx context.Context, name string) (string, error) {
	ascii, err := dnsresolver.ToASCII(name)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(ascii), dns.TypeA)
	msg.RecursionDesired = true

	server := c.server()
	resp, err := c.exchange(ctx, c.network, msg, server)
	if err == nil && resp.Truncated && c.network == "udp" {
		resp, err = c.exchange(ctx, "tcp", msg, server)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", serrors.Wrap(serrors.ErrTimeout, ctxErr, "lookup %s", ascii)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "", serrors.Wrap(serrors.ErrTimeout, err, "lookup %s via %s", ascii, server)
		}

		return "", serrors.Wrap(serrors.ErrUnavailable, err, "lookup %s via %s", ascii, server)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return "", serrors.With(serrors.ErrNotRegistered, "%s does not exist", ascii)
	default:
		return "", serrors.With(serrors.ErrUnavailable, "lookup %s via %s: %s", ascii, server, rcodeName(resp.Rcode))
	}

	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok && a.A != nil {
			return a.A.String(), nil
		}
	}

	return "", serrors.With(serrors.ErrNoAnswer, "%s has no A record", ascii)
}

func (c *Client) exchange(ctx context.Context, network string, msg *dns.Msg, server string) (*dns.Msg, error) {
	timeout := fallbackTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	client := &dns.Client{Net: network, Timeout: timeout}
	resp, _, err := client.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, fmt.Errorf("could not exchange: %w", err)
	}
	if resp == nil {
		return nil, serrors.With(serrors.ErrInternal, "empty response from %s", server)
	}

	return resp, nil
}

func rcodeName(rcode int) string {
	if s, ok := dns.RcodeToString[rcode]; ok {
		return s
	}

	return fmt.Sprintf("RCODE%d", rcode)
}
