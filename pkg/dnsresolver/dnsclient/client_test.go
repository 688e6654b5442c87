package dnsclient_test

import (
	"context"
	"lookalike/pkg/dnsresolver/dnsclient"
	"lookalike/pkg/serrors"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/require"
)

// testZone answers like an upstream recursive resolver would for a handful of names.
type testZone struct {
	queries atomic.Int64
	names   atomic.Value
}

func (z *testZone) ServeDNS(w dns.ResponseWriter, r *dns.Msg) {
	z.queries.Add(1)
	q := r.Question[0]
	z.names.Store(q.Name)

	m := new(dns.Msg)
	m.SetReply(r)

	switch q.Name {
	case "ozn.com.":
		m.Answer = append(m.Answer,
			&dns.A{
				Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
				A:   net.ParseIP("93.184.216.34"),
			},
			&dns.A{
				Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
				A:   net.ParseIP("93.184.216.35"),
			})
	case "www.ozn.com.":
		m.Answer = append(m.Answer,
			&dns.CNAME{
				Hdr:    dns.RR_Header{Name: q.Name, Rrtype: dns.TypeCNAME, Class: dns.ClassINET, Ttl: 60},
				Target: "ozn.com.",
			},
			&dns.A{
				Hdr: dns.RR_Header{Name: "ozn.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
				A:   net.ParseIP("93.184.216.34"),
			})
	case "xn--zon-red.com.":
		m.Answer = append(m.Answer, &dns.A{
			Hdr: dns.RR_Header{Name: q.Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
			A:   net.ParseIP("203.0.113.7"),
		})
	case "nodata.com.":
		// NOERROR without answers
	case "broken.com.":
		m.Rcode = dns.RcodeServerFailure
	case "refused.com.":
		m.Rcode = dns.RcodeRefused
	case "slow.com.":
		return // never answer
	default:
		m.Rcode = dns.RcodeNameError
	}

	_ = w.WriteMsg(m)
}

func startServer(t *testing.T, zone *testZone) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)

	started := make(chan struct{})
	srv := &dns.Server{PacketConn: pc, Handler: zone, NotifyStartedFunc: func() { close(started) }}
	go func() { _ = srv.ActivateAndServe() }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("dns server did not start")
	}
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func newClient(t *testing.T, zone *testZone) *dnsclient.Client {
	t.Helper()
	c, err := dnsclient.New(dnsclient.Options{Servers: []string{startServer(t, zone)}})
	require.NoError(t, err)

	return c
}

func lookupCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestLookupA_FirstAddress(t *testing.T) {
	c := newClient(t, &testZone{})

	addr, err := c.LookupA(lookupCtx(t), "ozn.com")
	require.NoError(t, err)
	require.Equal(t, "93.184.216.34", addr)
}

func TestLookupA_FollowsAnswerToFirstA(t *testing.T) {
	c := newClient(t, &testZone{})

	addr, err := c.LookupA(lookupCtx(t), "www.ozn.com")
	require.NoError(t, err)
	require.Equal(t, "93.184.216.34", addr)
}

func TestLookupA_HomoglyphIsSentAsPunycode(t *testing.T) {
	zone := &testZone{}
	c := newClient(t, zone)

	addr, err := c.LookupA(lookupCtx(t), "оzon.com")
	require.NoError(t, err)
	require.Equal(t, "203.0.113.7", addr)
	require.Equal(t, "xn--zon-red.com.", zone.names.Load())
}

func TestLookupA_NXDOMAIN(t *testing.T) {
	c := newClient(t, &testZone{})

	_, err := c.LookupA(lookupCtx(t), "ozon.win")
	require.ErrorIs(t, err, serrors.ErrNotRegistered)
}

func TestLookupA_TransientKinds(t *testing.T) {
	c := newClient(t, &testZone{})

	cases := map[string]serrors.Kind{
		"nodata.com":  serrors.ErrNoAnswer,
		"broken.com":  serrors.ErrUnavailable,
		"refused.com": serrors.ErrUnavailable,
	}
	for name, kind := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := c.LookupA(lookupCtx(t), name)
			require.ErrorIs(t, err, kind)
			require.NotErrorIs(t, err, serrors.ErrNotRegistered)
		})
	}
}

func TestLookupA_TimeoutIsNotNXDOMAIN(t *testing.T) {
	c := newClient(t, &testZone{})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.LookupA(ctx, "slow.com")
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.NotErrorIs(t, err, serrors.ErrNotRegistered)
	require.Less(t, time.Since(start), time.Second)
}

func TestLookupA_InvalidNameNeverSent(t *testing.T) {
	zone := &testZone{}
	c := newClient(t, zone)

	_, err := c.LookupA(lookupCtx(t), "oz..com")
	require.ErrorIs(t, err, serrors.ErrInvalidName)
	require.Zero(t, zone.queries.Load())
}

func TestLookupA_RoundRobin(t *testing.T) {
	a, b := &testZone{}, &testZone{}
	c, err := dnsclient.New(dnsclient.Options{Servers: []string{startServer(t, a), startServer(t, b)}})
	require.NoError(t, err)

	for range 4 {
		_, err := c.LookupA(lookupCtx(t), "ozn.com")
		require.NoError(t, err)
	}
	require.EqualValues(t, 2, a.queries.Load())
	require.EqualValues(t, 2, b.queries.Load())
}

func TestNew_Servers(t *testing.T) {
	c, err := dnsclient.New(dnsclient.Options{Servers: []string{"8.8.8.8", "1.1.1.1:5353", "2001:db8::1", " "}})
	require.NoError(t, err)
	require.Equal(t, []string{"8.8.8.8:53", "1.1.1.1:5353", "[2001:db8::1]:53"}, c.Servers())
}

func TestNew_ResolvConfFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte("nameserver 9.9.9.9\nnameserver 149.112.112.112\n"), 0o600))

	c, err := dnsclient.New(dnsclient.Options{ResolvConf: path})
	require.NoError(t, err)
	require.Equal(t, []string{"9.9.9.9:53", "149.112.112.112:53"}, c.Servers())
}

func TestNew_Invalid(t *testing.T) {
	_, err := dnsclient.New(dnsclient.Options{ResolvConf: filepath.Join(t.TempDir(), "missing")})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = dnsclient.New(dnsclient.Options{Servers: []string{"8.8.8.8"}, Network: "quic"})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = dnsclient.New(dnsclient.Options{Servers: []string{"a:b:c"}})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
}
