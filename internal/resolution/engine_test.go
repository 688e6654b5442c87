package resolution_test

import (
	"context"
	"fmt"
	"lookalike/internal/collector"
	"lookalike/internal/resolution"
	"lookalike/pkg/domain"
	"lookalike/pkg/serrors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mockdnsresolver "lookalike/pkg/dnsresolver/mock"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

var defaultOptions = resolution.Options{Concurrency: 10, Timeout: time.Second} //nolint: gochecknoglobals

func newEngine(t *testing.T, options resolution.Options, opts ...resolution.Option) (*mockdnsresolver.MockResolver,
	*resolution.Engine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	r := mockdnsresolver.NewMockResolver(ctrl)
	e, err := resolution.New(r, options, opts...)
	require.NoError(t, err)

	return r, e
}

// zoneResolver answers from a fixed table and reports NXDOMAIN for the rest.
func zoneResolver(records map[string]string) func(context.Context, string) (string, error) {
	return func(_ context.Context, name string) (string, error) {
		if addr, ok := records[name]; ok {
			return addr, nil
		}

		return "", serrors.With(serrors.ErrNotRegistered, "%s does not exist", name)
	}
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("cand%d.com", i)
	}

	return out
}

func TestNew_InvalidOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mockdnsresolver.NewMockResolver(ctrl)

	for name, tc := range map[string]struct {
		resolver *mockdnsresolver.MockResolver
		options  resolution.Options
	}{
		"zero concurrency": {r, resolution.Options{Concurrency: 0, Timeout: time.Second}},
		"zero timeout":     {r, resolution.Options{Concurrency: 1}},
		"negative qps":     {r, resolution.Options{Concurrency: 1, Timeout: time.Second, QPS: -1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := resolution.New(tc.resolver, tc.options)
			require.ErrorIs(t, err, serrors.ErrInvalidConfig)
		})
	}

	_, err := resolution.New(nil, defaultOptions)
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
}

func TestRun_ResultsEqualResolvableSubset(t *testing.T) {
	domains := names(200)
	records := map[string]string{}
	for i := 0; i < len(domains); i += 7 {
		records[domains[i]] = fmt.Sprintf("10.0.%d.%d", i/256, i%256)
	}

	for _, concurrency := range []int{1, 10, len(domains)} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			r, e := newEngine(t, resolution.Options{Concurrency: concurrency, Timeout: time.Second})
			r.EXPECT().LookupA(gomock.Any(), gomock.Any()).DoAndReturn(zoneResolver(records)).Times(len(domains))

			c := collector.New()
			summary, err := e.Run(context.Background(), domains, c)
			require.NoError(t, err)

			got := map[string]string{}
			for _, entry := range c.Entries() {
				got[entry.Domain] = entry.Address
			}
			require.Equal(t, records, got)
			require.Equal(t, len(records), c.Len())

			require.Equal(t, len(domains), summary.Dispatched)
			require.Equal(t, len(records), summary.Resolved)
			require.Equal(t, len(domains)-len(records), summary.NotRegistered)
			require.Zero(t, summary.Transient)
		})
	}
}

func TestRun_OutcomesExhaustiveAndExclusive(t *testing.T) {
	var (
		mu       sync.Mutex
		outcomes = map[string][]domain.Outcome{}
	)
	r, e := newEngine(t, resolution.Options{Concurrency: 4, Timeout: 50 * time.Millisecond},
		resolution.WithObserver(func(o domain.Outcome) {
			mu.Lock()
			outcomes[o.Domain] = append(outcomes[o.Domain], o)
			mu.Unlock()
		}))

	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, name string) (string, error) {
		switch name {
		case "ok.com":
			return "93.184.216.34", nil
		case "gone.com":
			return "", serrors.With(serrors.ErrNotRegistered, "nxdomain")
		case "slow.com":
			<-ctx.Done()

			return "", fmt.Errorf("lookup: %w", ctx.Err())
		case "bad.com":
			return "", serrors.With(serrors.ErrInvalidName, "label too long")
		case "servfail.com":
			return "", serrors.With(serrors.ErrUnavailable, "SERVFAIL")
		case "empty.com":
			return "", nil
		default:
			return "", fmt.Errorf("boom")
		}
	}).Times(7)

	domains := []string{"ok.com", "gone.com", "slow.com", "bad.com", "servfail.com", "empty.com", "weird.com"}
	c := collector.New()
	summary, err := e.Run(context.Background(), domains, c)
	require.NoError(t, err)

	require.Len(t, outcomes, len(domains))
	for _, d := range domains {
		require.Len(t, outcomes[d], 1, d)
	}

	require.Equal(t, domain.OutcomeResolved, outcomes["ok.com"][0].Kind)
	require.Equal(t, "93.184.216.34", outcomes["ok.com"][0].Address)
	require.Equal(t, domain.OutcomeNotRegistered, outcomes["gone.com"][0].Kind)

	for d, reason := range map[string]string{
		"slow.com":     domain.ReasonTimeout,
		"bad.com":      domain.ReasonInvalidName,
		"servfail.com": domain.ReasonUnavailable,
		"empty.com":    domain.ReasonNoAnswer,
		"weird.com":    domain.ReasonInternal,
	} {
		require.Equal(t, domain.OutcomeTransientFailure, outcomes[d][0].Kind, d)
		require.Equal(t, reason, outcomes[d][0].Reason, d)
		require.Empty(t, outcomes[d][0].Address, d)
	}

	require.Equal(t, []domain.ResultEntry{{Domain: "ok.com", Address: "93.184.216.34"}}, c.Entries())
	require.Equal(t, 7, summary.Dispatched)
	require.Equal(t, summary.Dispatched, summary.Resolved+summary.NotRegistered+summary.Transient)
	require.Equal(t, 5, summary.Transient)
	require.Equal(t, 1, summary.TransientReasons[domain.ReasonTimeout])
}

func TestRun_LateAnswerIsTimeout(t *testing.T) {
	r, e := newEngine(t, resolution.Options{Concurrency: 2, Timeout: 20 * time.Millisecond})

	// A resolver ignoring its deadline still ends in a timeout.
	r.EXPECT().LookupA(gomock.Any(), "late-nx.com").DoAndReturn(func(context.Context, string) (string, error) {
		time.Sleep(60 * time.Millisecond)

		return "", serrors.With(serrors.ErrNotRegistered, "nxdomain")
	})
	r.EXPECT().LookupA(gomock.Any(), "late-a.com").DoAndReturn(func(context.Context, string) (string, error) {
		time.Sleep(60 * time.Millisecond)

		return "10.0.0.1", nil
	})

	c := collector.New()
	summary, err := e.Run(context.Background(), []string{"late-nx.com", "late-a.com"}, c)
	require.NoError(t, err)
	require.Zero(t, c.Len())
	require.Zero(t, summary.NotRegistered)
	require.Equal(t, 2, summary.TransientReasons[domain.ReasonTimeout])
}

func TestRun_ConcurrencyIsBounded(t *testing.T) {
	const limit = 5
	r, e := newEngine(t, resolution.Options{Concurrency: limit, Timeout: time.Second})

	var inFlight, peak atomic.Int64
	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, string) (string, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)

		return "", serrors.KindOnly(serrors.ErrNotRegistered)
	}).Times(100)

	_, err := e.Run(context.Background(), names(100), collector.New())
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int64(limit))
	require.Positive(t, peak.Load())
}

func TestRun_NeverRetries(t *testing.T) {
	r, e := newEngine(t, defaultOptions)
	r.EXPECT().LookupA(gomock.Any(), "flaky.com").Return("", serrors.With(serrors.ErrUnavailable, "SERVFAIL")).Times(1)

	summary, err := e.Run(context.Background(), []string{"flaky.com"}, collector.New())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Transient)
}

func TestRun_DuplicatesAreResolvedPerOccurrence(t *testing.T) {
	r, e := newEngine(t, defaultOptions)
	r.EXPECT().LookupA(gomock.Any(), "ozn.com").Return("93.184.216.34", nil).Times(2)

	c := collector.New()
	_, err := e.Run(context.Background(), []string{"ozn.com", "ozn.com"}, c)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestRun_CancelledContextFailsFast(t *testing.T) {
	r, e := newEngine(t, resolution.Options{Concurrency: 1, Timeout: time.Hour})
	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	summary, err := e.Run(ctx, names(50), collector.New())
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Second)
	require.Equal(t, 50, summary.Transient)
	require.Equal(t, 50, summary.TransientReasons[domain.ReasonTimeout])
}

func TestRun_EmptyInput(t *testing.T) {
	_, e := newEngine(t, defaultOptions)

	summary, err := e.Run(context.Background(), nil, collector.New())
	require.NoError(t, err)
	require.Zero(t, summary.Dispatched)

	_, err = e.Run(context.Background(), nil, nil)
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
}

func TestRun_StartHookPrecedesOutcomes(t *testing.T) {
	var (
		total    atomic.Int64
		observed atomic.Int64
		early    atomic.Bool
	)
	r, e := newEngine(t, defaultOptions,
		resolution.WithStartHook(func(n int) { total.Store(int64(n)) }),
		resolution.WithObserver(func(domain.Outcome) {
			if total.Load() == 0 {
				early.Store(true)
			}
			observed.Add(1)
		}),
	)
	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).DoAndReturn(zoneResolver(nil)).Times(25)

	_, err := e.Run(context.Background(), names(25), collector.New())
	require.NoError(t, err)
	require.EqualValues(t, 25, total.Load())
	require.EqualValues(t, 25, observed.Load())
	require.False(t, early.Load())
}

func TestRun_QPSCap(t *testing.T) {
	r, e := newEngine(t, resolution.Options{Concurrency: 10, Timeout: time.Second, QPS: 20})
	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).Return("", serrors.KindOnly(serrors.ErrNotRegistered)).Times(30)

	start := time.Now()
	summary, err := e.Run(context.Background(), names(30), collector.New())
	require.NoError(t, err)
	require.Equal(t, 30, summary.NotRegistered)
	// 20 tokens of burst, the remaining 10 at 20/s.
	require.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)
}

func TestRun_RecordsMetricsAndSpans(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	r, e := newEngine(t, defaultOptions, resolution.WithMeterProvider(mp), resolution.WithTracerProvider(tp))
	r.EXPECT().LookupA(gomock.Any(), gomock.Any()).DoAndReturn(zoneResolver(map[string]string{"cand0.com": "10.0.0.1"})).
		Times(3)

	_, err := e.Run(context.Background(), names(3), collector.New())
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var total int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "lookalike_lookups_total" {
			continue
		}
		sum, ok := m.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		for _, dp := range sum.DataPoints {
			total += dp.Value
		}
	}
	require.EqualValues(t, 3, total)

	require.Len(t, spans.Ended(), 3)
	for _, s := range spans.Ended() {
		require.Equal(t, "dns.lookup", s.Name())
	}
}

func TestClassify(t *testing.T) {
	live := context.Background()
	expired, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	o := resolution.Classify(live, "ozn.com", "93.184.216.34", nil)
	require.Equal(t, domain.OutcomeResolved, o.Kind)
	require.Equal(t, "93.184.216.34", o.Address)
	require.NoError(t, o.Err)

	o = resolution.Classify(live, "ozon.win", "", serrors.With(serrors.ErrNotRegistered, "nxdomain"))
	require.Equal(t, domain.OutcomeNotRegistered, o.Kind)
	require.Empty(t, o.Reason)

	o = resolution.Classify(expired, "ozon.win", "", serrors.With(serrors.ErrNotRegistered, "nxdomain"))
	require.Equal(t, domain.OutcomeTransientFailure, o.Kind)
	require.Equal(t, domain.ReasonTimeout, o.Reason)
	require.ErrorIs(t, o.Err, serrors.ErrTimeout)

	o = resolution.Classify(live, "x.com", "", fmt.Errorf("wrapped: %w", context.DeadlineExceeded))
	require.Equal(t, domain.ReasonTimeout, o.Reason)

	o = resolution.Classify(live, "x.com", "", fmt.Errorf("wrapped: %w", serrors.With(serrors.ErrUnavailable, "REFUSED")))
	require.Equal(t, domain.ReasonUnavailable, o.Reason)
}
