// Package resolution resolves candidate domains for A records with bounded
// concurrency and classifies every lookup into exactly one terminal outcome.
package resolution

import (
	"context"
	"errors"
	"lookalike/internal/config"
	"lookalike/pkg/dnsresolver"
	"lookalike/pkg/domain"
	"lookalike/pkg/logger"
	"lookalike/pkg/metrics"
	"lookalike/pkg/serrors"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const instrumentationName = "lookalike/internal/resolution"

// Sink receives the resolved domains of a run. Append is called from many
// goroutines at once.
type Sink interface {
	Append(entry domain.ResultEntry)
}

// Options configure concurrency and timing of a run.
type Options struct {
	// Concurrency is the maximum number of lookups in flight.
	Concurrency int
	// Timeout bounds each lookup.
	Timeout time.Duration
	// QPS caps how many lookups start per second. Zero means no cap.
	QPS float64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Concurrency: cfg.Hunt.Concurrency,
		Timeout:     cfg.Hunt.Timeout,
		QPS:         cfg.Hunt.QPS,
	}
}

// Option customizes an Engine.
type Option func(*Engine)

// WithMeterProvider records metrics through mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(e *Engine) { e.meterProvider = mp }
}

// WithTracerProvider records spans through tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) { e.tracerProvider = tp }
}

// WithObserver calls fn once per terminal outcome, from the goroutine that
// produced it. fn must be safe for concurrent use.
func WithObserver(fn func(domain.Outcome)) Option {
	return func(e *Engine) { e.observer = fn }
}

// WithStartHook calls fn with the number of domains of a run before its
// first lookup is dispatched.
func WithStartHook(fn func(total int)) Option {
	return func(e *Engine) { e.onStart = fn }
}

// Engine runs DNS lookups. One Engine may serve any number of runs, also
// concurrently.
type Engine struct {
	resolver dnsresolver.Resolver
	options  Options
	limiter  *rate.Limiter
	observer func(domain.Outcome)
	onStart  func(total int)

	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metrics        *metrics.Resolution
	tracer         trace.Tracer
}

// New creates an Engine. A nil resolver, a non-positive concurrency or a
// non-positive timeout make every run impossible and are rejected with
// serrors.ErrInvalidConfig.
func New(resolver dnsresolver.Resolver, options Options, opts ...Option) (*Engine, error) {
	switch {
	case resolver == nil:
		return nil, serrors.With(serrors.ErrInvalidConfig, "resolver is required")
	case options.Concurrency <= 0:
		return nil, serrors.With(serrors.ErrInvalidConfig, "concurrency must be positive, got %d", options.Concurrency)
	case options.Timeout <= 0:
		return nil, serrors.With(serrors.ErrInvalidConfig, "lookup timeout must be positive, got %s", options.Timeout)
	case options.QPS < 0:
		return nil, serrors.With(serrors.ErrInvalidConfig, "qps must not be negative, got %v", options.QPS)
	}

	e := &Engine{
		resolver:       resolver,
		options:        options,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if options.QPS > 0 {
		burst := int(options.QPS)
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(options.QPS), burst)
	}

	m, err := metrics.NewResolution(e.meterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create metrics")
	}
	e.metrics = m
	e.tracer = e.tracerProvider.Tracer(instrumentationName)

	return e, nil
}

// Run looks up every domain exactly once and returns when all of them reached a
// terminal outcome. Resolved domains are appended to sink with their first
// IPv4 address. Failed lookups are counted in the summary and never turned into
// the returned error; a cancelled ctx makes the remaining lookups end quickly
// as timeouts.
func (e *Engine) Run(ctx context.Context, domains []string, sink Sink) (domain.Summary, error) {
	if sink == nil {
		return domain.Summary{}, serrors.With(serrors.ErrInvalidConfig, "result sink is required")
	}

	start := time.Now()
	summary := domain.Summary{
		Dispatched:       len(domains),
		TransientReasons: map[string]int{},
	}
	var mu sync.Mutex

	if e.onStart != nil {
		e.onStart(len(domains))
	}

	g := new(errgroup.Group)
	g.SetLimit(e.options.Concurrency)
	for _, name := range domains {
		g.Go(func() error {
			outcome := e.lookup(ctx, name)
			if outcome.Kind == domain.OutcomeResolved {
				sink.Append(domain.ResultEntry{Domain: outcome.Domain, Address: outcome.Address})
			}

			mu.Lock()
			tally(&summary, outcome)
			mu.Unlock()

			if e.observer != nil {
				e.observer(outcome)
			}

			return nil
		})
	}
	_ = g.Wait()

	summary.Elapsed = time.Since(start)
	logger.Debug(ctx, "resolution finished",
		zap.Int("dispatched", summary.Dispatched),
		zap.Int("resolved", summary.Resolved),
		zap.Int("notRegistered", summary.NotRegistered),
		zap.Int("transient", summary.Transient),
		zap.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

func tally(s *domain.Summary, o domain.Outcome) {
	switch o.Kind {
	case domain.OutcomeResolved:
		s.Resolved++
	case domain.OutcomeNotRegistered:
		s.NotRegistered++
	case domain.OutcomeTransientFailure:
		s.Transient++
		s.TransientReasons[o.Reason]++
	}
}

// lookup performs one query under its own deadline.
func (e *Engine) lookup(ctx context.Context, name string) domain.Outcome {
	ctx, span := e.tracer.Start(ctx, "dns.lookup",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("dns.question.name", name)))
	defer span.End()

	e.metrics.Started(ctx)
	start := time.Now()

	var outcome domain.Outcome
	if err := e.wait(ctx); err != nil {
		outcome = domain.Outcome{
			Domain: name,
			Kind:   domain.OutcomeTransientFailure,
			Reason: domain.ReasonTimeout,
			Err:    serrors.Wrap(serrors.ErrTimeout, err, "waiting for rate limiter"),
		}
	} else {
		lookupCtx, cancel := context.WithTimeout(ctx, e.options.Timeout)
		addr, err := e.resolver.LookupA(lookupCtx, name)
		outcome = Classify(lookupCtx, name, addr, err)
		cancel()
	}

	e.metrics.Finished(ctx, string(outcome.Kind), outcome.Reason, time.Since(start))

	span.SetAttributes(attribute.String("lookalike.outcome", string(outcome.Kind)))
	switch outcome.Kind {
	case domain.OutcomeResolved:
		span.SetAttributes(attribute.String("dns.answer.address", outcome.Address))
	case domain.OutcomeTransientFailure:
		span.SetStatus(codes.Error, outcome.Reason)
	}

	if logger.IsDebug(ctx) {
		fields := []zap.Field{zap.String("domain", name), zap.String("outcome", string(outcome.Kind))}
		if outcome.Err != nil {
			fields = append(fields, zap.Error(outcome.Err))
		}
		logger.Debug(ctx, "lookup finished", fields...)
	}

	return outcome
}

func (e *Engine) wait(ctx context.Context) error {
	if e.limiter == nil {
		return ctx.Err()
	}

	return e.limiter.Wait(ctx) //nolint: wrapcheck
}

// Classify maps the result of one lookup to its terminal outcome. lookupCtx is
// the context the lookup ran under: once its deadline has passed the outcome
// is a timeout whatever the resolver returned, so a late NXDOMAIN is never
// reported as not registered.
func Classify(lookupCtx context.Context, name, addr string, err error) domain.Outcome {
	o := domain.Outcome{Domain: name}

	if ctxErr := lookupCtx.Err(); ctxErr != nil {
		o.Kind = domain.OutcomeTransientFailure
		o.Reason = domain.ReasonTimeout
		o.Err = serrors.Wrap(serrors.ErrTimeout, ctxErr, "lookup %s", name)
		if err != nil {
			o.Err = serrors.Wrap(serrors.ErrTimeout, err, "lookup %s", name)
		}

		return o
	}

	switch {
	case err == nil && addr != "":
		o.Kind = domain.OutcomeResolved
		o.Address = addr
	case err == nil:
		o.Kind = domain.OutcomeTransientFailure
		o.Reason = domain.ReasonNoAnswer
		o.Err = serrors.With(serrors.ErrNoAnswer, "%s returned no address", name)
	case errors.Is(err, serrors.ErrNotRegistered):
		o.Kind = domain.OutcomeNotRegistered
		o.Err = err
	default:
		o.Kind = domain.OutcomeTransientFailure
		o.Reason = reason(err)
		o.Err = err
	}

	return o
}

func reason(err error) string {
	switch serrors.KindOf(err) {
	case serrors.ErrTimeout:
		return domain.ReasonTimeout
	case serrors.ErrNoAnswer:
		return domain.ReasonNoAnswer
	case serrors.ErrInvalidName:
		return domain.ReasonInvalidName
	case serrors.ErrUnavailable:
		return domain.ReasonUnavailable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ReasonTimeout
	}

	return domain.ReasonInternal
}
