package main

import (
	"context"
	"errors"
	"fmt"
	"lookalike/internal/api"
	"lookalike/internal/config"
	"lookalike/internal/resolution"
	"lookalike/pkg/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// setupServer creates the API server, starts it in the background and
// returns a function that gracefully stops it.
func setupServer(ctx context.Context, cfg *config.Config) (func(ctx context.Context), error) {
	mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	otel.SetMeterProvider(mp)

	deps := api.Deps{MeterProvider: mp}
	engineOpts := []resolution.Option{resolution.WithMeterProvider(mp)}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = api.NewTracerProvider(os.Stderr, cfg.Tracing.SampleRatio)
		if err != nil {
			return nil, err //nolint: wrapcheck
		}
		otel.SetTracerProvider(tp)
		deps.TracerProvider = tp
		engineOpts = append(engineOpts, resolution.WithTracerProvider(tp))
	}

	hunter, err := newHunter(cfg, engineOpts...)
	if err != nil {
		return nil, err
	}
	deps.Hunter = hunter

	opts := api.NewOptions(cfg)

	server, err := api.NewServer(ctx, deps, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create webserver: %w", err)
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
		if tp != nil {
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn(ctx, "could not stop tracer provider", zap.Error(err))
			}
		}
	}, nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the hunt API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver, err := setupServer(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not set up webserver", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
