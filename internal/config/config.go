package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, DNS resolution, hunts, the HTTP
// server, API authentication and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Resolver selects and configures the DNS client used for lookups
	Resolver struct {
		// Kind is "dns" to query Servers directly or "system" to use the host resolver
		Kind string `env:"RESOLVER_KIND" env-default:"dns" yaml:"kind"`
		// Servers are upstream resolvers (host or host:port); empty means /etc/resolv.conf
		Servers []string `env:"RESOLVER_SERVERS" env-separator:"," yaml:"servers"`
		// Network is the DNS transport: udp, tcp or tcp-tls
		Network string `env:"RESOLVER_NETWORK" env-default:"udp" yaml:"network"`
	} `yaml:"resolver"`

	// Hunt contains the defaults of a hunt run
	Hunt struct {
		// Concurrency is the maximum number of lookups in flight
		Concurrency int `env:"HUNT_CONCURRENCY" env-default:"100" yaml:"concurrency"`
		// Timeout bounds a single lookup
		Timeout time.Duration `env:"HUNT_TIMEOUT" env-default:"1s" yaml:"timeout"`
		// QPS caps lookups per second; 0 disables the cap
		QPS float64 `env:"HUNT_QPS" env-default:"0" yaml:"qps"`
		// Dedupe removes repeated candidate domains before resolution
		Dedupe bool `env:"HUNT_DEDUPE" env-default:"false" yaml:"dedupe"`
		// Zones overrides the built-in zone list
		Zones []string `env:"HUNT_ZONES" env-separator:"," yaml:"zones"`
		// Strategies selects variant strategies (append, homoglyph, split, delete); empty means all
		Strategies []string `env:"HUNT_STRATEGIES" env-separator:"," yaml:"strategies"`
	} `yaml:"hunt"`

	// Tracing configures span export of lookups and API requests
	Tracing struct {
		// Enabled writes finished spans as JSON to stderr
		Enabled bool `env:"TRACING_ENABLED" env-default:"false" yaml:"enabled"`
		// SampleRatio is the fraction of root spans recorded, between 0 and 1
		SampleRatio float64 `env:"TRACING_SAMPLE_RATIO" env-default:"1" yaml:"sampleRatio"`
	} `yaml:"tracing"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request, hunts included
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"5m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of a hunt request body
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists browser origins allowed to call the API ("*" for any)
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// JWT holds the RSA keys used to sign and verify API tokens
	JWT struct {
		// PublicKey verifies bearer tokens; when empty the API is unauthenticated
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens minted by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration is then read from the
// environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
