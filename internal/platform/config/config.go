package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr             string
	Environment      string
	LogLevel         string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	BatchMaxItems    int
	BatchConcurrency int
	TracingEnabled   bool
}

const (
	DefaultAddr             = ":8080"
	DefaultEnvironment      = "dev"
	DefaultLogLevel         = "info"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultBatchMaxItems    = 500
	DefaultBatchConcurrency = 8
)

// FromEnv builds a Server config from environment variables so main stays lean.
// Unparseable or non-positive numeric values fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr:             stringEnv("IBAN_GATEWAY_ADDR", DefaultAddr),
		Environment:      stringEnv("IBAN_GATEWAY_ENV", DefaultEnvironment),
		LogLevel:         stringEnv("LOG_LEVEL", DefaultLogLevel),
		RequestTimeout:   durationEnv("REQUEST_TIMEOUT", DefaultRequestTimeout),
		ShutdownTimeout:  durationEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		BatchMaxItems:    intEnv("BATCH_MAX_ITEMS", DefaultBatchMaxItems),
		BatchConcurrency: intEnv("BATCH_CONCURRENCY", DefaultBatchConcurrency),
		TracingEnabled:   os.Getenv("TRACING_ENABLED") == "true",
	}
}

// IsProduction reports whether the gateway runs in the prod environment.
func (s Server) IsProduction() bool {
	return s.Environment == "prod"
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
