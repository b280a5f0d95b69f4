// Package config reads settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPAddr string
	TLSCert  string
	TLSKey   string

	// CatalogPath points to a YAML menu; empty uses the embedded one.
	CatalogPath string

	// RedisAddr enables the Redis session tracker when set.
	RedisAddr  string
	SessionTTL time.Duration
	SweepEvery time.Duration

	OTELHost         string
	TraceProbability float64

	ShutdownTimeout time.Duration
}

// Load reads .env files when present and then the process environment.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)

	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		LogLevel: get("LOG_LEVEL", "info"),

		HTTPAddr: get("HTTP_ADDR", ":8080"),
		TLSCert:  get("TLS_CERT", ""),
		TLSKey:   get("TLS_KEY", ""),

		CatalogPath: get("CATALOG_PATH", ""),

		RedisAddr:  get("REDIS_ADDR", ""),
		SessionTTL: getDuration("SESSION_TTL", 2*time.Hour),
		SweepEvery: getDuration("SWEEP_EVERY", time.Minute),

		OTELHost:         get("OTEL_HOST", ""),
		TraceProbability: getFloat("TRACE_PROBABILITY", 1.0),

		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n := getInt(k, -1); n >= 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
