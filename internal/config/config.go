// Package config loads the idgen configuration from the environment, optionally seeded
// from the nearest .env file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	"github.com/allisson/idgen/internal/identifier/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server
	ServerHost            string
	ServerPort            int
	ServerShutdownTimeout time.Duration

	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string

	// Per client IP token bucket applied to /v1 routes.
	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	// CORSAllowOrigins is a comma-separated origin list.
	CORSEnabled      bool
	CORSAllowOrigins string

	// Metrics are served on MetricsPort, never on the API port.
	MetricsEnabled   bool
	MetricsNamespace string
	MetricsPort      int

	// GeneratorMaxBatchSize caps the count of a single generation.
	GeneratorMaxBatchSize int
	// Lengths used when a request omits one.
	GeneratorDefaultNanoIDLength    int
	GeneratorDefaultHashIDMinLength int
	GeneratorDefaultSlugLength      int
	// GeneratorSeed selects the deterministic random source when non-zero.
	GeneratorSeed uint64
}

// Load reads the configuration. Variables already set in the environment win over .env.
func Load() *Config {
	if path, ok := findDotEnv(); ok {
		_ = godotenv.Load(path)
	}

	seed := env.GetInt("GENERATOR_SEED", 0)
	if seed < 0 {
		seed = 0
	}

	return &Config{
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		LogLevel: env.GetString("LOG_LEVEL", "info"),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "idgen"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		GeneratorMaxBatchSize:           env.GetInt("GENERATOR_MAX_BATCH_SIZE", domain.MaxBatchSize),
		GeneratorDefaultNanoIDLength:    env.GetInt("GENERATOR_DEFAULT_NANOID_LENGTH", domain.DefaultNanoIDLength),
		GeneratorDefaultHashIDMinLength: env.GetInt("GENERATOR_DEFAULT_HASHID_MIN_LENGTH", domain.DefaultHashIDMinLength),
		GeneratorDefaultSlugLength:      env.GetInt("GENERATOR_DEFAULT_SLUG_LENGTH", domain.DefaultSlugLength),
		GeneratorSeed:                   uint64(seed),
	}
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	lengthRules := []validation.Rule{validation.Required, validation.Min(1), validation.Max(domain.MaxLength)}

	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Min(0), validation.Max(65535)),
		validation.Field(&c.ServerShutdownTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.0))),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.CORSAllowOrigins, validation.When(c.CORSEnabled, validation.Required)),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
		validation.Field(&c.MetricsPort, validation.When(c.MetricsEnabled,
			validation.Min(0), validation.Max(65535),
			validation.When(c.ServerPort != 0, validation.NotIn(c.ServerPort).Error("must differ from the server port")),
		)),
		validation.Field(&c.GeneratorMaxBatchSize, validation.Required, validation.Min(1)),
		validation.Field(&c.GeneratorDefaultNanoIDLength, lengthRules...),
		validation.Field(&c.GeneratorDefaultHashIDMinLength, lengthRules...),
		validation.Field(&c.GeneratorDefaultSlugLength, lengthRules...),
	)
}

// GetGinMode maps the log level to a gin mode. Only "debug" enables gin's debug output.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// findDotEnv walks from the working directory up to the filesystem root and returns the
// first .env file found.
func findDotEnv() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
