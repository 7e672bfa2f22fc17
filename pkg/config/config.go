package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"lumis/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	BackendURL     string
	BackendTimeout time.Duration

	SessionTTL          time.Duration
	SessionKey          []byte
	SessionKeyGenerated bool
	SessionSecure       bool

	SiteTimezone     string
	Location         *time.Location
	AcknowledgeDelay time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger

	problems []string
}

// Load reads an optional .env file, then the process environment. Invalid
// configuration is fatal.
func Load(serviceName string) *Config {
	_ = godotenv.Load()

	cfg := FromEnv(logger.New(logger.Config{
		Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
		Format:    logger.JSON,
		AddSource: true,
		Service:   serviceName,
	}))

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv builds a Config from the environment without validating it.
func FromEnv(log *logger.Logger) *Config {
	if log == nil {
		log = logger.Discard()
	}

	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		BackendURL:     getEnvStr(EnvBackendURL, DefaultBackendURL),
		BackendTimeout: getEnvDuration(EnvBackendTimeout, DefaultBackendTimeout),

		SessionTTL:    getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		SessionSecure: getEnvBool(EnvSessionSecure, false),

		SiteTimezone:     getEnvStr(EnvSiteTimezone, DefaultSiteTimezone),
		AcknowledgeDelay: getEnvDuration(EnvAcknowledgeDelay, DefaultAcknowledgeDelay),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: log,
	}

	cfg.loadSessionKey()
	cfg.loadLocation()
	return cfg
}

func (cfg *Config) loadSessionKey() {
	raw := os.Getenv(EnvSessionKey)
	if raw == "" {
		key := make([]byte, SessionKeySize)
		if _, err := rand.Read(key); err != nil {
			cfg.problems = append(cfg.problems, fmt.Sprintf("could not generate session key: %v", err))
			return
		}
		cfg.SessionKey = key
		cfg.SessionKeyGenerated = true
		return
	}

	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		cfg.problems = append(cfg.problems, fmt.Sprintf("%s must be base64 encoded: %v", EnvSessionKey, err))
		return
	}
	cfg.SessionKey = key
}

func (cfg *Config) loadLocation() {
	loc, err := time.LoadLocation(cfg.SiteTimezone)
	if err != nil {
		cfg.problems = append(cfg.problems, fmt.Sprintf("SiteTimezone %q is not a known IANA zone", cfg.SiteTimezone))
		cfg.Location = time.UTC
		return
	}
	cfg.Location = loc
}

func (cfg *Config) Validate() error {
	errors := append([]string(nil), cfg.problems...)

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if u, err := url.Parse(cfg.BackendURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, fmt.Sprintf("BackendURL must be an absolute http(s) URL, got: %s", cfg.BackendURL))
	}

	if cfg.SessionKey != nil && len(cfg.SessionKey) != SessionKeySize {
		errors = append(errors, fmt.Sprintf("SessionKey must decode to %d bytes, got: %d", SessionKeySize, len(cfg.SessionKey)))
	}

	if cfg.BackendTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("BackendTimeout must be positive, got: %s", cfg.BackendTimeout))
	}
	if cfg.SessionTTL <= 0 {
		errors = append(errors, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}
	if cfg.AcknowledgeDelay <= 0 {
		errors = append(errors, fmt.Sprintf("AcknowledgeDelay must be positive, got: %s", cfg.AcknowledgeDelay))
	}
	if cfg.RateLimitWindow <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.RequestTimeout > 0 && cfg.WriteTimeout > 0 && cfg.RequestTimeout >= cfg.WriteTimeout {
		errors = append(errors, fmt.Sprintf("RequestTimeout (%s) must be shorter than WriteTimeout (%s)", cfg.RequestTimeout, cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.RateLimitRequests <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	if cfg.SessionKeyGenerated {
		cfg.Log.Warn("SESSION_KEY not set, using an ephemeral key; sessions will not survive a restart")
	}

	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"backend_url", cfg.BackendURL,
		"backend_timeout", cfg.BackendTimeout,
		"session_ttl", cfg.SessionTTL,
		"session_key_set", !cfg.SessionKeyGenerated,
		"session_secure", cfg.SessionSecure,
		"site_timezone", cfg.SiteTimezone,
		"acknowledge_delay", cfg.AcknowledgeDelay,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
