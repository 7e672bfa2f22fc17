package config

import "time"

const (
	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	DefaultBackendURL     = "http://localhost:8001"
	DefaultBackendTimeout = 10 * time.Second

	DefaultSessionTTL = 2 * time.Hour

	DefaultSiteTimezone     = "UTC"
	DefaultAcknowledgeDelay = 5 * time.Second

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 12 * time.Second
	DefaultMaxRequestSize = 64 * 1024 // 64KB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// SessionKeySize is the AES-256 key length the session sealer needs.
	SessionKeySize = 32
)
