package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvBackendURL     = "BACKEND_URL"
	EnvBackendTimeout = "BACKEND_TIMEOUT"

	EnvSessionTTL    = "SESSION_TTL"
	EnvSessionKey    = "SESSION_KEY"
	EnvSessionSecure = "SESSION_SECURE"

	EnvSiteTimezone     = "SITE_TIMEZONE"
	EnvAcknowledgeDelay = "ACKNOWLEDGE_DELAY"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
