package config

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvSessionKey, "")
	t.Setenv(EnvBackendURL, "")

	cfg := FromEnv(nil)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
	assert.Equal(t, DefaultAcknowledgeDelay, cfg.AcknowledgeDelay)
	assert.True(t, cfg.SessionKeyGenerated)
	assert.Len(t, cfg.SessionKey, SessionKeySize)
	assert.Equal(t, time.UTC, cfg.Location)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", SessionKeySize)))
	t.Setenv(EnvSessionKey, key)
	t.Setenv(EnvPort, "8080")
	t.Setenv(EnvAcknowledgeDelay, "2s")
	t.Setenv(EnvSiteTimezone, "Asia/Jerusalem")
	t.Setenv(EnvRateLimitRequests, "not-a-number")
	t.Setenv(EnvSessionSecure, "true")

	cfg := FromEnv(nil)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.AcknowledgeDelay)
	assert.False(t, cfg.SessionKeyGenerated)
	assert.True(t, cfg.SessionSecure)
	assert.Equal(t, "Asia/Jerusalem", cfg.Location.String())
	assert.Equal(t, DefaultRateLimitRequests, cfg.RateLimitRequests)
	require.NoError(t, cfg.Validate())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Setenv(EnvSessionKey, base64.StdEncoding.EncodeToString([]byte("short")))
	t.Setenv(EnvSiteTimezone, "Mars/Olympus")
	t.Setenv(EnvBackendURL, "localhost:8001")
	t.Setenv(EnvPort, "99999")

	err := FromEnv(nil).Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "SessionKey must decode to 32 bytes")
	assert.Contains(t, msg, "Mars/Olympus")
	assert.Contains(t, msg, "BackendURL")
	assert.Contains(t, msg, "Port must be between")
}

func TestValidate_RequestTimeoutMustFitWriteTimeout(t *testing.T) {
	t.Setenv(EnvRequestTimeout, "30s")
	t.Setenv(EnvWriteTimeout, "15s")

	err := FromEnv(nil).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RequestTimeout (30s) must be shorter than WriteTimeout (15s)")

	t.Setenv(EnvWriteTimeout, "31s")
	assert.NoError(t, FromEnv(nil).Validate())
}

func TestDefaults_TimeoutResponseFitsWriteDeadline(t *testing.T) {
	assert.Less(t, DefaultRequestTimeout, DefaultWriteTimeout)
	assert.Greater(t, DefaultRequestTimeout, DefaultBackendTimeout)
}
