package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) (Config, error) {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return Load(v)
}

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 100.0, cfg.ReferenceLine)
	assert.Equal(t, -20.0, cfg.JumpAdjust)
	assert.Equal(t, "portfolio", cfg.ServiceName)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestPortVariable(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestPrefixedOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_ADDR", "127.0.0.1:3000")
	t.Setenv("PORTFOLIO_SESSION_TTL", "5m")
	t.Setenv("PORTFOLIO_LOG_FORMAT", "json")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", cfg.Addr)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
}

func TestValidate(t *testing.T) {
	base := Config{Mode: "release", LogFormat: "console", SessionTTL: time.Minute, ResumePath: "/r.pdf"}
	require.NoError(t, base.Validate())

	bad := base
	bad.Mode = "staging"
	assert.ErrorContains(t, bad.Validate(), "mode")

	bad = base
	bad.LogFormat = "xml"
	assert.ErrorContains(t, bad.Validate(), "log_format")

	bad = base
	bad.SessionTTL = 0
	assert.ErrorContains(t, bad.Validate(), "session_ttl")

	bad = base
	bad.ResumePath = "resume.pdf"
	assert.ErrorContains(t, bad.Validate(), "resume_path")

	ok := base
	ok.ResumePath = "https://cdn.example.com/resume.pdf"
	assert.NoError(t, ok.Validate())
}
