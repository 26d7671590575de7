package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Ortamdan sızan değerler varsayılanları gölgelemesin
	for _, key := range []string{"PORT", "MAX_UPLOAD_SIZE", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.EqualValues(t, 10*1024*1024, cfg.MaxUploadSize)
	assert.Equal(t, 60, cfg.RateLimit.Max)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfigRateLimitFromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "120")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	cfg := LoadConfig()

	assert.Equal(t, 120, cfg.RateLimit.Max)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "lots")

	cfg := LoadConfig()
	assert.EqualValues(t, 10*1024*1024, cfg.MaxUploadSize)
}
