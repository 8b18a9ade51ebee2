package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"realtime": map[string]any{
			"retryBaseDelay": "2s",
		},
		"platform": map[string]any{
			"cancellationFee": 2000,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "REALTIME_RETRYBASEDELAY", want: "realtime.retryBaseDelay"},
		{envKey: "PLATFORM_CANCELLATIONFEE", want: "platform.cancellationFee"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, 2*time.Second, cfg.Realtime.RetryBaseDelay)
	assert.Equal(t, "memory", cfg.Realtime.Provider)
	assert.Equal(t, int64(2000), cfg.Platform.CancellationFee)
	assert.InDelta(t, 0.10, cfg.Platform.CommissionRate, 1e-9)
	assert.Equal(t, 48, cfg.Platform.DisputeWindowHours)
	assert.Equal(t, "AOA", cfg.Platform.Currency)
	assert.Equal(t, 3, cfg.Wallet.MaxConflictRetries)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Platform: &PlatformConfig{CancellationFee: 0, CommissionRate: 0.2, Currency: "EUR"},
		Realtime: &RealtimeConfig{RetryBaseDelay: time.Second, Provider: "postgres"},
	}
	cfg.ApplyDefaults()

	// An explicit platform section with a zero fee means "free cancellations".
	assert.Equal(t, int64(0), cfg.Platform.CancellationFee)
	assert.InDelta(t, 0.2, cfg.Platform.CommissionRate, 1e-9)
	assert.Equal(t, "EUR", cfg.Platform.Currency)
	assert.Equal(t, time.Second, cfg.Realtime.RetryBaseDelay)
	assert.Equal(t, "postgres", cfg.Realtime.Provider)
}
