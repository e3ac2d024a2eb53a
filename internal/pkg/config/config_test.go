//go:build unit

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calldesk-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "test config",
			mutate: func(*config.Config) {},
		},
		{
			name:    "zero default days",
			mutate:  func(c *config.Config) { c.Slots.DefaultDays = 0 },
			wantErr: "SLOTS_DEFAULT_DAYS",
		},
		{
			name:    "max below default",
			mutate:  func(c *config.Config) { c.Slots.MaxDays = 3 },
			wantErr: "SLOTS_MAX_DAYS",
		},
		{
			name:    "zero booking duration",
			mutate:  func(c *config.Config) { c.Booking.DefaultDuration = 0 },
			wantErr: "BOOKING_DEFAULT_DURATION",
		},
		{
			name:    "telephony without token",
			mutate:  func(c *config.Config) { c.Telephony.AccountSID = "AC123"; c.Telephony.TransferURL = "https://example.com/t" },
			wantErr: "TWILIO_AUTH_TOKEN",
		},
		{
			name: "telephony fully configured",
			mutate: func(c *config.Config) {
				c.Telephony.AccountSID = "AC123"
				c.Telephony.AuthToken = "secret"
				c.Telephony.TransferURL = "https://example.com/t"
			},
		},
		{
			name:    "negative rate",
			mutate:  func(c *config.Config) { c.RateLimit.RPS = -1 },
			wantErr: "must not be negative",
		},
		{
			name:    "rate without burst",
			mutate:  func(c *config.Config) { c.RateLimit.RPS = 5 },
			wantErr: "RATE_LIMIT_BURST",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults and env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "test.env")
		content := "PORT=9090\nSLOTS_MAX_DAYS=14\nBOOKING_DEFAULT_DURATION=30m\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

		// godotenv sets process variables, t.Setenv restores them afterwards
		t.Setenv("PORT", "")
		t.Setenv("SLOTS_MAX_DAYS", "")
		t.Setenv("BOOKING_DEFAULT_DURATION", "")
		os.Unsetenv("PORT")
		os.Unsetenv("SLOTS_MAX_DAYS")
		os.Unsetenv("BOOKING_DEFAULT_DURATION")

		cfg, err := config.LoadConfig(envFile)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 7, cfg.Slots.DefaultDays)
		assert.Equal(t, 14, cfg.Slots.MaxDays)
		assert.Equal(t, 30*time.Minute, cfg.Booking.DefaultDuration)
		assert.Equal(t, "FR", cfg.Booking.DefaultRegion)
		assert.False(t, cfg.Telephony.Enabled())
		assert.Equal(t, []string{"GET", "POST", "OPTIONS"}, cfg.CORS.AllowMethods)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\n"), 0o600))
		t.Setenv("PORT", "7070")

		cfg, err := config.LoadConfig(envFile)
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		t.Setenv("PORT", "7070")

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
		assert.NoError(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("PORT", "7070")
		t.Setenv("SLOTS_DEFAULT_DAYS", "40")

		_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
