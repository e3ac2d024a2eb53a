package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, etc.)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Slots     SlotsConfig
	Booking   BookingConfig
	Telephony TelephonyConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

// CatalogConfig points to the resource catalog. An empty path selects the embedded catalog.
type CatalogConfig struct {
	Path string `envconfig:"CATALOG_PATH"`
}

type SlotsConfig struct {
	DefaultDays int `envconfig:"SLOTS_DEFAULT_DAYS" default:"7"`
	MaxDays     int `envconfig:"SLOTS_MAX_DAYS" default:"31"`
}

type BookingConfig struct {
	VerifySlot      bool          `envconfig:"BOOKING_VERIFY_SLOT" default:"false"`
	DefaultRegion   string        `envconfig:"BOOKING_DEFAULT_REGION" default:"FR"`
	DefaultDuration time.Duration `envconfig:"BOOKING_DEFAULT_DURATION" default:"60m"`
}

// TelephonyConfig configures the call transfer gateway. Transfers are disabled
// when AccountSID is empty.
type TelephonyConfig struct {
	AccountSID     string        `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken      string        `envconfig:"TWILIO_AUTH_TOKEN"`
	TransferURL    string        `envconfig:"TWILIO_TRANSFER_URL"`
	GoodbyeMessage string        `envconfig:"TELEPHONY_GOODBYE_MESSAGE" default:"Merci d'avoir pris le temps de tester notre démonstration. A très bientôt."`
	Timeout        time.Duration `envconfig:"TELEPHONY_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c TelephonyConfig) Enabled() bool {
	return c.AccountSID != ""
}

// Validate checks cross-field constraints envconfig cannot express.
func (c Config) Validate() error {
	if c.Slots.DefaultDays < 1 {
		return fmt.Errorf("SLOTS_DEFAULT_DAYS must be positive, got %d", c.Slots.DefaultDays)
	}
	if c.Slots.MaxDays < c.Slots.DefaultDays {
		return fmt.Errorf("SLOTS_MAX_DAYS (%d) must be >= SLOTS_DEFAULT_DAYS (%d)", c.Slots.MaxDays, c.Slots.DefaultDays)
	}
	if c.Booking.DefaultDuration <= 0 {
		return fmt.Errorf("BOOKING_DEFAULT_DURATION must be positive, got %s", c.Booking.DefaultDuration)
	}
	if c.Telephony.Enabled() && (c.Telephony.AuthToken == "" || c.Telephony.TransferURL == "") {
		return errors.New("TWILIO_AUTH_TOKEN and TWILIO_TRANSFER_URL are required when TWILIO_ACCOUNT_SID is set")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return errors.New("RATE_LIMIT_BURST must be at least 1 when RATE_LIMIT_RPS is set")
	}
	return nil
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Slots: SlotsConfig{
			DefaultDays: 7,
			MaxDays:     31,
		},
		Booking: BookingConfig{
			DefaultRegion:   "FR",
			DefaultDuration: time.Hour,
		},
		Telephony: TelephonyConfig{
			GoodbyeMessage: "transferring",
			Timeout:        time.Second,
		},
	}
}
