package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is built once at process start and passed down to whoever needs it.
type Config struct {
	Port         string        `env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Version           string `env:"APP_VERSION" envDefault:"1.0.0"`

	SMTP SMTP
}

// SMTP holds the relay settings. Blank or malformed values are allowed here;
// the sender reports them as a configuration failure when a message is sent.
type SMTP struct {
	Host               string        `env:"SMTP_HOST"`
	RawPort            string        `env:"SMTP_PORT" envDefault:"587"`
	User               string        `env:"SMTP_USER"`
	Password           string        `env:"SMTP_PASSWORD"`
	From               string        `env:"SMTP_FROM"`
	To                 string        `env:"SMTP_TO"`
	Timeout            time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	SSL                bool          `env:"SMTP_SSL" envDefault:"false"`
	InsecureSkipVerify bool          `env:"SMTP_INSECURE_SKIP_VERIFY" envDefault:"false"`
}

// Port returns the relay port, or 0 when SMTP_PORT is not a number.
func (s SMTP) Port() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.RawPort))
	if err != nil {
		return 0
	}
	return n
}

// Configured reports whether every setting needed to attempt a delivery is present.
func (s SMTP) Configured() bool {
	return s.Host != "" && s.Port() > 0 && s.From != "" && s.To != ""
}

// Load reads the environment. Only malformed durations, sizes and booleans
// fail here; SMTP settings are checked at send time.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.CORSAllowedOrigins = cleanList(cfg.CORSAllowedOrigins, "*")
	return cfg, nil
}

func cleanList(in []string, fallback string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
