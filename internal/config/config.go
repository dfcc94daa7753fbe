package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Fountain
}

type App struct {
	InputFile string
	Sheet     string
	RowDelay  time.Duration
}

type Fountain struct {
	URL            string
	TrustKey       string
	// APIKey is required at startup, requests authenticate with TrustKey only.
	APIKey         string
	AuthHeader     string
	RequestTimeout time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			InputFile: cmd.String("input"),
			Sheet:     cmd.String("sheet"),
			RowDelay:  cmd.Duration("row-delay"),
		},
		Fountain: Fountain{
			URL:            cmd.String("fountain-url"),
			TrustKey:       cmd.String("fountain-trust-key"),
			APIKey:         cmd.String("fountain-api-key"),
			AuthHeader:     cmd.String("auth-header"),
			RequestTimeout: cmd.Duration("request-timeout"),
			MaxRetries:     cmd.Int("max-retries"),
			BackoffBase:    cmd.Duration("backoff-base"),
		},
	}
}
