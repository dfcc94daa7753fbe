package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/applicant_importer/internal/app"
	"github.com/kurochkinivan/applicant_importer/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "applicant_importer",
		Usage:   "Validate spreadsheet rows and create them as Fountain applicants",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			if cmd.Bool("debug") {
				logLevel.Set(slog.LevelDebug)
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg, out).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "Read applicants from `FILE` (.xlsx, .xlsm, .csv or .tsv)",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("APPLICANTS_FILE"), yaml.YAML("app.input", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "sheet",
			Usage:   "Set workbook sheet to read, the first sheet is used by default",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.sheet", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "row-delay",
			Usage:   "Set pause between submitted rows",
			Value:   500 * time.Millisecond,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.row_delay", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "fountain-url",
			Usage:     "Set Fountain create applicant endpoint",
			Sources:   cli.NewValueSourceChain(cli.EnvVar("FOUNTAIN_URL"), yaml.YAML("fountain.url", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateURL,
		},
		&cli.StringFlag{
			Name:     "fountain-trust-key",
			Usage:    "Set Fountain access token sent with every request",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("FOUNTAIN_TRUST_KEY"), yaml.YAML("fountain.trust_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "fountain-api-key",
			Usage:    "Set Fountain API key, checked at startup but not sent with requests",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("FOUNTAIN_API_KEY"), yaml.YAML("fountain.api_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "auth-header",
			Usage:   "Set header carrying the access token",
			Value:   "X-ACCESS-TOKEN",
			Sources: cli.NewValueSourceChain(yaml.YAML("fountain.auth_header", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:      "request-timeout",
			Usage:     "Set timeout of a single request attempt",
			Value:     30 * time.Second,
			Sources:   cli.NewValueSourceChain(yaml.YAML("fountain.request_timeout", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.IntFlag{
			Name:      "max-retries",
			Usage:     "Set how many times a timed out request is retried",
			Value:     3,
			Sources:   cli.NewValueSourceChain(yaml.YAML("fountain.max_retries", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateRetries,
		},
		&cli.DurationFlag{
			Name:      "backoff-base",
			Usage:     "Set delay before the first retry, doubled on every next one",
			Value:     1 * time.Second,
			Sources:   cli.NewValueSourceChain(yaml.YAML("fountain.backoff_base", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse url %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", raw)
	}

	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}

	return nil
}

func validateRetries(retries int) error {
	if retries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", retries)
	}

	return nil
}

func validatePositive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %s", d)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
