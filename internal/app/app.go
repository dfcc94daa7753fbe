package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kurochkinivan/applicant_importer/internal/config"
	"github.com/kurochkinivan/applicant_importer/internal/infrastructure/fountain"
	"github.com/kurochkinivan/applicant_importer/internal/infrastructure/spreadsheet"
	"github.com/kurochkinivan/applicant_importer/internal/pipeline"
)

type App struct {
	log *slog.Logger
	cfg *config.Config
	out io.Writer
}

func New(log *slog.Logger, cfg *config.Config, out io.Writer) *App {
	return &App{
		log: log,
		cfg: cfg,
		out: out,
	}
}

func (a *App) Run(ctx context.Context) error {
	log := a.log.With(slog.String("run_id", uuid.NewString()))

	log.InfoContext(ctx, "starting app",
		slog.String("input", a.cfg.App.InputFile),
		slog.String("sheet", a.cfg.App.Sheet),
		slog.String("fountain_url", a.cfg.Fountain.URL),
		slog.Int("max_retries", a.cfg.Fountain.MaxRetries),
		slog.Duration("request_timeout", a.cfg.Fountain.RequestTimeout),
		slog.Duration("row_delay", a.cfg.App.RowDelay),
	)

	source := spreadsheet.NewReader(log, a.cfg.App.InputFile, a.cfg.App.Sheet)
	client := fountain.New(log, a.cfg.Fountain)
	reporter := pipeline.NewReporter(a.out)

	importer := pipeline.NewImporter(log, source, client, reporter, a.cfg.App.RowDelay)

	summary, err := importer.Run(ctx)
	if err != nil {
		log.ErrorContext(ctx, "import stopped", slog.String("err", err.Error()))
		return fmt.Errorf("failed to import applicants: %w", err)
	}

	log.InfoContext(ctx, "import finished",
		slog.Int("total", summary.Total),
		slog.Int("valid", summary.Valid),
		slog.Int("invalid", summary.Invalid),
	)

	return nil
}
