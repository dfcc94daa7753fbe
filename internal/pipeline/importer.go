package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/applicant_importer/internal/domain"
)

type Importer struct {
	log       *slog.Logger
	source    ApplicantsSource
	submitter Submitter
	progress  Progress
	rowDelay  time.Duration
}

func NewImporter(
	log *slog.Logger,
	source ApplicantsSource,
	submitter Submitter,
	progress Progress,
	rowDelay time.Duration,
) *Importer {
	return &Importer{
		log:       log,
		source:    source,
		submitter: submitter,
		progress:  progress,
		rowDelay:  rowDelay,
	}
}

// Run processes the rows one by one in source order. A source failure ends
// the run with an empty summary; only context cancellation returns an error.
func (i *Importer) Run(ctx context.Context) (*domain.Summary, error) {
	applicants, err := i.source.Applicants(ctx)
	if err != nil {
		i.log.ErrorContext(ctx, "failed to read applicants", slog.String("err", err.Error()))
		i.progress.SourceFailed(err)

		summary := domain.NewSummary(nil, nil)
		i.progress.Summary(summary)

		return summary, nil
	}

	i.log.InfoContext(ctx, "processing applicants", slog.Int("rows_count", len(applicants)))

	var (
		submissions []*domain.Submission
		invalidRows []*domain.InvalidRow
	)

	for idx, applicant := range applicants {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("stopped at row %d: %w", applicant.Row, err)
		}

		i.progress.RowStarted(idx+1, len(applicants), applicant)

		invalid, submission := i.processApplicant(ctx, applicant)
		if invalid != nil {
			invalidRows = append(invalidRows, invalid)
			i.progress.RowInvalid(invalid)
			continue
		}

		submissions = append(submissions, submission)
		i.progress.RowSubmitted(submission)

		if idx < len(applicants)-1 {
			if err := i.pause(ctx); err != nil {
				return nil, fmt.Errorf("stopped after row %d: %w", applicant.Row, err)
			}
		}
	}

	summary := domain.NewSummary(submissions, invalidRows)

	i.log.InfoContext(ctx, "applicants processed",
		slog.Int("total", summary.Total),
		slog.Int("valid", summary.Valid),
		slog.Int("invalid", summary.Invalid),
	)

	i.progress.Summary(summary)

	return summary, nil
}

func (i *Importer) processApplicant(
	ctx context.Context,
	applicant *domain.Applicant,
) (*domain.InvalidRow, *domain.Submission) {
	log := i.log.With(slog.Int("row", applicant.Row))

	if err := applicant.Validate(); err != nil {
		log.DebugContext(ctx, "applicant failed validation", slog.String("err", err.Error()))

		reason := err.Error()

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			reason = validationErr.Reason
		}

		return &domain.InvalidRow{
			Row:        applicant.Row,
			Name:       applicant.Name,
			Email:      applicant.Email,
			Phone:      applicant.PhoneNumber,
			NotifyTeam: true,
			Notes:      reason,
		}, nil
	}

	resp := i.submitter.Submit(ctx, applicant)

	submission := Classify(resp.StatusCode, resp.Body)
	submission.Row = applicant.Row

	log.DebugContext(ctx, "applicant submitted",
		slog.Int("status_code", submission.StatusCode),
		slog.String("kind", string(submission.Kind)),
	)

	return nil, submission
}

func (i *Importer) pause(ctx context.Context) error {
	if i.rowDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(i.rowDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
