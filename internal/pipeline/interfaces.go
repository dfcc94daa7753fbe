package pipeline

import (
	"context"

	"github.com/kurochkinivan/applicant_importer/internal/domain"
)

type ApplicantsSource interface {
	Applicants(ctx context.Context) ([]*domain.Applicant, error)
}

type Submitter interface {
	Submit(ctx context.Context, applicant *domain.Applicant) *domain.Response
}

type Progress interface {
	RowStarted(index, total int, applicant *domain.Applicant)
	RowInvalid(row *domain.InvalidRow)
	RowSubmitted(submission *domain.Submission)
	SourceFailed(err error)
	Summary(summary *domain.Summary)
}
