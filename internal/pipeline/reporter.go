package pipeline

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kurochkinivan/applicant_importer/internal/domain"
)

// Reporter prints human readable progress, it is the only report a run produces.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) RowStarted(index, total int, applicant *domain.Applicant) {
	fmt.Fprintf(r.out, "[%d/%d] row %d: %s\n", index, total, applicant.Row, applicant.Name)
}

func (r *Reporter) RowInvalid(row *domain.InvalidRow) {
	fmt.Fprintf(r.out, "  skipped: %s\n", row.Notes)
}

func (r *Reporter) RowSubmitted(submission *domain.Submission) {
	fmt.Fprintf(r.out, "  status %d: %s\n", submission.StatusCode, submission.Notes)
}

func (r *Reporter) SourceFailed(err error) {
	fmt.Fprintf(r.out, "failed to read applicants: %v\n", err)
}

func (r *Reporter) Summary(summary *domain.Summary) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "\nSummary")
	fmt.Fprintf(w, "Total rows:\t%d\n", summary.Total)
	fmt.Fprintf(w, "Valid rows sent:\t%d\n", summary.Valid)
	fmt.Fprintf(w, "Invalid rows:\t%d\n", summary.Invalid)

	if summary.Valid > 0 {
		counts := summary.CountByKind()

		fmt.Fprintln(w, "\nOutcomes")
		for _, kind := range domain.OutcomeKinds {
			if counts[kind] > 0 {
				fmt.Fprintf(w, "%s:\t%d\n", kind, counts[kind])
			}
		}
	}

	if summary.Invalid > 0 {
		fmt.Fprintln(w, "\nInvalid rows")
		for _, row := range summary.InvalidRows {
			fmt.Fprintf(w, "row %d\t%s\t%s\t%s\t%s\n", row.Row, row.Name, row.Email, row.Phone, row.Notes)
		}
	}

	w.Flush()
}
