package domain

type Summary struct {
	Total       int
	Valid       int
	Invalid     int
	Submissions []*Submission
	InvalidRows []*InvalidRow
}

func NewSummary(submissions []*Submission, invalidRows []*InvalidRow) *Summary {
	return &Summary{
		Total:       len(submissions) + len(invalidRows),
		Valid:       len(submissions),
		Invalid:     len(invalidRows),
		Submissions: submissions,
		InvalidRows: invalidRows,
	}
}

func (s *Summary) CountByKind() map[OutcomeKind]int {
	counts := make(map[OutcomeKind]int, len(OutcomeKinds))
	for _, submission := range s.Submissions {
		counts[submission.Kind]++
	}

	return counts
}
