package domain

type OutcomeKind string

const (
	OutcomeCreated          OutcomeKind = "created"
	OutcomeDuplicate        OutcomeKind = "duplicate"
	OutcomeClientError      OutcomeKind = "client_error"
	OutcomeServerError      OutcomeKind = "server_error"
	OutcomeRetriesExhausted OutcomeKind = "retries_exhausted"
	OutcomeUnexpected       OutcomeKind = "unexpected"
)

// OutcomeKinds lists every kind in the order the summary prints them.
var OutcomeKinds = []OutcomeKind{
	OutcomeCreated,
	OutcomeDuplicate,
	OutcomeClientError,
	OutcomeServerError,
	OutcomeRetriesExhausted,
	OutcomeUnexpected,
}

// Submission is the classified result of sending one valid row.
type Submission struct {
	Row         int         `json:"row"`
	StatusCode  int         `json:"status_code"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Key         string      `json:"key"`
	IsDuplicate bool        `json:"is_duplicate"`
	StageTitle  string      `json:"stage_title"`
	Kind        OutcomeKind `json:"kind"`
	Notes       string      `json:"notes"`
}

// InvalidRow is reported for every row that failed validation.
type InvalidRow struct {
	Row        int    `json:"row_number"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NotifyTeam bool   `json:"notify_team"`
	Notes      string `json:"notes"`
}
