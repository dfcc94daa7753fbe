package pipeline

import (
	"fmt"
	"net/http"

	"github.com/kurochkinivan/applicant_importer/internal/domain"
	"github.com/tidwall/gjson"
)

// Classify turns a create applicant response into a Submission. The note
// depends on the status code only, never on how many attempts were made.
func Classify(statusCode int, body []byte) *domain.Submission {
	submission := &domain.Submission{
		StatusCode:  statusCode,
		Name:        gjson.GetBytes(body, "name").String(),
		Email:       gjson.GetBytes(body, "email").String(),
		Phone:       gjson.GetBytes(body, "phone").String(),
		Key:         gjson.GetBytes(body, "key").String(),
		IsDuplicate: gjson.GetBytes(body, "is_duplicate").Bool(),
		StageTitle:  gjson.GetBytes(body, "stage.title").String(),
	}

	switch {
	case statusCode == http.StatusOK || statusCode == http.StatusCreated:
		if submission.IsDuplicate {
			submission.Kind = domain.OutcomeDuplicate
			submission.Notes = "Duplicate applicant found"
		} else {
			submission.Kind = domain.OutcomeCreated
			submission.Notes = "Applicant created successfully"
		}

	case statusCode >= 400 && statusCode < 500:
		submission.Kind = domain.OutcomeClientError
		submission.Notes = fmt.Sprintf("Client error: %s", errorMessage(body, "Unknown error"))

	case statusCode == http.StatusInternalServerError:
		submission.Kind = domain.OutcomeServerError
		submission.Notes = "Internal server error: investigation"

	case statusCode == http.StatusServiceUnavailable || statusCode == http.StatusGatewayTimeout:
		submission.Kind = domain.OutcomeRetriesExhausted
		submission.Notes = "Max retries exceeded"

	default:
		submission.Kind = domain.OutcomeUnexpected
		submission.Notes = fmt.Sprintf("Unexpected error: %s", errorMessage(body, "Unknown"))
	}

	return submission
}

func errorMessage(body []byte, fallback string) string {
	result := gjson.GetBytes(body, "error")
	if !result.Exists() || result.Type == gjson.Null {
		return fallback
	}

	return result.String()
}
