package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegexp      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp      = regexp.MustCompile(`^\+?1?\d{10,15}$`)
	phoneFormatChars = regexp.MustCompile(`[\s\-()]`)
)

type Applicant struct {
	Row         int    `csv:"-"`
	Name        string `csv:"name"`
	Email       string `csv:"email"`
	PhoneNumber string `csv:"phone_number"`
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type rule struct {
	field  string
	ok     func(a *Applicant) bool
	reason string
}

// rules are evaluated in order, the first failing one wins.
var rules = []rule{
	required("name", func(a *Applicant) string { return a.Name }),
	required("email", func(a *Applicant) string { return a.Email }),
	required("phone_number", func(a *Applicant) string { return a.PhoneNumber }),
	{
		field:  "email",
		ok:     func(a *Applicant) bool { return ValidEmail(a.Email) },
		reason: "Invalid email format",
	},
	{
		field:  "phone_number",
		ok:     func(a *Applicant) bool { return ValidPhone(a.PhoneNumber) },
		reason: "Invalid phone number format",
	},
}

func required(field string, value func(a *Applicant) string) rule {
	return rule{
		field:  field,
		ok:     func(a *Applicant) bool { return strings.TrimSpace(value(a)) != "" },
		reason: fmt.Sprintf("Missing required field: %s", field),
	}
}

func (a *Applicant) Validate() error {
	for _, r := range rules {
		if !r.ok(a) {
			return &ValidationError{Field: r.field, Reason: r.reason}
		}
	}

	return nil
}

func ValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

func ValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phoneFormatChars.ReplaceAllString(phone, ""))
}
