package service

import (
	"regexp"
	"strings"

	"github.com/primelaser/backend/internal/model"
)

const (
	maxNameLength    = 100
	maxMessageLength = 2000
)

// emailRe is deliberately permissive: non-whitespace local part, domain and
// TLD. Full RFC validation is not the goal.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission checks a raw submission and returns a normalized record
// draft (trimmed fields, lowercased email) or the first failing check.
//
// Checks run in a fixed order: missing fields, then email format, then
// length limits. There is no multi-error aggregation.
func ValidateSubmission(in SubmitInput) (*model.ContactRecord, *ValidationError) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" {
		return nil, &ValidationError{Reason: ReasonMissingField, Field: "name"}
	}
	if email == "" {
		return nil, &ValidationError{Reason: ReasonMissingField, Field: "email"}
	}
	if message == "" {
		return nil, &ValidationError{Reason: ReasonMissingField, Field: "message"}
	}

	email = strings.ToLower(email)
	if !emailRe.MatchString(email) {
		return nil, &ValidationError{Reason: ReasonInvalidEmail, Value: email}
	}

	if n := len([]rune(name)); n > maxNameLength {
		return nil, &ValidationError{Reason: ReasonFieldTooLong, Field: "name", Length: n}
	}
	if n := len([]rune(message)); n > maxMessageLength {
		return nil, &ValidationError{Reason: ReasonFieldTooLong, Field: "message", Length: n}
	}

	return &model.ContactRecord{
		Name:      name,
		Email:     email,
		Message:   message,
		ClientIP:  in.ClientIP,
		UserAgent: in.UserAgent,
	}, nil
}
