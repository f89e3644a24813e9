package model

import "time"

// ContactRecord is a contact-form submission persisted in the document store.
// Records are immutable after creation; the store removes them via a TTL
// index once the retention period passes.
type ContactRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	ClientIP    string    `json:"clientIp,omitempty"`
	UserAgent   string    `json:"userAgent,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NotifyOutcome reports what happened to the email notification for a
// stored record. It is a data value, never an error: notification failure
// must not affect the submission's success.
type NotifyOutcome string

const (
	NotifySent     NotifyOutcome = "sent"
	NotifyFailed   NotifyOutcome = "failed"
	NotifyDisabled NotifyOutcome = "disabled"
)
