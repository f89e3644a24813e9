package service

import (
	"context"
	"time"

	"github.com/primelaser/backend/internal/model"
)

// SubmitInput is one raw contact-form submission plus request metadata.
type SubmitInput struct {
	Name      string
	Email     string
	Message   string
	ClientIP  string
	UserAgent string
}

// SubmitResult is the outcome of a successfully persisted submission.
// Email reports the notification attempt; it never affects success.
type SubmitResult struct {
	ContactID   string
	Email       model.NotifyOutcome
	SubmittedAt time.Time
}

// ContactService defines the intake workflow for contact submissions.
type ContactService interface {
	// Submit validates, persists and best-effort-notifies one submission.
	// Failure modes: *ValidationError, ErrStoreUnavailable, *PersistenceError.
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)

	// ListRecent returns up to min(limit, 50) most-recent records, newest
	// first, plus the total stored count.
	ListRecent(ctx context.Context, limit int) ([]*model.ContactRecord, int64, error)
}

// Notifier attempts to deliver an email summary of a stored record.
// The outcome is a data value; a failed delivery is not an error.
type Notifier interface {
	Notify(ctx context.Context, rec *model.ContactRecord) model.NotifyOutcome
}

// ConnectivitySource exposes the store connectivity state maintained by
// the repository supervisor.
type ConnectivitySource interface {
	State() model.ConnectivityState
}
