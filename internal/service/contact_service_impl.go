package service

import (
	"context"
	"errors"
	"time"

	"github.com/primelaser/backend/internal/model"
	"github.com/primelaser/backend/internal/repository"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	conn     ConnectivitySource
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given repository,
// connectivity source and notifier.
func NewContactService(repo repository.ContactRepository, conn ConnectivitySource, notifier Notifier) ContactService {
	return &contactServiceImpl{repo: repo, conn: conn, notifier: notifier}
}

// Submit runs the intake workflow: validate, check connectivity, persist,
// notify once, shape the result. Persistence success is the sole determinant
// of the overall outcome; the notification result is attached as data.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	rec, verr := ValidateSubmission(in)
	if verr != nil {
		return nil, verr
	}

	if s.conn.State() != model.StateConnected {
		return nil, ErrStoreUnavailable
	}

	rec.SubmittedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, ErrStoreUnavailable
		}
		return nil, &PersistenceError{Err: err}
	}

	// Exactly one notification attempt per stored record; no retry, no
	// rollback of persistence when it fails.
	outcome := s.notifier.Notify(ctx, rec)

	return &SubmitResult{
		ContactID:   rec.ID,
		Email:       outcome,
		SubmittedAt: rec.SubmittedAt,
	}, nil
}

// ListRecent returns the most-recent records and the total count. The limit
// defaults to 10 and is capped at 50.
func (s *contactServiceImpl) ListRecent(ctx context.Context, limit int) ([]*model.ContactRecord, int64, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, 0, ErrStoreUnavailable
		}
		return nil, 0, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			return nil, 0, ErrStoreUnavailable
		}
		return nil, 0, err
	}
	return records, total, nil
}
