package repository

import (
	"context"

	"medinabot/internal/domain"
)

// SessionRepository defines session record operations
type SessionRepository interface {
	GetOrCreate(userID int64, username string) domain.Session
	Get(userID int64) (domain.Session, bool)
	// Update runs fn under the record's exclusive lock.
	// Returns domain.ErrUserNotFound if the record does not exist.
	Update(userID int64, fn func(s *domain.Session) error) error
	List() []domain.Session
}

// PendingRepository holds at most one pending admin action per operator
type PendingRepository interface {
	Get(operatorID int64) (domain.PendingAction, bool)
	Set(operatorID int64, action domain.PendingAction)
	Clear(operatorID int64)
}

// ActivityRepository stores per-user activity history
type ActivityRepository interface {
	Append(entry domain.ActivityEntry) error
	Recent(userID int64, limit int) ([]domain.ActivityEntry, error)
}

// ActivitySink is an append-only external copy of the activity log
type ActivitySink interface {
	Append(ctx context.Context, entry domain.ActivityEntry) error
	CleanOldEntries(ctx context.Context, days int) error
}
