package service

import (
	"time"

	"medinabot/internal/domain"
)

// QuotaService applies the lazy daily reset and the per-kind caps.
// It never locks: callers run it inside SessionRepository.Update.
type QuotaService struct {
	now func() time.Time
}

// NewQuotaService creates a quota service; a nil clock means time.Now
func NewQuotaService(now func() time.Time) *QuotaService {
	if now == nil {
		now = time.Now
	}
	return &QuotaService{now: now}
}

// ResetIfNewDay zeroes both counters on the first use of a new calendar day.
// LastReset only moves forward, so a clock going backwards never re-resets.
func (s *QuotaService) ResetIfNewDay(sess *domain.Session) bool {
	today := domain.DayOf(s.now())
	if !sess.LastReset.Before(today) {
		return false
	}

	sess.FatwaUsed = 0
	sess.QuestionUsed = 0
	sess.LastReset = today
	return true
}

// TryConsume increments the counter of kind when allowed.
// Must be called after ResetIfNewDay.
func (s *QuotaService) TryConsume(sess *domain.Session, kind domain.QuotaKind) bool {
	used, limit := &sess.QuestionUsed, sess.QuestionLimit
	if kind == domain.QuotaFatwa {
		used, limit = &sess.FatwaUsed, sess.FatwaLimit
	}

	if !sess.Unlimited && *used >= limit {
		return false
	}
	*used++
	return true
}
