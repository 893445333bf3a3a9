package service

import (
	"context"
	"time"

	"medinabot/internal/domain"
	"medinabot/internal/metrics"
	"medinabot/internal/repository"

	"go.uber.org/zap"
)

const (
	sinkQueueSize    = 256
	sinkWriteTimeout = 5 * time.Second
)

// ActivityService records user actions in the bounded in-memory log and,
// when configured, mirrors them to an external sink.
//
// Only the in-memory append happens on the caller's goroutine. Sink writes
// go through a bounded queue drained by RunSink; when the queue is full
// the entry is dropped from the sink and kept in memory.
type ActivityService struct {
	log           repository.ActivityRepository
	sink          repository.ActivitySink
	queue         chan domain.ActivityEntry
	retentionDays int
	logger        *zap.Logger
	now           func() time.Time
}

// NewActivityService creates a new activity service. sink may be nil.
func NewActivityService(
	log repository.ActivityRepository,
	sink repository.ActivitySink,
	retentionDays int,
	logger *zap.Logger,
) *ActivityService {
	s := &ActivityService{
		log:           log,
		sink:          sink,
		retentionDays: retentionDays,
		logger:        logger,
		now:           time.Now,
	}
	if sink != nil {
		s.queue = make(chan domain.ActivityEntry, sinkQueueSize)
	}
	return s
}

// Record appends an action to the user's history. It never waits on the sink.
func (s *ActivityService) Record(userID int64, action string) {
	entry := domain.ActivityEntry{UserID: userID, Action: action, At: s.now()}

	if err := s.log.Append(entry); err != nil {
		s.logger.Error("Failed to append activity", zap.Error(err), zap.Int64("user_id", userID))
	}

	if s.queue == nil {
		return
	}
	select {
	case s.queue <- entry:
	default:
		metrics.ActivityDroppedTotal.Inc()
		s.logger.Warn("Activity sink queue full, dropping entry", zap.Int64("user_id", userID))
	}
}

// RunSink mirrors queued entries to the sink until ctx is cancelled.
// Each write is bounded by sinkWriteTimeout.
func (s *ActivityService) RunSink(ctx context.Context) {
	if s.queue == nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Activity sink worker stopped", zap.Int("pending", len(s.queue)))
			return
		case entry := <-s.queue:
			s.mirror(ctx, entry)
		}
	}
}

func (s *ActivityService) mirror(ctx context.Context, entry domain.ActivityEntry) {
	ctx, cancel := context.WithTimeout(ctx, sinkWriteTimeout)
	defer cancel()

	if err := s.sink.Append(ctx, entry); err != nil {
		s.logger.Warn("Failed to mirror activity to sink", zap.Error(err), zap.Int64("user_id", entry.UserID))
	}
}

// Recent returns up to limit latest entries, oldest first
func (s *ActivityService) Recent(userID int64, limit int) []domain.ActivityEntry {
	entries, err := s.log.Recent(userID, limit)
	if err != nil {
		s.logger.Error("Failed to read activity", zap.Error(err), zap.Int64("user_id", userID))
		return nil
	}
	return entries
}

// CleanupOldData removes sink entries older than the retention window
func (s *ActivityService) CleanupOldData(ctx context.Context) error {
	if s.sink == nil {
		return nil
	}

	s.logger.Info("Starting cleanup of old activity", zap.Int("retention_days", s.retentionDays))

	if err := s.sink.CleanOldEntries(ctx, s.retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old activity", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
