package memory

import (
	"sync"

	"medinabot/internal/domain"
)

// DefaultActivityCapacity is the number of entries kept per user
const DefaultActivityCapacity = 100

// ActivityLog implements repository.ActivityRepository with one bounded
// ring buffer per user. When a buffer is full the oldest entry is overwritten.
type ActivityLog struct {
	mu       sync.RWMutex
	capacity int
	rings    map[int64]*ring
}

type ring struct {
	mu      sync.Mutex
	entries []domain.ActivityEntry
	next    int
	full    bool
}

// NewActivityLog creates a log keeping at most capacity entries per user
func NewActivityLog(capacity int) *ActivityLog {
	if capacity <= 0 {
		capacity = DefaultActivityCapacity
	}
	return &ActivityLog{
		capacity: capacity,
		rings:    make(map[int64]*ring),
	}
}

func (l *ActivityLog) ringFor(userID int64, create bool) *ring {
	l.mu.RLock()
	r, ok := l.rings[userID]
	l.mu.RUnlock()
	if ok || !create {
		return r
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok = l.rings[userID]; !ok {
		r = &ring{entries: make([]domain.ActivityEntry, l.capacity)}
		l.rings[userID] = r
	}
	return r
}

// Append adds an entry to the user's buffer
func (l *ActivityLog) Append(entry domain.ActivityEntry) error {
	r := l.ringFor(entry.UserID, true)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

// Recent returns up to limit most recent entries, oldest first.
// A non-positive limit returns the whole buffer.
func (l *ActivityLog) Recent(userID int64, limit int) ([]domain.ActivityEntry, error) {
	r := l.ringFor(userID, false)
	if r == nil {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	result := make([]domain.ActivityEntry, 0, limit)
	start := r.next - limit
	for i := 0; i < limit; i++ {
		idx := (start + i + len(r.entries)) % len(r.entries)
		result = append(result, r.entries[idx])
	}
	return result, nil
}
