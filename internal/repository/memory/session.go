package memory

import (
	"sort"
	"sync"
	"time"

	"medinabot/internal/domain"
)

// SessionStore implements repository.SessionRepository in process memory.
// The map lock is held only for lookup and insertion; read-modify-write on a
// record happens under that record's own mutex.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[int64]*sessionEntry
	adminID int64
	now     func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
}

// NewSessionStore creates a store granting the admin role to adminID
func NewSessionStore(adminID int64) *SessionStore {
	return &SessionStore{
		entries: make(map[int64]*sessionEntry),
		adminID: adminID,
		now:     time.Now,
	}
}

func (s *SessionStore) lookup(userID int64) (*sessionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[userID]
	return e, ok
}

// GetOrCreate returns a copy of the record, creating it with defaults on first contact.
// Username and role are only ever set here.
func (s *SessionStore) GetOrCreate(userID int64, username string) domain.Session {
	e, ok := s.lookup(userID)
	if !ok {
		s.mu.Lock()
		e, ok = s.entries[userID]
		if !ok {
			e = &sessionEntry{session: domain.NewSession(userID, username, s.adminID, s.now())}
			s.entries[userID] = e
		}
		s.mu.Unlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Get returns a copy of the record if it exists
func (s *SessionStore) Get(userID int64) (domain.Session, bool) {
	e, ok := s.lookup(userID)
	if !ok {
		return domain.Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, true
}

// Update applies fn to the record under its exclusive lock.
// Changes made by fn are discarded when it returns an error.
func (s *SessionStore) Update(userID int64, fn func(*domain.Session) error) error {
	e, ok := s.lookup(userID)
	if !ok {
		return domain.ErrUserNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	updated := e.session
	if err := fn(&updated); err != nil {
		return err
	}
	// Identity fields are fixed at creation
	updated.UserID = e.session.UserID
	updated.Username = e.session.Username
	updated.Role = e.session.Role
	e.session = updated
	return nil
}

// List returns copies of all records ordered by user id
func (s *SessionStore) List() []domain.Session {
	s.mu.RLock()
	entries := make([]*sessionEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sessions := make([]domain.Session, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		sessions = append(sessions, e.session)
		e.mu.Unlock()
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UserID < sessions[j].UserID
	})
	return sessions
}
