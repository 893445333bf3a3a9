package memory

import (
	"sync"

	"medinabot/internal/domain"
)

// PendingStore implements repository.PendingRepository.
// Set always replaces the previous action of the operator.
type PendingStore struct {
	mu      sync.RWMutex
	actions map[int64]domain.PendingAction
}

// NewPendingStore creates an empty store
func NewPendingStore() *PendingStore {
	return &PendingStore{actions: make(map[int64]domain.PendingAction)}
}

func (s *PendingStore) Get(operatorID int64) (domain.PendingAction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	action, ok := s.actions[operatorID]
	return action, ok
}

func (s *PendingStore) Set(operatorID int64, action domain.PendingAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if action == nil {
		delete(s.actions, operatorID)
		return
	}
	s.actions[operatorID] = action
}

func (s *PendingStore) Clear(operatorID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.actions, operatorID)
}
