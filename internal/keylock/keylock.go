// Package keylock provides one mutex per int64 key so that work on
// different keys never serializes.
package keylock

import "sync"

// Locker hands out a mutex per key. Mutexes are created on first use and
// kept for the life of the process, matching the lifetime of user records.
type Locker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// New creates an empty Locker
func New() *Locker {
	return &Locker{locks: make(map[int64]*sync.Mutex)}
}

func (l *Locker) get(key int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, exists := l.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	return lock
}

// Lock acquires the mutex for key and returns its unlock function
func (l *Locker) Lock(key int64) func() {
	lock := l.get(key)
	lock.Lock()
	return lock.Unlock
}
