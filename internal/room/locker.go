package room

import (
	"sync"

	"github.com/google/uuid"
)

// locker serializes mutations per room. Entries are never evicted: a mutex is
// a few words and the room population is bounded by the league count.
type locker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newLocker() *locker {
	return &locker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *locker) lock(roomID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
