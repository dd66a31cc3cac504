package concurrency

import (
	"sync"
)

// LockManager hands out per-key mutexes. Entries are reference counted and
// dropped once no caller holds or waits on them.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is held and returns its release func
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
