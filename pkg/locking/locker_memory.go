package locking

import (
	"context"
	"sync"
	"time"
)

// LockerMemory is a type of LockerInterface for single process deployments and tests
type LockerMemory struct {
	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLockerMemory builds a new LockerMemory instance
func NewLockerMemory() *LockerMemory {
	return &LockerMemory{
		locks: map[string]*sync.Mutex{},
	}
}

// Acquire acquires a LockInterface
func (l *LockerMemory) Acquire(_ context.Context, key string, _ time.Duration) (LockInterface, error) {
	l.getLock(key).Lock()

	return &LockMemory{
		key: key,
		release: func() {
			l.getLock(key).Unlock()
		},
	}, nil
}

func (l *LockerMemory) getLock(key string) *sync.Mutex {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}

	return lock
}

// LockMemory is a memory implementation of a LockInterface
type LockMemory struct {
	key     string
	release func()
}

// Key returns a key
func (l *LockMemory) Key() string {
	return l.key
}

// Release releases a LockMemory
func (l *LockMemory) Release(_ context.Context) error {
	l.release()
	return nil
}
