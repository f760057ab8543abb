// Package keylock provides an in-process exclusive lock per integer key.
// The booking path locks a class id for the whole validate-and-write
// sequence so competing bookings for the same class are strictly
// serialized, while bookings for different classes never block each other.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyLock struct {
	mu    sync.Mutex
	locks map[int]*entry
}

func New() *KeyLock {
	return &KeyLock{
		locks: make(map[int]*entry),
	}
}

// Lock blocks until the exclusive lock for key is held by the caller.
func (k *KeyLock) Lock(key int) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key. The entry is dropped once no
// goroutine holds or waits for it, so the map does not grow with the
// number of distinct keys ever seen.
func (k *KeyLock) Unlock(key int) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keylock: unlock of unheld key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
