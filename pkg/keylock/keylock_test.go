package keylock

import (
	"sync"
	"testing"
	"time"
)

func TestLock_SerializesSameKey(t *testing.T) {
	kl := New()

	const goroutines = 50
	var counter int
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			kl.Lock(1)
			defer kl.Unlock(1)
			// Unsynchronized read-modify-write; only the key lock
			// protects it. Run with -race.
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}

	wg.Wait()
	if counter != goroutines {
		t.Errorf("expected counter %d, got %d (lost updates)", goroutines, counter)
	}
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	kl := New()

	kl.Lock(1)
	defer kl.Unlock(1)

	done := make(chan struct{})
	go func() {
		kl.Lock(2)
		kl.Unlock(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked behind key 1")
	}
}

func TestUnlock_DropsIdleEntries(t *testing.T) {
	kl := New()

	for key := 0; key < 100; key++ {
		kl.Lock(key)
		kl.Unlock(key)
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()
	if len(kl.locks) != 0 {
		t.Errorf("expected no retained entries, got %d", len(kl.locks))
	}
}

func TestUnlock_UnheldKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unlock of unheld key")
		}
	}()
	New().Unlock(42)
}
