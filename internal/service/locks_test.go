package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := newKeyedMutex[int64]()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := km.Lock(context.Background(), 7)
			if err != nil {
				t.Errorf("Lock() error = %v", err)
				return
			}
			defer unlock()

			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("max concurrent holders = %d, want 1", maxSeen)
	}
	if km.size() != 0 {
		t.Errorf("size() = %d, want entries released", km.size())
	}
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	km := newKeyedMutex[int64]()

	unlockA, _ := km.Lock(context.Background(), 1)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock, _ := km.Lock(context.Background(), 2)
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on key 2 blocked behind key 1")
	}
}

func TestKeyedMutex_ArrivalOrder(t *testing.T) {
	km := newKeyedMutex[int64]()

	unlock, _ := km.Lock(context.Background(), 3)
	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	// Start waiters one at a time so each is queued before the next arrives.
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		started := make(chan struct{})
		go func(n int) {
			defer wg.Done()
			close(started)
			release, _ := km.Lock(context.Background(), 3)
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
			release()
		}(i)
		<-started
		time.Sleep(5 * time.Millisecond)
	}

	unlock()
	wg.Wait()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

func TestKeyedMutex_ContextCanceled(t *testing.T) {
	km := newKeyedMutex[int64]()

	unlock, _ := km.Lock(context.Background(), 9)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := km.Lock(ctx, 9); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Lock() error = %v, want DeadlineExceeded", err)
	}

	unlock()
	if km.size() != 0 {
		t.Errorf("size() = %d, want 0 after cancel and release", km.size())
	}
}
