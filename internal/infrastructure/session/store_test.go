package session

import (
	"sync"
	"testing"

	"visitme_reservas/internal/usecase"
)

func TestStore(t *testing.T) {
	store := NewStore()

	if _, ok := store.Get("missing"); ok {
		t.Fatal("empty store must not resolve sessions")
	}

	s := &usecase.WizardSession{ID: "sess-1", ResidentID: "res-1"}
	store.Put(s)

	got, ok := store.Get("sess-1")
	if !ok || got != s {
		t.Fatalf("expected the stored session back, got %v %v", got, ok)
	}

	store.Delete("sess-1")
	if _, ok := store.Get("sess-1"); ok {
		t.Fatal("deleted session must not resolve")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := &usecase.WizardSession{ID: string(rune('a' + n))}
			store.Put(s)
			store.Get(s.ID)
			store.Delete(s.ID)
		}(i)
	}
	wg.Wait()
}
