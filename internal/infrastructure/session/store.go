package session

import (
	"sync"

	"visitme_reservas/internal/usecase"
)

// Store keeps in-flight wizard sessions in memory. Sessions are short-lived
// and device-bound, so process-local storage is enough; losing them on a
// restart just means the resident starts the wizard again.

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*usecase.WizardSession
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*usecase.WizardSession)}
}

func (s *Store) Put(session *usecase.WizardSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *Store) Get(id string) (*usecase.WizardSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
