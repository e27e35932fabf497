// internal/server/session.go
package server

import (
	"sync"
	"time"

	"launch-assistant/internal/models"

	"github.com/google/uuid"
)

// Session is the explicit, request-scoped replacement for what used to be
// global form state. Answers accumulate across steps; the plan appears once
// generation runs; EmailSent records whether the plan email went out.
type Session struct {
	mu        sync.Mutex
	ID        string
	Answers   models.FormAnswers
	Plan      *models.Plan
	EmailSent bool
	CreatedAt time.Time
}

// SessionStore keeps sessions in memory, keyed by token. Sessions hold no
// durable state of their own; milestones and leads live in their own stores.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// Create mints a new empty session and returns it.
func (s *SessionStore) Create() *Session {
	session := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// Get returns the session for the token, or nil when unknown.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Reset wipes a session back to its just-created state, keeping the token
// so the client does not have to renegotiate one.
func (s *SessionStore) Reset(id string) bool {
	s.mu.RLock()
	session := s.sessions[id]
	s.mu.RUnlock()
	if session == nil {
		return false
	}

	session.mu.Lock()
	session.Answers = models.FormAnswers{}
	session.Plan = nil
	session.EmailSent = false
	session.mu.Unlock()
	return true
}
