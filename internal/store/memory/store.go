package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

// Store keeps sessions in process memory. Suitable for local development and
// tests; production deployments use the postgres store.
type Store struct {
	mu       sync.RWMutex
	visitors map[string]session.Visitor
	sessions map[string]session.Session
	messages map[string][]session.Message
}

// New bootstraps an empty in-memory store.
func New() *Store {
	return &Store{
		visitors: make(map[string]session.Visitor),
		sessions: make(map[string]session.Session),
		messages: make(map[string][]session.Message),
	}
}

func (s *Store) CreateSession(_ context.Context, visitor session.Visitor) (session.Session, error) {
	if visitor.Name == "" {
		return session.Session{}, session.ErrVisitorNameRequired
	}

	now := time.Now().UTC()
	visitor.ID = uuid.NewString()
	visitor.CreatedAt = now

	sess := session.Session{
		ID:        uuid.NewString(),
		VisitorID: visitor.ID,
		Status:    session.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.visitors[visitor.ID] = visitor
	s.sessions[sess.ID] = sess
	s.messages[sess.ID] = make([]session.Message, 0, 16)
	s.mu.Unlock()

	return sess, nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (session.Session, session.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, session.Visitor{}, session.ErrSessionNotFound
	}
	visitor, ok := s.visitors[sess.VisitorID]
	if !ok {
		return session.Session{}, session.Visitor{}, session.ErrSessionNotFound
	}
	return sess, visitor, nil
}

func (s *Store) AppendExchange(_ context.Context, sessionID string, userMsg, assistantMsg session.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.ErrSessionNotFound
	}

	now := time.Now().UTC()
	for _, msg := range []*session.Message{&userMsg, &assistantMsg} {
		msg.ID = uuid.NewString()
		msg.SessionID = sessionID
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = now
		}
	}

	s.messages[sessionID] = append(s.messages[sessionID], userMsg, assistantMsg)
	sess.UpdatedAt = now
	s.sessions[sessionID] = sess
	return nil
}

func (s *Store) Transcript(_ context.Context, sessionID string) ([]session.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages, ok := s.messages[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}

	copied := make([]session.Message, len(messages))
	copy(copied, messages)
	return copied, nil
}
