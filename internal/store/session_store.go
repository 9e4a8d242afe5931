package store

import (
	"context"
	"sync"
	"time"

	"quizarena/internal/models"
)

// SessionStore is the append-only log of completed attempts. Sessions
// are immutable once created; order holds creation order.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int]models.QuizSession
	order    []int
	nextID   int
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int]models.QuizSession), nextID: 1}
}

func (s *SessionStore) Create(ctx context.Context, session models.QuizSession) (models.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = s.nextID
	s.nextID++
	if session.CompletedAt.IsZero() {
		session.CompletedAt = time.Now().UTC()
	}
	s.sessions[session.ID] = session
	s.order = append(s.order, session.ID)
	return session, nil
}

// All returns every session in creation order.
func (s *SessionStore) All(ctx context.Context) ([]models.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.QuizSession, 0, len(s.order))
	for _, id := range s.order {
		sessions = append(sessions, s.sessions[id])
	}
	return sessions, nil
}

// ByUser returns the user's sessions in creation order.
func (s *SessionStore) ByUser(ctx context.Context, userID int) ([]models.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]models.QuizSession, 0)
	for _, id := range s.order {
		if session := s.sessions[id]; session.UserID == userID {
			sessions = append(sessions, session)
		}
	}
	return sessions, nil
}

// RecentByUser returns the user's most recent sessions, newest first,
// capped at limit.
func (s *SessionStore) RecentByUser(ctx context.Context, userID, limit int) ([]models.QuizSession, error) {
	sessions, err := s.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent := make([]models.QuizSession, 0, limit)
	for i := len(sessions) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, sessions[i])
	}
	return recent, nil
}
