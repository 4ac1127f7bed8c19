package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Launchpad/internal/monitoring"
)

var ErrNotFound = errors.New("session not found")

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Store keeps sessions in memory only; a restart loses them, the same way
// a browser reload did.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*entry), now: time.Now}
}

// Create starts a session from the landing form and moves it to the quiz.
func (s *Store) Create(name, targetRole string) Snapshot {
	sess := newSession(uuid.NewString(), s.now())
	sess.Name = name
	sess.TargetRole = targetRole
	_ = sess.Navigate(ViewQuiz)

	s.mu.Lock()
	s.sessions[sess.ID] = &entry{session: sess}
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	return sess.Snapshot()
}

// With runs fn with the session locked and refreshes LastSeen.
func (s *Store) With(id string, fn func(*Session) error) error {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.LastSeen = s.now()
	return fn(e.session)
}

func (s *Store) Get(id string) (Snapshot, error) {
	var snap Snapshot
	err := s.With(id, func(sess *Session) error {
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	if ok {
		e.mu.Lock()
		e.session.scopes.CancelAll()
		e.mu.Unlock()
	}
}

// Sweep removes sessions idle for longer than ttl, cancelling anything
// they still have running. It returns the number removed.
func (s *Store) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	var expired []*entry
	for id, e := range s.sessions {
		e.mu.Lock()
		idle := e.session.LastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			expired = append(expired, e)
			delete(s.sessions, id)
		}
	}
	monitoring.ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	for _, e := range expired {
		e.mu.Lock()
		e.session.scopes.CancelAll()
		e.mu.Unlock()
	}
	return len(expired)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
