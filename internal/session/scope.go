package session

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBusy is returned when a view already has a generation running.
	ErrBusy = errors.New("a generation for this view is already in progress")
	// ErrCancelled is returned when the view was left before its
	// generation finished; the result is discarded.
	ErrCancelled = errors.New("generation cancelled: view was left")
)

type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	busy   bool
}

func newScope() *scope {
	ctx, cancel := context.WithCancel(context.Background())
	return &scope{ctx: ctx, cancel: cancel}
}

// Scopes gives each view a lifetime. Leaving a view cancels its scope, which
// cancels every generation started from it.
type Scopes struct {
	mu     sync.Mutex
	byView map[View]*scope
}

func NewScopes() *Scopes {
	return &Scopes{byView: make(map[View]*scope)}
}

func (s *Scopes) get(v View) *scope {
	sc, ok := s.byView[v]
	if !ok {
		sc = newScope()
		s.byView[v] = sc
	}
	return sc
}

// Ticket is one generation bound to a view scope and a caller context.
type Ticket struct {
	ctx     context.Context
	scope   *scope
	release func()
}

func (t *Ticket) Context() context.Context {
	return t.ctx
}

// Cancelled reports whether the owning view was left. Check it under the
// session lock before writing a result back.
func (t *Ticket) Cancelled() bool {
	return t.scope.ctx.Err() != nil
}

// Done releases the ticket. Safe to call more than once.
func (t *Ticket) Done() {
	t.release()
}

// Begin starts an exclusive generation for v. A second Begin for the same
// view before Done fails with ErrBusy.
func (s *Scopes) Begin(parent context.Context, v View) (*Ticket, error) {
	return s.begin(parent, v, true)
}

// Join starts a non-exclusive generation for v; callers deduplicate
// themselves.
func (s *Scopes) Join(parent context.Context, v View) *Ticket {
	t, _ := s.begin(parent, v, false)
	return t
}

func (s *Scopes) begin(parent context.Context, v View, exclusive bool) (*Ticket, error) {
	s.mu.Lock()
	sc := s.get(v)
	if exclusive {
		if sc.busy {
			s.mu.Unlock()
			return nil, ErrBusy
		}
		sc.busy = true
	}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	stop := context.AfterFunc(sc.ctx, cancel)

	var once sync.Once
	release := func() {
		once.Do(func() {
			stop()
			cancel()
			if exclusive {
				s.mu.Lock()
				sc.busy = false
				s.mu.Unlock()
			}
		})
	}
	return &Ticket{ctx: ctx, scope: sc, release: release}, nil
}

// Busy reports whether v has an exclusive generation running.
func (s *Scopes) Busy(v View) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.byView[v]
	return ok && sc.busy
}

// Cancel ends v's current scope. The next Begin gets a fresh one.
func (s *Scopes) Cancel(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sc, ok := s.byView[v]; ok {
		sc.cancel()
		delete(s.byView, v)
	}
}

func (s *Scopes) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for v, sc := range s.byView {
		sc.cancel()
		delete(s.byView, v)
	}
}
