package session

import (
	"context"
	"time"

	"github.com/lshigami/Launchpad/internal/model"
)

// Chat is the persistent conversation handle an interview talks through.
// Reply does not change the history; Record does, and is only called under
// the session lock once the round trip is kept.
type Chat interface {
	Reply(ctx context.Context, text string) (string, error)
	Record(text, reply string)
}

type QuizResult struct {
	Score   int
	Answers []*int
}

type Interview struct {
	Chat       Chat
	Transcript []model.InterviewTurn
	Finished   bool
	Feedback   *model.InterviewFeedback
	RecordID   uint
}

// Session is one user's journey. Fields are only touched through
// Store.With, which holds the session lock.
type Session struct {
	ID           string
	Name         string
	TargetRole   string
	Quiz         []model.QuizQuestion
	QuizResult   *QuizResult
	LearningPath *model.LearningPath
	Interview    *Interview
	CreatedAt    time.Time
	LastSeen     time.Time

	router Router
	scopes *Scopes
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
		router:    NewRouter(),
		scopes:    NewScopes(),
	}
}

func (s *Session) View() View {
	return s.router.Current()
}

// Navigate switches view. Leaving a view cancels its in-flight generation.
func (s *Session) Navigate(to View) error {
	from, err := s.router.Navigate(to)
	if err != nil {
		return err
	}
	if from != to {
		s.scopes.Cancel(from)
	}
	return nil
}

// Restart drops all progress and returns to Landing.
func (s *Session) Restart() {
	s.scopes.CancelAll()
	s.Name = ""
	s.TargetRole = ""
	s.Quiz = nil
	s.QuizResult = nil
	s.LearningPath = nil
	s.Interview = nil
	s.router.Reset()
}

// Begin gates an exclusive generation for view v.
func (s *Session) Begin(ctx context.Context, v View) (*Ticket, error) {
	return s.scopes.Begin(ctx, v)
}

func (s *Session) Join(ctx context.Context, v View) *Ticket {
	return s.scopes.Join(ctx, v)
}

func (s *Session) Busy(v View) bool {
	return s.scopes.Busy(v)
}

// Snapshot is a copy of the session safe to use after the lock is released.
type Snapshot struct {
	ID            string
	Name          string
	TargetRole    string
	View          View
	ShowsNav      bool
	QuizQuestions int
	QuizResult    *QuizResult
	LearningPath  *model.LearningPath
	Interview     *InterviewSnapshot
	CreatedAt     time.Time
	LastSeen      time.Time
}

type InterviewSnapshot struct {
	Transcript []model.InterviewTurn
	Finished   bool
	Feedback   *model.InterviewFeedback
	RecordID   uint
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:            s.ID,
		Name:          s.Name,
		TargetRole:    s.TargetRole,
		View:          s.View(),
		ShowsNav:      s.View().ShowsNav(),
		QuizQuestions: len(s.Quiz),
		LearningPath:  s.LearningPath,
		CreatedAt:     s.CreatedAt,
		LastSeen:      s.LastSeen,
	}
	if s.QuizResult != nil {
		qr := *s.QuizResult
		qr.Answers = append([]*int(nil), s.QuizResult.Answers...)
		snap.QuizResult = &qr
	}
	if s.Interview != nil {
		snap.Interview = &InterviewSnapshot{
			Transcript: append([]model.InterviewTurn(nil), s.Interview.Transcript...),
			Finished:   s.Interview.Finished,
			Feedback:   s.Interview.Feedback,
			RecordID:   s.Interview.RecordID,
		}
	}
	return snap
}
