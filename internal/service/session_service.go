package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

// SuggestedRoles is offered on the landing form. Any role text is accepted.
var SuggestedRoles = []string{
	"Software Engineer",
	"Product Manager",
	"Data Scientist",
	"UX Designer",
	"Digital Marketer",
	"Financial Analyst",
}

type SessionService interface {
	CreateSession(req dto.CreateSessionRequest) (*dto.SessionDTO, error)
	GetSession(id string) (*dto.SessionDTO, error)
	Navigate(id string, view string) (*dto.SessionDTO, error)
	Restart(id string) (*dto.SessionDTO, error)
	Roles() []string
}

type sessionService struct {
	store *session.Store
}

func NewSessionService(store *session.Store) SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) CreateSession(req dto.CreateSessionRequest) (*dto.SessionDTO, error) {
	snap := s.store.Create(req.Name, req.TargetRole)
	log.Info().Str("sessionID", snap.ID).Str("targetRole", snap.TargetRole).Msg("Session created")
	return toSessionDTO(snap), nil
}

func (s *sessionService) GetSession(id string) (*dto.SessionDTO, error) {
	snap, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(snap), nil
}

func (s *sessionService) Navigate(id string, view string) (*dto.SessionDTO, error) {
	to, err := session.ParseView(view)
	if err != nil {
		return nil, err
	}
	var snap session.Snapshot
	err = s.store.With(id, func(sess *session.Session) error {
		if err := sess.Navigate(to); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", to, err)
	}
	return toSessionDTO(snap), nil
}

// Restart keeps the session id but clears all progress.
func (s *sessionService) Restart(id string) (*dto.SessionDTO, error) {
	var snap session.Snapshot
	err := s.store.With(id, func(sess *session.Session) error {
		sess.Restart()
		snap = sess.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", id).Msg("Session restarted")
	return toSessionDTO(snap), nil
}

func (s *sessionService) Roles() []string {
	return append([]string(nil), SuggestedRoles...)
}

func toSessionDTO(snap session.Snapshot) *dto.SessionDTO {
	var out dto.SessionDTO
	if err := copier.Copy(&out, &snap); err != nil {
		log.Error().Err(err).Str("sessionID", snap.ID).Msg("toSessionDTO: copier failed")
	}
	out.View = string(snap.View)
	out.HasLearningPath = snap.LearningPath != nil
	if snap.QuizResult != nil {
		score := snap.QuizResult.Score
		out.QuizCompleted = true
		out.Score = &score
	}
	if snap.Interview != nil {
		out.InterviewStarted = true
		out.InterviewFinished = snap.Interview.Finished
	}
	return &out
}
