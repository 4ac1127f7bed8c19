package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

type MentorService interface {
	GetMentors(ctx context.Context, sessionID string) (*dto.MentorsDTO, error)
}

type mentorService struct {
	store   *session.Store
	content ContentService
}

func NewMentorService(store *session.Store, content ContentService) MentorService {
	return &mentorService{store: store, content: content}
}

// GetMentors mounts the mentor view and generates a fresh list on every
// call; mentors are never stored in the session.
func (s *mentorService) GetMentors(ctx context.Context, sessionID string) (*dto.MentorsDTO, error) {
	var role string
	var ticket *session.Ticket
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if err := sess.Navigate(session.ViewMentorMatch); err != nil {
			return err
		}
		t, err := sess.Begin(ctx, session.ViewMentorMatch)
		if err != nil {
			return err
		}
		role, ticket = sess.TargetRole, t
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer ticket.Done()

	mentors, err := s.content.GetMentors(ticket.Context(), role)
	if err != nil {
		return nil, generationErr(ticket, err)
	}
	err = s.store.With(sessionID, func(*session.Session) error {
		if ticket.Cancelled() {
			return ErrCancelled
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &dto.MentorsDTO{TargetRole: role, Mentors: []dto.MentorDTO{}}
	if err := copier.Copy(&out.Mentors, &mentors); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("GetMentors: copier failed")
		return nil, err
	}
	return out, nil
}
