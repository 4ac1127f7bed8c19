package service

import (
	"context"

	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, sessionID string) (*dto.DashboardDTO, error)
	GetLearningPath(ctx context.Context, sessionID string) (*dto.LearningPathDTO, error)
}

type dashboardService struct {
	store          *session.Store
	content        ContentService
	scoreConverter ScoreConverterService

	// one learning-path generation per session at a time
	group singleflight.Group
}

func NewDashboardService(store *session.Store, content ContentService, scoreConverter ScoreConverterService) DashboardService {
	return &dashboardService{store: store, content: content, scoreConverter: scoreConverter}
}

// GetDashboard mounts the dashboard and derives the metrics from the
// current score. Before the quiz is taken the metrics use score 0. The
// learning path is generated on the first visit after the quiz; a failed
// generation leaves it out.
func (s *dashboardService) GetDashboard(ctx context.Context, sessionID string) (*dto.DashboardDTO, error) {
	snap, err := s.mount(sessionID, session.ViewDashboard)
	if err != nil {
		return nil, err
	}

	score := 0
	out := &dto.DashboardDTO{
		Name:       snap.Name,
		TargetRole: snap.TargetRole,
		Total:      snap.QuizQuestions,
	}
	if snap.QuizResult != nil {
		score = snap.QuizResult.Score
		out.QuizCompleted = true
	}
	out.Score = score
	out.Readiness = s.scoreConverter.Readiness(score)
	out.Tier = s.scoreConverter.Tier(out.Readiness)
	out.Skills = s.scoreConverter.SkillProfile(score)
	out.Growth = s.scoreConverter.GrowthProjection(score)

	if !out.QuizCompleted {
		return out, nil
	}
	path := snap.LearningPath
	if path == nil {
		path, err = s.learningPath(ctx, sessionID)
		if err != nil {
			log.Warn().Err(err).Str("sessionID", sessionID).Msg("GetDashboard: learning path unavailable")
		}
	}
	if path != nil {
		out.LearningPath = toLearningPathDTO(path)
	}
	return out, nil
}

func (s *dashboardService) GetLearningPath(ctx context.Context, sessionID string) (*dto.LearningPathDTO, error) {
	if _, err := s.mount(sessionID, session.ViewLearningPath); err != nil {
		return nil, err
	}
	path, err := s.learningPath(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toLearningPathDTO(path), nil
}

// mount moves the session to v, cancelling whatever the previous view had
// running.
func (s *dashboardService) mount(sessionID string, v session.View) (session.Snapshot, error) {
	var snap session.Snapshot
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if err := sess.Navigate(v); err != nil {
			return err
		}
		snap = sess.Snapshot()
		return nil
	})
	return snap, err
}

// learningPath returns the cached path or generates it once. Concurrent
// callers for the same session share one generation, which is bound to the
// view that asked for it rather than to any single request.
func (s *dashboardService) learningPath(ctx context.Context, sessionID string) (*model.LearningPath, error) {
	v, err, _ := s.group.Do(sessionID, func() (any, error) {
		var role string
		var score int
		var cached *model.LearningPath
		var ticket *session.Ticket
		err := s.store.With(sessionID, func(sess *session.Session) error {
			if sess.QuizResult == nil {
				return ErrQuizNotTaken
			}
			if sess.LearningPath != nil {
				cached = sess.LearningPath
				return nil
			}
			view := sess.View()
			if view != session.ViewLearningPath {
				view = session.ViewDashboard
			}
			role, score = sess.TargetRole, sess.QuizResult.Score
			ticket = sess.Join(context.WithoutCancel(ctx), view)
			return nil
		})
		if err != nil || cached != nil {
			return cached, err
		}
		defer ticket.Done()

		path, err := s.content.GenerateLearningPath(ticket.Context(), role, score)
		if err != nil {
			return nil, generationErr(ticket, err)
		}

		err = s.store.With(sessionID, func(sess *session.Session) error {
			if ticket.Cancelled() {
				return ErrCancelled
			}
			if sess.LearningPath == nil {
				sess.LearningPath = path
			}
			path = sess.LearningPath
			return nil
		})
		if err != nil {
			return nil, err
		}
		log.Info().Str("sessionID", sessionID).Int("modules", len(path.Modules)).Msg("Learning path generated")
		return path, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.LearningPath), nil
}

func toLearningPathDTO(path *model.LearningPath) *dto.LearningPathDTO {
	out := &dto.LearningPathDTO{
		Role:         path.Role,
		CareerAdvice: path.CareerAdvice,
		Modules:      make([]dto.LearningModuleDTO, len(path.Modules)),
	}
	for i, m := range path.Modules {
		out.Modules[i] = dto.LearningModuleDTO{
			Title:       m.Title,
			Description: m.Description,
			Duration:    m.Duration,
			Type:        string(m.Type),
		}
	}
	return out
}
