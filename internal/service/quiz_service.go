package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/repository"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, sessionID string) (*dto.QuizDTO, error)
	GetQuiz(sessionID string) (*dto.QuizDTO, error)
	SubmitAnswers(sessionID string, req dto.SubmitQuizRequest) (*dto.QuizResultDTO, error)
}

type quizService struct {
	store          *session.Store
	content        ContentService
	quizResultRepo repository.QuizResultRepository
	scoreConverter ScoreConverterService
}

func NewQuizService(
	store *session.Store,
	content ContentService,
	quizResultRepo repository.QuizResultRepository,
	scoreConverter ScoreConverterService,
) QuizService {
	return &quizService{
		store:          store,
		content:        content,
		quizResultRepo: quizResultRepo,
		scoreConverter: scoreConverter,
	}
}

// GenerateQuiz mounts the quiz view and fills it with fresh questions.
func (s *quizService) GenerateQuiz(ctx context.Context, sessionID string) (*dto.QuizDTO, error) {
	var role string
	var ticket *session.Ticket
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if err := sess.Navigate(session.ViewQuiz); err != nil {
			return err
		}
		t, err := sess.Begin(ctx, session.ViewQuiz)
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

	questions, err := s.content.GenerateQuiz(ticket.Context(), role)
	if err != nil {
		return nil, generationErr(ticket, err)
	}

	err = s.store.With(sessionID, func(sess *session.Session) error {
		if ticket.Cancelled() {
			return ErrCancelled
		}
		sess.Quiz = questions
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", sessionID).Int("questions", len(questions)).Msg("Quiz generated")
	return toQuizDTO(sessionID, role, questions), nil
}

func (s *quizService) GetQuiz(sessionID string) (*dto.QuizDTO, error) {
	var out *dto.QuizDTO
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if sess.Quiz == nil {
			return ErrQuizNotGenerated
		}
		out = toQuizDTO(sess.ID, sess.TargetRole, sess.Quiz)
		return nil
	})
	return out, err
}

// SubmitAnswers scores the stored quiz, moves the session to the dashboard
// and records the result. A failed history write does not fail the submit.
func (s *quizService) SubmitAnswers(sessionID string, req dto.SubmitQuizRequest) (*dto.QuizResultDTO, error) {
	var out dto.QuizResultDTO
	var record model.QuizResult
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if len(sess.Quiz) == 0 {
			return ErrQuizNotGenerated
		}
		score, correct, err := ScoreQuiz(sess.Quiz, req.Answers)
		if err != nil {
			return err
		}
		for i, a := range req.Answers {
			if a != nil && (*a < 0 || *a >= optionsPerQuiz) {
				return fmt.Errorf("%w: answer %d is %d", ErrAnswerOutOfRange, i, *a)
			}
		}
		if err := sess.Navigate(session.ViewDashboard); err != nil {
			return err
		}
		answers := append([]*int(nil), req.Answers...)
		sess.QuizResult = &session.QuizResult{Score: score, Answers: answers}

		readiness := s.scoreConverter.Readiness(score)
		out = dto.QuizResultDTO{
			Score:     score,
			Total:     len(sess.Quiz),
			Readiness: readiness,
			Tier:      s.scoreConverter.Tier(readiness),
			Correct:   correct,
			View:      string(sess.View()),
		}
		record = model.QuizResult{
			SessionID:  sess.ID,
			Name:       sess.Name,
			TargetRole: sess.TargetRole,
			Score:      score,
			Total:      out.Total,
			Readiness:  out.Readiness,
			Tier:       out.Tier,
			Answers:    answers,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.quizResultRepo.Create(&record); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("SubmitAnswers: failed to persist quiz result")
	}
	log.Info().Str("sessionID", sessionID).Int("score", out.Score).Str("tier", out.Tier).Msg("Quiz submitted")
	return &out, nil
}

func toQuizDTO(sessionID, role string, questions []model.QuizQuestion) *dto.QuizDTO {
	out := &dto.QuizDTO{
		SessionID:  sessionID,
		TargetRole: role,
		Questions:  make([]dto.QuizQuestionDTO, len(questions)),
	}
	for i, q := range questions {
		out.Questions[i] = dto.QuizQuestionDTO{
			Index:    i,
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
		}
	}
	return out
}
