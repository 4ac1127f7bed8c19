package service

import (
	"context"
	"strings"

	"github.com/lshigami/Launchpad/config"
	"github.com/lshigami/Launchpad/internal/dto"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/repository"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

// InterviewPolicy decides when a mock interview is over: when the model
// says the end phrase, or when the candidate has given AnswerCeiling answers.
type InterviewPolicy struct {
	EndPhrase     string
	AnswerCeiling int
}

// The model is told to ask 4 questions; the fifth answer is the last.
func DefaultInterviewPolicy() InterviewPolicy {
	return InterviewPolicy{EndPhrase: "interview is over", AnswerCeiling: 5}
}

func InterviewPolicyFrom(cfg *config.Config) InterviewPolicy {
	p := DefaultInterviewPolicy()
	if cfg.Interview.EndPhrase != "" {
		p.EndPhrase = cfg.Interview.EndPhrase
	}
	if cfg.Interview.AnswerCeiling > 0 {
		p.AnswerCeiling = cfg.Interview.AnswerCeiling
	}
	return p
}

// ShouldEnd is evaluated after the round trip has been appended, so answers
// includes the one just given.
func (p InterviewPolicy) ShouldEnd(reply string, answers int) bool {
	if p.EndPhrase != "" && strings.Contains(strings.ToLower(reply), strings.ToLower(p.EndPhrase)) {
		return true
	}
	return p.AnswerCeiling > 0 && answers >= p.AnswerCeiling
}

func countAnswers(transcript []model.InterviewTurn) int {
	n := 0
	for _, turn := range transcript {
		if turn.Speaker == model.SpeakerUser {
			n++
		}
	}
	return n
}

type InterviewService interface {
	StartInterview(ctx context.Context, sessionID string) (*dto.InterviewDTO, error)
	SendMessage(ctx context.Context, sessionID string, text string) (*dto.InterviewDTO, error)
	GetInterview(sessionID string) (*dto.InterviewDTO, error)
	RetryFeedback(ctx context.Context, sessionID string) (*dto.InterviewDTO, error)
}

type interviewService struct {
	store      *session.Store
	content    ContentService
	recordRepo repository.InterviewRecordRepository
	policy     InterviewPolicy
}

func NewInterviewService(
	store *session.Store,
	content ContentService,
	recordRepo repository.InterviewRecordRepository,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		store:      store,
		content:    content,
		recordRepo: recordRepo,
		policy:     InterviewPolicyFrom(cfg),
	}
}

// StartInterview mounts the interview view and opens a new conversation,
// replacing any previous one. The greeting is sent but not shown.
func (s *interviewService) StartInterview(ctx context.Context, sessionID string) (*dto.InterviewDTO, error) {
	var role string
	var ticket *session.Ticket
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if err := sess.Navigate(session.ViewInterview); err != nil {
			return err
		}
		t, err := sess.Begin(ctx, session.ViewInterview)
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

	conv, reply, err := s.content.StartInterview(ticket.Context(), role)
	if err != nil {
		return nil, generationErr(ticket, err)
	}

	var out *dto.InterviewDTO
	err = s.store.With(sessionID, func(sess *session.Session) error {
		if ticket.Cancelled() {
			return ErrCancelled
		}
		sess.Interview = &session.Interview{
			Chat:       conv,
			Transcript: []model.InterviewTurn{{Speaker: model.SpeakerModel, Text: reply}},
		}
		out = s.toInterviewDTO(sess.Snapshot().Interview, reply)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", sessionID).Msg("Interview started")
	return out, nil
}

// SendMessage runs one round trip. Both turns are appended to the transcript
// and recorded on the chat together, under the session lock, so a failed or
// cancelled call leaves both untouched. When the policy fires the interview
// is finished and feedback is requested.
func (s *interviewService) SendMessage(ctx context.Context, sessionID string, text string) (*dto.InterviewDTO, error) {
	var chat session.Chat
	var ticket *session.Ticket
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if sess.Interview == nil {
			return ErrInterviewNotStarted
		}
		if sess.Interview.Finished {
			return ErrInterviewFinished
		}
		t, err := sess.Begin(ctx, session.ViewInterview)
		if err != nil {
			return err
		}
		chat, ticket = sess.Interview.Chat, t
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer ticket.Done()

	reply, err := s.content.ContinueInterview(ticket.Context(), chat, text)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("SendMessage: interview turn failed")
		return nil, generationErr(ticket, err)
	}

	var finished bool
	var out *dto.InterviewDTO
	err = s.store.With(sessionID, func(sess *session.Session) error {
		if ticket.Cancelled() {
			return ErrCancelled
		}
		iv := sess.Interview
		if iv == nil || iv.Chat != chat {
			return ErrCancelled
		}
		chat.Record(text, reply)
		iv.Transcript = append(iv.Transcript,
			model.InterviewTurn{Speaker: model.SpeakerUser, Text: text},
			model.InterviewTurn{Speaker: model.SpeakerModel, Text: reply},
		)
		if s.policy.ShouldEnd(reply, countAnswers(iv.Transcript)) {
			iv.Finished = true
			finished = true
		}
		out = s.toInterviewDTO(sess.Snapshot().Interview, reply)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !finished {
		return out, nil
	}

	log.Info().Str("sessionID", sessionID).Int("turns", len(out.Transcript)).Msg("Interview finished")
	return s.completeFeedback(ticket, sessionID, reply)
}

// RetryFeedback requests feedback again for a finished interview whose
// first feedback call failed.
func (s *interviewService) RetryFeedback(ctx context.Context, sessionID string) (*dto.InterviewDTO, error) {
	var ticket *session.Ticket
	err := s.store.With(sessionID, func(sess *session.Session) error {
		switch {
		case sess.Interview == nil:
			return ErrInterviewNotStarted
		case !sess.Interview.Finished:
			return ErrInterviewNotFinished
		case sess.Interview.Feedback != nil:
			return ErrFeedbackExists
		}
		t, err := sess.Begin(ctx, session.ViewInterview)
		if err != nil {
			return err
		}
		ticket = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	defer ticket.Done()

	out, err := s.completeFeedback(ticket, sessionID, "")
	if err != nil {
		return nil, err
	}
	if out.Feedback == nil {
		return nil, ErrFeedbackFailed
	}
	return out, nil
}

// completeFeedback generates feedback at most once and writes the history
// record. A failed feedback call is recorded and leaves the interview
// finished without feedback. If the interview was replaced meanwhile, the
// record is still written for the old one but nothing touches the new one.
func (s *interviewService) completeFeedback(ticket *session.Ticket, sessionID, reply string) (*dto.InterviewDTO, error) {
	var transcript []model.InterviewTurn
	var record model.InterviewRecord
	var current *session.Interview
	err := s.store.With(sessionID, func(sess *session.Session) error {
		iv := sess.Interview
		if iv == nil {
			return ErrCancelled
		}
		current = iv
		transcript = append([]model.InterviewTurn(nil), iv.Transcript...)
		record = model.InterviewRecord{
			ID:         iv.RecordID,
			SessionID:  sess.ID,
			Name:       sess.Name,
			TargetRole: sess.TargetRole,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	feedback, fbErr := s.content.GetFeedback(ticket.Context(), transcript)
	if fbErr != nil {
		log.Error().Err(fbErr).Str("sessionID", sessionID).Msg("Interview feedback failed")
	}
	if ticket.Cancelled() {
		feedback = nil
	}

	s.saveRecord(&record, transcript, feedback)

	var out *dto.InterviewDTO
	err = s.store.With(sessionID, func(sess *session.Session) error {
		iv := sess.Interview
		if iv == nil || iv != current {
			return ErrCancelled
		}
		if feedback != nil && iv.Feedback == nil {
			iv.Feedback = feedback
		}
		if record.ID != 0 {
			iv.RecordID = record.ID
		}
		out = s.toInterviewDTO(sess.Snapshot().Interview, reply)
		return nil
	})
	return out, err
}

func (s *interviewService) saveRecord(record *model.InterviewRecord, transcript []model.InterviewTurn, feedback *model.InterviewFeedback) {
	if record.ID != 0 {
		existing, err := s.recordRepo.FindByID(record.ID)
		if err != nil {
			log.Error().Err(err).Uint("recordID", record.ID).Msg("Failed to load interview record")
			return
		}
		*record = *existing
	}

	record.Turns = len(transcript)
	record.Transcript = transcript
	record.Status = model.InterviewStatusFeedbackFailed
	if feedback != nil {
		score := feedback.Score
		record.Score = &score
		record.Strengths = feedback.Strengths
		record.Weaknesses = feedback.Weaknesses
		record.Advice = feedback.Advice
		record.Status = model.InterviewStatusCompleted
	}

	var err error
	if record.ID == 0 {
		err = s.recordRepo.Create(record)
	} else {
		err = s.recordRepo.Update(record)
	}
	if err != nil {
		log.Error().Err(err).Str("sessionID", record.SessionID).Msg("Failed to persist interview record")
	}
}

func (s *interviewService) GetInterview(sessionID string) (*dto.InterviewDTO, error) {
	var out *dto.InterviewDTO
	err := s.store.With(sessionID, func(sess *session.Session) error {
		if sess.Interview == nil {
			return ErrInterviewNotStarted
		}
		out = s.toInterviewDTO(sess.Snapshot().Interview, "")
		return nil
	})
	return out, err
}

func (s *interviewService) toInterviewDTO(iv *session.InterviewSnapshot, reply string) *dto.InterviewDTO {
	out := &dto.InterviewDTO{
		Reply:         reply,
		Transcript:    toTurnDTOs(iv.Transcript),
		Finished:      iv.Finished,
		AnswerCeiling: s.policy.AnswerCeiling,
	}
	if iv.Feedback != nil {
		out.Feedback = toFeedbackDTO(iv.Feedback)
	}
	if iv.RecordID != 0 {
		id := iv.RecordID
		out.RecordID = &id
	}
	return out
}

func toTurnDTOs(turns []model.InterviewTurn) []dto.InterviewTurnDTO {
	out := make([]dto.InterviewTurnDTO, len(turns))
	for i, t := range turns {
		out[i] = dto.InterviewTurnDTO{Speaker: string(t.Speaker), Text: t.Text}
	}
	return out
}

func toFeedbackDTO(fb *model.InterviewFeedback) *dto.InterviewFeedbackDTO {
	return &dto.InterviewFeedbackDTO{
		Score:      fb.Score,
		Strengths:  append([]string(nil), fb.Strengths...),
		Weaknesses: append([]string(nil), fb.Weaknesses...),
		Advice:     fb.Advice,
	}
}
