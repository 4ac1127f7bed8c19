package service

import (
	"errors"

	"github.com/lshigami/Launchpad/internal/session"
)

var (
	ErrSessionNotFound = session.ErrNotFound
	ErrInvalidView     = session.ErrInvalidView
	ErrBusy            = session.ErrBusy
	ErrCancelled       = session.ErrCancelled

	ErrQuizNotGenerated    = errors.New("quiz has not been generated")
	ErrQuizNotTaken        = errors.New("quiz has not been taken yet")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrAnswerOutOfRange    = errors.New("answer index out of range")

	ErrInterviewNotStarted  = errors.New("interview has not been started")
	ErrInterviewFinished    = errors.New("interview is already finished")
	ErrInterviewNotFinished = errors.New("interview is still in progress")
	ErrFeedbackExists       = errors.New("feedback already generated for this interview")
	ErrFeedbackFailed       = errors.New("feedback could not be generated")

	ErrRecordNotFound = errors.New("record not found")
)

// generationErr reports ErrCancelled for calls aborted because their view
// was left, and passes every other error through.
func generationErr(t *session.Ticket, err error) error {
	if t.Cancelled() {
		return ErrCancelled
	}
	return err
}
