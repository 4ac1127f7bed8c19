package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/Launchpad/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	v, err := ParseView("learning_path")
	require.NoError(t, err)
	assert.Equal(t, ViewLearningPath, v)

	_, err = ParseView("SETTINGS")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestShowsNav(t *testing.T) {
	assert.False(t, ViewLanding.ShowsNav())
	assert.False(t, ViewQuiz.ShowsNav())
	for _, v := range []View{ViewDashboard, ViewLearningPath, ViewInterview, ViewMentorMatch} {
		assert.True(t, v.ShowsNav(), v)
	}
}

func TestRouter_StartsAtLanding(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, ViewLanding, r.Current())

	from, err := r.Navigate(ViewMentorMatch)
	require.NoError(t, err)
	assert.Equal(t, ViewLanding, from)
	assert.Equal(t, ViewMentorMatch, r.Current())

	_, err = r.Navigate(View("NOPE"))
	assert.ErrorIs(t, err, ErrInvalidView)
	assert.Equal(t, ViewMentorMatch, r.Current())

	r.Reset()
	assert.Equal(t, ViewLanding, r.Current())
}

func TestStore_CreateMovesToQuiz(t *testing.T) {
	s := NewStore()
	snap := s.Create("Ada", "Software Engineer")

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, ViewQuiz, snap.View)
	assert.False(t, snap.ShowsNav)
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_NavigateCancelsLeftView(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "Data Scientist").ID

	var ticket *Ticket
	require.NoError(t, s.With(id, func(sess *Session) error {
		require.NoError(t, sess.Navigate(ViewMentorMatch))
		var err error
		ticket, err = sess.Begin(context.Background(), ViewMentorMatch)
		return err
	}))
	defer ticket.Done()

	require.NoError(t, s.With(id, func(sess *Session) error {
		return sess.Navigate(ViewDashboard)
	}))

	select {
	case <-ticket.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("leaving the view did not cancel its generation")
	}
	assert.True(t, ticket.Cancelled())
}

func TestSession_NavigateToSameViewKeepsGeneration(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "Data Scientist").ID

	var ticket *Ticket
	require.NoError(t, s.With(id, func(sess *Session) error {
		var err error
		ticket, err = sess.Begin(context.Background(), ViewQuiz)
		if err != nil {
			return err
		}
		return sess.Navigate(ViewQuiz)
	}))
	defer ticket.Done()

	assert.False(t, ticket.Cancelled())
	assert.NoError(t, ticket.Context().Err())
}

func TestSession_BusyGate(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "UX Designer").ID

	require.NoError(t, s.With(id, func(sess *Session) error {
		first, err := sess.Begin(context.Background(), ViewInterview)
		require.NoError(t, err)
		assert.True(t, sess.Busy(ViewInterview))

		_, err = sess.Begin(context.Background(), ViewInterview)
		assert.ErrorIs(t, err, ErrBusy)

		// other views are independent
		other, err := sess.Begin(context.Background(), ViewMentorMatch)
		require.NoError(t, err)
		other.Done()

		first.Done()
		first.Done()
		assert.False(t, sess.Busy(ViewInterview))

		again, err := sess.Begin(context.Background(), ViewInterview)
		require.NoError(t, err)
		again.Done()
		return nil
	}))
}

func TestSession_JoinIsNotExclusive(t *testing.T) {
	sc := NewScopes()
	a := sc.Join(context.Background(), ViewDashboard)
	b := sc.Join(context.Background(), ViewDashboard)
	defer a.Done()
	defer b.Done()
	assert.False(t, sc.Busy(ViewDashboard))
}

func TestTicket_ParentCancellation(t *testing.T) {
	sc := NewScopes()
	parent, cancel := context.WithCancel(context.Background())
	ticket, err := sc.Begin(parent, ViewQuiz)
	require.NoError(t, err)
	defer ticket.Done()

	cancel()
	<-ticket.Context().Done()
	assert.False(t, ticket.Cancelled(), "request cancellation is not a view cancellation")
}

func TestSession_RestartResets(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "Product Manager").ID

	var ticket *Ticket
	require.NoError(t, s.With(id, func(sess *Session) error {
		sess.QuizResult = &QuizResult{Score: 3}
		sess.LearningPath = &model.LearningPath{Role: "Product Manager"}
		sess.Interview = &Interview{}
		require.NoError(t, sess.Navigate(ViewInterview))
		var err error
		ticket, err = sess.Begin(context.Background(), ViewInterview)
		return err
	}))
	defer ticket.Done()

	require.NoError(t, s.With(id, func(sess *Session) error {
		sess.Restart()
		return nil
	}))

	snap, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, ViewLanding, snap.View)
	assert.Empty(t, snap.Name)
	assert.Nil(t, snap.QuizResult)
	assert.Nil(t, snap.LearningPath)
	assert.Nil(t, snap.Interview)
	assert.True(t, ticket.Cancelled())
}

func TestSnapshot_CopiesTranscript(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "Digital Marketer").ID

	var snap Snapshot
	require.NoError(t, s.With(id, func(sess *Session) error {
		sess.Interview = &Interview{Transcript: []model.InterviewTurn{{Speaker: model.SpeakerModel, Text: "Hi"}}}
		snap = sess.Snapshot()
		sess.Interview.Transcript = append(sess.Interview.Transcript, model.InterviewTurn{Speaker: model.SpeakerUser, Text: "Hello"})
		return nil
	}))
	assert.Len(t, snap.Interview.Transcript, 1)
}

func TestStore_SweepExpiresIdleSessions(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	old := s.Create("Old", "Financial Analyst").ID
	var ticket *Ticket
	require.NoError(t, s.With(old, func(sess *Session) error {
		var err error
		ticket, err = sess.Begin(context.Background(), ViewQuiz)
		return err
	}))
	defer ticket.Done()

	now = now.Add(3 * time.Hour)
	fresh := s.Create("Fresh", "Financial Analyst").ID

	assert.Equal(t, 1, s.Sweep(2*time.Hour))
	_, err := s.Get(old)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh)
	assert.NoError(t, err)
	assert.True(t, ticket.Cancelled())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()
	id := s.Create("Ada", "Software Engineer").ID

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.With(id, func(sess *Session) error {
				return sess.Navigate(Views[i%len(Views)])
			})
			_, _ = s.Get(id)
		}(i)
	}
	wg.Wait()

	s.Delete(id)
	assert.Equal(t, 0, s.Len())
}
