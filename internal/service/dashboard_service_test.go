package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lshigami/Launchpad/internal/llm"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeQuiz(t *testing.T, store *session.Store, role string, score int) string {
	t.Helper()
	id := store.Create("Ada", role).ID
	require.NoError(t, store.With(id, func(sess *session.Session) error {
		sess.Quiz = sampleQuiz()
		sess.QuizResult = &session.QuizResult{Score: score, Answers: make([]*int, 5)}
		return sess.Navigate(session.ViewDashboard)
	}))
	return id
}

func TestDashboardService_BeforeQuiz(t *testing.T) {
	d := newDeps(t)
	svc := NewDashboardService(d.store, d.content, NewScoreConverterService())
	id := d.store.Create("Ada", "UX Designer").ID

	dash, err := svc.GetDashboard(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, dash.QuizCompleted)
	assert.Equal(t, 20, dash.Readiness)
	assert.Equal(t, TierBronze, dash.Tier)
	assert.Nil(t, dash.LearningPath)
	assert.Zero(t, d.provider.CallCount())

	_, err = svc.GetLearningPath(context.Background(), id)
	assert.ErrorIs(t, err, ErrQuizNotTaken)
}

func TestDashboardService_GeneratesPathOnce(t *testing.T) {
	d := newDeps(t)
	d.provider.AddResponse(jsonResponse(t, samplePath("Data Scientist")))
	svc := NewDashboardService(d.store, d.content, NewScoreConverterService())
	id := completeQuiz(t, d.store, "Data Scientist", 3)

	dash, err := svc.GetDashboard(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, dash.QuizCompleted)
	assert.Equal(t, 65, dash.Readiness)
	assert.Equal(t, TierSilver, dash.Tier)
	assert.Len(t, dash.Skills, 6)
	assert.Len(t, dash.Growth, 5)
	require.NotNil(t, dash.LearningPath)
	assert.Equal(t, "Ship small projects often.", dash.LearningPath.CareerAdvice)
	assert.Equal(t, "project", dash.LearningPath.Modules[1].Type)

	path, err := svc.GetLearningPath(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, dash.LearningPath, path)
	assert.Equal(t, 1, d.provider.CallCount())
}

func TestDashboardService_PathFailureKeepsDashboard(t *testing.T) {
	d := newDeps(t)
	d.provider.AddResponse(llm.MockResponse{Text: "{broken"})
	d.provider.AddResponse(llm.MockResponse{Text: "{broken"})
	svc := NewDashboardService(d.store, d.content, NewScoreConverterService())
	id := completeQuiz(t, d.store, "Data Scientist", 5)

	dash, err := svc.GetDashboard(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 95, dash.Readiness)
	assert.Equal(t, TierGold, dash.Tier)
	assert.Nil(t, dash.LearningPath)

	_, err = svc.GetLearningPath(context.Background(), id)
	var invalid *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

// gatedProvider holds every call until release is closed.
type gatedProvider struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	body    json.RawMessage
}

func (g *gatedProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	g.calls.Add(1)
	g.started <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &llm.Response{Content: g.body, Text: string(g.body)}, nil
}

func (g *gatedProvider) ModelID() string { return "gated" }

func TestDashboardService_ConcurrentVisitsShareGeneration(t *testing.T) {
	d := newDeps(t)
	body, err := json.Marshal(samplePath("Data Scientist"))
	require.NoError(t, err)
	gp := &gatedProvider{started: make(chan struct{}, 8), release: make(chan struct{}), body: body}
	svc := NewDashboardService(d.store, NewContentService(gp, testConfig()), NewScoreConverterService())
	id := completeQuiz(t, d.store, "Data Scientist", 2)

	first := make(chan error, 1)
	go func() {
		_, err := svc.GetLearningPath(context.Background(), id)
		first <- err
	}()
	<-gp.started

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path, err := svc.GetLearningPath(context.Background(), id)
			assert.NoError(t, err)
			if assert.NotNil(t, path) {
				assert.Equal(t, "Data Scientist", path.Role)
			}
		}()
	}
	close(gp.release)
	wg.Wait()
	require.NoError(t, <-first)

	assert.Equal(t, int32(1), gp.calls.Load())
}

func TestDashboardService_LeavingDashboardDiscardsPath(t *testing.T) {
	d := newDeps(t)
	bp := newBlockingProvider()
	svc := NewDashboardService(d.store, NewContentService(bp, testConfig()), NewScoreConverterService())
	id := completeQuiz(t, d.store, "Data Scientist", 2)

	errCh := make(chan error, 1)
	go func() {
		_, err := svc.GetLearningPath(context.Background(), id)
		errCh <- err
	}()
	<-bp.started
	require.NoError(t, d.store.With(id, func(sess *session.Session) error {
		return sess.Navigate(session.ViewInterview)
	}))

	assert.ErrorIs(t, <-errCh, ErrCancelled)
	snap, err := d.store.Get(id)
	require.NoError(t, err)
	assert.Nil(t, snap.LearningPath)
}

func TestDashboardService_MountsDashboard(t *testing.T) {
	d := newDeps(t)
	svc := NewDashboardService(d.store, d.content, NewScoreConverterService())
	id := d.store.Create("Ada", "UX Designer").ID

	_, err := svc.GetDashboard(context.Background(), id)
	require.NoError(t, err)
	snap, err := d.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, session.ViewDashboard, snap.View)

	_, err = svc.GetDashboard(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDashboardService_LeavingDashboardCancelsItsPath(t *testing.T) {
	d := newDeps(t)
	bp := newBlockingProvider()
	svc := NewDashboardService(d.store, NewContentService(bp, testConfig()), NewScoreConverterService())
	id := completeQuiz(t, d.store, "Data Scientist", 4)
	require.NoError(t, d.store.With(id, func(sess *session.Session) error {
		return sess.Navigate(session.ViewInterview)
	}))

	type result struct {
		readiness int
		hasPath   bool
		err       error
	}
	done := make(chan result, 1)
	go func() {
		dash, err := svc.GetDashboard(context.Background(), id)
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{readiness: dash.Readiness, hasPath: dash.LearningPath != nil}
	}()
	<-bp.started

	snap, err := d.store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, session.ViewDashboard, snap.View)

	require.NoError(t, d.store.With(id, func(sess *session.Session) error {
		return sess.Navigate(session.ViewMentorMatch)
	}))

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, 80, res.readiness)
	assert.False(t, res.hasPath)

	snap, err = d.store.Get(id)
	require.NoError(t, err)
	assert.Nil(t, snap.LearningPath)
}
