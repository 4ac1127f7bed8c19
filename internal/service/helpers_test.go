package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/lshigami/Launchpad/config"
	"github.com/lshigami/Launchpad/internal/llm"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/repository"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{Provider: "gemini", FeedbackModel: "gemini-3-pro-preview", MaxTokens: 2048},
		Interview: config.Interview{
			EndPhrase:      "interview is over",
			AnswerCeiling:  5,
			QuestionBudget: 4,
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.QuizResult{}, &model.InterviewRecord{}))
	return db
}

type deps struct {
	store     *session.Store
	provider  *llm.MockProvider
	content   ContentService
	quizRepo  repository.QuizResultRepository
	interRepo repository.InterviewRecordRepository
}

func newDeps(t *testing.T) *deps {
	t.Helper()
	db := newTestDB(t)
	p := llm.NewMockProvider()
	return &deps{
		store:     session.NewStore(),
		provider:  p,
		content:   NewContentService(p, testConfig()),
		quizRepo:  repository.NewQuizResultRepository(db),
		interRepo: repository.NewInterviewRecordRepository(db),
	}
}

func jsonResponse(t *testing.T, v any) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return llm.MockResponse{Content: b}
}

func sampleQuiz() []model.QuizQuestion {
	qs := make([]model.QuizQuestion, 5)
	for i := range qs {
		qs[i] = model.QuizQuestion{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
		}
	}
	return qs
}

func samplePath(role string) model.LearningPath {
	return model.LearningPath{
		Role:         role,
		CareerAdvice: "Ship small projects often.",
		Modules: []model.LearningModule{
			{Title: "Foundations", Description: "Core concepts", Duration: "2 weeks", Type: model.ModuleLesson},
			{Title: "Portfolio app", Description: "Build and deploy", Duration: "3 weeks", Type: model.ModuleProject},
		},
	}
}

func sampleFeedback(score float64) model.InterviewFeedback {
	return model.InterviewFeedback{
		Score:      score,
		Strengths:  []string{"Clear answers"},
		Weaknesses: []string{"Few examples"},
		Advice:     "Use the STAR method.",
	}
}

func intPtr(v int) *int { return &v }

// blockingProvider waits until its context ends, signalling on started
// once the call is in flight.
type blockingProvider struct {
	started chan struct{}
}

func newBlockingProvider() *blockingProvider {
	return &blockingProvider{started: make(chan struct{}, 8)}
}

func (b *blockingProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	b.started <- struct{}{}
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingProvider) ModelID() string { return "blocking" }

// hookProvider runs after, when set, once each call has its reply.
type hookProvider struct {
	inner llm.Provider
	after func()
}

func (h *hookProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	resp, err := h.inner.Generate(ctx, req)
	if h.after != nil {
		h.after()
	}
	return resp, err
}

func (h *hookProvider) ModelID() string { return h.inner.ModelID() }
