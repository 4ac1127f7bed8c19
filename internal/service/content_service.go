package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/Launchpad/config"
	"github.com/lshigami/Launchpad/internal/llm"
	"github.com/lshigami/Launchpad/internal/model"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

const (
	interviewGreeting = "Hello! I am ready for the interview."
	mentorImageOffset = 123
)

var quizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Multiple choice diagnostic questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": optionsPerQuiz,
					"maxItems": optionsPerQuiz,
				},
				"correctAnswer": map[string]any{"type": "integer", "minimum": 0, "maximum": optionsPerQuiz - 1},
			},
			"required": []string{"question", "options", "correctAnswer"},
		},
	},
}

var learningPathSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "Personalized learning path",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"role":         map[string]any{"type": "string"},
			"careerAdvice": map[string]any{"type": "string"},
			"modules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
						"type":        map[string]any{"type": "string", "enum": []string{"lesson", "project", "quiz"}},
					},
					"required": []string{"title", "description", "duration", "type"},
				},
			},
		},
		"required": []string{"role", "careerAdvice", "modules"},
	},
}

var feedbackSchema = &llm.Schema{
	Name:        "interview-feedback",
	Description: "Constructive interview feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":      map[string]any{"type": "number"},
			"strengths":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"weaknesses": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"advice":     map[string]any{"type": "string"},
		},
		"required": []string{"score", "strengths", "weaknesses", "advice"},
	},
}

var mentorSchema = &llm.Schema{
	Name:        "mentors",
	Description: "Professional mentor profiles",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":          map[string]any{"type": "string"},
				"name":        map[string]any{"type": "string"},
				"role":        map[string]any{"type": "string"},
				"company":     map[string]any{"type": "string"},
				"specialties": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []string{"name", "role", "company", "specialties"},
		},
	},
}

// ContentService produces every piece of generated content in the journey.
type ContentService interface {
	GenerateQuiz(ctx context.Context, role string) ([]model.QuizQuestion, error)
	GenerateLearningPath(ctx context.Context, role string, score int) (*model.LearningPath, error)
	StartInterview(ctx context.Context, role string) (*llm.Conversation, string, error)
	ContinueInterview(ctx context.Context, chat session.Chat, text string) (string, error)
	GetFeedback(ctx context.Context, transcript []model.InterviewTurn) (*model.InterviewFeedback, error)
	GetMentors(ctx context.Context, role string) ([]model.Mentor, error)
	ModelID() string
}

type contentService struct {
	provider       llm.Provider
	feedbackModel  string
	questionBudget int
	maxTokens      int
}

func NewContentService(provider llm.Provider, cfg *config.Config) ContentService {
	s := &contentService{
		provider:       provider,
		questionBudget: cfg.Interview.QuestionBudget,
		maxTokens:      cfg.LLM.MaxTokens,
	}
	if s.questionBudget <= 0 {
		s.questionBudget = 4
	}
	// The feedback model name is a Gemini model; other providers keep their
	// default.
	if cfg.LLM.Provider == "" || cfg.LLM.Provider == "gemini" {
		s.feedbackModel = cfg.LLM.FeedbackModel
	}
	return s
}

func (s *contentService) ModelID() string {
	return s.provider.ModelID()
}

func (s *contentService) generateJSON(ctx context.Context, purpose string, req llm.Request, out any) error {
	if req.MaxTokens == 0 {
		req.MaxTokens = s.maxTokens
	}
	resp, err := s.provider.Generate(llm.WithPurpose(ctx, purpose), req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode %s: %w", purpose, err)}
	}
	return nil
}

// GenerateQuiz returns an empty list, not an error, when the model reply
// cannot be parsed. Transport and provider failures are returned.
func (s *contentService) GenerateQuiz(ctx context.Context, role string) ([]model.QuizQuestion, error) {
	prompt := fmt.Sprintf("Generate a 5-question multiple choice diagnostic quiz for someone aspiring to be a %s. Focus on technical and soft skills.", role)

	var questions []model.QuizQuestion
	err := s.generateJSON(ctx, "quiz", llm.Request{Messages: llm.UserPrompt(prompt), Schema: quizSchema}, &questions)
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		var truncated *llm.ErrMaxTokensExceeded
		if errors.As(err, &invalid) || errors.As(err, &truncated) {
			log.Warn().Err(err).Str("role", role).Msg("GenerateQuiz: unusable model response, returning empty quiz")
			return []model.QuizQuestion{}, nil
		}
		return nil, fmt.Errorf("generate quiz: %w", err)
	}
	if questions == nil {
		questions = []model.QuizQuestion{}
	}
	return questions, nil
}

func (s *contentService) GenerateLearningPath(ctx context.Context, role string, score int) (*model.LearningPath, error) {
	prompt := fmt.Sprintf("Create a personalized learning path for a %s with a current diagnostic score of %d/5. Include modules, projects, and career advice.", role, score)

	var path model.LearningPath
	if err := s.generateJSON(ctx, "learning_path", llm.Request{Messages: llm.UserPrompt(prompt), Schema: learningPathSchema}, &path); err != nil {
		return nil, fmt.Errorf("generate learning path: %w", err)
	}
	return &path, nil
}

func (s *contentService) interviewInstruction(role string) string {
	return fmt.Sprintf("You are an experienced hiring manager for a %s position. Conduct a professional but encouraging mock interview. "+
		"Ask one question at a time. Total %d questions. Start by introducing yourself and asking the first question. "+
		"After %d questions, tell the user the interview is over and summarize your thoughts briefly, then stop.",
		role, s.questionBudget, s.questionBudget)
}

// StartInterview opens a conversation and sends the greeting. Only the
// model's reply is meant to be shown.
func (s *contentService) StartInterview(ctx context.Context, role string) (*llm.Conversation, string, error) {
	conv := llm.NewConversation(s.provider, s.interviewInstruction(role), "")
	reply, err := conv.Send(llm.WithPurpose(ctx, "interview"), interviewGreeting)
	if err != nil {
		return nil, "", fmt.Errorf("start interview: %w", err)
	}
	return conv, reply, nil
}

// ContinueInterview returns the next reply. The caller records the round
// trip on the chat when it keeps it.
func (s *contentService) ContinueInterview(ctx context.Context, chat session.Chat, text string) (string, error) {
	reply, err := chat.Reply(llm.WithPurpose(ctx, "interview"), text)
	if err != nil {
		return "", fmt.Errorf("continue interview: %w", err)
	}
	return reply, nil
}

func (s *contentService) GetFeedback(ctx context.Context, transcript []model.InterviewTurn) (*model.InterviewFeedback, error) {
	raw, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("marshal transcript: %w", err)
	}
	prompt := fmt.Sprintf("Analyze the following interview transcript and provide constructive feedback: %s", raw)

	var fb model.InterviewFeedback
	req := llm.Request{Messages: llm.UserPrompt(prompt), Schema: feedbackSchema, Model: s.feedbackModel}
	if err := s.generateJSON(ctx, "feedback", req, &fb); err != nil {
		return nil, fmt.Errorf("generate feedback: %w", err)
	}
	fb.Score = clampFeedbackScore(fb.Score)
	return &fb, nil
}

func clampFeedbackScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

// GetMentors assigns placeholder images by position.
func (s *contentService) GetMentors(ctx context.Context, role string) ([]model.Mentor, error) {
	prompt := fmt.Sprintf("Generate 3 realistic professional mentors for a %s role. Provide their name, role, company, and 3 specialties.", role)

	var mentors []model.Mentor
	if err := s.generateJSON(ctx, "mentors", llm.Request{Messages: llm.UserPrompt(prompt), Schema: mentorSchema}, &mentors); err != nil {
		return nil, fmt.Errorf("generate mentors: %w", err)
	}
	for i := range mentors {
		if mentors[i].ID == "" {
			mentors[i].ID = uuid.NewString()
		}
		mentors[i].Image = mentorImage(i)
	}
	return mentors, nil
}

func mentorImage(i int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/200/200", i+mentorImageOffset)
}
