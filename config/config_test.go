package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-3-flash-preview", cfg.LLM.Model)
	assert.Equal(t, "gemini-3-pro-preview", cfg.LLM.FeedbackModel)
	assert.Equal(t, "interview is over", cfg.Interview.EndPhrase)
	assert.Equal(t, 5, cfg.Interview.AnswerCeiling)
	assert.Equal(t, 4, cfg.Interview.QuestionBudget)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("INTERVIEW_ANSWER_CEILING", "8")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 8, cfg.Interview.AnswerCeiling)
}
