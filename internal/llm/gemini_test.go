package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestBuildGeminiSchema_Nested(t *testing.T) {
	def := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
				},
				"correctAnswer": map[string]any{"type": "integer", "description": "Index of the correct option (0-3)"},
				"type":          map[string]any{"type": "string", "enum": []string{"lesson", "project", "quiz"}},
			},
			"required": []string{"question", "options", "correctAnswer"},
		},
	}

	s := buildGeminiSchema(def)

	require.Equal(t, genai.TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, genai.TypeObject, s.Items.Type)
	assert.ElementsMatch(t, []string{"question", "options", "correctAnswer"}, s.Items.Required)
	assert.Equal(t, genai.TypeArray, s.Items.Properties["options"].Type)
	assert.Equal(t, genai.TypeString, s.Items.Properties["options"].Items.Type)
	assert.Equal(t, genai.TypeInteger, s.Items.Properties["correctAnswer"].Type)
	assert.Equal(t, "Index of the correct option (0-3)", s.Items.Properties["correctAnswer"].Description)
	assert.Equal(t, []string{"lesson", "project", "quiz"}, s.Items.Properties["type"].Enum)
}

func TestBuildGeminiSchema_AcceptsDecodedJSONLists(t *testing.T) {
	s := buildGeminiSchema(map[string]any{
		"type":     "object",
		"required": []any{"a", 1, "b"},
	})
	assert.Equal(t, []string{"a", "b"}, s.Required)
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	assert.ErrorAs(t, mapGeminiError(&googleapi.Error{Code: http.StatusTooManyRequests}), &rl)

	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, mapGeminiError(&googleapi.Error{Code: http.StatusServiceUnavailable}), &unavail)
	assert.ErrorAs(t, mapGeminiError(fmt.Errorf("wrapped: %w", errors.New("dial tcp"))), &unavail)

	assert.ErrorIs(t, mapGeminiError(context.Canceled), context.Canceled)
}

func TestMapGeminiStopReason(t *testing.T) {
	assert.Equal(t, "max_tokens", mapGeminiStopReason(genai.FinishReasonMaxTokens))
	assert.Equal(t, "end", mapGeminiStopReason(genai.FinishReasonStop))
}

func TestBuildGeminiHistory_MapsRoles(t *testing.T) {
	h := buildGeminiHistory([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	require.Len(t, h, 2)
	assert.Equal(t, "user", h[0].Role)
	assert.Equal(t, "model", h[1].Role)
	assert.Equal(t, genai.Text("hello"), h[1].Parts[0])
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-3-flash-preview"})
	assert.Error(t, err)
}
