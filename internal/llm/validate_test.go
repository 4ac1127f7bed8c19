package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
		},
		"required": []string{"answer", "score"},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"5","score":2}`))
	assert.NoError(t, err)
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`not json`)))
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":`))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Error(), "invalid JSON")
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"5"}`))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"5","score":7}`))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
}

func TestCleanJSON(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n[1,2]\n```":         `[1,2]`,
		"  {\"a\":1}  ":           `{"a":1}`,
		"plain text":              "plain text",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanJSON(in), "input %q", in)
	}
}

func TestFinish_FencedJSONIsValidated(t *testing.T) {
	resp, err := finish(Request{Schema: testSchema}, "```json\n{\"answer\":\"x\",\"score\":1}\n```", "m", Usage{}, "end")
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"x","score":1}`, string(resp.Content))
}

func TestFinish_TruncatedStructuredReply(t *testing.T) {
	_, err := finish(Request{Schema: testSchema}, `{"answer":"x"`, "m", Usage{}, "max_tokens")
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestWrapArrayRoot(t *testing.T) {
	obj := map[string]any{"type": "object"}
	got, wrapped := wrapArrayRoot(obj)
	assert.False(t, wrapped)
	assert.Equal(t, obj, got)

	arr := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	got, wrapped = wrapArrayRoot(arr)
	require.True(t, wrapped)
	assert.Equal(t, "object", got["type"])
	assert.Equal(t, arr, got["properties"].(map[string]any)["items"])

	assert.Equal(t, `["a","b"]`, unwrapArrayRoot("```json\n{\"items\":[\"a\",\"b\"]}\n```"))
	assert.Equal(t, `["a"]`, unwrapArrayRoot(`["a"]`))
}
