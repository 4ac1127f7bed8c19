package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point to the generative API.
type Provider interface {
	// Generate sends one request and returns the reply. When req.Schema is
	// set the reply Content is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the default model this provider talks to.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction (persona, constraints).
	System string

	// Messages is the conversation so far. One-shot prompts carry a single
	// user message; interview turns carry the whole transcript.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output.
	Schema *Schema

	// Model overrides the provider default for this call.
	Model string

	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the reply must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-questions".
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	// Content is the validated JSON when a Schema was requested, otherwise
	// the raw reply bytes.
	Content json.RawMessage

	// Text is the reply as plain text.
	Text string

	Usage Usage
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds the common single-message request.
func UserPrompt(prompt string) []Message {
	return []Message{{Role: RoleUser, Content: prompt}}
}
