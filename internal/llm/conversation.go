package llm

import (
	"context"
	"sync"
)

// Conversation is a persistent chat handle: the system instruction is fixed
// at creation and every Send carries the full history to the provider.
type Conversation struct {
	provider Provider
	system   string
	model    string

	mu      sync.Mutex
	history []Message
}

func NewConversation(p Provider, system string, model string) *Conversation {
	return &Conversation{provider: p, system: system, model: model}
}

// Send asks and records the round trip in one step. Use it when nothing
// else can observe the conversation yet.
func (c *Conversation) Send(ctx context.Context, text string) (string, error) {
	reply, err := c.Reply(ctx, text)
	if err != nil {
		return "", err
	}
	c.Record(text, reply)
	return reply, nil
}

// Reply sends text after the current history and returns the model reply
// without changing the history. Call Record once the caller accepts the
// round trip.
func (c *Conversation) Reply(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	msgs := make([]Message, len(c.history), len(c.history)+1)
	copy(msgs, c.history)
	c.mu.Unlock()
	msgs = append(msgs, Message{Role: RoleUser, Content: text})

	resp, err := c.provider.Generate(ctx, Request{
		System:   c.system,
		Messages: msgs,
		Model:    c.model,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Record appends a completed round trip to the history.
func (c *Conversation) Record(text, reply string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: reply},
	)
}

func (c *Conversation) History() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.history))
	copy(out, c.history)
	return out
}

func (c *Conversation) System() string {
	return c.system
}
