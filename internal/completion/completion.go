// Package completion talks to an OpenRouter-compatible chat-completion API.
package completion

import "context"

// Role values for chat messages.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged entry in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client produces a text completion for an ordered message sequence.
// Implementations do not retry; any transport or service failure is
// returned to the caller as-is.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
