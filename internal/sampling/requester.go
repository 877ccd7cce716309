// Package sampling provides the message generation boundary for scribe.
//
// The orchestrator talks to an external text-generating peer through a single
// request/reply exchange. This package defines that contract and a CLI-backed
// default implementation; hosts with their own transport inject a Requester
// of their own.
package sampling

import "context"

// Reply roles. Exactly one assistant reply is expected per request.
const (
	RoleAssistant = "assistant"
)

// Request is a single message generation request.
type Request struct {
	// ID correlates logs across the exchange. Assigned automatically when
	// empty.
	ID string `json:"id"`

	// SystemPrompt carries the preset's rules and behavioral instructions.
	SystemPrompt string `json:"system_prompt"`

	// UserPrompt carries the staged diff and the quoted commit intent.
	UserPrompt string `json:"user_prompt"`

	// MaxTokens limits the reply size.
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature biases determinism (0) versus creativity (1).
	Temperature float64 `json:"temperature,omitempty"`

	// ModelHints optionally names preferred models, most preferred first.
	ModelHints []string `json:"model_hints,omitempty"`
}

// Reply is the single structured answer to a Request.
type Reply struct {
	// Role tags the reply author; generation replies carry RoleAssistant.
	Role string `json:"role"`

	// Text is the candidate commit message payload.
	Text string `json:"text"`
}

// Requester performs one request/reply generation exchange.
// Implementations block until the reply arrives or ctx is done; the
// orchestrator supplies the timeout boundary.
type Requester interface {
	CreateMessage(ctx context.Context, req *Request) (*Reply, error)
}
