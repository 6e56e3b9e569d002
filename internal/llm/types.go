package llm

import (
	"errors"
	"time"
)

var (
	// ErrEmbeddingService is returned when the embeddings endpoint fails (transport, timeout,
	// non-200 status or a malformed response).
	ErrEmbeddingService = errors.New("embedding service error")
	// ErrGenerationService is returned when the chat completions endpoint fails.
	ErrGenerationService = errors.New("generation service error")
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in a chat conversation.
// This type is used by the diagnosis orchestrator and other structured message consumers.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatParams holds parameters for chat completion requests.
type ChatParams struct {
	// Model specifies the model to use. If empty, the client's default model is used.
	Model string

	// MaxTokens specifies the maximum number of tokens to generate.
	// If 0, no limit is applied.
	MaxTokens int

	// Temperature controls the randomness of the output.
	Temperature float32

	// Timeout bounds the whole request. If 0, the client's default timeout is used.
	Timeout time.Duration
}
