package diagnosis

import (
	"context"

	"personalcolor-ai/internal/llm"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks personalcolor-ai/internal/diagnosis Generator

// Generator is the generative model boundary. *llm.Client satisfies it.
type Generator interface {
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}
