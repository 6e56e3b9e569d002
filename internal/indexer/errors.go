package indexer

import (
	"errors"
	"fmt"
)

// ErrKnowledgeSourceUnavailable is returned when a knowledge document is missing or unreadable.
var ErrKnowledgeSourceUnavailable = errors.New("knowledge source unavailable")

// ConfigurationError reports invalid static indexing parameters.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
