package storage

import (
	"time"

	"personalcolor-ai/internal/diagnosis"
)

// Session is a chat session. It is OPEN while EndedAt is nil.
type Session struct {
	ID        int64
	UserID    string
	CreatedAt time.Time
	EndedAt   *time.Time
}

// Ended reports whether the session has transitioned to ENDED.
func (s *Session) Ended() bool {
	return s.EndedAt != nil
}

// Message is one stored conversation turn.
type Message struct {
	ID        int64
	SessionID int64
	Role      string // diagnosis.RoleUser or diagnosis.RoleAssistant
	Text      string
	Payload   string // JSON reply for assistant turns, empty otherwise
	CreatedAt time.Time
}

// Turn converts the message to the orchestrator's turn type.
func (m Message) Turn() diagnosis.Turn {
	return diagnosis.Turn{Role: m.Role, Text: m.Text, CreatedAt: m.CreatedAt}
}

// Turns converts messages to turns, preserving order.
func Turns(msgs []Message) []diagnosis.Turn {
	out := make([]diagnosis.Turn, len(msgs))
	for i, m := range msgs {
		out[i] = m.Turn()
	}
	return out
}

// DiagnosisRecord is a persisted diagnosis.
type DiagnosisRecord struct {
	ID         string // UUID
	UserID     string
	SessionID  int64 // 0 for survey diagnoses
	SourceType string
	Diagnosis  diagnosis.Diagnosis
	CreatedAt  time.Time
}
