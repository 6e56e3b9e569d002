package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_diagnosis_store.go -package=mocks personalcolor-ai/internal/storage DiagnosisStore

import (
	"context"
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrSessionEnded is returned when a turn is written to an ENDED session.
	ErrSessionEnded = errors.New("session has ended")
)

// DiagnosisStore is the persistence surface used by the chat and survey services.
type DiagnosisStore interface {
	// CreateSession opens a new session for the user.
	CreateSession(ctx context.Context, userID string) (*Session, error)
	// GetSession returns the session or ErrNotFound.
	GetSession(ctx context.Context, id int64) (*Session, error)
	// FindOpenSession returns the user's most recent OPEN session or ErrNotFound.
	FindOpenSession(ctx context.Context, userID string) (*Session, error)
	// EndSession moves an OPEN session to ENDED. It reports whether this call
	// performed the transition; ending an ENDED session returns false.
	EndSession(ctx context.Context, id int64) (bool, error)
	// IsSessionEnded reports whether the session is ENDED.
	IsSessionEnded(ctx context.Context, id int64) (bool, error)

	// SaveConversationTurn appends a turn to an OPEN session.
	// Returns ErrSessionEnded if the session has ended.
	SaveConversationTurn(ctx context.Context, sessionID int64, role, text, payload string) (*Message, error)
	// LoadRecentTurns returns the last limit turns in arrival order.
	LoadRecentTurns(ctx context.Context, sessionID int64, limit int) ([]Message, error)
	// LoadTurns returns every turn of the session in arrival order.
	LoadTurns(ctx context.Context, sessionID int64) ([]Message, error)
	// CountUserTurns counts the user-role turns of the session.
	CountUserTurns(ctx context.Context, sessionID int64) (int, error)

	// SaveDiagnosis persists a diagnosis, assigning an ID when empty.
	SaveDiagnosis(ctx context.Context, rec *DiagnosisRecord) error
	// GetDiagnosis returns the diagnosis or ErrNotFound.
	GetDiagnosis(ctx context.Context, id string) (*DiagnosisRecord, error)
	// ListDiagnosesByUser returns the user's diagnoses, newest first.
	ListDiagnosesByUser(ctx context.Context, userID string, limit int) ([]DiagnosisRecord, error)
}

// Store implements DiagnosisStore on SQLite.
type Store struct {
	*SessionRepo
	*DiagnosisRepo
}

var _ DiagnosisStore = (*Store)(nil)

// NewStore creates a Store over a migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		SessionRepo:   NewSessionRepo(db),
		DiagnosisRepo: NewDiagnosisRepo(db),
	}
}
