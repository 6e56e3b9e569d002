package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"personalcolor-ai/internal/diagnosis"
)

// SessionRepo provides methods for chat sessions and their messages.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

const sessionColumns = "id, user_id, created_at, ended_at"

func scanSession(row interface{ Scan(...any) error }) (*Session, error) {
	var (
		s          Session
		createdAt  string
		endedAtRaw sql.NullString
	)
	if err := row.Scan(&s.ID, &s.UserID, &createdAt, &endedAtRaw); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if endedAtRaw.Valid {
		endedAt, err := parseTimestamp(endedAtRaw.String)
		if err != nil {
			return nil, err
		}
		s.EndedAt = &endedAt
	}
	return &s, nil
}

// CreateSession opens a new session for the user.
func (r *SessionRepo) CreateSession(ctx context.Context, userID string) (*Session, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO chat_sessions (user_id) VALUES (?)", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get session id: %w", err)
	}

	return r.GetSession(ctx, id)
}

// GetSession returns the session or ErrNotFound.
func (r *SessionRepo) GetSession(ctx context.Context, id int64) (*Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM chat_sessions WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return s, nil
}

// FindOpenSession returns the user's most recent OPEN session or ErrNotFound.
func (r *SessionRepo) FindOpenSession(ctx context.Context, userID string) (*Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		"SELECT "+sessionColumns+" FROM chat_sessions WHERE user_id = ? AND ended_at IS NULL ORDER BY id DESC LIMIT 1",
		userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query open session: %w", err)
	}
	return s, nil
}

// EndSession moves an OPEN session to ENDED. The ended_at IS NULL guard makes
// the transition happen at most once across concurrent callers.
func (r *SessionRepo) EndSession(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE chat_sessions SET ended_at = CURRENT_TIMESTAMP WHERE id = ? AND ended_at IS NULL", id)
	if err != nil {
		return false, fmt.Errorf("failed to end session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to end session: %w", err)
	}
	if n == 1 {
		return true, nil
	}

	// Either already ended or missing.
	if _, err := r.GetSession(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

// IsSessionEnded reports whether the session is ENDED.
func (r *SessionRepo) IsSessionEnded(ctx context.Context, id int64) (bool, error) {
	s, err := r.GetSession(ctx, id)
	if err != nil {
		return false, err
	}
	return s.Ended(), nil
}

// SaveConversationTurn appends a turn to an OPEN session. The insert only
// happens while the session is OPEN, so a turn can never land after EndSession.
func (r *SessionRepo) SaveConversationTurn(ctx context.Context, sessionID int64, role, text, payload string) (*Message, error) {
	if role != diagnosis.RoleUser && role != diagnosis.RoleAssistant {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_messages (session_id, role, text, payload)
		 SELECT ?, ?, ?, NULLIF(?, '')
		 WHERE EXISTS (SELECT 1 FROM chat_sessions WHERE id = ? AND ended_at IS NULL)`,
		sessionID, role, text, payload, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save turn: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to save turn: %w", err)
	}
	if n == 0 {
		if _, err := r.GetSession(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, ErrSessionEnded
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get message id: %w", err)
	}

	msgs, err := r.queryMessages(ctx,
		"SELECT id, session_id, role, text, payload, created_at FROM chat_messages WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, ErrNotFound
	}
	return &msgs[0], nil
}

// LoadRecentTurns returns the last limit turns in arrival order.
func (r *SessionRepo) LoadRecentTurns(ctx context.Context, sessionID int64, limit int) ([]Message, error) {
	if limit <= 0 {
		return []Message{}, nil
	}

	msgs, err := r.queryMessages(ctx,
		"SELECT id, session_id, role, text, payload, created_at FROM chat_messages WHERE session_id = ? ORDER BY id DESC LIMIT ?",
		sessionID, limit)
	if err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}

// LoadTurns returns every turn of the session in arrival order.
func (r *SessionRepo) LoadTurns(ctx context.Context, sessionID int64) ([]Message, error) {
	return r.queryMessages(ctx,
		"SELECT id, session_id, role, text, payload, created_at FROM chat_messages WHERE session_id = ? ORDER BY id",
		sessionID)
}

// CountUserTurns counts the user-role turns of the session.
func (r *SessionRepo) CountUserTurns(ctx context.Context, sessionID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chat_messages WHERE session_id = ? AND role = ?",
		sessionID, diagnosis.RoleUser,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return n, nil
}

func (r *SessionRepo) queryMessages(ctx context.Context, query string, args ...any) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	msgs := []Message{}
	for rows.Next() {
		var (
			m         Message
			payload   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Text, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Payload = payload.String
		if m.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return msgs, nil
}
