package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_diagnoser.go -package=mocks personalcolor-ai/internal/service Diagnoser
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService personalcolor-ai/internal/service ChatService

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/report"
	"personalcolor-ai/internal/storage"
)

// Diagnoser produces chat replies and diagnoses.
// This interface is defined from the service layer's perspective (consumer-first).
type Diagnoser interface {
	// Respond answers one chat turn.
	Respond(ctx context.Context, req diagnosis.ChatRequest) (*diagnosis.ChatReply, error)
	// DiagnoseConversation produces the final diagnosis of a session.
	DiagnoseConversation(ctx context.Context, turns []diagnosis.Turn) *diagnosis.Diagnosis
	// DiagnoseSurvey diagnoses a completed survey.
	DiagnoseSurvey(ctx context.Context, answers []diagnosis.SurveyAnswer) *diagnosis.Diagnosis
}

// StartResult describes the session handed out by StartSession.
type StartResult struct {
	SessionID int64
	Reused    bool
	UserTurns int
}

// AnalyzeRequest represents one chat turn in the domain layer.
type AnalyzeRequest struct {
	UserID string
	// SessionID is the session to continue; zero starts a new one.
	SessionID   int64
	Question    string
	DisplayName string
}

// AnalyzeResult is the outcome of one chat turn.
type AnalyzeResult struct {
	SessionID int64
	Reply     *diagnosis.ChatReply
	UserTurns int
}

// EndResult is the outcome of ending a session.
type EndResult struct {
	SessionID int64
	EndedAt   time.Time
	// AlreadyEnded is set when the session was ENDED before this call.
	AlreadyEnded bool
	// Diagnosis is the conversation diagnosis saved by this call, if any.
	Diagnosis *storage.DiagnosisRecord
}

// HistoryItem pairs a user question with the assistant's answer.
type HistoryItem struct {
	Question string
	Answer   string
	// Reply is the structured answer; nil when the turn was never answered.
	Reply   *diagnosis.ChatReply
	AskedAt time.Time
}

// SessionHistory is the replayable transcript of a session.
type SessionHistory struct {
	SessionID int64
	Ended     bool
	Items     []HistoryItem
}

// ChatService provides the chatbot session lifecycle.
type ChatService interface {
	// StartSession returns the user's OPEN session, creating one when none exists.
	StartSession(ctx context.Context, userID string) (*StartResult, error)
	// Analyze answers one chat turn. Turns on an ENDED session fail with ErrSessionClosed.
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error)
	// EndSession moves the session to ENDED and saves its conversation diagnosis
	// exactly once.
	EndSession(ctx context.Context, userID string, sessionID int64) (*EndResult, error)
	// DiagnoseNow saves a diagnosis of an OPEN session and returns its report.
	DiagnoseNow(ctx context.Context, userID string, sessionID int64) (*ReportResult, error)
	// History returns the session transcript.
	History(ctx context.Context, userID string, sessionID int64) (*SessionHistory, error)
}

// chatService implements ChatService.
type chatService struct {
	store         storage.DiagnosisStore
	diagnoser     Diagnoser
	reports       *reporter
	historyWindow int
	sessionLocks  *keyedMutex[int64]
	userLocks     *keyedMutex[string]
}

// NewChatService creates a new ChatService. historyWindow is the number of
// earlier turns handed to the diagnoser with each question.
func NewChatService(store storage.DiagnosisStore, diagnoser Diagnoser, historyWindow int) ChatService {
	if historyWindow <= 0 {
		historyWindow = diagnosis.DefaultConfig().HistoryWindow
	}
	return &chatService{
		store:         store,
		diagnoser:     diagnoser,
		reports:       newReporter(store, report.NewBuilder()),
		historyWindow: historyWindow,
		sessionLocks:  newKeyedMutex[int64](),
		userLocks:     newKeyedMutex[string](),
	}
}

// StartSession returns the user's OPEN session, creating one when none exists.
// Calls for the same user are serialized so at most one OPEN session is created.
func (s *chatService) StartSession(ctx context.Context, userID string) (*StartResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateUser(userID); err != nil {
		return nil, err
	}

	unlock, err := s.userLocks.Lock(ctx, userID)
	if err != nil {
		return nil, WrapError(err, "failed to acquire user lock")
	}
	defer unlock()

	existing, err := s.store.FindOpenSession(ctx, userID)
	switch {
	case err == nil:
		n, err := s.store.CountUserTurns(ctx, existing.ID)
		if err != nil {
			return nil, WrapError(err, "failed to count turns")
		}
		logger.InfoContext(ctx, "reusing open chat session", "session_id", existing.ID, "user_turns", n)
		return &StartResult{SessionID: existing.ID, Reused: true, UserTurns: n}, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, WrapError(err, "failed to find open session")
	}

	created, err := s.store.CreateSession(ctx, userID)
	if err != nil {
		return nil, WrapError(err, "failed to create session")
	}
	logger.InfoContext(ctx, "chat session created", "session_id", created.ID)
	return &StartResult{SessionID: created.ID}, nil
}

// Analyze answers one chat turn. Turns of one session run one at a time in
// arrival order.
func (s *chatService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateUser(req.UserID); err != nil {
		return nil, err
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		logger.WarnContext(ctx, "empty question in chat request")
		return nil, &ValidationError{Field: "question", Message: "cannot be empty"}
	}

	sessionID := req.SessionID
	if sessionID == 0 {
		created, err := s.store.CreateSession(ctx, req.UserID)
		if err != nil {
			return nil, WrapError(err, "failed to create session")
		}
		sessionID = created.ID
	} else {
		sess, err := s.ownedSession(ctx, req.UserID, sessionID)
		if err != nil {
			return nil, err
		}
		if sess.Ended() {
			return nil, ErrSessionClosed
		}
	}

	unlock, err := s.sessionLocks.Lock(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to acquire session lock")
	}
	defer unlock()

	history, err := s.store.LoadRecentTurns(ctx, sessionID, s.historyWindow)
	if err != nil {
		return nil, WrapError(err, "failed to load history")
	}

	if _, err := s.store.SaveConversationTurn(ctx, sessionID, diagnosis.RoleUser, question, ""); err != nil {
		return nil, turnError(err)
	}

	reply, err := s.diagnoser.Respond(ctx, diagnosis.ChatRequest{
		Question:    question,
		History:     storage.Turns(history),
		DisplayName: req.DisplayName,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to answer chat turn", "session_id", sessionID, "error", err)
		return nil, WrapError(err, "failed to answer question")
	}

	payload, err := json.Marshal(reply)
	if err != nil {
		return nil, WrapError(err, "failed to encode reply")
	}
	if _, err := s.store.SaveConversationTurn(ctx, sessionID, diagnosis.RoleAssistant, reply.Description, string(payload)); err != nil {
		return nil, turnError(err)
	}

	userTurns, err := s.store.CountUserTurns(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to count turns")
	}

	logger.InfoContext(ctx, "chat turn processed", "session_id", sessionID, "user_turns", userTurns)
	return &AnalyzeResult{SessionID: sessionID, Reply: reply, UserTurns: userTurns}, nil
}

// EndSession moves the session to ENDED. Only the call that performs the
// transition saves a diagnosis, and only when the session has user turns.
func (s *chatService) EndSession(ctx context.Context, userID string, sessionID int64) (*EndResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := s.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	unlock, err := s.sessionLocks.Lock(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to acquire session lock")
	}
	defer unlock()

	transitioned, err := s.store.EndSession(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to end session")
	}

	sess, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to reload session")
	}
	result := &EndResult{SessionID: sessionID, AlreadyEnded: !transitioned}
	if sess.EndedAt != nil {
		result.EndedAt = *sess.EndedAt
	}
	if !transitioned {
		logger.InfoContext(ctx, "chat session already ended", "session_id", sessionID)
		return result, nil
	}

	turns, err := s.store.LoadTurns(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to load turns")
	}
	if !hasUserTurn(turns) {
		logger.InfoContext(ctx, "chat session ended without turns, skipping diagnosis", "session_id", sessionID)
		return result, nil
	}

	rec, err := s.saveConversationDiagnosis(ctx, userID, sessionID, turns)
	if err != nil {
		logger.ErrorContext(ctx, "failed to save conversation diagnosis", "session_id", sessionID, "error", err)
		return nil, err
	}
	result.Diagnosis = rec

	logger.InfoContext(ctx, "chat session ended", "session_id", sessionID, "diagnosis_id", rec.ID)
	return result, nil
}

// DiagnoseNow saves a diagnosis of an OPEN session and returns its report.
func (s *chatService) DiagnoseNow(ctx context.Context, userID string, sessionID int64) (*ReportResult, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Ended() {
		return nil, ErrSessionClosed
	}

	unlock, err := s.sessionLocks.Lock(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to acquire session lock")
	}
	defer unlock()

	// The session may have ended while this call waited for the lock.
	ended, err := s.store.IsSessionEnded(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to check session")
	}
	if ended {
		return nil, ErrSessionClosed
	}

	turns, err := s.store.LoadTurns(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to load turns")
	}
	if !hasUserTurn(turns) {
		return nil, &ValidationError{Field: "history_id", Message: "session has no messages to diagnose"}
	}

	rec, err := s.saveConversationDiagnosis(ctx, userID, sessionID, turns)
	if err != nil {
		return nil, err
	}
	return s.reports.render(rec, storage.Turns(turns))
}

// History returns the session transcript as question/answer pairs.
func (s *chatService) History(ctx context.Context, userID string, sessionID int64) (*SessionHistory, error) {
	sess, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.store.LoadTurns(ctx, sessionID)
	if err != nil {
		return nil, WrapError(err, "failed to load turns")
	}

	return &SessionHistory{
		SessionID: sessionID,
		Ended:     sess.Ended(),
		Items:     pairTurns(ctx, msgs),
	}, nil
}

func (s *chatService) saveConversationDiagnosis(ctx context.Context, userID string, sessionID int64, msgs []storage.Message) (*storage.DiagnosisRecord, error) {
	d := s.diagnoser.DiagnoseConversation(ctx, storage.Turns(msgs))
	rec := storage.NewDiagnosisRecord(userID, sessionID, diagnosis.SourceChatbot, d)
	if err := s.store.SaveDiagnosis(ctx, rec); err != nil {
		return nil, WrapError(err, "failed to save diagnosis")
	}
	return rec, nil
}

// ownedSession loads a session and hides sessions of other users.
func (s *chatService) ownedSession(ctx context.Context, userID string, sessionID int64) (*storage.Session, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if sessionID <= 0 {
		return nil, &ValidationError{Field: "history_id", Message: "must be positive"}
	}

	sess, err := s.store.GetSession(ctx, sessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to load session")
	}
	if sess.UserID != userID {
		return nil, ErrNotFound
	}
	return sess, nil
}

func pairTurns(ctx context.Context, msgs []storage.Message) []HistoryItem {
	items := []HistoryItem{}
	for i := 0; i < len(msgs); i++ {
		if msgs[i].Role != diagnosis.RoleUser {
			continue
		}
		item := HistoryItem{Question: msgs[i].Text, AskedAt: msgs[i].CreatedAt}
		if i+1 < len(msgs) && msgs[i+1].Role == diagnosis.RoleAssistant {
			answer := msgs[i+1]
			item.Answer = answer.Text
			if answer.Payload != "" {
				var reply diagnosis.ChatReply
				if err := json.Unmarshal([]byte(answer.Payload), &reply); err != nil {
					contextutil.LoggerFromContext(ctx).WarnContext(ctx, "stored reply payload is not valid JSON",
						"message_id", answer.ID, "error", err)
				} else {
					item.Reply = &reply
				}
			}
			i++
		}
		items = append(items, item)
	}
	return items
}

func hasUserTurn(msgs []storage.Message) bool {
	for _, m := range msgs {
		if m.Role == diagnosis.RoleUser {
			return true
		}
	}
	return false
}

func turnError(err error) error {
	switch {
	case errors.Is(err, storage.ErrSessionEnded):
		return ErrSessionClosed
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	default:
		return WrapError(err, "failed to save turn")
	}
}

func validateUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return &ValidationError{Field: "user_id", Message: "cannot be empty"}
	}
	return nil
}
