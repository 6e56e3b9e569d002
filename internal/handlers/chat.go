package handlers

import (
	"net/http"
	"time"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/service"
)

// ChatHandler handles HTTP requests for chatbot sessions.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// StartResponse describes the session a client should continue.
//
// swagger:model StartResponse
type StartResponse struct {
	HistoryID int64 `json:"history_id"`
	Reused    bool  `json:"reused"`
	UserTurns int   `json:"user_turns"`
}

// AnalyzeRequest represents the HTTP request payload for one chat turn.
//
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	Question string `json:"question"`
	// HistoryID continues an existing session; omit to start a new one.
	HistoryID   int64  `json:"history_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// AnalyzeResponse represents the assistant's answer to one chat turn.
//
// swagger:model AnalyzeResponse
type AnalyzeResponse struct {
	HistoryID       int64    `json:"history_id"`
	PrimaryTone     string   `json:"primary_tone"`
	SubTone         string   `json:"sub_tone"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
	Emotion         string   `json:"emotion"`
	UserTurns       int      `json:"user_turns"`
}

// EndResponse describes an ended session.
//
// swagger:model EndResponse
type EndResponse struct {
	HistoryID    int64              `json:"history_id"`
	EndedAt      time.Time          `json:"ended_at"`
	AlreadyEnded bool               `json:"already_ended"`
	Diagnosis    *DiagnosisResponse `json:"diagnosis,omitempty"`
}

// SaveReportRequest asks for a diagnosis of an open session.
//
// swagger:model SaveReportRequest
type SaveReportRequest struct {
	HistoryID int64 `json:"history_id"`
}

// HistoryItemResponse is one question with its answer.
type HistoryItemResponse struct {
	Question string               `json:"question"`
	Answer   string               `json:"answer,omitempty"`
	Reply    *diagnosis.ChatReply `json:"reply,omitempty"`
	AskedAt  time.Time            `json:"asked_at"`
}

// HistoryResponse is the transcript of a session.
//
// swagger:model HistoryResponse
type HistoryResponse struct {
	HistoryID int64                 `json:"history_id"`
	Ended     bool                  `json:"ended"`
	Items     []HistoryItemResponse `json:"items"`
}

// Start returns the caller's open session, creating one when needed.
//
// swagger:route POST /api/chatbot/start chatbot startSession
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.chatService.StartSession(ctx, userID(r))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to start session")
		return
	}

	writeJSON(w, ctx, http.StatusOK, StartResponse{
		HistoryID: res.SessionID,
		Reused:    res.Reused,
		UserTurns: res.UserTurns,
	})
}

// Analyze answers one chat turn.
//
// swagger:route POST /api/chatbot/analyze chatbot analyze
func (h *ChatHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.chatService.Analyze(ctx, service.AnalyzeRequest{
		UserID:      userID(r),
		SessionID:   req.HistoryID,
		Question:    req.Question,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process chat request")
		return
	}

	writeJSON(w, ctx, http.StatusOK, AnalyzeResponse{
		HistoryID:       res.SessionID,
		PrimaryTone:     res.Reply.PrimaryTone,
		SubTone:         res.Reply.SubTone,
		Description:     res.Reply.Description,
		Recommendations: res.Reply.Recommendations,
		Emotion:         res.Reply.Emotion,
		UserTurns:       res.UserTurns,
	})
}

// End closes a session and returns the diagnosis saved for it.
//
// swagger:route POST /api/chatbot/end/{id} chatbot endSession
func (h *ChatHandler) End(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := sessionIDParam(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid session id")
		return
	}

	res, err := h.chatService.EndSession(ctx, userID(r), id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to end session")
		return
	}

	resp := EndResponse{
		HistoryID:    res.SessionID,
		EndedAt:      res.EndedAt,
		AlreadyEnded: res.AlreadyEnded,
	}
	if res.Diagnosis != nil {
		d := newDiagnosisResponse(res.Diagnosis)
		resp.Diagnosis = &d
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}

// SaveReport diagnoses an open session and returns its report.
//
// swagger:route POST /api/chatbot/report/save chatbot saveReport
func (h *ChatHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveReportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.chatService.DiagnoseNow(ctx, userID(r), req.HistoryID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to save report")
		return
	}

	writeJSON(w, ctx, http.StatusOK, newReportResponse(res))
}

// History returns a session transcript.
//
// swagger:route GET /api/chatbot/history/{id} chatbot history
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := sessionIDParam(r)
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid session id")
		return
	}

	hist, err := h.chatService.History(ctx, userID(r), id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load history")
		return
	}

	items := make([]HistoryItemResponse, 0, len(hist.Items))
	for _, it := range hist.Items {
		items = append(items, HistoryItemResponse{
			Question: it.Question,
			Answer:   it.Answer,
			Reply:    it.Reply,
			AskedAt:  it.AskedAt,
		})
	}
	writeJSON(w, ctx, http.StatusOK, HistoryResponse{
		HistoryID: hist.SessionID,
		Ended:     hist.Ended,
		Items:     items,
	})
}
