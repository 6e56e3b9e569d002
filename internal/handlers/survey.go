package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/service"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// SurveyHandler handles survey submissions and stored diagnoses.
type SurveyHandler struct {
	surveyService service.SurveyService
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(surveyService service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// SubmitRequest is a completed survey.
//
// swagger:model SubmitRequest
type SubmitRequest struct {
	Answers []diagnosis.SurveyAnswer `json:"answers"`
}

// ListResponse lists the caller's diagnoses.
//
// swagger:model ListResponse
type ListResponse struct {
	Diagnoses []DiagnosisResponse `json:"diagnoses"`
}

// Submit diagnoses a survey and stores the result.
//
// swagger:route POST /api/survey/submit survey submitSurvey
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SubmitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.surveyService.Submit(ctx, userID(r), req.Answers)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to diagnose survey")
		return
	}

	writeJSON(w, ctx, http.StatusCreated, newDiagnosisResponse(rec))
}

// Report returns a stored diagnosis with its report. With ?format=html the
// rendered page is returned instead of JSON.
//
// swagger:route GET /api/diagnoses/{id}/report diagnoses diagnosisReport
func (h *SurveyHandler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.surveyService.Report(ctx, userID(r), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load report")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(res.HTML))
		return
	}
	writeJSON(w, ctx, http.StatusOK, newReportResponse(res))
}

// List returns the caller's diagnoses, newest first.
//
// swagger:route GET /api/diagnoses diagnoses listDiagnoses
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handleServiceError(w, ctx, &service.ValidationError{Field: "limit", Message: "must be a positive integer"}, "")
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := h.surveyService.List(ctx, userID(r), limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list diagnoses")
		return
	}

	resp := ListResponse{Diagnoses: make([]DiagnosisResponse, 0, len(records))}
	for i := range records {
		resp.Diagnoses = append(resp.Diagnoses, newDiagnosisResponse(&records[i]))
	}
	writeJSON(w, ctx, http.StatusOK, resp)
}
