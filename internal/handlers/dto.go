package handlers

import (
	"time"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/report"
	"personalcolor-ai/internal/service"
	"personalcolor-ai/internal/storage"
)

// DiagnosisResponse is a stored diagnosis.
//
// swagger:model DiagnosisResponse
type DiagnosisResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	HistoryID  int64     `json:"history_id,omitempty"`
	SourceType string    `json:"source_type"`
	CreatedAt  time.Time `json:"created_at"`
	diagnosis.Diagnosis
}

// ReportResponse is a diagnosis with its report.
//
// swagger:model ReportResponse
type ReportResponse struct {
	Diagnosis DiagnosisResponse  `json:"diagnosis"`
	Report    *report.ReportData `json:"report"`
	HTML      string             `json:"html"`
}

func newDiagnosisResponse(rec *storage.DiagnosisRecord) DiagnosisResponse {
	return DiagnosisResponse{
		ID:         rec.ID,
		UserID:     rec.UserID,
		HistoryID:  rec.SessionID,
		SourceType: rec.SourceType,
		CreatedAt:  rec.CreatedAt,
		Diagnosis:  rec.Diagnosis,
	}
}

func newReportResponse(res *service.ReportResult) ReportResponse {
	return ReportResponse{
		Diagnosis: newDiagnosisResponse(res.Diagnosis),
		Report:    res.Report,
		HTML:      res.HTML,
	}
}
