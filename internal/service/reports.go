package service

import (
	"context"
	"errors"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/report"
	"personalcolor-ai/internal/storage"
)

// ReportResult is a stored diagnosis with its rendered report.
type ReportResult struct {
	Diagnosis *storage.DiagnosisRecord
	Report    *report.ReportData
	HTML      string
}

// reporter builds reports for stored diagnoses.
type reporter struct {
	store    storage.DiagnosisStore
	builder  *report.Builder
	renderer *report.Renderer
}

func newReporter(store storage.DiagnosisStore, builder *report.Builder) *reporter {
	return &reporter{store: store, builder: builder, renderer: report.NewRenderer()}
}

// load fetches a diagnosis owned by userID and renders its report. Chatbot
// diagnoses include their conversation.
func (r *reporter) load(ctx context.Context, userID, diagnosisID string) (*ReportResult, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}

	rec, err := r.store.GetDiagnosis(ctx, diagnosisID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, WrapError(err, "failed to load diagnosis")
	}
	if rec.UserID != userID {
		return nil, ErrNotFound
	}

	var turns []diagnosis.Turn
	if rec.SessionID != 0 {
		msgs, err := r.store.LoadTurns(ctx, rec.SessionID)
		if err != nil {
			return nil, WrapError(err, "failed to load turns")
		}
		turns = storage.Turns(msgs)
	}

	return r.render(rec, turns)
}

func (r *reporter) render(rec *storage.DiagnosisRecord, turns []diagnosis.Turn) (*ReportResult, error) {
	data := r.builder.Build(&rec.Diagnosis, turns)
	html, err := r.renderer.RenderHTML(data)
	if err != nil {
		return nil, WrapError(err, "failed to render report")
	}
	return &ReportResult{Diagnosis: rec, Report: data, HTML: html}, nil
}
