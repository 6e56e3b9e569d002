package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_survey_service.go -package=mocks -mock_names=SurveyService=MockSurveyService personalcolor-ai/internal/service SurveyService

import (
	"context"
	"fmt"
	"strings"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/report"
	"personalcolor-ai/internal/storage"
)

// SurveyService diagnoses surveys and serves stored diagnoses.
type SurveyService interface {
	// Submit validates and diagnoses the answers and persists the result.
	Submit(ctx context.Context, userID string, answers []diagnosis.SurveyAnswer) (*storage.DiagnosisRecord, error)
	// Report loads one of the user's diagnoses with its rendered report.
	Report(ctx context.Context, userID, diagnosisID string) (*ReportResult, error)
	// List returns the user's diagnoses, newest first.
	List(ctx context.Context, userID string, limit int) ([]storage.DiagnosisRecord, error)
}

// surveyService implements SurveyService.
type surveyService struct {
	store     storage.DiagnosisStore
	diagnoser Diagnoser
	reports   *reporter
}

// NewSurveyService creates a new SurveyService.
func NewSurveyService(store storage.DiagnosisStore, diagnoser Diagnoser) SurveyService {
	return &surveyService{
		store:     store,
		diagnoser: diagnoser,
		reports:   newReporter(store, report.NewBuilder()),
	}
}

// Submit validates and diagnoses the answers and persists the result with
// source type "survey".
func (s *surveyService) Submit(ctx context.Context, userID string, answers []diagnosis.SurveyAnswer) (*storage.DiagnosisRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateUser(userID); err != nil {
		return nil, err
	}
	if err := validateAnswers(answers); err != nil {
		logger.WarnContext(ctx, "invalid survey submission", "error", err)
		return nil, err
	}

	d := s.diagnoser.DiagnoseSurvey(ctx, answers)
	rec := storage.NewDiagnosisRecord(userID, 0, diagnosis.SourceSurvey, d)
	if err := s.store.SaveDiagnosis(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to save survey diagnosis", "error", err)
		return nil, WrapError(err, "failed to save diagnosis")
	}

	logger.InfoContext(ctx, "survey diagnosed",
		"diagnosis_id", rec.ID,
		"answers", len(answers),
		"sub_season", d.SubSeason,
		"fallback", d.Fallback,
	)
	return rec, nil
}

// Report loads one of the user's diagnoses with its rendered report.
func (s *surveyService) Report(ctx context.Context, userID, diagnosisID string) (*ReportResult, error) {
	if strings.TrimSpace(diagnosisID) == "" {
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.reports.load(ctx, userID, diagnosisID)
}

// List returns the user's diagnoses, newest first.
func (s *surveyService) List(ctx context.Context, userID string, limit int) ([]storage.DiagnosisRecord, error) {
	if err := validateUser(userID); err != nil {
		return nil, err
	}
	records, err := s.store.ListDiagnosesByUser(ctx, userID, limit)
	if err != nil {
		return nil, WrapError(err, "failed to list diagnoses")
	}
	return records, nil
}

func validateAnswers(answers []diagnosis.SurveyAnswer) error {
	if len(answers) == 0 {
		return &ValidationError{Field: "answers", Message: "cannot be empty"}
	}
	seen := make(map[int]bool, len(answers))
	for i, a := range answers {
		if a.QuestionID <= 0 {
			return &ValidationError{Field: fmt.Sprintf("answers[%d].question_id", i), Message: "must be positive"}
		}
		if seen[a.QuestionID] {
			return &ValidationError{Field: fmt.Sprintf("answers[%d].question_id", i), Message: "duplicate question"}
		}
		seen[a.QuestionID] = true
		if strings.TrimSpace(a.OptionLabel) == "" {
			return &ValidationError{Field: fmt.Sprintf("answers[%d].option_label", i), Message: "cannot be empty"}
		}
	}
	return nil
}
