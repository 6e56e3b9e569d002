package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/tone"
)

// DiagnosisRepo provides methods for diagnosis operations.
type DiagnosisRepo struct {
	db *sql.DB
}

// NewDiagnosisRepo creates a new DiagnosisRepo.
func NewDiagnosisRepo(db *sql.DB) *DiagnosisRepo {
	return &DiagnosisRepo{db: db}
}

const diagnosisColumns = `id, user_id, session_id, source_type, primary_tone, sub_season,
	description, detailed_analysis, recommendations, color_palette, style_keywords,
	makeup_tips, top_types, confidence, total_score, created_at`

// SaveDiagnosis persists a diagnosis. A new UUID is generated when rec.ID is
// empty and CreatedAt defaults to now.
func (r *DiagnosisRepo) SaveDiagnosis(ctx context.Context, rec *DiagnosisRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	d := rec.Diagnosis
	if !d.PrimaryTone.Valid() || !d.SubSeason.Valid() {
		return fmt.Errorf("invalid verdict %s/%s", d.PrimaryTone, d.SubSeason)
	}

	recommendations, err := encodeList(d.Recommendations)
	if err != nil {
		return err
	}
	palette, err := encodeList(d.ColorPalette)
	if err != nil {
		return err
	}
	keywords, err := encodeList(d.StyleKeywords)
	if err != nil {
		return err
	}
	tips, err := encodeList(d.MakeupTips)
	if err != nil {
		return err
	}
	topTypes, err := json.Marshal(d.TopTypes)
	if err != nil {
		return fmt.Errorf("failed to encode top types: %w", err)
	}

	var sessionID sql.NullInt64
	if rec.SessionID != 0 {
		sessionID = sql.NullInt64{Int64: rec.SessionID, Valid: true}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO diagnoses (id, user_id, session_id, source_type, primary_tone, sub_season,
			description, detailed_analysis, recommendations, color_palette, style_keywords,
			makeup_tips, top_types, confidence, total_score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, sessionID, rec.SourceType, string(d.PrimaryTone), string(d.SubSeason),
		d.Description, d.DetailedAnalysis, recommendations, palette, keywords,
		tips, string(topTypes), d.Confidence, d.TotalScore, rec.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to save diagnosis: %w", err)
	}

	return nil
}

// GetDiagnosis returns the diagnosis or ErrNotFound.
func (r *DiagnosisRepo) GetDiagnosis(ctx context.Context, id string) (*DiagnosisRecord, error) {
	rec, err := scanDiagnosis(r.db.QueryRowContext(ctx,
		"SELECT "+diagnosisColumns+" FROM diagnoses WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnosis: %w", err)
	}
	return rec, nil
}

// ListDiagnosesByUser returns the user's diagnoses, newest first. A non-positive
// limit returns all of them.
func (r *DiagnosisRepo) ListDiagnosesByUser(ctx context.Context, userID string, limit int) ([]DiagnosisRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+diagnosisColumns+" FROM diagnoses WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query diagnoses: %w", err)
	}
	defer rows.Close()

	records := []DiagnosisRecord{}
	for rows.Next() {
		rec, err := scanDiagnosis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan diagnosis: %w", err)
		}
		records = append(records, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate diagnoses: %w", err)
	}

	return records, nil
}

func scanDiagnosis(row interface{ Scan(...any) error }) (*DiagnosisRecord, error) {
	var (
		rec                               DiagnosisRecord
		sessionID                         sql.NullInt64
		primaryTone, subSeason            string
		description, analysis             sql.NullString
		recommendations                   string
		palette, keywords, tips, topTypes sql.NullString
		createdAt                         string
	)
	err := row.Scan(&rec.ID, &rec.UserID, &sessionID, &rec.SourceType, &primaryTone, &subSeason,
		&description, &analysis, &recommendations, &palette, &keywords,
		&tips, &topTypes, &rec.Diagnosis.Confidence, &rec.Diagnosis.TotalScore, &createdAt)
	if err != nil {
		return nil, err
	}

	d := &rec.Diagnosis
	rec.SessionID = sessionID.Int64
	d.PrimaryTone = tone.Tone(primaryTone)
	d.SubSeason = tone.Season(subSeason)
	d.Description = description.String
	d.DetailedAnalysis = analysis.String

	if d.Recommendations, err = decodeList(recommendations); err != nil {
		return nil, err
	}
	if d.ColorPalette, err = decodeList(palette.String); err != nil {
		return nil, err
	}
	if d.StyleKeywords, err = decodeList(keywords.String); err != nil {
		return nil, err
	}
	if d.MakeupTips, err = decodeList(tips.String); err != nil {
		return nil, err
	}
	if topTypes.String != "" && topTypes.String != "null" {
		if err := json.Unmarshal([]byte(topTypes.String), &d.TopTypes); err != nil {
			return nil, fmt.Errorf("failed to decode top types: %w", err)
		}
	}

	d.Name = d.Verdict().TypeName()
	if len(d.TopTypes) > 0 && d.TopTypes[0].Name != "" {
		d.Name = d.TopTypes[0].Name
	}

	if rec.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(s string) ([]string, error) {
	items := []string{}
	if s == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// NewDiagnosisRecord wraps a diagnosis for persistence.
func NewDiagnosisRecord(userID string, sessionID int64, source string, d *diagnosis.Diagnosis) *DiagnosisRecord {
	return &DiagnosisRecord{
		UserID:     userID,
		SessionID:  sessionID,
		SourceType: source,
		Diagnosis:  *d,
	}
}
