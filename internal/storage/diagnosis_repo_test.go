package storage

import (
	"context"
	"errors"
	"testing"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/tone"
)

func sampleDiagnosis() *diagnosis.Diagnosis {
	return &diagnosis.Diagnosis{
		PrimaryTone:      tone.Cool,
		SubSeason:        tone.Summer,
		Description:      "우아한 여름 쿨톤",
		DetailedAnalysis: "라벤더가 잘 어울립니다.",
		Recommendations:  []string{"라벤더 니트", "실버 액세서리"},
		Confidence:       85,
		TotalScore:       80,
		ColorPalette:     []string{"#E6E6FA"},
		TopTypes: []diagnosis.TopType{
			{Type: tone.Summer, Name: "여름 쿨톤 💎", Score: 80},
			{Type: tone.Winter, Name: "겨울 쿨톤 ❄️", Score: 60},
		},
	}
}

func TestDiagnosisRepo_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	sessions := NewSessionRepo(db)
	repo := NewDiagnosisRepo(db)

	s, err := sessions.CreateSession(ctx, "user-1")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	rec := NewDiagnosisRecord("user-1", s.ID, diagnosis.SourceChatbot, sampleDiagnosis())
	if err := repo.SaveDiagnosis(ctx, rec); err != nil {
		t.Fatalf("SaveDiagnosis() error = %v", err)
	}
	if rec.ID == "" {
		t.Fatal("SaveDiagnosis() should assign an ID")
	}

	got, err := repo.GetDiagnosis(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetDiagnosis() error = %v", err)
	}

	if got.UserID != "user-1" || got.SessionID != s.ID || got.SourceType != diagnosis.SourceChatbot {
		t.Errorf("record header = %+v", got)
	}
	d := got.Diagnosis
	if d.Verdict() != (tone.Verdict{Primary: tone.Cool, Season: tone.Summer}) {
		t.Errorf("verdict = %+v", d.Verdict())
	}
	if len(d.Recommendations) != 2 || d.Recommendations[1] != "실버 액세서리" {
		t.Errorf("Recommendations = %v", d.Recommendations)
	}
	if d.StyleKeywords == nil || len(d.StyleKeywords) != 0 {
		t.Errorf("StyleKeywords = %#v, want empty slice", d.StyleKeywords)
	}
	if len(d.TopTypes) != 2 || d.TopTypes[1].Type != tone.Winter {
		t.Errorf("TopTypes = %+v", d.TopTypes)
	}
	if d.Name != "여름 쿨톤 💎" {
		t.Errorf("Name = %q, want main top type name", d.Name)
	}
	if d.Confidence != 85 || d.TotalScore != 80 {
		t.Errorf("scores = %d/%d", d.Confidence, d.TotalScore)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestDiagnosisRepo_SurveyWithoutSession(t *testing.T) {
	ctx := context.Background()
	repo := NewDiagnosisRepo(newTestDB(t))

	d := sampleDiagnosis()
	d.TopTypes = nil
	rec := NewDiagnosisRecord("user-2", 0, diagnosis.SourceSurvey, d)
	if err := repo.SaveDiagnosis(ctx, rec); err != nil {
		t.Fatalf("SaveDiagnosis() error = %v", err)
	}

	got, err := repo.GetDiagnosis(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetDiagnosis() error = %v", err)
	}
	if got.SessionID != 0 {
		t.Errorf("SessionID = %d, want 0", got.SessionID)
	}
	if got.Diagnosis.Name != "여름 쿨톤" {
		t.Errorf("Name = %q, want verdict type name", got.Diagnosis.Name)
	}
}

func TestDiagnosisRepo_SaveRejectsInvalidVerdict(t *testing.T) {
	repo := NewDiagnosisRepo(newTestDB(t))

	d := sampleDiagnosis()
	d.SubSeason = "monsoon"
	if err := repo.SaveDiagnosis(context.Background(), NewDiagnosisRecord("u", 0, diagnosis.SourceSurvey, d)); err == nil {
		t.Error("SaveDiagnosis() with invalid season should fail")
	}
}

func TestDiagnosisRepo_GetNotFound(t *testing.T) {
	repo := NewDiagnosisRepo(newTestDB(t))

	if _, err := repo.GetDiagnosis(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDiagnosis() error = %v, want ErrNotFound", err)
	}
}

func TestDiagnosisRepo_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewDiagnosisRepo(newTestDB(t))

	var ids []string
	for i := 0; i < 3; i++ {
		rec := NewDiagnosisRecord("user-1", 0, diagnosis.SourceSurvey, sampleDiagnosis())
		if err := repo.SaveDiagnosis(ctx, rec); err != nil {
			t.Fatalf("SaveDiagnosis() error = %v", err)
		}
		ids = append(ids, rec.ID)
	}
	if err := repo.SaveDiagnosis(ctx, NewDiagnosisRecord("user-2", 0, diagnosis.SourceSurvey, sampleDiagnosis())); err != nil {
		t.Fatalf("SaveDiagnosis() error = %v", err)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "all", limit: 0, want: []string{ids[2], ids[1], ids[0]}},
		{name: "limited", limit: 2, want: []string{ids[2], ids[1]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListDiagnosesByUser(ctx, "user-1", tt.limit)
			if err != nil {
				t.Fatalf("ListDiagnosesByUser() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListDiagnosesByUser() returned %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].ID != tt.want[i] {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestStore_ImplementsDiagnosisStore(t *testing.T) {
	var store DiagnosisStore = NewStore(newTestDB(t))
	if _, err := store.CreateSession(context.Background(), "user-1"); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
}
