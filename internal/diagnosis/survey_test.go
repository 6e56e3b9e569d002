package diagnosis

import (
	"testing"

	"personalcolor-ai/internal/tone"
)

func score(v float64) *float64 { return &v }

func TestRepairTopTypes(t *testing.T) {
	tests := []struct {
		name       string
		drafts     []TopTypeDraft
		main       tone.Season
		total      int
		wantTypes  []tone.Season
		wantScores []int
	}{
		{
			name:       "absent list uses defaults",
			main:       tone.Summer,
			total:      85,
			wantTypes:  []tone.Season{tone.Summer, tone.Spring, tone.Autumn},
			wantScores: []int{85, 65, 50},
		},
		{
			name:       "single entry padded to three",
			drafts:     []TopTypeDraft{{Type: "winter", Score: score(90)}},
			main:       tone.Winter,
			total:      90,
			wantTypes:  []tone.Season{tone.Winter, tone.Spring, tone.Summer},
			wantScores: []int{90, 75, 60},
		},
		{
			name: "main moved to front",
			drafts: []TopTypeDraft{
				{Type: "spring", Score: score(88)},
				{Type: "autumn", Score: score(70)},
			},
			main:       tone.Autumn,
			total:      80,
			wantTypes:  []tone.Season{tone.Autumn, tone.Spring},
			wantScores: []int{70, 88},
		},
		{
			name: "missing main prepended and list capped",
			drafts: []TopTypeDraft{
				{Type: "spring", Score: score(88)},
				{Type: "summer", Score: score(70)},
				{Type: "autumn", Score: score(60)},
			},
			main:       tone.Winter,
			total:      75,
			wantTypes:  []tone.Season{tone.Winter, tone.Spring, tone.Summer},
			wantScores: []int{75, 88, 70},
		},
		{
			name: "duplicates and unknown types",
			drafts: []TopTypeDraft{
				{Type: "장마"},
				{Type: "summer"},
				{Type: "summer"},
			},
			main:       tone.Winter,
			total:      80,
			wantTypes:  []tone.Season{tone.Winter, tone.Summer},
			wantScores: []int{80, 65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repairTopTypes(tt.drafts, tt.main, tt.total)
			if len(got) != len(tt.wantTypes) {
				t.Fatalf("repairTopTypes() returned %d types, want %d: %+v", len(got), len(tt.wantTypes), got)
			}
			for i := range got {
				if got[i].Type != tt.wantTypes[i] {
					t.Errorf("type[%d] = %s, want %s", i, got[i].Type, tt.wantTypes[i])
				}
				if got[i].Score != tt.wantScores[i] {
					t.Errorf("score[%d] = %d, want %d", i, got[i].Score, tt.wantScores[i])
				}
				if got[i].Name == "" || got[i].Description == "" || len(got[i].ColorPalette) == 0 ||
					len(got[i].StyleKeywords) == 0 || len(got[i].MakeupTips) == 0 {
					t.Errorf("type[%d] has empty fields: %+v", i, got[i])
				}
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in   *float64
		want int
	}{
		{nil, 50},
		{score(-5), 0},
		{score(150), 100},
		{score(72.6), 73},
	}
	for _, tt := range tests {
		if got := clampScore(tt.in, 50); got != tt.want {
			t.Errorf("clampScore(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRenderAnswers(t *testing.T) {
	got := RenderAnswers([]SurveyAnswer{{QuestionID: 1, OptionLabel: "밝은 색"}, {QuestionID: 7, OptionLabel: "골드"}})
	if got != "Q1: 밝은 색\nQ7: 골드" {
		t.Errorf("RenderAnswers() = %q", got)
	}
}
