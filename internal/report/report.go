// Package report turns stored diagnoses into shareable reports.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/tone"
)

// ReportData is the renderable content of a diagnosis report.
type ReportData struct {
	Title           string              `json:"title"`
	TypeName        string              `json:"type_name"`
	PrimaryTone     tone.Tone           `json:"primary_tone"`
	SubSeason       tone.Season         `json:"sub_season"`
	Summary         string              `json:"summary"`
	Confidence      int                 `json:"confidence"`
	TotalScore      int                 `json:"total_score"`
	ColorPalette    []string            `json:"color_palette"`
	StyleKeywords   []string            `json:"style_keywords"`
	MakeupTips      []string            `json:"makeup_tips"`
	Recommendations []string            `json:"recommendations"`
	Analysis        []string            `json:"analysis"`
	TopTypes        []diagnosis.TopType `json:"top_types,omitempty"`
	Conversation    *ConversationStats  `json:"conversation,omitempty"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// ConversationStats summarizes the chat a diagnosis came from.
type ConversationStats struct {
	Turns          int       `json:"turns"`
	UserTurns      int       `json:"user_turns"`
	AssistantTurns int       `json:"assistant_turns"`
	AvgUserRunes   int       `json:"avg_user_runes"`
	StartedAt      time.Time `json:"started_at,omitempty"`
	LastAt         time.Time `json:"last_at,omitempty"`
}

// Builder assembles ReportData.
type Builder struct {
	now func() time.Time
}

// NewBuilder creates a Builder using the wall clock.
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Build produces the report for d. turns may be empty for survey diagnoses.
func (b *Builder) Build(d *diagnosis.Diagnosis, turns []diagnosis.Turn) *ReportData {
	name := d.Name
	if name == "" {
		name = d.Verdict().TypeName()
	}

	data := &ReportData{
		Title:           fmt.Sprintf("%s 퍼스널 컬러 진단 리포트", name),
		TypeName:        name,
		PrimaryTone:     d.PrimaryTone,
		SubSeason:       d.SubSeason,
		Summary:         strings.TrimSpace(d.Description),
		Confidence:      d.Confidence,
		TotalScore:      d.TotalScore,
		ColorPalette:    palette(d.ColorPalette),
		StyleKeywords:   nonEmpty(d.StyleKeywords),
		MakeupTips:      nonEmpty(d.MakeupTips),
		Recommendations: nonEmpty(d.Recommendations),
		Analysis:        paragraphs(d.DetailedAnalysis),
		TopTypes:        d.TopTypes,
		GeneratedAt:     b.now().UTC(),
	}
	if len(turns) > 0 {
		data.Conversation = conversationStats(turns)
	}
	return data
}

// palette keeps valid hex colors, uppercased and deduplicated.
func palette(colors []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, c := range colors {
		c = strings.ToUpper(strings.TrimSpace(c))
		if !hexColor.MatchString(c) || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func nonEmpty(items []string) []string {
	out := []string{}
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func paragraphs(text string) []string {
	return nonEmpty(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n"))
}

func conversationStats(turns []diagnosis.Turn) *ConversationStats {
	stats := &ConversationStats{Turns: len(turns)}
	userRunes := 0
	for _, t := range turns {
		if t.Role == diagnosis.RoleUser {
			stats.UserTurns++
			userRunes += utf8.RuneCountInString(t.Text)
		} else {
			stats.AssistantTurns++
		}
		if t.CreatedAt.IsZero() {
			continue
		}
		if stats.StartedAt.IsZero() || t.CreatedAt.Before(stats.StartedAt) {
			stats.StartedAt = t.CreatedAt
		}
		if t.CreatedAt.After(stats.LastAt) {
			stats.LastAt = t.CreatedAt
		}
	}
	if stats.UserTurns > 0 {
		stats.AvgUserRunes = userRunes / stats.UserTurns
	}
	return stats
}
