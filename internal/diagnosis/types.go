// Package diagnosis turns conversations and survey answers into personal color diagnoses.
package diagnosis

import (
	"time"

	"personalcolor-ai/internal/tone"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Source types recorded with a diagnosis.
const (
	SourceChatbot = "chatbot"
	SourceSurvey  = "survey"
)

// Turn is one message of a chat session.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the input of one chat turn.
type ChatRequest struct {
	// Question is the user's current message.
	Question string
	// History holds the earlier turns of the session in arrival order.
	History []Turn
	// DisplayName is how the assistant addresses the user.
	DisplayName string
}

// ChatReply is the assistant's structured answer to one chat turn.
type ChatReply struct {
	PrimaryTone     string       `json:"primary_tone"`
	SubTone         string       `json:"sub_tone"`
	Description     string       `json:"description"`
	Recommendations []string     `json:"recommendations"`
	Emotion         string       `json:"emotion"`
	Verdict         tone.Verdict `json:"-"`
	Fallback        bool         `json:"-"`
}

// SurveyAnswer is one answered survey question.
type SurveyAnswer struct {
	QuestionID  int    `json:"question_id"`
	OptionID    string `json:"option_id,omitempty"`
	OptionLabel string `json:"option_label"`
}

// TopType is one ranked season candidate.
type TopType struct {
	Type          tone.Season `json:"type"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	ColorPalette  []string    `json:"color_palette"`
	StyleKeywords []string    `json:"style_keywords"`
	MakeupTips    []string    `json:"makeup_tips"`
	Score         int         `json:"score"`
}

// Diagnosis is the schema-valid result of a conversation or survey diagnosis.
type Diagnosis struct {
	PrimaryTone      tone.Tone   `json:"primary_tone"`
	SubSeason        tone.Season `json:"sub_season"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	DetailedAnalysis string      `json:"detailed_analysis"`
	Recommendations  []string    `json:"recommendations"`
	Confidence       int         `json:"confidence"`
	TotalScore       int         `json:"total_score"`
	ColorPalette     []string    `json:"color_palette,omitempty"`
	StyleKeywords    []string    `json:"style_keywords,omitempty"`
	MakeupTips       []string    `json:"makeup_tips,omitempty"`
	TopTypes         []TopType   `json:"top_types,omitempty"`
	// Fallback is set when the result was built from templates instead of model output.
	Fallback bool `json:"fallback"`
}

// Verdict returns the diagnosis tone fields as a verdict.
func (d *Diagnosis) Verdict() tone.Verdict {
	return tone.Verdict{Primary: d.PrimaryTone, Season: d.SubSeason}
}
