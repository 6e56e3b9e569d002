package diagnosis

import (
	"context"
	"unicode/utf8"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/tone"
)

const (
	conversationScore = 85
	minAnalysisRunes  = 50
)

// DiagnoseConversation produces the final diagnosis of a chat session. It never
// fails: generation or parse problems yield the season template for the
// heuristic verdict.
func (o *Orchestrator) DiagnoseConversation(ctx context.Context, turns []Turn) *Diagnosis {
	logger := contextutil.LoggerFromContext(ctx)

	transcript := renderTranscript(turns)
	verdict := o.classifier.Classify(transcript)

	raw, err := o.generate(ctx, finalSystemPrompt, finalUserPrompt(truncateConversation(transcript), verdict.Season.Korean()), 0.3, 1000)
	if err != nil {
		logger.WarnContext(ctx, "final diagnosis generation failed, using template", "error", err)
		return conversationTemplate(verdict)
	}

	draft, err := ParseDraft(raw)
	if err != nil {
		logger.WarnContext(ctx, "final diagnosis output malformed, using template", "error", err)
		return conversationTemplate(verdict)
	}
	if utf8.RuneCountInString(draft.DetailedAnalysis) < minAnalysisRunes {
		logger.WarnContext(ctx, "final diagnosis analysis too short, using template",
			"length", utf8.RuneCountInString(draft.DetailedAnalysis))
		return conversationTemplate(verdict)
	}

	n := NarrativeFor(verdict.Season)
	d := &Diagnosis{
		PrimaryTone:      verdict.Primary,
		SubSeason:        verdict.Season,
		Name:             verdict.TypeName(),
		Description:      orString(draft.EmotionalDescription, n.EmotionalDescription),
		DetailedAnalysis: DedupSentences(draft.DetailedAnalysis),
		Recommendations:  NormalizeRecommendations(draft.Recommendations),
		Confidence:       conversationScore,
		TotalScore:       conversationScore,
		ColorPalette:     orStrings(draft.ColorPalette, n.ColorPalette),
		StyleKeywords:    orStrings(draft.StyleKeywords, n.StyleKeywords),
		MakeupTips:       orStrings(draft.MakeupTips, n.MakeupTips),
	}
	if len(d.Recommendations) == 0 {
		d.Recommendations = cloneStrings(n.Recommendations)
	}
	d.TopTypes = []TopType{mainTopType(d)}

	logger.InfoContext(ctx, "conversation diagnosed", "primary_tone", d.PrimaryTone, "sub_season", d.SubSeason)
	return d
}

// conversationTemplate builds the static diagnosis for a verdict.
func conversationTemplate(verdict tone.Verdict) *Diagnosis {
	n := NarrativeFor(verdict.Season)
	d := &Diagnosis{
		PrimaryTone:      verdict.Primary,
		SubSeason:        verdict.Season,
		Name:             verdict.TypeName(),
		Description:      n.EmotionalDescription,
		DetailedAnalysis: DedupSentences(n.DetailedAnalysis),
		Recommendations:  cloneStrings(n.Recommendations),
		Confidence:       conversationScore,
		TotalScore:       conversationScore,
		ColorPalette:     cloneStrings(n.ColorPalette),
		StyleKeywords:    cloneStrings(n.StyleKeywords),
		MakeupTips:       cloneStrings(n.MakeupTips),
		Fallback:         true,
	}
	d.TopTypes = []TopType{mainTopType(d)}
	return d
}

func mainTopType(d *Diagnosis) TopType {
	return TopType{
		Type:          d.SubSeason,
		Name:          d.Name,
		Description:   d.Description,
		ColorPalette:  d.ColorPalette,
		StyleKeywords: d.StyleKeywords,
		MakeupTips:    d.MakeupTips,
		Score:         d.TotalScore,
	}
}

func orString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orStrings(s, fallback []string) []string {
	if len(s) == 0 {
		return cloneStrings(fallback)
	}
	return s
}
