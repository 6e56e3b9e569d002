package diagnosis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/rag"
	"personalcolor-ai/internal/tone"
)

const (
	defaultSurveyScore = 50
	maxTopTypes        = 3
	defaultAnalysis    = "답변을 종합 분석한 결과입니다."
)

// RenderAnswers formats survey answers as "Q<id>: <label>" lines.
func RenderAnswers(answers []SurveyAnswer) string {
	lines := make([]string, len(answers))
	for i, a := range answers {
		lines[i] = fmt.Sprintf("Q%d: %s", a.QuestionID, a.OptionLabel)
	}
	return strings.Join(lines, "\n")
}

// DiagnoseSurvey diagnoses a completed survey. It never fails: generation or parse
// problems yield a template ranking for the heuristic verdict.
func (o *Orchestrator) DiagnoseSurvey(ctx context.Context, answers []SurveyAnswer) *Diagnosis {
	logger := contextutil.LoggerFromContext(ctx)

	answersText := RenderAnswers(answers)
	verdict := o.classifier.Classify(answersText)

	passages := o.engine.Retrieve(ctx, answersText,
		rag.Query{Index: o.knowledge.PersonalColor, K: o.cfg.TopK},
		rag.Query{Index: o.knowledge.Trend, K: o.cfg.SurveyTrendTopK},
	)

	raw, err := o.generate(ctx, surveySystemPrompt, surveyUserPrompt(answersText, passages[0], passages[1]), 0.7, 1500)
	if err != nil {
		logger.WarnContext(ctx, "survey generation failed, using template", "error", err)
		return surveyTemplate(verdict)
	}

	draft, err := ParseDraft(raw)
	if err != nil {
		logger.WarnContext(ctx, "survey output malformed, using template", "error", err)
		return surveyTemplate(verdict)
	}

	if s, ok := tone.ParseSeason(draft.ResultTone); ok && s != verdict.Season {
		logger.InfoContext(ctx, "model season overridden by heuristic verdict",
			"model_season", s,
			"heuristic_season", verdict.Season,
		)
	}

	confidence := clampScore(draft.Confidence, defaultSurveyScore)
	total := clampScore(draft.TotalScore, defaultSurveyScore)
	top := repairTopTypes(draft.TopTypes, verdict.Season, total)

	d := surveyDiagnosis(verdict, top, confidence, total)
	if analysis := DedupSentences(draft.DetailedAnalysis); analysis != "" {
		d.DetailedAnalysis = analysis
	} else {
		d.DetailedAnalysis = defaultAnalysis
	}
	if recs := NormalizeRecommendations(draft.Recommendations); len(recs) > 0 {
		d.Recommendations = recs
	}

	logger.InfoContext(ctx, "survey diagnosed",
		"primary_tone", d.PrimaryTone,
		"sub_season", d.SubSeason,
		"confidence", d.Confidence,
		"top_types", len(d.TopTypes),
	)
	return d
}

func surveyTemplate(verdict tone.Verdict) *Diagnosis {
	top := repairTopTypes(nil, verdict.Season, defaultSurveyScore)
	d := surveyDiagnosis(verdict, top, defaultSurveyScore, defaultSurveyScore)
	d.DetailedAnalysis = DedupSentences(NarrativeFor(verdict.Season).DetailedAnalysis)
	d.Fallback = true
	return d
}

// surveyDiagnosis fills the top-level fields from the main ranked type.
func surveyDiagnosis(verdict tone.Verdict, top []TopType, confidence, total int) *Diagnosis {
	main := top[0]
	return &Diagnosis{
		PrimaryTone:     verdict.Primary,
		SubSeason:       verdict.Season,
		Name:            main.Name,
		Description:     main.Description,
		Recommendations: cloneStrings(NarrativeFor(verdict.Season).Recommendations),
		Confidence:      confidence,
		TotalScore:      total,
		ColorPalette:    main.ColorPalette,
		StyleKeywords:   main.StyleKeywords,
		MakeupTips:      main.MakeupTips,
		TopTypes:        top,
	}
}

// clampScore rounds a score into 0..100, using def when absent.
func clampScore(v *float64, def int) int {
	if v == nil || math.IsNaN(*v) {
		return def
	}
	return max(0, min(100, int(math.Round(*v))))
}

// repairTopTypes returns two or three ranked types with main first and every
// field populated.
func repairTopTypes(drafts []TopTypeDraft, main tone.Season, total int) []TopType {
	if len(drafts) == 0 {
		others := otherSeasons(main, nil)
		return []TopType{
			profileTopType(main, total),
			profileTopType(others[0], max(60, total-20)),
			profileTopType(others[1], max(40, total-35)),
		}
	}

	var out []TopType
	seen := make(map[tone.Season]bool)
	for i, d := range drafts {
		s, ok := tone.ParseSeason(d.Type)
		if !ok {
			s = tone.Spring
			if i == 0 {
				s = main
			}
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, fillTopType(d, s, total, len(out)))
	}

	mainIdx := -1
	for i, t := range out {
		if t.Type == main {
			mainIdx = i
			break
		}
	}
	switch {
	case mainIdx == -1:
		out = append([]TopType{profileTopType(main, total)}, out...)
		seen[main] = true
	case mainIdx > 0:
		m := out[mainIdx]
		copy(out[1:mainIdx+1], out[:mainIdx])
		out[0] = m
	}

	if len(out) < 2 {
		for _, s := range otherSeasons(main, seen) {
			if len(out) >= maxTopTypes {
				break
			}
			out = append(out, profileTopType(s, max(50, total-len(out)*15)))
		}
	}

	if len(out) > maxTopTypes {
		out = out[:maxTopTypes]
	}
	return out
}

func otherSeasons(main tone.Season, seen map[tone.Season]bool) []tone.Season {
	var out []tone.Season
	for _, s := range tone.Seasons {
		if s != main && !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func profileTopType(s tone.Season, score int) TopType {
	p := ProfileFor(s)
	return TopType{
		Type:          s,
		Name:          p.Name,
		Description:   p.Description,
		ColorPalette:  cloneStrings(p.ColorPalette),
		StyleKeywords: cloneStrings(p.StyleKeywords),
		MakeupTips:    cloneStrings(p.MakeupTips),
		Score:         score,
	}
}

func fillTopType(d TopTypeDraft, s tone.Season, total, position int) TopType {
	p := ProfileFor(s)
	t := TopType{
		Type:          s,
		Name:          d.Name,
		Description:   d.Description,
		ColorPalette:  orStrings(d.ColorPalette, p.ColorPalette),
		StyleKeywords: orStrings(d.StyleKeywords, p.StyleKeywords),
		MakeupTips:    orStrings(d.MakeupTips, p.MakeupTips),
	}
	if t.Name == "" || t.Name == string(s)+" 타입" {
		t.Name = p.Name
	}
	if t.Description == "" || t.Description == "추가 타입입니다." || t.Description == "퍼스널 컬러 타입입니다." {
		t.Description = p.Description
	}
	t.Score = clampScore(d.Score, 0)
	if t.Score == 0 {
		t.Score = max(50, total-position*15)
	}
	return t
}
