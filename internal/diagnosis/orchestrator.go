package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/llm"
	"personalcolor-ai/internal/rag"
	"personalcolor-ai/internal/tone"
)

// Knowledge holds the process-wide knowledge indexes.
type Knowledge struct {
	PersonalColor *rag.Index
	Trend         *rag.Index
}

// Config tunes prompting and retrieval.
type Config struct {
	// HistoryWindow is the number of most recent turns included in a chat prompt.
	HistoryWindow int
	// TopK is the number of passages retrieved per index for chat turns and surveys.
	TopK int
	// SurveyTrendTopK is the number of trend passages retrieved for surveys.
	SurveyTrendTopK int
	// GenerationTimeout bounds each generation call.
	GenerationTimeout time.Duration
	// EmotionDetection enables the per-turn emotion tag.
	EmotionDetection bool
}

// DefaultConfig returns the standard orchestrator settings.
func DefaultConfig() Config {
	return Config{
		HistoryWindow:     6,
		TopK:              3,
		SurveyTrendTopK:   2,
		GenerationTimeout: llm.DefaultTimeout,
		EmotionDetection:  true,
	}
}

// Orchestrator composes retrieval, generation and the heuristic classifier.
// It holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	engine     rag.Engine
	generator  Generator
	classifier *tone.Classifier
	knowledge  Knowledge
	cfg        Config
}

// New creates an orchestrator. Zero numeric config fields take their defaults.
func New(engine rag.Engine, generator Generator, classifier *tone.Classifier, knowledge Knowledge, cfg Config) *Orchestrator {
	def := DefaultConfig()
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = def.HistoryWindow
	}
	if cfg.TopK <= 0 {
		cfg.TopK = def.TopK
	}
	if cfg.SurveyTrendTopK <= 0 {
		cfg.SurveyTrendTopK = def.SurveyTrendTopK
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = def.GenerationTimeout
	}
	if classifier == nil {
		classifier = tone.NewDefaultClassifier()
	}
	return &Orchestrator{
		engine:     engine,
		generator:  generator,
		classifier: classifier,
		knowledge:  knowledge,
		cfg:        cfg,
	}
}

// Classifier returns the heuristic classifier in use.
func (o *Orchestrator) Classifier() *tone.Classifier {
	return o.classifier
}

func (o *Orchestrator) generate(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	raw, err := o.generator.ChatWithMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, llm.ChatParams{
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Timeout:     o.cfg.GenerationTimeout,
	})
	if err != nil {
		if errors.Is(err, llm.ErrGenerationService) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", llm.ErrGenerationService, err)
	}
	return raw, nil
}

// Respond answers one chat turn. Generation failures are returned and wrap
// llm.ErrGenerationService. Unparseable model output never fails the turn.
func (o *Orchestrator) Respond(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	logger := contextutil.LoggerFromContext(ctx)

	name := req.DisplayName
	if name == "" {
		name = defaultDisplayName
	}

	turns := make([]Turn, 0, len(req.History)+1)
	turns = append(turns, req.History...)
	turns = append(turns, Turn{Role: RoleUser, Text: req.Question})
	history := renderHistory(lastTurns(turns, o.cfg.HistoryWindow), name)
	query := combinedQuery(req.Question, history)

	passages := o.engine.Retrieve(ctx, query,
		rag.Query{Index: o.knowledge.PersonalColor, K: o.cfg.TopK},
		rag.Query{Index: o.knowledge.Trend, K: o.cfg.TopK},
	)

	raw, err := o.generate(ctx, chatSystemPrompt(name), chatUserPrompt(name, query, passages[0], passages[1]), 0.8, 600)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate chat reply", "error", err)
		return nil, fmt.Errorf("failed to generate chat reply: %w", err)
	}

	verdict := o.classifier.Classify(history + "\n" + req.Question)
	reply := buildChatReply(raw, verdict)
	if reply.Fallback {
		logger.WarnContext(ctx, "chat reply was not valid JSON, using fallback text")
	}
	reply.Emotion = o.DetectEmotion(ctx, req.Question)

	logger.InfoContext(ctx, "chat turn answered",
		"primary_tone", verdict.Primary,
		"sub_season", verdict.Season,
		"emotion", reply.Emotion,
		"fallback", reply.Fallback,
	)
	return reply, nil
}

// buildChatReply parses a chat reply and forces the heuristic verdict onto it.
func buildChatReply(raw string, verdict tone.Verdict) *ChatReply {
	reply := &ChatReply{
		PrimaryTone: verdict.Primary.Korean(),
		SubTone:     verdict.Season.Korean(),
		Verdict:     verdict,
	}

	draft, err := ParseDraft(raw)
	if err == nil {
		reply.Description = draft.Description
		if reply.Description == "" {
			reply.Description = greeting
		}
		reply.Recommendations = NormalizeRecommendations(draft.Recommendations)
		return reply
	}

	reply.Fallback = true
	content := strings.TrimSpace(raw)
	if _, extractErr := ExtractJSONObject(raw); extractErr == nil {
		reply.Description = content
		reply.Recommendations = cloneStrings(unparsedRecommendations)
		return reply
	}

	reply.Description = content
	if reply.Description == "" {
		reply.Description = greeting
	}
	reply.Recommendations = cloneStrings(proseRecommendations)
	return reply
}

var emotions = []string{"smile", "sad", "angry", "love", "no", "wink"}

// DefaultEmotion is used when detection is disabled or fails.
const DefaultEmotion = "wink"

// DetectEmotion tags an utterance with one of smile, sad, angry, love, no or wink.
// It never fails: errors and unrecognized replies yield DefaultEmotion.
func (o *Orchestrator) DetectEmotion(ctx context.Context, text string) string {
	if !o.cfg.EmotionDetection {
		return DefaultEmotion
	}

	raw, err := o.generate(ctx, emotionSystemPrompt, emotionUserPrompt(text), 0, 10)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "emotion detection failed", "error", err)
		return DefaultEmotion
	}

	label := strings.ToLower(strings.TrimSpace(raw))
	for _, e := range emotions {
		if strings.Contains(label, e) {
			return e
		}
	}
	return DefaultEmotion
}

func lastTurns(turns []Turn, n int) []Turn {
	if len(turns) <= n {
		return turns
	}
	return turns[len(turns)-n:]
}

// renderHistory formats turns as "<name>: text" / "전문가: text" lines.
func renderHistory(turns []Turn, name string) string {
	var b strings.Builder
	for _, t := range turns {
		if t.Role == RoleUser {
			fmt.Fprintf(&b, "%s: %s\n", name, t.Text)
		} else {
			fmt.Fprintf(&b, "%s: %s\n", expertLabel, t.Text)
		}
	}
	return b.String()
}

// renderTranscript formats a whole session as "User:" / "AI:" lines.
func renderTranscript(turns []Turn) string {
	var b strings.Builder
	for _, t := range turns {
		if t.Role == RoleUser {
			fmt.Fprintf(&b, "User: %s\n", t.Text)
		} else {
			fmt.Fprintf(&b, "AI: %s\n", t.Text)
		}
	}
	return b.String()
}
