package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"personalcolor-ai/internal/indexer"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string
	LLMTimeout   time.Duration

	EmbeddingBaseURL    string
	EmbeddingModelName  string
	EmbeddingTimeout    time.Duration
	EmbeddingVectorSize int

	KnowledgePersonalColorPath string
	KnowledgeTrendPath         string
	ChunkSize                  int
	ChunkOverlap               int
	TopK                       int
	SurveyTrendTopK            int
	HistoryWindow              int
	ToneKeywordsPath           string
	EmotionDetection           bool

	DBPath           string
	QdrantURL        string
	QdrantCollection string
	APIPort          string

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		LLMBaseURL:   getEnv("LLM_BASE_URL", "http://localhost:8080"),
		LLMModelName: getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:    getEnv("LLM_API_KEY", "dummy-key"),

		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "http://localhost:8081"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-3-small"),

		KnowledgePersonalColorPath: getEnv("KNOWLEDGE_PERSONAL_COLOR_PATH", "data/RAG/personal_color_RAG.txt"),
		KnowledgeTrendPath:         getEnv("KNOWLEDGE_TREND_PATH", "data/RAG/beauty_trend_2025_autumn_RAG.txt"),
		ToneKeywordsPath:           getEnv("TONE_KEYWORDS_PATH", ""),

		DBPath:           getEnv("DB_PATH", "./data/personalcolor.db"),
		QdrantURL:        getEnv("QDRANT_URL", ""),
		QdrantCollection: getEnv("QDRANT_COLLECTION", "knowledge"),
		APIPort:          getEnv("API_PORT", "9000"),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	var err error
	if cfg.LLMTimeout, err = getDuration("LLM_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.EmbeddingTimeout, err = getDuration("EMBEDDING_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	// 0 disables the vector size check against the embeddings server.
	if cfg.EmbeddingVectorSize, err = getInt("EMBEDDING_VECTOR_SIZE", 0, 0); err != nil {
		return nil, err
	}
	if cfg.ChunkSize, err = getInt("RAG_CHUNK_SIZE", 800, 1); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getInt("RAG_CHUNK_OVERLAP", 100, 0); err != nil {
		return nil, err
	}
	if cfg.TopK, err = getInt("RAG_TOP_K", 3, 1); err != nil {
		return nil, err
	}
	if cfg.SurveyTrendTopK, err = getInt("RAG_SURVEY_TREND_TOP_K", 2, 1); err != nil {
		return nil, err
	}
	if cfg.HistoryWindow, err = getInt("CHAT_HISTORY_WINDOW", 6, 1); err != nil {
		return nil, err
	}
	if cfg.EmotionDetection, err = getBool("EMOTION_DETECTION", true); err != nil {
		return nil, err
	}

	if err := indexer.ValidateChunkParams(cfg.ChunkSize, cfg.ChunkOverlap); err != nil {
		return nil, err
	}

	if cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	// Create ./data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads .env from the current directory, then from the first
// parent directory (up to five levels) that has one.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue, minValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	if v < minValue {
		return 0, fmt.Errorf("%s must be at least %d, got %d", key, minValue, v)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return v, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	return level, nil
}
