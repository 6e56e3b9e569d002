package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personalcolor-ai/internal/config"
	"personalcolor-ai/internal/diagnosis"
	"personalcolor-ai/internal/handlers"
	"personalcolor-ai/internal/http"
	"personalcolor-ai/internal/indexer"
	"personalcolor-ai/internal/llm"
	"personalcolor-ai/internal/rag"
	"personalcolor-ai/internal/service"
	"personalcolor-ai/internal/storage"
	"personalcolor-ai/internal/tone"
	"personalcolor-ai/internal/vectorstore"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API diagnoses personal color from chatbot conversations and surveys.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Personal Color AI API
//   description: |
//     Chatbot sessions, survey diagnosis and shareable reports for personal color analysis.
//     Callers identify themselves with the X-User-ID header.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create model clients (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.LLMTimeout)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingVectorSize, cfg.EmbeddingTimeout)

	classifier := tone.NewDefaultClassifier()
	if cfg.ToneKeywordsPath != "" {
		table, err := tone.LoadKeywordTable(cfg.ToneKeywordsPath)
		if err != nil {
			log.Fatalf("Failed to load tone keywords: %v", err)
		}
		classifier = tone.NewClassifier(table)
		slog.Info("Tone keywords loaded", "path", cfg.ToneKeywordsPath)
	}

	builder, err := indexer.NewBuilder(embedder, indexer.Options{
		ChunkSize:      cfg.ChunkSize,
		ChunkOverlap:   cfg.ChunkOverlap,
		EmbeddingModel: cfg.EmbeddingModelName,
	})
	if err != nil {
		log.Fatalf("Invalid indexing configuration: %v", err)
	}

	// Mirror the knowledge indexes into Qdrant when configured
	if cfg.QdrantURL != "" {
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		defer func() {
			_ = qdrantStore.Close()
		}()
		builder.WithPublisher(vectorstore.NewMirror(qdrantStore, cfg.QdrantCollection))
		slog.Info("Qdrant mirror enabled", "url", cfg.QdrantURL, "collection", cfg.QdrantCollection)
	}

	// Build the knowledge indexes before serving; retrieval reads them without locks
	personalColor, trend, err := builder.BuildKnowledge(ctx, cfg.KnowledgePersonalColorPath, cfg.KnowledgeTrendPath)
	if err != nil {
		log.Fatalf("Failed to build knowledge indexes: %v", err)
	}
	indexStats := []indexer.IndexStats{
		indexer.ComputeStats(personalColor, builder.Options()),
		indexer.ComputeStats(trend, builder.Options()),
	}
	for _, s := range indexStats {
		slog.Info("Knowledge index ready", "source", s.Name, "chunks", s.Chunks, "index_version", s.IndexVersion)
	}

	orchestrator := diagnosis.New(
		rag.NewEngine(embedder),
		llmClient,
		classifier,
		diagnosis.Knowledge{PersonalColor: personalColor, Trend: trend},
		diagnosis.Config{
			HistoryWindow:     cfg.HistoryWindow,
			TopK:              cfg.TopK,
			SurveyTrendTopK:   cfg.SurveyTrendTopK,
			GenerationTimeout: cfg.LLMTimeout,
			EmotionDetection:  cfg.EmotionDetection,
		},
	)

	store := storage.NewStore(db)
	deps := &http.Deps{
		ChatService:   service.NewChatService(store, orchestrator, cfg.HistoryWindow),
		SurveyService: service.NewSurveyService(store, orchestrator),
		Health:        handlers.NewHealthHandler(indexStats, llmClient),
	}
	router := http.NewRouter(deps)

	// Start API server
	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr)
		slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
