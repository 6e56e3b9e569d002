package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"personalcolor-ai/internal/config"
	"personalcolor-ai/internal/contextutil"
	"personalcolor-ai/internal/indexer"
	"personalcolor-ai/internal/llm"
	"personalcolor-ai/internal/rag"
)

// options are the flags shared by every command.
type options struct {
	jsonOutput bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "colorctl",
		Short:         "Inspect the personal color classifier and knowledge indexes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(contextutil.WithLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(
		newClassifyCmd(opts),
		newChunkCmd(opts),
		newRetrieveCmd(opts),
		newStatsCmd(opts),
		newSearchCmd(opts),
	)
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// knowledge is the model and index state needed by retrieval commands.
type knowledge struct {
	cfg      *config.Config
	embedder *llm.EmbeddingsClient
	builder  *indexer.Builder
}

func loadKnowledge() (*knowledge, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.EmbeddingVectorSize, cfg.EmbeddingTimeout)
	builder, err := indexer.NewBuilder(embedder, indexer.Options{
		ChunkSize:      cfg.ChunkSize,
		ChunkOverlap:   cfg.ChunkOverlap,
		EmbeddingModel: cfg.EmbeddingModelName,
	})
	if err != nil {
		return nil, err
	}
	return &knowledge{cfg: cfg, embedder: embedder, builder: builder}, nil
}

// indexes builds both knowledge indexes in build order.
func (k *knowledge) indexes(cmd *cobra.Command) ([]*rag.Index, error) {
	personal, trend, err := k.builder.BuildKnowledge(cmd.Context(), k.cfg.KnowledgePersonalColorPath, k.cfg.KnowledgeTrendPath)
	if err != nil {
		return nil, err
	}
	return []*rag.Index{personal, trend}, nil
}

func keywordsPathDefault() string {
	return os.Getenv("TONE_KEYWORDS_PATH")
}
