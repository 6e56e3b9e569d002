package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"personalcolor-ai/internal/indexer"
	"personalcolor-ai/internal/rag"
)

type retrieveResult struct {
	Source  string            `json:"source"`
	Results []rag.ScoredChunk `json:"results"`
}

func newRetrieveCmd(opts *options) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "retrieve <query>",
		Short: "Build both knowledge indexes and print the top-k passages for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kn, err := loadKnowledge()
			if err != nil {
				return err
			}
			if k <= 0 {
				k = kn.cfg.TopK
			}

			indexes, err := kn.indexes(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			vecs, err := kn.embedder.EmbedTexts(cmd.Context(), []string{query})
			if err != nil {
				return err
			}

			results := make([]retrieveResult, 0, len(indexes))
			for _, ix := range indexes {
				results = append(results, retrieveResult{Source: ix.Name(), Results: rag.Rank(vecs[0], ix, k)})
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), results)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\t#\tSCORE\tPREVIEW")
			for _, r := range results {
				if len(r.Results) == 0 {
					fmt.Fprintf(tw, "%s\t-\t-\t(no passages)\n", r.Source)
					continue
				}
				for _, c := range r.Results {
					fmt.Fprintf(tw, "%s\t%d\t%.4f\t%s\n", r.Source, c.Position, c.Score, preview(c.Text))
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&k, "k", 0, "Passages per index (default RAG_TOP_K)")
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Build both knowledge indexes and print their statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kn, err := loadKnowledge()
			if err != nil {
				return err
			}

			indexes, err := kn.indexes(cmd)
			if err != nil {
				return err
			}

			stats := make([]indexer.IndexStats, 0, len(indexes))
			for _, ix := range indexes {
				stats = append(stats, indexer.ComputeStats(ix, kn.builder.Options()))
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), stats)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\tCHUNKS\tDIMS\tRUNES MIN/MEAN/P95/MAX\tVERSION")
			for _, s := range stats {
				r := s.ChunkRuneStats
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d/%.1f/%d/%d\t%s\n", s.Name, s.Chunks, s.Dimensions, r.Min, r.Mean, r.P95, r.Max, s.IndexVersion)
			}
			return tw.Flush()
		},
	}
}
