package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"personalcolor-ai/internal/vectorstore"
)

func newSearchCmd(opts *options) *cobra.Command {
	var (
		k       int
		source  string
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the Qdrant mirror of the knowledge indexes",
		Long: `Search queries the mirrored knowledge chunks in Qdrant (QDRANT_URL).
With --publish both indexes are rebuilt and mirrored first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kn, err := loadKnowledge()
			if err != nil {
				return err
			}
			if kn.cfg.QdrantURL == "" {
				return errors.New("QDRANT_URL is not set")
			}

			store, err := vectorstore.NewQdrantStore(kn.cfg.QdrantURL)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			if publish {
				kn.builder.WithPublisher(vectorstore.NewMirror(store, kn.cfg.QdrantCollection))
				if _, err := kn.indexes(cmd); err != nil {
					return err
				}
			}

			vecs, err := kn.embedder.EmbedTexts(cmd.Context(), []string{strings.Join(args, " ")})
			if err != nil {
				return err
			}

			var filters map[string]any
			if source != "" {
				filters = map[string]any{vectorstore.PayloadSource: source}
			}
			results, err := store.Search(cmd.Context(), kn.cfg.QdrantCollection, vecs[0], k, filters)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), results)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SOURCE\tOFFSET\tSCORE\tPREVIEW")
			for _, r := range results {
				text, _ := r.Meta[vectorstore.PayloadText].(string)
				fmt.Fprintf(tw, "%v\t%v\t%.4f\t%s\n", r.Meta[vectorstore.PayloadSource], r.Meta[vectorstore.PayloadOffset], r.Score, preview(text))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&k, "k", 5, "Number of results")
	cmd.Flags().StringVar(&source, "source", "", "Only return chunks of this knowledge source")
	cmd.Flags().BoolVar(&publish, "publish", false, "Rebuild and mirror the indexes before searching")
	return cmd
}
