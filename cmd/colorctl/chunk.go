package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"personalcolor-ai/internal/indexer"
)

const previewRunes = 40

type chunkRow struct {
	Position int    `json:"position"`
	Offset   int    `json:"offset"`
	Runes    int    `json:"runes"`
	Text     string `json:"text"`
}

func newChunkCmd(opts *options) *cobra.Command {
	var size, overlap int

	cmd := &cobra.Command{
		Use:   "chunk <path>",
		Short: "Split a knowledge document or directory into chunks without embedding them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := indexer.ReadSource(args[0])
			if err != nil {
				return err
			}

			chunks, err := indexer.ChunkText(content, size, overlap)
			if err != nil {
				return err
			}

			rows := make([]chunkRow, len(chunks))
			for i, c := range chunks {
				rows[i] = chunkRow{Position: i, Offset: c.SourceOffset, Runes: utf8.RuneCountInString(c.Text), Text: c.Text}
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tOFFSET\tRUNES\tPREVIEW")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", r.Position, r.Offset, r.Runes, preview(r.Text))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d chunks (size %d, overlap %d)\n", len(rows), size, overlap)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 800, "Chunk size in characters")
	cmd.Flags().IntVar(&overlap, "overlap", 100, "Overlap between consecutive chunks in characters")
	return cmd
}

// preview returns the first runes of text on one line.
func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes]) + "…"
}
