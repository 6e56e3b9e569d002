package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"personalcolor-ai/internal/tone"
)

type classifyResult struct {
	Text     string       `json:"text"`
	Scores   tone.Scores  `json:"scores"`
	Verdict  tone.Verdict `json:"verdict"`
	TypeName string       `json:"type_name"`
}

func newClassifyCmd(opts *options) *cobra.Command {
	var keywordsPath string

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Run the keyword classifier on text and show per-set hit counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := tone.NewDefaultClassifier()
			if keywordsPath != "" {
				table, err := tone.LoadKeywordTable(keywordsPath)
				if err != nil {
					return err
				}
				classifier = tone.NewClassifier(table)
			}

			text := strings.Join(args, " ")
			scores := classifier.Score(text)
			res := classifyResult{
				Text:     text,
				Scores:   scores,
				Verdict:  scores.Verdict(),
				TypeName: scores.Verdict().TypeName(),
			}

			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), res)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SET\tHITS")
			fmt.Fprintf(tw, "warm\t%d\n", scores.Warm)
			fmt.Fprintf(tw, "cool\t%d\n", scores.Cool)
			fmt.Fprintf(tw, "spring\t%d\n", scores.Spring)
			fmt.Fprintf(tw, "summer\t%d\n", scores.Summer)
			fmt.Fprintf(tw, "autumn\t%d\n", scores.Autumn)
			fmt.Fprintf(tw, "winter\t%d\n", scores.Winter)
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nverdict: %s/%s (%s)\n", res.Verdict.Primary, res.Verdict.Season, res.TypeName)
			return nil
		},
	}
	cmd.Flags().StringVar(&keywordsPath, "keywords", keywordsPathDefault(), "YAML keyword table overriding the built-in one")
	return cmd
}
