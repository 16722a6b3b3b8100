package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/textrank/evaluate"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		docs      string
		goldPath  string
		windows   []int
		workers   int
		output    string
		documents bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score extracted phrases against a gold keyphrase set",
		Long: `eval runs phrase extraction over every document listed in the gold file
and reports micro-averaged precision, recall and F1 for each window size.

The gold file maps document ids to label lists, as in the Inspec collection:
{"193": [["linear systems"], ["graph theory"]]}. Each id is read from
<docs>/<id>.txt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gold, err := evaluate.LoadGold(goldPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Server.Workers
			}
			if len(windows) == 0 {
				windows = []int{a.cfg.Extraction.Window}
			}

			reports := make([]*evaluate.Report, 0, len(windows))
			for _, w := range windows {
				cfg := a.cfg.Extraction
				cfg.Window = w
				rep, err := evaluate.Run(cmd.Context(), docs, gold, cfg, workers)
				if err != nil {
					return err
				}
				if !documents {
					rep.Documents = nil
				}
				reports = append(reports, rep)
			}

			if output == "json" {
				return writeJSON(a.stdout, reports)
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "WINDOW\tPRECISION\tRECALL\tF1\tMEAN ASSIGNED\tMEAN MATCHES")
			for _, r := range reports {
				fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\n",
					r.Window, r.Precision, r.Recall, r.F1, r.MeanAssigned, r.MeanMatches)
			}
			return tw.Flush()
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&docs, "docs", "", "directory holding <id>.txt documents")
	fs.StringVar(&goldPath, "gold", "", "gold keyphrase JSON file")
	fs.IntSliceVar(&windows, "windows", nil, "window sizes to evaluate (default: configured window)")
	fs.IntVar(&workers, "workers", 4, "documents processed concurrently")
	fs.StringVarP(&output, "output", "o", "text", "output format: text or json")
	fs.BoolVar(&documents, "documents", false, "include per-document results in JSON output")
	_ = cmd.MarkFlagRequired("docs")
	_ = cmd.MarkFlagRequired("gold")
	return cmd
}
