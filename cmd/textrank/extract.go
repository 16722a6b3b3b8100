package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/textrank/textrank"
)

// extractFlags are the extraction overrides shared by rank, keywords,
// phrases and graph. Only flags set on the command line are applied.
type extractFlags struct {
	top       int
	window    int
	pos       []string
	damping   float64
	weighting string
	minWords  int
	output    string
}

func (f *extractFlags) register(cmd *cobra.Command, withTop bool) {
	fs := cmd.Flags()
	if withTop {
		fs.IntVarP(&f.top, "top", "n", 0, "number of results; 0 selects a third of the vertices")
	}
	fs.IntVarP(&f.window, "window", "w", textrank.DefaultWindow, "co-occurrence window in tokens")
	fs.StringSliceVar(&f.pos, "pos", textrank.DefaultPOSTags, "accepted part-of-speech tag prefixes")
	fs.Float64Var(&f.damping, "damping", textrank.DefaultDamping, "damping factor, in (0,1)")
	fs.StringVar(&f.weighting, "weighting", string(textrank.WeightCount), "edge weighting: count or binary")
	fs.IntVar(&f.minWords, "min-words", textrank.DefaultMinPhraseWords, "shortest phrase kept, in words")
}

func (f *extractFlags) apply(cmd *cobra.Command, cfg textrank.Config) textrank.Config {
	fs := cmd.Flags()
	if fs.Changed("window") {
		cfg.Window = f.window
	}
	if fs.Changed("pos") {
		cfg.POSTags = f.pos
	}
	if fs.Changed("damping") {
		cfg.Damping = f.damping
	}
	if fs.Changed("weighting") {
		cfg.Weighting = textrank.Weighting(f.weighting)
	}
	if fs.Changed("min-words") {
		cfg.MinPhraseWords = f.minWords
	}
	return cfg
}

// analyze reads the input named by args and runs the analysis.
func (a *app) analyze(cmd *cobra.Command, args []string, f *extractFlags) (*textrank.Analysis, error) {
	cfg := f.apply(cmd, a.cfg.Extraction)
	text, err := readInput(a.stdin, args, cfg.MaxInputBytes)
	if err != nil {
		return nil, err
	}
	return textrank.Analyze(text, cfg)
}

func newRankCmd(a *app) *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "rank [file]",
		Short: "Rank every candidate word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args, &f)
			if err != nil {
				return err
			}
			if f.output == "json" {
				return writeJSON(a.stdout, an.Ranking)
			}
			return writeKeywords(a.stdout, an.Ranking)
		},
	}
	f.register(cmd, false)
	addOutputFlag(cmd, &f.output)
	return cmd
}

func newKeywordsCmd(a *app) *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "keywords [file]",
		Short: "Print the top keywords",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args, &f)
			if err != nil {
				return err
			}
			kws := an.Keywords(f.top)
			if f.output == "json" {
				return writeJSON(a.stdout, kws)
			}
			return writeKeywords(a.stdout, kws)
		},
	}
	f.register(cmd, true)
	addOutputFlag(cmd, &f.output)
	return cmd
}

func newPhrasesCmd(a *app) *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "phrases [file]",
		Short: "Print the top key phrases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(cmd, args, &f)
			if err != nil {
				return err
			}
			phrases := an.Phrases(f.top)
			if f.output == "json" {
				return writeJSON(a.stdout, phrases)
			}
			for _, p := range phrases {
				if _, err := fmt.Fprintf(a.stdout, "%.6f\t%d\t%s\n", p.Score, p.Occurrences, p.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f.register(cmd, true)
	addOutputFlag(cmd, &f.output)
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var (
		f      extractFlags
		format string
		name   string
	)
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Print the scored co-occurrence graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "dot" {
				return fmt.Errorf("unknown format %q, want json or dot", format)
			}
			an, err := a.analyze(cmd, args, &f)
			if err != nil {
				return err
			}
			x := an.Export()
			if format == "json" {
				return writeJSON(a.stdout, x)
			}
			b, err := x.DOT(name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, string(b))
			return err
		},
	}
	f.register(cmd, false)
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or dot")
	cmd.Flags().StringVar(&name, "name", "textrank", "graph name in DOT output")
	return cmd
}

func addOutputFlag(cmd *cobra.Command, dst *string) {
	cmd.Flags().StringVarP(dst, "output", "o", "text", "output format: text or json")
}

// readInput returns the contents of the file in args, or stdin when args
// is empty or "-". At most limit+1 bytes are read, which is enough for the
// input guard to reject oversized text without buffering all of it.
func readInput(stdin io.Reader, args []string, limit int) (string, error) {
	src, name := stdin, "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(filepath.Clean(args[0]))
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		src, name = f, args[0]
	}
	b, err := io.ReadAll(io.LimitReader(src, int64(max(limit, 0))+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(b), nil
}

func writeKeywords(w io.Writer, kws []textrank.RankedKeyword) error {
	for _, kw := range kws {
		if _, err := fmt.Fprintf(w, "%.6f\t%s\n", kw.Score, kw.Text); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
