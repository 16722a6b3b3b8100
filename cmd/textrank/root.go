package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/az-ai-labs/textrank/internal/config"
)

// app carries state shared by all subcommands. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logFile    string

	cfg *config.File
	log *zap.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "textrank",
		Short: "Unsupervised keyword and key-phrase extraction",
		Long: `textrank ranks the words of a document with the TextRank algorithm and
collapses adjacent top-ranked words into key phrases.

Commands that take a [file] argument read standard input when it is omitted
or "-".

Configuration is read from --config, then TEXTRANK_* environment variables
(a .env file is honored), then command-line flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFile, "log-file", "", "write logs to this file, rotated")

	root.AddCommand(
		newRankCmd(a),
		newKeywordsCmd(a),
		newPhrasesCmd(a),
		newGraphCmd(a),
		newEvalCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger. Flags override the file
// and the environment.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}

	log, err := newLogger(cfg.Log, a.stderr)
	if err != nil {
		return err
	}
	cfg.Extraction.Logger = log.Named("textrank")

	a.cfg = cfg
	a.log = log
	return nil
}
