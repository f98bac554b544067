package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordbag/internal/config"
	"wordbag/internal/corpus"
	"wordbag/internal/history"
	"wordbag/internal/logging"
	"wordbag/internal/vocabulary"
)

type pipelineFlags struct {
	output string
	format string
	count  int
}

type buildFlags struct {
	pipelineFlags
	df bool
}

// apply copies command flags onto cfg. Only flags the user set override the
// configuration.
func (f *pipelineFlags) apply(cmd *cobra.Command, cfg *config.Config, outputTarget *string) error {
	if out := strings.TrimSpace(f.output); out != "" {
		expanded, err := config.ExpandPath(out)
		if err != nil {
			return fmt.Errorf("--output: %w", err)
		}
		*outputTarget = expanded
	}
	if cmd.Flags().Changed("format") {
		cfg.Vocabulary.Format = strings.ToLower(strings.TrimSpace(f.format))
	}
	if cmd.Flags().Changed("count") {
		cfg.Input.BookCount = f.count
	}
	return cfg.Validate()
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build [title...]",
		Short: "Build the vocabulary file from book titles",
		Long: `Build reads book titles (one per line on stdin, or as arguments), loads
<books_dir>/<title>.txt for each, and writes the sorted set of distinct
lowercased terms of two or more characters to the vocabulary file.

Any missing book or write failure aborts the run and leaves the previous
vocabulary file untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg, &cfg.Paths.VocabularyFile); err != nil {
				return err
			}
			return ctx.withLogger(cmd, cfg, func(logger *slog.Logger) error {
				return runBuild(cmd, ctx, cfg, args, flags.df, logger)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Vocabulary file to write")
	cmd.Flags().StringVar(&flags.format, "format", "", "Vocabulary file layout (counted or plain)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 0, "Number of titles to read from stdin (0 reads until EOF)")
	cmd.Flags().BoolVar(&flags.df, "df", false, "Print how many books contain each term")
	return cmd
}

func runBuild(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, args []string, showDF bool, logger *slog.Logger) error {
	run := history.NewRun("build", time.Now())
	run.Output = cfg.Paths.VocabularyFile
	runCtx := logging.WithRunID(logging.WithCommand(cmd.Context(), "build"), run.ID)
	logger = logging.WithContext(runCtx, logger)

	titles, err := readTitles(cmd, args, cfg.Input.BookCount)
	if err == nil {
		run.Books = corpus.Strings(titles)
		var terms int
		terms, err = buildAndReport(cmd, cfg, titles, showDF, logger)
		run.TermCount = terms
	}
	run.Finish(time.Now(), err)
	ctx.recordRun(runCtx, cfg, logger, run)
	if err != nil {
		logger.Debug("build failed", logging.Error(err))
		return err
	}
	return nil
}

func buildAndReport(cmd *cobra.Command, cfg *config.Config, titles []corpus.Title, showDF bool, logger *slog.Logger) (int, error) {
	logger.Info("building vocabulary",
		logging.Int("books", len(titles)),
		logging.String("books_dir", cfg.Paths.BooksDir),
		logging.Bool("lowercase", cfg.Vocabulary.Lowercase),
		logging.Bool("normalize_unicode", cfg.Vocabulary.NormalizeUnicode),
	)
	vocab, err := buildVocabulary(cmd.Context(), cfg, titles, logger)
	if err != nil {
		return 0, err
	}
	out := cmd.OutOrStdout()
	if showDF {
		fmt.Fprintln(out, renderDocumentFrequency(vocab))
	}
	fmt.Fprintf(out, "Wrote %d terms from %d books to %s\n", vocab.Len(), len(titles), cfg.Paths.VocabularyFile)
	return vocab.Len(), nil
}

func renderDocumentFrequency(vocab vocabulary.Vocabulary) string {
	n := vocab.Documents()
	terms := vocab.Terms()
	rows := make([][]string, len(terms))
	for i, term := range terms {
		df := vocab.DocumentFrequency(term)
		share := 0.0
		if n > 0 {
			share = float64(df) / float64(n)
		}
		rows[i] = []string{term, fmt.Sprintf("%d/%d", df, n), fmt.Sprintf("%.2f", share)}
	}
	return renderTable(
		[]string{"Term", "Books", "Share"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}
