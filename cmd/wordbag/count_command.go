package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"wordbag/internal/bagofwords"
	"wordbag/internal/config"
	"wordbag/internal/corpus"
	"wordbag/internal/history"
	"wordbag/internal/logging"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	flags := &countFlags{}
	var report similarityFlags

	cmd := &cobra.Command{
		Use:   "count [title...]",
		Short: "Count vocabulary terms per book into the bag-of-words matrix",
		Long: `Count reads the vocabulary file written by build, loads the given books,
and writes one row of term counts per book to the bag-of-words CSV file.
Tokens that are not in the vocabulary are ignored.

--repeat runs the counting step several times and reports the average
time per pass; the matrix is written once.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.repeat < 1 {
				return fmt.Errorf("--repeat must be at least 1, got %d", flags.repeat)
			}
			cfg, err := ctx.configCopy()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg, &cfg.Paths.BagOfWordsFile); err != nil {
				return err
			}
			return ctx.withLogger(cmd, cfg, func(logger *slog.Logger) error {
				return runCount(cmd, ctx, cfg, args, flags.repeat, report, logger)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Bag-of-words CSV file to write")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 0, "Number of titles to read from stdin (0 reads until EOF)")
	cmd.Flags().IntVar(&flags.repeat, "repeat", 1, "Run the counting step this many times and report the average time")
	cmd.Flags().BoolVar(&report.enabled, "similarity", false, "Print pairwise cosine similarity between books")
	cmd.Flags().BoolVar(&report.tfidf, "tfidf", false, "Weight counts by inverse document frequency before comparing")
	return cmd
}

type similarityFlags struct {
	enabled bool
	tfidf   bool
}

type countFlags struct {
	pipelineFlags
	repeat int
}

func runCount(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, args []string, repeat int, report similarityFlags, logger *slog.Logger) error {
	start := time.Now()
	run := history.NewRun("count", start)
	run.Output = cfg.Paths.BagOfWordsFile
	runCtx := logging.WithRunID(logging.WithCommand(cmd.Context(), "count"), run.ID)
	logger = logging.WithContext(runCtx, logger)

	titles, err := readTitles(cmd, args, cfg.Input.BookCount)
	if err == nil {
		run.Books = corpus.Strings(titles)
		var terms int
		terms, err = countAndReport(cmd, cfg, titles, start, repeat, report, logger)
		run.TermCount = terms
	}
	run.Finish(time.Now(), err)
	ctx.recordRun(runCtx, cfg, logger, run)
	if err != nil {
		logger.Debug("count failed", logging.Error(err))
		return err
	}
	return nil
}

func countAndReport(cmd *cobra.Command, cfg *config.Config, titles []corpus.Title, start time.Time, repeat int, report similarityFlags, logger *slog.Logger) (int, error) {
	matrix, timing, err := countTerms(cmd.Context(), cfg, titles, repeat, logger)
	if err != nil {
		return 0, err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d books x %d terms to %s in %.3fs\n",
		len(matrix.Rows), len(matrix.Terms), cfg.Paths.BagOfWordsFile, time.Since(start).Seconds())
	if timing.passes > 1 {
		fmt.Fprintf(out, "Counting took %.6fs on average over %d passes\n", timing.average.Seconds(), timing.passes)
	}
	if report.enabled || report.tfidf {
		weighting := bagofwords.RawCounts
		if report.tfidf {
			weighting = bagofwords.TFIDF
		}
		fmt.Fprintln(out, renderSimilarity(matrix, bagofwords.Similarity(matrix, weighting)))
	}
	return len(matrix.Terms), nil
}

func renderSimilarity(matrix bagofwords.Matrix, sim [][]float64) string {
	headers := make([]string, 0, len(matrix.Rows)+1)
	headers = append(headers, "Book")
	aligns := []columnAlignment{alignLeft}
	for _, row := range matrix.Rows {
		headers = append(headers, string(row.Title))
		aligns = append(aligns, alignRight)
	}
	rows := make([][]string, len(matrix.Rows))
	for i, row := range matrix.Rows {
		cells := make([]string, 0, len(sim[i])+1)
		cells = append(cells, string(row.Title))
		for _, v := range sim[i] {
			cells = append(cells, fmt.Sprintf("%.3f", v))
		}
		rows[i] = cells
	}
	return renderTable(headers, rows, aligns)
}
