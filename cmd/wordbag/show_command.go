package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"wordbag/internal/vocabfile"
)

type vocabularyView struct {
	Path   string   `json:"path"`
	Format string   `json:"format"`
	Count  int      `json:"count"`
	Terms  []string `json:"terms"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		path   string
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the terms of the vocabulary file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := cfg.Paths.VocabularyFile
			if path != "" {
				if target, err = expandFlagPath("--file", path); err != nil {
					return err
				}
			}

			terms, format, err := vocabfile.Read(target)
			if err != nil {
				return err
			}
			total := len(terms)
			if limit > 0 && limit < len(terms) {
				terms = terms[:limit]
			}

			if asJSON {
				return writeJSON(cmd, vocabularyView{Path: target, Format: string(format), Count: total, Terms: terms})
			}

			rows := make([][]string, len(terms))
			for i, term := range terms {
				rows[i] = []string{strconv.Itoa(i + 1), term}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"#", "Term"}, rows, []columnAlignment{alignRight, alignLeft}))
			fmt.Fprintf(out, "%d terms (%s) in %s\n", total, format, target)
			if len(terms) < total {
				fmt.Fprintf(out, "Showing first %d\n", len(terms))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Vocabulary file to read instead of the configured one")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many terms (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
