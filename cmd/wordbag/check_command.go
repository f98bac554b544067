package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wordbag/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check [title...]",
		Short: "Check that books can be read and outputs can be written",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg, args)

			rows := make([][]string, 0, len(results)+1)
			configDetail := ctx.configPath
			if !ctx.configExists {
				configDetail += " (not found, using defaults)"
			}
			rows = append(rows, []string{"Config file", "ok", configDetail})
			for _, r := range results {
				status := "ok"
				if !r.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{r.Name, status, r.Detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))
			fmt.Fprintf(out, "History enabled: %s\n", yesNo(cfg.History.Enabled))
			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}
