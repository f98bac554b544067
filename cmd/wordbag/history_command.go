package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordbag/internal/history"
)

var errRunNotFound = errors.New("run not found")

type runView struct {
	ID         string   `json:"id"`
	Command    string   `json:"command"`
	StartedAt  string   `json:"started_at"`
	DurationMS int64    `json:"duration_ms"`
	Books      []string `json:"books"`
	TermCount  int      `json:"term_count"`
	Output     string   `json:"output"`
	Status     string   `json:"status"`
	Error      string   `json:"error,omitempty"`
}

func newRunView(run history.Run) runView {
	return runView{
		ID:         run.ID,
		Command:    run.Command,
		StartedAt:  run.StartedAt.UTC().Format(time.RFC3339),
		DurationMS: run.Duration.Milliseconds(),
		Books:      run.Books,
		TermCount:  run.TermCount,
		Output:     run.Output,
		Status:     string(run.Status),
		Error:      run.Error,
	}
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent build and count runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Run history is disabled (history.enabled = false)")
				return nil
			}
			return ctx.withHistory(cmd.Context(), cfg, func(store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if asJSON {
					views := make([]runView, len(runs))
					for i, run := range runs {
						views[i] = newRunView(run)
					}
					return writeJSON(cmd, views)
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(out, renderRuns(runs))
				fmt.Fprintf(out, "History: %s\n", store.Path())
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Show at most this many runs (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.AddCommand(newHistoryShowCommand(ctx))
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run",
		Long: `Show prints every field of a recorded run. The id may be the full run id
or any unique prefix of it, such as the short id printed by wordbag history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withHistory(cmd.Context(), cfg, func(store *history.Store) error {
				run, err := lookupRun(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, newRunView(*run))
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderRun(*run))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// lookupRun resolves id exactly, then as a prefix of the recorded ids.
func lookupRun(ctx context.Context, store *history.Store, id string) (*history.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("run id is empty")
	}
	run, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if run != nil {
		return run, nil
	}

	runs, err := store.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	var match *history.Run
	for i := range runs {
		if !strings.HasPrefix(runs[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("run id %q is ambiguous", id)
		}
		match = &runs[i]
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", errRunNotFound, id)
	}
	return match, nil
}

func renderRun(run history.Run) string {
	rows := [][]string{
		{"ID", run.ID},
		{"Command", run.Command},
		{"Started", run.StartedAt.Local().Format("2006-01-02 15:04:05")},
		{"Duration", formatDuration(run.Duration)},
		{"Books", strings.Join(run.Books, ", ")},
		{"Terms", strconv.Itoa(run.TermCount)},
		{"Output", run.Output},
		{"Status", string(run.Status)},
	}
	if run.Error != "" {
		rows = append(rows, []string{"Error", run.Error})
	}
	return renderTable([]string{"Field", "Value"}, rows, nil)
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withHistory(cmd.Context(), cfg, func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d runs\n", removed)
				return nil
			})
		},
	}
}

func renderRuns(runs []history.Run) string {
	rows := make([][]string, len(runs))
	for i, run := range runs {
		status := string(run.Status)
		if run.Error != "" {
			status += ": " + truncate(run.Error, 40)
		}
		rows[i] = []string{
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Command,
			truncate(strings.Join(run.Books, ", "), 40),
			strconv.Itoa(run.TermCount),
			formatDuration(run.Duration),
			status,
		}
	}
	return renderTable(
		[]string{"ID", "Started", "Command", "Books", "Terms", "Duration", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}
