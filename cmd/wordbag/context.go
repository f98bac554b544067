package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wordbag/internal/config"
	"wordbag/internal/history"
	"wordbag/internal/logging"
)

type globalFlags struct {
	config   string
	booksDir string
	logLevel string
}

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the configuration once and applies the global flag
// overrides on top of file and environment values.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if dir := strings.TrimSpace(c.flags.booksDir); dir != "" {
			expanded, err := config.ExpandPath(dir)
			if err != nil {
				c.configErr = fmt.Errorf("--books-dir: %w", err)
				return
			}
			cfg.Paths.BooksDir = expanded
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// configCopy returns a private copy of the loaded configuration so a
// command can apply its own flag overrides.
func (c *commandContext) configCopy() (*config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	local := *cfg
	return &local, nil
}

// withLogger builds a logger for cfg whose console output goes to the
// command's stderr and closes it once fn returns.
func (c *commandContext) withLogger(cmd *cobra.Command, cfg *config.Config, fn func(*slog.Logger) error) error {
	opts := logging.OptionsFromConfig(cfg)
	opts.Console = cmd.ErrOrStderr()
	if f, ok := opts.Console.(*os.File); ok {
		opts.Color = logging.IsTerminal(f)
	} else {
		opts.Color = false
	}
	logger, err := logging.New(opts)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()
	return fn(logging.NewComponentLogger(logger.Logger, "cli"))
}

// withHistory opens the run ledger, hands it to fn, and closes it.
func (c *commandContext) withHistory(ctx context.Context, cfg *config.Config, fn func(*history.Store) error) error {
	store, err := history.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// recordRun appends run to the ledger when history is enabled. A ledger
// failure is logged and never fails the command.
func (c *commandContext) recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, run history.Run) {
	if !cfg.History.Enabled {
		return
	}
	err := c.withHistory(ctx, cfg, func(store *history.Store) error {
		return store.Record(ctx, run)
	})
	if err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
