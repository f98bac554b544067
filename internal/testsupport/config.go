package testsupport

import (
	"path/filepath"
	"testing"

	"wordbag/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Books live in <base>/books, outputs in <base>/out, and state in
// <base>/state. The log file is disabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BooksDir = filepath.Join(base, "books")
	cfgVal.Paths.VocabularyFile = filepath.Join(base, "out", "vocabulary.csv")
	cfgVal.Paths.BagOfWordsFile = filepath.Join(base, "out", "bagOfWords.csv")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Logging.File = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFormat selects the vocabulary file layout.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Vocabulary.Format = format
	}
}

// WithBookCount sets how many titles are read from stdin.
func WithBookCount(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.BookCount = n
	}
}

// WithoutHistory disables the run ledger.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.BooksDir)
}
