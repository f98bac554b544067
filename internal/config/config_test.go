package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wordbag/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("WORDBAG_BOOKS_DIR", "")
	t.Setenv("WORDBAG_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if cfg.Paths.BooksDir != filepath.Join(wd, "books") {
		t.Fatalf("unexpected books dir: %q", cfg.Paths.BooksDir)
	}
	if cfg.Paths.VocabularyFile != filepath.Join(wd, "vocabulary.csv") {
		t.Fatalf("unexpected vocabulary file: %q", cfg.Paths.VocabularyFile)
	}
	wantState := filepath.Join(tempHome, ".local", "state", "wordbag")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Input.BookCount != 6 {
		t.Fatalf("expected 6 books by default, got %d", cfg.Input.BookCount)
	}
	if cfg.Input.Extension != ".txt" {
		t.Fatalf("unexpected extension: %q", cfg.Input.Extension)
	}
	if cfg.Vocabulary.Format != config.FormatCounted {
		t.Fatalf("unexpected format: %q", cfg.Vocabulary.Format)
	}
	if cfg.Vocabulary.MinTokenLength != 2 || !cfg.Vocabulary.Lowercase {
		t.Fatalf("unexpected tokenizer defaults: %+v", cfg.Vocabulary)
	}
	if cfg.Vocabulary.MinDF != 0 || cfg.Vocabulary.MaxDF != 1 {
		t.Fatalf("unexpected df defaults: min=%v max=%v", cfg.Vocabulary.MinDF, cfg.Vocabulary.MaxDF)
	}
	if got := cfg.BookPath("moby"); got != filepath.Join(wd, "books", "moby.txt") {
		t.Fatalf("unexpected book path: %q", got)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if got := cfg.LockDir(); got != filepath.Join(cfg.Paths.StateDir, "locks") {
		t.Fatalf("unexpected lock dir: %q", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "wordbag.toml")
	t.Setenv("WORDBAG_BOOKS_DIR", "")

	type payload struct {
		Paths struct {
			BooksDir       string `toml:"books_dir"`
			VocabularyFile string `toml:"vocabulary_file"`
		} `toml:"paths"`
		Input struct {
			BookCount int    `toml:"book_count"`
			Extension string `toml:"extension"`
		} `toml:"input"`
		Vocabulary struct {
			Format string `toml:"format"`
		} `toml:"vocabulary"`
	}
	custom := payload{}
	custom.Paths.BooksDir = filepath.Join(tempDir, "library")
	custom.Paths.VocabularyFile = filepath.Join(tempDir, "out", "vocab.csv")
	custom.Input.BookCount = 3
	custom.Input.Extension = "md"
	custom.Vocabulary.Format = "PLAIN"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.BooksDir != custom.Paths.BooksDir {
		t.Fatalf("unexpected books dir: %q", cfg.Paths.BooksDir)
	}
	if cfg.Input.BookCount != 3 {
		t.Fatalf("expected book count 3, got %d", cfg.Input.BookCount)
	}
	if cfg.Input.Extension != ".md" {
		t.Fatalf("expected extension to gain a dot, got %q", cfg.Input.Extension)
	}
	if cfg.Vocabulary.Format != config.FormatPlain {
		t.Fatalf("expected plain format, got %q", cfg.Vocabulary.Format)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected unspecified sections to keep defaults")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wordbag.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\nbook_dir = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to fail")
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "wordbag.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\nbooks_dir = \"/from/file\"\n[logging]\nlevel = \"info\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	envDir := t.TempDir()
	t.Setenv("WORDBAG_BOOKS_DIR", envDir)
	t.Setenv("WORDBAG_LOG_LEVEL", "DEBUG")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.BooksDir != envDir {
		t.Errorf("expected books dir from env, got %q", cfg.Paths.BooksDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "books_dir") {
		t.Fatalf("sample config missing books_dir: %s", contents)
	}

	t.Setenv("WORDBAG_BOOKS_DIR", "")
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to be found")
	}
	if cfg.Input.BookCount != config.Default().Input.BookCount {
		t.Fatalf("sample book count drifted from defaults: %d", cfg.Input.BookCount)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative book count", func(c *config.Config) { c.Input.BookCount = -1 }},
		{"unknown format", func(c *config.Config) { c.Vocabulary.Format = "tsv" }},
		{"min df above one", func(c *config.Config) { c.Vocabulary.MinDF = 1.5 }},
		{"max df negative", func(c *config.Config) { c.Vocabulary.MaxDF = -0.1 }},
		{"min above max", func(c *config.Config) { c.Vocabulary.MinDF, c.Vocabulary.MaxDF = 0.8, 0.2 }},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, config.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestEncodeRoundTrips(t *testing.T) {
	cfg := config.Default()
	cfg.Input.BookCount = 4
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal encoded config: %v", err)
	}
	if decoded.Input.BookCount != 4 {
		t.Fatalf("expected book count 4, got %d", decoded.Input.BookCount)
	}
}
