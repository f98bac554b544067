package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input and output locations.
type Paths struct {
	BooksDir       string `toml:"books_dir"`
	VocabularyFile string `toml:"vocabulary_file"`
	BagOfWordsFile string `toml:"bag_of_words_file"`
	StateDir       string `toml:"state_dir"`
}

// Input controls how book titles are read and resolved to files.
type Input struct {
	// BookCount is the number of titles read from stdin. Zero reads until EOF.
	BookCount int    `toml:"book_count"`
	Extension string `toml:"extension"`
}

// Vocabulary contains tokenizer and vocabulary extraction settings.
type Vocabulary struct {
	// Format selects the vocabulary.csv layout: "counted" writes the term
	// count on the first line and ", " separated terms on the second, "plain"
	// writes a single "," separated line.
	Format           string  `toml:"format"`
	Lowercase        bool    `toml:"lowercase"`
	MinTokenLength   int     `toml:"min_token_length"`
	NormalizeUnicode bool    `toml:"normalize_unicode"`
	MinDF            float64 `toml:"min_df"`
	MaxDF            float64 `toml:"max_df"`
}

// History contains configuration for the run ledger.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File enables the append-only log file under paths.state_dir.
	File bool `toml:"file"`
}

// Config encapsulates all configuration values for wordbag.
//
// Configuration sections:
//   - Paths: books directory, output files, and state directory
//   - Input: title count and book file extension
//   - Vocabulary: tokenizer rules, document frequency limits, output format
//   - History: SQLite run ledger
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Input      Input      `toml:"input"`
	Vocabulary Vocabulary `toml:"vocabulary"`
	History    History    `toml:"history"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the state directory and the parents of the
// output files. The books directory is never created; a missing books
// directory surfaces as a missing book.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Paths.VocabularyFile),
		filepath.Dir(c.Paths.BagOfWordsFile),
	}
	if c.History.Enabled || c.Logging.File {
		dirs = append(dirs, c.Paths.StateDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// BookPath returns the file that holds the text of the given title.
func (c *Config) BookPath(title string) string {
	return filepath.Join(c.Paths.BooksDir, title+c.Input.Extension)
}

// HistoryPath returns the SQLite database used for the run ledger.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.StateDir, "history.db")
}

// LockDir returns the directory holding the advisory locks that guard
// output file writes.
func (c *Config) LockDir() string {
	return filepath.Join(c.Paths.StateDir, "locks")
}

// LogPath returns the append-only log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.StateDir, "wordbag.log")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultStateDir() string {
	if base, ok := os.LookupEnv("XDG_STATE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "wordbag")
	}
	return "~/.local/state/wordbag"
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
