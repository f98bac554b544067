package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInput()
	c.normalizeVocabulary()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv("WORDBAG_BOOKS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.BooksDir = strings.TrimSpace(value)
	}
	if value, ok := os.LookupEnv("WORDBAG_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.TrimSpace(value)
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.BooksDir) == "" {
		c.Paths.BooksDir = "."
	}
	if c.Paths.BooksDir, err = expandPath(c.Paths.BooksDir); err != nil {
		return fmt.Errorf("paths.books_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.VocabularyFile) == "" {
		c.Paths.VocabularyFile = defaultVocabularyFile
	}
	if c.Paths.VocabularyFile, err = expandPath(c.Paths.VocabularyFile); err != nil {
		return fmt.Errorf("paths.vocabulary_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.BagOfWordsFile) == "" {
		c.Paths.BagOfWordsFile = defaultBagOfWordsFile
	}
	if c.Paths.BagOfWordsFile, err = expandPath(c.Paths.BagOfWordsFile); err != nil {
		return fmt.Errorf("paths.bag_of_words_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeInput() {
	ext := strings.TrimSpace(c.Input.Extension)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Input.Extension = ext
}

func (c *Config) normalizeVocabulary() {
	c.Vocabulary.Format = strings.ToLower(strings.TrimSpace(c.Vocabulary.Format))
	if c.Vocabulary.Format == "" {
		c.Vocabulary.Format = defaultFormat
	}
	if c.Vocabulary.MinTokenLength <= 0 {
		c.Vocabulary.MinTokenLength = defaultMinTokenLength
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
