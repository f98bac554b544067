package config

import (
	"errors"
	"fmt"
)

// ErrInvalid marks configuration values that fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateVocabulary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateInput() error {
	if c.Input.BookCount < 0 {
		return fmt.Errorf("%w: input.book_count must be >= 0 (0 reads titles until EOF)", ErrInvalid)
	}
	return nil
}

func (c *Config) validateVocabulary() error {
	switch c.Vocabulary.Format {
	case FormatCounted, FormatPlain:
	default:
		return fmt.Errorf("%w: vocabulary.format must be %q or %q, got %q", ErrInvalid, FormatCounted, FormatPlain, c.Vocabulary.Format)
	}
	if c.Vocabulary.MinDF < 0 || c.Vocabulary.MinDF > 1 {
		return fmt.Errorf("%w: vocabulary.min_df must be between 0 and 1", ErrInvalid)
	}
	if c.Vocabulary.MaxDF < 0 || c.Vocabulary.MaxDF > 1 {
		return fmt.Errorf("%w: vocabulary.max_df must be between 0 and 1", ErrInvalid)
	}
	if c.Vocabulary.MinDF > c.Vocabulary.MaxDF {
		return fmt.Errorf("%w: vocabulary.min_df must not exceed vocabulary.max_df", ErrInvalid)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn, or error, got %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
