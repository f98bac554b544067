// Package config loads, normalizes, and validates wordbag configuration.
//
// Configuration lives in TOML. Load checks an explicit path first, then
// ~/.config/wordbag/config.toml, then ./wordbag.toml, and falls back to
// repository defaults when none exist. Paths are expanded to absolute form so
// the rest of the code never depends on the working directory after startup.
//
// Environment overrides (WORDBAG_BOOKS_DIR, WORDBAG_LOG_LEVEL) are applied
// before normalization; validation errors wrap ErrInvalid.
package config
