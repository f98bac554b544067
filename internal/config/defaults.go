package config

const (
	defaultConfigPath     = "~/.config/wordbag/config.toml"
	projectConfigName     = "wordbag.toml"
	defaultBooksDir       = "books"
	defaultVocabularyFile = "vocabulary.csv"
	defaultBagOfWordsFile = "bagOfWords.csv"
	defaultBookCount      = 6
	defaultExtension      = ".txt"
	defaultFormat         = FormatCounted
	defaultMinTokenLength = 2
	defaultMinDF          = 0.0
	defaultMaxDF          = 1.0
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"

	// FormatCounted writes the term count followed by ", " separated terms.
	FormatCounted = "counted"
	// FormatPlain writes a single line of "," separated terms.
	FormatPlain = "plain"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			BooksDir:       defaultBooksDir,
			VocabularyFile: defaultVocabularyFile,
			BagOfWordsFile: defaultBagOfWordsFile,
			StateDir:       defaultStateDir(),
		},
		Input: Input{
			BookCount: defaultBookCount,
			Extension: defaultExtension,
		},
		Vocabulary: Vocabulary{
			Format:         defaultFormat,
			Lowercase:      true,
			MinTokenLength: defaultMinTokenLength,
			MinDF:          defaultMinDF,
			MaxDF:          defaultMaxDF,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			File:   true,
		},
	}
}
