package tokenize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinLength drops single-character tokens such as "a" or "I".
const DefaultMinLength = 2

// Tokenizer splits a document into terms. Tokens are returned in document
// order and may repeat.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Func adapts a plain function to the Tokenizer interface.
type Func func(text string) []string

// Tokenize calls f(text).
func (f Func) Tokenize(text string) []string { return f(text) }

// Options configures the Word tokenizer.
type Options struct {
	// Lowercase folds the document to lower case before splitting.
	Lowercase bool
	// MinLength is the minimum token length in runes. Values below 1 use
	// DefaultMinLength.
	MinLength int
	// NormalizeUnicode applies NFC composition before anything else so that
	// precomposed and combining spellings produce the same term.
	NormalizeUnicode bool
}

// DefaultOptions lowercases and keeps tokens of two or more runes.
func DefaultOptions() Options {
	return Options{Lowercase: true, MinLength: DefaultMinLength}
}

// Word splits text into maximal runs of word characters: Unicode letters,
// Unicode numbers, and the underscore. It is safe for concurrent use.
type Word struct {
	opts Options
}

// NewWord builds a Word tokenizer.
func NewWord(opts Options) *Word {
	if opts.MinLength < 1 {
		opts.MinLength = DefaultMinLength
	}
	return &Word{opts: opts}
}

// Options returns the effective options.
func (w *Word) Options() Options {
	return w.opts
}

// Tokenize implements Tokenizer.
func (w *Word) Tokenize(text string) []string {
	text = w.prepare(text)

	var tokens []string
	start, runes := -1, 0
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start, runes = i, 0
			}
			runes++
			continue
		}
		if start >= 0 {
			if runes >= w.opts.MinLength {
				tokens = append(tokens, text[start:i])
			}
			start = -1
		}
	}
	if start >= 0 && runes >= w.opts.MinLength {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func (w *Word) prepare(text string) string {
	if w.opts.NormalizeUnicode {
		text = norm.NFC.String(text)
	}
	if w.opts.Lowercase {
		text = cases.Lower(language.Und).String(text)
	}
	return text
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Set returns the distinct tokens of text.
func Set(t Tokenizer, text string) map[string]struct{} {
	tokens := t.Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
