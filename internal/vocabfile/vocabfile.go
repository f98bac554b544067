package vocabfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"wordbag/internal/outfile"
)

// Format names a vocabulary.csv layout.
type Format string

const (
	// Counted writes the number of terms on the first line and the terms,
	// separated by ", ", on the second.
	Counted Format = "counted"
	// Plain writes the terms separated by "," on a single line.
	Plain Format = "plain"
)

var (
	// ErrMalformed reports a vocabulary file that matches neither layout.
	ErrMalformed = errors.New("malformed vocabulary file")
	// ErrWrite reports that vocabulary.csv could not be created or replaced.
	ErrWrite = outfile.ErrWrite
)

// ParseFormat maps a configuration value to a Format.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case Counted, Plain:
		return f, nil
	default:
		return "", fmt.Errorf("unknown vocabulary format %q (want %q or %q)", value, Counted, Plain)
	}
}

// Encode renders terms in the given layout. Neither layout ends with a
// newline.
func Encode(terms []string, format Format) ([]byte, error) {
	var b strings.Builder
	switch format {
	case Counted:
		b.WriteString(strconv.Itoa(len(terms)))
		b.WriteByte('\n')
		b.WriteString(strings.Join(terms, ", "))
	case Plain:
		b.WriteString(strings.Join(terms, ","))
	default:
		return nil, fmt.Errorf("encode vocabulary: unknown format %q", format)
	}
	return []byte(b.String()), nil
}

// Decode parses either layout. A file with two or more lines is read as
// Counted and its count must match the number of terms; a single line is
// read as Plain. Whitespace after separators is ignored.
func Decode(data []byte) ([]string, Format, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	switch len(lines) {
	case 0:
		return nil, "", fmt.Errorf("%w: file is empty", ErrMalformed)
	case 1:
		terms, err := splitTerms(lines[0])
		if err != nil {
			return nil, "", err
		}
		return terms, Plain, nil
	case 2:
		count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil || count < 0 {
			return nil, "", fmt.Errorf("%w: first line %q is not a term count", ErrMalformed, lines[0])
		}
		terms, err := splitTerms(lines[1])
		if err != nil {
			return nil, "", err
		}
		if count != len(terms) {
			return nil, "", fmt.Errorf("%w: header says %d terms, found %d", ErrMalformed, count, len(terms))
		}
		return terms, Counted, nil
	default:
		return nil, "", fmt.Errorf("%w: expected at most 2 lines, found %d", ErrMalformed, len(lines))
	}
}

func splitTerms(line string) ([]string, error) {
	parts := strings.Split(line, ",")
	terms := make([]string, 0, len(parts))
	for i, part := range parts {
		term := strings.TrimSpace(part)
		if term == "" {
			return nil, fmt.Errorf("%w: empty term at position %d", ErrMalformed, i+1)
		}
		terms = append(terms, term)
	}
	return terms, nil
}

// Write replaces path with terms in the given layout.
func Write(ctx context.Context, path string, terms []string, format Format, opts ...outfile.Option) error {
	data, err := Encode(terms, format)
	if err != nil {
		return err
	}
	return outfile.Write(ctx, path, data, 0o644, opts...)
}

// Read loads a vocabulary file written in either layout.
func Read(path string) ([]string, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	terms, format, err := Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return terms, format, nil
}
