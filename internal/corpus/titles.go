package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Title names a book file without its directory or extension.
type Title string

// ReadTitles reads one title per line from r. With count > 0 exactly count
// lines are consumed and a short input fails with ErrInputUnderflow; with
// count == 0 every line up to EOF is a title. Only the line terminator is
// stripped; titles are not otherwise validated.
func ReadTitles(r io.Reader, count int) ([]Title, error) {
	if count < 0 {
		return nil, fmt.Errorf("read titles: negative count %d", count)
	}
	reader := bufio.NewReader(r)
	titles := make([]Title, 0, max(count, 6))
	for count == 0 || len(titles) < count {
		line, err := reader.ReadString('\n')
		if line != "" {
			titles = append(titles, Title(strings.TrimRight(line, "\r\n")))
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		return nil, fmt.Errorf("%w: titles: %w", ErrRead, err)
	}

	switch {
	case count > 0 && len(titles) < count:
		return nil, fmt.Errorf("%w: got %d of %d", ErrInputUnderflow, len(titles), count)
	case len(titles) == 0:
		return nil, fmt.Errorf("%w: input was empty", ErrInputUnderflow)
	}
	return titles, nil
}

// TitlesFromArgs converts command-line arguments into titles.
func TitlesFromArgs(args []string) []Title {
	titles := make([]Title, len(args))
	for i, arg := range args {
		titles[i] = Title(arg)
	}
	return titles
}

// Strings returns titles as plain strings.
func Strings(titles []Title) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = string(t)
	}
	return out
}
