package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"wordbag/internal/logging"
)

// Document is the full text of one book.
type Document struct {
	Title Title
	Path  string
	Text  string
}

// Corpus is the ordered set of documents for one run. It is built once by
// Loader.Load and never modified.
type Corpus struct {
	docs []Document
}

// New builds a corpus from already loaded documents.
func New(docs ...Document) Corpus {
	return Corpus{docs: append([]Document(nil), docs...)}
}

// Len returns the number of documents.
func (c Corpus) Len() int { return len(c.docs) }

// Document returns the i-th document in input order.
func (c Corpus) Document(i int) Document { return c.docs[i] }

// Documents returns a copy of the documents in input order.
func (c Corpus) Documents() []Document {
	return append([]Document(nil), c.docs...)
}

// Titles returns the document titles in input order.
func (c Corpus) Titles() []Title {
	titles := make([]Title, len(c.docs))
	for i, d := range c.docs {
		titles[i] = d.Title
	}
	return titles
}

// Bytes returns the total size of all document texts.
func (c Corpus) Bytes() int {
	total := 0
	for _, d := range c.docs {
		total += len(d.Text)
	}
	return total
}

// PathFunc maps a title to the file holding its text.
type PathFunc func(title string) string

// Loader reads book files into a Corpus.
type Loader struct {
	resolve PathFunc
	logger  *slog.Logger
}

// NewLoader returns a Loader that locates books with resolve.
func NewLoader(resolve PathFunc, logger *slog.Logger) *Loader {
	return &Loader{
		resolve: resolve,
		logger:  logging.NewComponentLogger(logger, "corpus"),
	}
}

// Load reads every title in order. The first missing or unreadable book
// aborts the load; no partial corpus is returned.
func (l *Loader) Load(ctx context.Context, titles []Title) (Corpus, error) {
	docs := make([]Document, 0, len(titles))
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return Corpus{}, err
		}
		path := l.resolve(string(title))
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Corpus{}, fmt.Errorf("%w: %q (%s)", ErrBookNotFound, string(title), path)
			}
			return Corpus{}, fmt.Errorf("%w: book %q: %w", ErrRead, string(title), err)
		}
		l.logger.Debug("loaded book",
			logging.String("title", string(title)),
			logging.String("path", path),
			logging.Int("bytes", len(data)),
		)
		docs = append(docs, Document{Title: title, Path: path, Text: string(data)})
	}
	return Corpus{docs: docs}, nil
}
