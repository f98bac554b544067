package bagofwords

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"wordbag/internal/corpus"
	"wordbag/internal/logging"
	"wordbag/internal/outfile"
	"wordbag/internal/tokenize"
	"wordbag/internal/vocabulary"
)

// Row holds the term counts of one book, in vocabulary order.
type Row struct {
	Title  corpus.Title
	Counts []int
}

// Total returns the number of vocabulary tokens counted in the row.
func (r Row) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Matrix is the book-by-term count table.
type Matrix struct {
	Terms []string
	Rows  []Row
}

// Counter tokenizes books and tallies vocabulary terms.
type Counter struct {
	tokenizer tokenize.Tokenizer
	logger    *slog.Logger
}

// NewCounter returns a Counter using tokenizer, which should match the one
// the vocabulary was built with.
func NewCounter(tokenizer tokenize.Tokenizer, logger *slog.Logger) *Counter {
	return &Counter{
		tokenizer: tokenizer,
		logger:    logging.NewComponentLogger(logger, "bagofwords"),
	}
}

// Count builds one row per document. Tokens outside vocab are ignored.
func (c *Counter) Count(ctx context.Context, vocab vocabulary.Vocabulary, docs corpus.Corpus) (Matrix, error) {
	start := time.Now()
	m := Matrix{Terms: vocab.Terms(), Rows: make([]Row, 0, docs.Len())}
	for i := range docs.Len() {
		if err := ctx.Err(); err != nil {
			return Matrix{}, err
		}
		doc := docs.Document(i)
		counts := make([]int, vocab.Len())
		skipped := 0
		for _, token := range c.tokenizer.Tokenize(doc.Text) {
			col, ok := vocab.Index(token)
			if !ok {
				skipped++
				continue
			}
			counts[col]++
		}
		row := Row{Title: doc.Title, Counts: counts}
		c.logger.Debug("counted book",
			logging.String("title", string(doc.Title)),
			logging.Int("tokens", row.Total()),
			logging.Int("skipped", skipped),
		)
		m.Rows = append(m.Rows, row)
	}
	c.logger.Info("counted terms",
		logging.Int("books", len(m.Rows)),
		logging.Int("terms", len(m.Terms)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return m, nil
}

// EncodeCSV renders m with a "book" header column followed by the terms.
func EncodeCSV(m Matrix) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(m.Terms)+1)
	header = append(header, "book")
	header = append(header, m.Terms...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}

	record := make([]string, len(m.Terms)+1)
	for _, row := range m.Rows {
		if len(row.Counts) != len(m.Terms) {
			return nil, fmt.Errorf("row %q has %d counts for %d terms", row.Title, len(row.Counts), len(m.Terms))
		}
		record[0] = string(row.Title)
		for i, n := range row.Counts {
			record[i+1] = strconv.Itoa(n)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("encode row %q: %w", row.Title, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode matrix: %w", err)
	}
	return buf.Bytes(), nil
}

// Write replaces path with the CSV encoding of m.
func Write(ctx context.Context, path string, m Matrix, opts ...outfile.Option) error {
	data, err := EncodeCSV(m)
	if err != nil {
		return err
	}
	return outfile.Write(ctx, path, data, 0o644, opts...)
}
