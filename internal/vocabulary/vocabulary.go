package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"wordbag/internal/corpus"
	"wordbag/internal/logging"
	"wordbag/internal/tokenize"
)

var (
	// ErrEmptyVocabulary reports a corpus that produced no terms, either
	// because it held no tokens or because every term was pruned.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	// ErrThresholds reports document frequency limits that exclude everything.
	ErrThresholds = errors.New("invalid document frequency limits")
)

// Vocabulary is the sorted, duplicate-free list of corpus terms.
type Vocabulary struct {
	terms     []string
	index     map[string]int
	docFreq   map[string]int
	documents int
}

// FromTerms builds a vocabulary from an existing term list, such as one read
// back from vocabulary.csv. Terms are sorted and deduplicated.
func FromTerms(terms []string) Vocabulary {
	sorted := slices.Clone(terms)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return newVocabulary(sorted, nil, 0)
}

func newVocabulary(sorted []string, docFreq map[string]int, documents int) Vocabulary {
	index := make(map[string]int, len(sorted))
	for i, term := range sorted {
		index[term] = i
	}
	return Vocabulary{terms: sorted, index: index, docFreq: docFreq, documents: documents}
}

// Len returns the number of terms.
func (v Vocabulary) Len() int { return len(v.terms) }

// Terms returns a copy of the terms in ascending order.
func (v Vocabulary) Terms() []string { return slices.Clone(v.terms) }

// Index returns the column of term, if present.
func (v Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Contains reports whether term is in the vocabulary.
func (v Vocabulary) Contains(term string) bool {
	_, ok := v.index[term]
	return ok
}

// DocumentFrequency returns how many documents contained term. It is zero
// for vocabularies built with FromTerms.
func (v Vocabulary) DocumentFrequency(term string) int { return v.docFreq[term] }

// Documents returns the corpus size the vocabulary was built from.
func (v Vocabulary) Documents() int { return v.documents }

// Options configures document frequency pruning. Limits are fractions of
// the number of documents; a term is kept when
// MinDF*N <= df(term) <= MaxDF*N.
type Options struct {
	MinDF float64
	MaxDF float64
}

// DefaultOptions keeps every term that appears in at least one document.
func DefaultOptions() Options {
	return Options{MinDF: 0, MaxDF: 1}
}

// Builder extracts vocabularies from a corpus.
type Builder struct {
	tokenizer tokenize.Tokenizer
	opts      Options
	logger    *slog.Logger
}

// NewBuilder returns a Builder using tokenizer for term extraction.
func NewBuilder(tokenizer tokenize.Tokenizer, opts Options, logger *slog.Logger) *Builder {
	return &Builder{
		tokenizer: tokenizer,
		opts:      opts,
		logger:    logging.NewComponentLogger(logger, "vocabulary"),
	}
}

// Build computes the set union of distinct terms across c, prunes by
// document frequency, and returns the terms in ascending byte order.
func (b *Builder) Build(ctx context.Context, c corpus.Corpus) (Vocabulary, error) {
	start := time.Now()
	n := c.Len()
	minCount := b.opts.MinDF * float64(n)
	maxCount := b.opts.MaxDF * float64(n)
	if maxCount < minCount {
		return Vocabulary{}, fmt.Errorf("%w: max_df %.3g is below min_df %.3g", ErrThresholds, b.opts.MaxDF, b.opts.MinDF)
	}

	docFreq := make(map[string]int)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return Vocabulary{}, err
		}
		doc := c.Document(i)
		seen := tokenize.Set(b.tokenizer, doc.Text)
		for term := range seen {
			docFreq[term]++
		}
		b.logger.Debug("tokenized book",
			logging.String("title", string(doc.Title)),
			logging.Int("distinct_terms", len(seen)),
		)
	}
	if len(docFreq) == 0 {
		return Vocabulary{}, fmt.Errorf("%w: the books contain no terms", ErrEmptyVocabulary)
	}

	terms := make([]string, 0, len(docFreq))
	pruned := 0
	for term, df := range docFreq {
		if float64(df) < minCount || float64(df) > maxCount {
			delete(docFreq, term)
			pruned++
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return Vocabulary{}, fmt.Errorf("%w: all %d terms were pruned by min_df/max_df", ErrEmptyVocabulary, pruned)
	}
	slices.Sort(terms)

	b.logger.Info("built vocabulary",
		logging.Int("books", n),
		logging.Int("terms", len(terms)),
		logging.Int("pruned", pruned),
		logging.Duration("elapsed", time.Since(start)),
	)
	return newVocabulary(terms, docFreq, n), nil
}
