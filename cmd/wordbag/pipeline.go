package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"wordbag/internal/bagofwords"
	"wordbag/internal/config"
	"wordbag/internal/corpus"
	"wordbag/internal/logging"
	"wordbag/internal/outfile"
	"wordbag/internal/tokenize"
	"wordbag/internal/vocabfile"
	"wordbag/internal/vocabulary"
)

func tokenizerFor(cfg *config.Config) tokenize.Tokenizer {
	return tokenize.NewWord(tokenize.Options{
		Lowercase:        cfg.Vocabulary.Lowercase,
		MinLength:        cfg.Vocabulary.MinTokenLength,
		NormalizeUnicode: cfg.Vocabulary.NormalizeUnicode,
	})
}

func loadCorpus(ctx context.Context, cfg *config.Config, titles []corpus.Title, logger *slog.Logger) (corpus.Corpus, error) {
	docs, err := corpus.NewLoader(cfg.BookPath, logger).Load(ctx, titles)
	if err != nil {
		return corpus.Corpus{}, err
	}
	logger.Debug("loaded corpus",
		logging.Any("titles", corpus.Strings(docs.Titles())),
		logging.Int("bytes", docs.Bytes()),
	)
	return docs, nil
}

// buildVocabulary writes the vocabulary of titles to the configured file.
// Nothing is written unless every book loads and the vocabulary is
// non-empty.
func buildVocabulary(ctx context.Context, cfg *config.Config, titles []corpus.Title, logger *slog.Logger) (vocabulary.Vocabulary, error) {
	format, err := vocabfile.ParseFormat(cfg.Vocabulary.Format)
	if err != nil {
		return vocabulary.Vocabulary{}, err
	}
	docs, err := loadCorpus(ctx, cfg, titles, logger)
	if err != nil {
		return vocabulary.Vocabulary{}, err
	}
	builder := vocabulary.NewBuilder(tokenizerFor(cfg), vocabulary.Options{
		MinDF: cfg.Vocabulary.MinDF,
		MaxDF: cfg.Vocabulary.MaxDF,
	}, logger)
	vocab, err := builder.Build(ctx, docs)
	if err != nil {
		return vocabulary.Vocabulary{}, err
	}
	if err := vocabfile.Write(ctx, cfg.Paths.VocabularyFile, vocab.Terms(), format, outfile.WithLockDir(cfg.LockDir())); err != nil {
		return vocabulary.Vocabulary{}, err
	}
	return vocab, nil
}

// countTiming summarizes the counting passes of one count run.
type countTiming struct {
	passes  int
	average time.Duration
}

// countTerms loads the vocabulary file, counts titles repeat times, and
// writes the bag-of-words matrix of the last pass. Only the counting step
// is timed; loading and writing happen once.
func countTerms(ctx context.Context, cfg *config.Config, titles []corpus.Title, repeat int, logger *slog.Logger) (bagofwords.Matrix, countTiming, error) {
	terms, _, err := vocabfile.Read(cfg.Paths.VocabularyFile)
	if err != nil {
		return bagofwords.Matrix{}, countTiming{}, fmt.Errorf("load vocabulary (run wordbag build first): %w", err)
	}
	docs, err := loadCorpus(ctx, cfg, titles, logger)
	if err != nil {
		return bagofwords.Matrix{}, countTiming{}, err
	}
	repeat = max(repeat, 1)
	vocab := vocabulary.FromTerms(terms)
	counter := bagofwords.NewCounter(tokenizerFor(cfg), logger)

	var (
		matrix bagofwords.Matrix
		total  time.Duration
	)
	for pass := range repeat {
		start := time.Now()
		matrix, err = counter.Count(ctx, vocab, docs)
		if err != nil {
			return bagofwords.Matrix{}, countTiming{}, err
		}
		elapsed := time.Since(start)
		total += elapsed
		logger.Debug("counting pass finished",
			logging.Int("pass", pass+1),
			logging.Duration("elapsed", elapsed),
		)
	}
	timing := countTiming{passes: repeat, average: total / time.Duration(repeat)}

	if err := bagofwords.Write(ctx, cfg.Paths.BagOfWordsFile, matrix, outfile.WithLockDir(cfg.LockDir())); err != nil {
		return bagofwords.Matrix{}, countTiming{}, err
	}
	return matrix, timing, nil
}
