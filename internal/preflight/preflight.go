package preflight

import (
	"context"

	"wordbag/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to cfg. When titles are given, each
// title is checked for a matching book file.
func RunAll(ctx context.Context, cfg *config.Config, titles []string) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Books directory", cfg.Paths.BooksDir, Readable),
		CheckOutputTarget("Vocabulary file", cfg.Paths.VocabularyFile),
		CheckOutputTarget("Bag of words file", cfg.Paths.BagOfWordsFile),
	}
	if cfg.History.Enabled || cfg.Logging.File {
		results = append(results, CheckCreatableDirectory("State directory", cfg.Paths.StateDir))
	}

	for _, title := range titles {
		if ctx.Err() != nil {
			break
		}
		results = append(results, CheckBook(title, cfg.BookPath(title)))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
