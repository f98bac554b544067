// Package tokenize turns raw book text into vocabulary terms.
//
// The default Word tokenizer follows the common bag-of-words convention: lower
// case the text, split on anything that is not a letter, number, or
// underscore, and drop tokens shorter than two runes. Callers depend on the
// Tokenizer interface so vocabulary extraction can be tested with any
// splitter.
package tokenize
