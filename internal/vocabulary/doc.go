// Package vocabulary builds the bag-of-words vocabulary of a corpus.
//
// A Builder tokenizes every document, counts in how many documents each term
// appears, drops terms outside the configured document frequency limits, and
// returns the survivors sorted in ascending byte order. With the default
// limits (0 and 1) nothing is pruned and the result is simply the set union
// of all document terms.
package vocabulary
