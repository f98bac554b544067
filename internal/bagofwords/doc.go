// Package bagofwords counts vocabulary terms per book and writes the
// resulting book-by-term matrix as CSV.
package bagofwords
