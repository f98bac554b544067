// Package corpus reads book titles and loads the matching text files.
package corpus
