package corpus

import "errors"

var (
	// ErrInputUnderflow reports that fewer titles were supplied than required.
	ErrInputUnderflow = errors.New("not enough book titles")
	// ErrBookNotFound reports a title whose book file does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrRead reports any other failure reading titles or book files.
	ErrRead = errors.New("read failure")
)
