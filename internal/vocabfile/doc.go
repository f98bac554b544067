// Package vocabfile reads and writes vocabulary.csv.
//
// Two layouts exist in the wild. Counted:
//
//	3
//	apple, banana, cherry
//
// and Plain:
//
//	apple,banana,cherry
//
// Writers pick one through configuration; Read accepts both.
package vocabfile
