// Package preflight provides readiness checks for the filesystem paths that
// wordbag reads and writes.
//
// The "wordbag check" command runs RunAll and prints each Result; build and
// count do not call it and instead fail on the first real I/O error.
package preflight
