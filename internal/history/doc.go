// Package history keeps a SQLite ledger of build and count runs.
//
// Each run records the titles it read, how many terms it produced, where it
// wrote its output, and whether it failed. The ledger is informational; a
// run never reads it back. Schema changes bump schemaVersion in schema.go and
// users clear the database (wordbag history clear, or delete history.db) to
// adopt them.
package history
