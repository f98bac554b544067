// Package main hosts the wordbag CLI entrypoint and command graph.
//
// The Cobra command tree reads book titles, hands them to the corpus,
// vocabulary and bagofwords packages, and writes the results through
// vocabfile. Configuration resolution, logger setup, and the run history
// ledger are wired once in commandContext so subcommands only describe
// their own flags and output.
package main
