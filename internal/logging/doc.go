// Package logging assembles the slog loggers used by wordbag commands.
//
// Console output goes to stderr (colored when stderr is a terminal) so stdout
// stays free for command results; an optional JSON mirror is appended to the
// log file under the state directory. Context helpers tag records with the
// command name and the run id stored in history.
package logging
