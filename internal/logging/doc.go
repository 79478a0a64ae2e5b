// Package logging constructs the slog loggers used across vidvault and
// provides typed attribute helpers so call sites stay terse.
//
// Loggers write to stderr by default and additionally to a log file under
// the configured log directory, in either console (text) or JSON format.
// Use NewComponentLogger to tag a logger with the subsystem it serves.
package logging
