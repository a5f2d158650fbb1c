// Package logging constructs the slog loggers used across tunecard.
//
// Two formats are supported: a compact console handler for interactive runs
// and a JSON handler for captured output. Interactive prompts and tables own
// stdout, so loggers default to stderr. Component loggers attach a stable
// component attribute so resolver, feed, and review output can be told apart.
package logging
