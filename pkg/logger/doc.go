// Package logger builds the module's slog loggers.
//
// New returns a JSON logger writing to stdout. NewWithSentry additionally
// forwards warnings and errors to Sentry, degrading gracefully to stdout
// only when no DSN is configured or initialization fails. NewNope returns a
// discard-everything logger, the default inside library components that
// were not given a logger explicitly.
package logger
