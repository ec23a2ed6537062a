// Package logging provides structured logging using Go's standard library
// log/slog. It builds JSON loggers suitable for confroot.Options.Logger and
// for the fxevent wiring in the di package.
package logging
