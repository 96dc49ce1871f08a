// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options:
//
//	logger := log.Make(os.Stdout,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//	logger.Info("started", slog.String("version", pkg.Version))
//
// A package-level default logger writes to stdout and is reconfigured
// with [Config]; the package-level Debug, Info, Warn, and Error functions
// (and their Context variants) use it.
//
// Two output formats are supported, [FormatJSON] (default) and
// [FormatText], each with an optional colorized pretty variant enabled
// by [WithPretty].
package log
