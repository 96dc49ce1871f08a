// Package cli contains the command line interface for gtcalc.
//
// # Usage
//
// The default command evaluates its arguments as one expression:
//
//	gtcalc '2 + 3 * 4'
//	gtcalc '2k + 3lv'
//
// Subcommands:
//
//	gtcalc tables          # print supported functions and unit suffixes
//	gtcalc repl            # start an interactive session
//
// # Configuration
//
// Flags can be persisted in a configuration file read at startup, either
// <configdir>/config.json (standard Kong JSON loader) or
// <configdir>/config.yaml, where flag names use underscores:
//
//	log_level: debug
//	log_format: text
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o gtcalc .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
