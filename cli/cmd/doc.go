// Package cmd implements the gtcalc CLI subcommands.
//
// Each command is a struct with kong tags whose Run method receives the
// [context.Context] bound by the CLI entry point. Commands write results
// to stdout and return errors for the entry point to log.
package cmd
