package cmd

import (
	"context"

	"github.com/ardnew/gtcalc/cli/cmd/repl"
)

// Repl starts an interactive read-eval-print session.
type Repl struct {
	History string `help:"History file path (defaults to the cache directory)"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	return repl.Run(ctx, r.History)
}
