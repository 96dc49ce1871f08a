package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ardnew/gtcalc/calc"
)

// Eval evaluates an expression given as command-line arguments.
//
// Multiple arguments are joined with spaces before evaluation, so shells
// may pass an expression either quoted as one argument or split across
// several.
type Eval struct {
	Expression []string `arg:"" help:"Expression to evaluate" name:"expression"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) error {
	expr := strings.Join(e.Expression, " ")

	result, err := calc.Solve(expr)
	if err != nil {
		// Surface the failure prefixed with the offending expression.
		return NewError(expr).Wrap(err).
			With(slog.String("command", "eval"))
	}

	_, err = fmt.Fprintf(stdout(ctx), "%s = %s\n", expr, result)

	return err
}
