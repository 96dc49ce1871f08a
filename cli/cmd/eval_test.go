package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/gtcalc/calc"
)

// runEval parses and runs the eval command with output captured.
func runEval(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var cli struct {
		Eval Eval `cmd:""`
	}

	parser, err := kong.New(&cli)
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}

	ktx, err := parser.Parse(append([]string{"eval"}, args...))
	if err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}

	var buf bytes.Buffer

	ktx.Stdout = &buf

	err = cli.Eval.Run(WithContext(context.Background(), ktx))

	return buf.String(), err
}

func TestEvalRun(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		want string
	}{
		{"single argument", []string{"1+2*3"}, "1+2*3 = 7\n"},
		{"split arguments", []string{"1", "+", "2"}, "1 + 2 = 3\n"},
		{"unit suffix", []string{"2k+1"}, "2k+1 = 2001\n"},
		{"function call", []string{"sqrt(16)"}, "sqrt(16) = 4\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runEval(t, tt.args...)
			if err != nil {
				t.Fatalf("Run(): unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalRunError(t *testing.T) {
	out, err := runEval(t, "1+foo")
	if err == nil {
		t.Fatal("Run(): expected error, got nil")
	}

	if out != "" {
		t.Errorf("output = %q, want empty on error", out)
	}

	if !errors.Is(err, calc.ErrUnknownName) {
		t.Errorf("error = %v, want ErrUnknownName", err)
	}

	// The rendered message leads with the expression itself.
	if !strings.HasPrefix(err.Error(), "1+foo: ") {
		t.Errorf("error = %q, want prefix %q", err.Error(), "1+foo: ")
	}
}
