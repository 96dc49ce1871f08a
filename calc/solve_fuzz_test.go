package calc

import (
	"testing"
)

func FuzzSolve(f *testing.F) {
	seeds := []string{
		"2+3*4",
		"(2+3)*4",
		"2^3^2",
		"1maxa",
		"sin cos(0)",
		"1/0.0000000001",
		"((((",
		"))))",
		"1.2.3",
		"2k*3lv",
		"",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, expr string) {
		// Solve must never panic and must be a pure function of its input.
		first, err1 := Solve(expr)
		second, err2 := Solve(expr)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("Solve(%q) error mismatch: %v vs %v", expr, err1, err2)
		}

		if first != second {
			t.Fatalf("Solve(%q) not deterministic: %q vs %q", expr, first, second)
		}

		if err1 == nil && first == "" {
			t.Fatalf("Solve(%q) returned empty result without error", expr)
		}
	})
}
