package repl

import (
	"slices"
	"testing"
)

func TestCandidates(t *testing.T) {
	list := candidates()

	for _, want := range []string{"sin", "sqrt", "k", "max", "help", "quit"} {
		if !slices.Contains(list, want) {
			t.Errorf("candidates() missing %q", want)
		}
	}
}

func TestWordBounds(t *testing.T) {
	for _, tt := range []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"empty input", "", 0, "", 0, 0},
		{"bare word", "sin", 3, "sin", 0, 3},
		{"cursor mid-word", "sqrt", 2, "sqrt", 0, 4},
		{"word after operator", "1+si", 4, "si", 2, 4},
		{"word after paren", "sin(co", 6, "co", 4, 6},
		{"cursor on digit", "2k+3", 1, "k", 1, 2},
		{"cursor after operator", "1+", 2, "", 2, 2},
		{"unit after number", "2max", 4, "max", 1, 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf(
					"wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor,
					word, start, end,
					tt.word, tt.start, tt.end,
				)
			}
		})
	}
}

func TestWordBoundsCursorPastEnd(t *testing.T) {
	word, start, end := wordBounds("sin", 10)

	if word != "sin" || start != 0 || end != 3 {
		t.Errorf(
			"wordBounds(%q, 10) = (%q, %d, %d), want (%q, 0, 3)",
			"sin", word, start, end, "sin",
		)
	}
}

func TestMatch(t *testing.T) {
	pool := candidates()

	t.Run("prefix ranks first", func(t *testing.T) {
		matches, _, _ := match("1+sq", 4, pool)
		if len(matches) == 0 {
			t.Fatal("match() returned no candidates for \"sq\"")
		}

		if matches[0].Str != "sqrt" {
			t.Errorf("best match = %q, want %q", matches[0].Str, "sqrt")
		}
	})

	t.Run("case folded", func(t *testing.T) {
		matches, _, _ := match("SQRT", 4, pool)
		if len(matches) == 0 {
			t.Fatal("match() returned no candidates for \"SQRT\"")
		}

		if matches[0].Str != "sqrt" {
			t.Errorf("best match = %q, want %q", matches[0].Str, "sqrt")
		}
	})

	t.Run("empty word yields none", func(t *testing.T) {
		matches, _, _ := match("1+", 2, pool)
		if len(matches) != 0 {
			t.Errorf("match() returned %d candidates, want 0", len(matches))
		}
	})
}

func TestIsWordBoundary(t *testing.T) {
	for _, r := range []rune{' ', '\t', '(', ')', '.', '+', '-', '*', '/', '%', '^', '0', '9'} {
		if !isWordBoundary(r) {
			t.Errorf("isWordBoundary(%q) = false, want true", r)
		}
	}

	for _, r := range []rune{'a', 'z', 'X', '_'} {
		if isWordBoundary(r) {
			t.Errorf("isWordBoundary(%q) = true, want false", r)
		}
	}
}
