package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/gtcalc/calc"
)

// ctrlCommands are the available control commands, entered as a bare word
// on an otherwise empty line.
var ctrlCommands = []string{"help", "funcs", "units", "clear", "quit"}

// candidates returns the completion candidate list: every function name
// and unit suffix, plus the control commands.
func candidates() []string {
	names := calc.FunctionNames()

	units := make([]string, 0, len(calc.UnitTable()))
	for name := range calc.UnitTable() {
		units = append(units, name)
	}

	list := make([]string, 0, len(names)+len(units)+len(ctrlCommands))
	list = append(list, names...)
	list = append(list, units...)
	list = append(list, ctrlCommands...)

	return list
}

// isWordBoundary reports whether the rune delimits identifiers for
// completion purposes: whitespace, parentheses, digits, and the six
// operator symbols.
func isWordBoundary(r rune) bool {
	if unicode.IsSpace(r) || unicode.IsDigit(r) {
		return true
	}

	switch r {
	case '(', ')', '.', '+', '-', '*', '/', '%', '^':
		return true
	}

	return false
}

// wordBounds returns the identifier at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on
// a boundary (after an operator, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// match returns fuzzy completion matches for the identifier at the cursor,
// best match first.
func match(input string, cursor int, pool []string) (fuzzy.Matches, int, int) {
	word, start, end := wordBounds(input, cursor)
	if word == "" {
		return nil, start, end
	}

	return fuzzy.Find(strings.ToLower(word), pool), start, end
}
