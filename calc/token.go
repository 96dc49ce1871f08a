package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a lexical token.
type Kind int

const (
	// KindNone is the zero value and never produced by the scanner.
	KindNone Kind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindOperator is one of the six binary operator symbols.
	KindOperator
	// KindLeftParen is an open parenthesis.
	KindLeftParen
	// KindRightParen is a close parenthesis.
	KindRightParen
	// KindName is a case-folded function or unit identifier.
	KindName
)

// String returns a short description of the token kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindLeftParen:
		return "left-paren"
	case KindRightParen:
		return "right-paren"
	case KindName:
		return "name"
	default:
		return "none"
	}
}

// Token is one lexical unit of an expression. Tokens are ephemeral,
// produced and consumed in a single evaluation pass.
type Token struct {
	Text  string
	Value float64 // parsed value, set only for KindNumber
	Kind  Kind
}

// String returns the token in "kind:text" form for diagnostics.
func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isOperator(c byte) bool {
	_, ok := operators[c]

	return ok
}

// fold normalizes an identifier for table lookup.
func fold(name string) string { return strings.ToLower(name) }

// skipSpace advances pos past any whitespace. Whitespace delimits tokens
// but is otherwise insignificant, so "1 + 2" equals "1+2" while "sin cos"
// remains two distinct names.
func skipSpace(expr string, pos int) int {
	for pos < len(expr) {
		r, size := utf8.DecodeRuneInString(expr[pos:])
		if !unicode.IsSpace(r) {
			break
		}

		pos += size
	}

	return pos
}

// scan produces the next token of expr starting at pos and returns the
// cursor position following it. Callers skip whitespace with [skipSpace]
// and detect end-of-input by comparing pos to len(expr) before calling.
func scan(expr string, pos int) (Token, int, error) {
	switch c := expr[pos]; {
	case c == '(':
		return Token{Text: "(", Kind: KindLeftParen}, pos + 1, nil

	case c == ')':
		return Token{Text: ")", Kind: KindRightParen}, pos + 1, nil

	case isOperator(c):
		return Token{Text: string(c), Kind: KindOperator}, pos + 1, nil

	case isDigit(c):
		end := pos
		for end < len(expr) && (isDigit(expr[end]) || expr[end] == '.') {
			end++
		}

		text := expr[pos:end]

		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, pos, ErrInvalidNumber.Wrapf("%s", text)
		}

		return Token{Text: text, Value: value, Kind: KindNumber}, end, nil

	case isAlpha(c):
		end := pos
		for end < len(expr) && isAlpha(expr[end]) {
			end++
		}

		name := fold(expr[pos:end])
		if !isKnownName(name) {
			return Token{}, pos, ErrUnknownName.Wrapf("%s", expr[pos:end])
		}

		return Token{Text: name, Kind: KindName}, end, nil

	default:
		r, _ := utf8.DecodeRuneInString(expr[pos:])

		return Token{}, pos, ErrIllegalChar.Wrapf("%q", string(r))
	}
}
