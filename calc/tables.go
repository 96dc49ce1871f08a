//nolint:gochecknoglobals
package calc

import (
	"maps"
	"math"
	"slices"
)

// operators maps each binary operator symbol to its precedence class:
// additive (1), multiplicative (2), power (3).
var operators = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
	'%': 2,
	'^': 3,
}

// functions maps each unary function name to its real-to-real transform.
// Names are lowercase; the scanner case-folds identifiers before lookup.
var functions = map[string]func(float64) float64{
	"sin":     math.Sin,
	"cos":     math.Cos,
	"tan":     math.Tan,
	"asin":    math.Asin,
	"acos":    math.Acos,
	"atan":    math.Atan,
	"sinh":    math.Sinh,
	"cosh":    math.Cosh,
	"tanh":    math.Tanh,
	"log":     math.Log,
	"exp":     math.Exp,
	"sqrt":    math.Sqrt,
	"abs":     math.Abs,
	"ceil":    math.Ceil,
	"floor":   math.Floor,
	"round":   math.Round,
	"radians": func(deg float64) float64 { return deg * math.Pi / 180 },
	"degrees": func(rad float64) float64 { return rad * 180 / math.Pi },
}

// units maps each unit suffix name to its multiplicative scale factor.
//
// The metric prefixes k through p are successive powers of 1000. The
// remaining entries are the GregTech voltage tiers, a ladder of powers
// of 4 starting at ulv = 8 and topping out at max = 2^31.
var units = map[string]float64{
	"k": 1e3,
	"m": 1e6,
	"g": 1e9,
	"t": 1e12,
	"p": 1e15,

	"ulv": 8,
	"lv":  32,
	"mv":  128,
	"hv":  512,
	"ev":  2048,
	"iv":  8192,
	"luv": 32768,
	"zpm": 131072,
	"uv":  524288,
	"uhv": 2097152,
	"uev": 8388608,
	"uiv": 33554432,
	"uxv": 134217728,
	"opv": 536870912,
	"max": 2147483648,
}

// maxTier is the literal prefix of the extended voltage-tier family.
// A single trailing letter denotes additional exponent steps beyond max:
// maxa = max*4, maxb = max*16, and so on through maxz.
const maxTier = "max"

// maxTierScale resolves an extended voltage-tier name of the form
// "max" plus exactly one trailing letter a-z.
func maxTierScale(name string) (float64, bool) {
	if len(name) != len(maxTier)+1 || name[:len(maxTier)] != maxTier {
		return 0, false
	}

	step := name[len(maxTier)]
	if step < 'a' || step > 'z' {
		return 0, false
	}

	return units[maxTier] * math.Pow(4, float64(step-'a'+1)), true
}

// unitScale resolves a unit suffix name, including the extended max family,
// to its scale factor.
func unitScale(name string) (float64, bool) {
	if scale, ok := units[name]; ok {
		return scale, true
	}

	return maxTierScale(name)
}

// isKnownName reports whether name resolves to a function, a unit, or an
// extended voltage-tier token.
func isKnownName(name string) bool {
	if _, ok := functions[name]; ok {
		return true
	}

	_, ok := unitScale(name)

	return ok
}

// priority returns the precedence rank used to decide when pending
// operations must be applied before a new token is pushed: 0 for an open
// parenthesis (never triggers a flush), 1-3 for binary operators, 4 for
// function and unit names (bind tighter than any binary operator), and 5
// for anything else (never preempted).
func priority(tok Token) int {
	switch tok.Kind {
	case KindLeftParen:
		return 0

	case KindOperator:
		if rank, ok := operators[tok.Text[0]]; ok {
			return rank
		}

	case KindName:
		if isKnownName(tok.Text) {
			return 4
		}
	}

	return 5
}

// FunctionNames returns the sorted names of all supported unary functions.
func FunctionNames() []string {
	return slices.Sorted(maps.Keys(functions))
}

// UnitTable returns a copy of the unit suffix table, keyed by lowercase
// unit name. The extended max family is not enumerated; resolve its
// members with [UnitScale].
func UnitTable() map[string]float64 {
	return maps.Clone(units)
}

// UnitScale resolves a (case-insensitive) unit suffix name, including the
// extended max family, to its scale factor.
func UnitScale(name string) (float64, bool) {
	return unitScale(fold(name))
}
