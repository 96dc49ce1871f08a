// Package calc implements an arithmetic expression evaluator for the
// gtcalc command.
//
// Expressions contain decimal numbers, the binary operators + - * / % ^,
// parenthetical grouping, unary math functions (sin, sqrt, log, ...), and
// unit suffixes that scale the value they follow: the metric prefixes
// k m g t p and the GregTech voltage tiers ulv through max, including the
// extended family max<letter> (maxa = max*4, maxb = max*16, ...).
//
// Evaluation is a single left-to-right pass driving the shunting-yard
// algorithm over a value stack and an operator stack. The power operator
// is right-associative; all other binary operators are left-associative.
// Identifiers are case-insensitive; whitespace delimits tokens and is
// otherwise insignificant.
//
// The lookup tables are immutable package data and every call to [Solve]
// or [Evaluate] uses fresh stacks, so the package is safe for unlimited
// concurrent use.
package calc
