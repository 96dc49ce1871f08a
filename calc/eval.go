package calc

import (
	"math"
)

// zeroEpsilon is the tolerance used both to reject division and modulo by
// (near-)zero divisors and to snap near-integer results to exact integers
// when formatting. The value is fixed for compatibility with expected
// outputs.
const zeroEpsilon = 1e-10

// remainder computes the floating-point remainder of a divided by b with
// the sign following the divisor.
func remainder(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}

// apply pops the pending operation from the top of the operator stack and
// resolves it against the value stack, returning both updated stacks.
//
// An open parenthesis reaching this stage is re-pushed as a no-op; the
// driving loop never applies one deliberately.
func apply(nums []float64, ops []Token) ([]float64, []Token, error) {
	op := ops[len(ops)-1]
	ops = ops[:len(ops)-1]

	switch op.Kind {
	case KindOperator:
		if len(nums) < 2 {
			return nums, ops, ErrMissingOperands.Msgf(op.Text)
		}

		// Top of stack is the right-hand operand.
		b, a := nums[len(nums)-1], nums[len(nums)-2]
		nums = nums[:len(nums)-2]

		var value float64

		switch op.Text {
		case "+":
			value = a + b

		case "-":
			value = a - b

		case "*":
			value = a * b

		case "/":
			if math.Abs(b) <= zeroEpsilon {
				return nums, ops, ErrDivideByZero
			}

			value = a / b

		case "%":
			if math.Abs(b) <= zeroEpsilon {
				return nums, ops, ErrModuloByZero
			}

			value = remainder(a, b)

		case "^":
			value = math.Pow(a, b)

		default:
			return nums, ops, ErrInvalidOperation.Wrapf("%s", op.Text)
		}

		return append(nums, value), ops, nil

	case KindName:
		if len(nums) == 0 {
			return nums, ops, ErrMissingOperands.Msgf(op.Text)
		}

		if fn, ok := functions[op.Text]; ok {
			nums[len(nums)-1] = fn(nums[len(nums)-1])

			return nums, ops, nil
		}

		if scale, ok := unitScale(op.Text); ok {
			nums[len(nums)-1] *= scale

			return nums, ops, nil
		}

		return nums, ops, ErrInvalidOperation.Wrapf("%s", op.Text)

	case KindLeftParen:
		return nums, append(ops, op), nil

	default:
		return nums, ops, ErrInvalidOperation.Wrapf("%s", op.Text)
	}
}

// Evaluate parses and reduces an infix expression to a single numeric
// value using the shunting-yard algorithm over a value stack and an
// operator stack. Both stacks are created fresh per call; Evaluate is a
// pure function of its input and safe for concurrent use.
func Evaluate(expr string) (float64, error) {
	var (
		nums []float64
		ops  []Token
	)

	for pos := skipSpace(expr, 0); pos < len(expr); pos = skipSpace(expr, pos) {
		tok, next, err := scan(expr, pos)
		if err != nil {
			return 0, err
		}

		pos = next

		switch tok.Kind {
		case KindNumber:
			nums = append(nums, tok.Value)

		case KindLeftParen:
			ops = append(ops, tok)

		case KindRightParen:
			// Drain pending operations back to the matching open
			// parenthesis, then discard it.
			for len(ops) > 0 && ops[len(ops)-1].Kind != KindLeftParen {
				nums, ops, err = apply(nums, ops)
				if err != nil {
					return 0, err
				}
			}

			if len(ops) == 0 {
				return 0, ErrMismatchedParens
			}

			ops = ops[:len(ops)-1]

		case KindOperator:
			// Flush pending operations of higher precedence, or equal
			// precedence unless the incoming operator is the
			// right-associative power operator.
			rank := priority(tok)

			for len(ops) > 0 {
				top := priority(ops[len(ops)-1])
				if rank >= top && (rank != top || tok.Text == "^") {
					break
				}

				nums, ops, err = apply(nums, ops)
				if err != nil {
					return 0, err
				}
			}

			ops = append(ops, tok)

		case KindName:
			// Functions and units bind their immediate left-hand
			// operand at application time; pushing without a flush
			// keeps chained prefixes like sin cos (0) working.
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		if ops[len(ops)-1].Kind == KindLeftParen {
			return 0, ErrMismatchedParens
		}

		var err error

		nums, ops, err = apply(nums, ops)
		if err != nil {
			return 0, err
		}
	}

	switch len(nums) {
	case 0:
		return 0, ErrEmptyExpression

	case 1:
		return nums[0], nil

	default:
		return 0, ErrExtraNumbers
	}
}

// Solve evaluates an expression and formats the result for display.
// All parse and evaluation failures are surfaced as *[Error] values;
// Solve never panics on malformed input.
func Solve(expr string) (string, error) {
	value, err := Evaluate(expr)
	if err != nil {
		return "", err
	}

	return FormatResult(value), nil
}
