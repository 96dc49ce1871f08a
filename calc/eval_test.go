package calc

import (
	"errors"
	"math"
	"testing"
)

func TestSolve_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"addition", "1+2", "3"},
		{"precedence", "2+3*4", "14"},
		{"grouping", "(2+3)*4", "20"},
		{"subtraction chain", "10-4-3", "3"},
		{"division", "1/0.001", "1000"},
		{"fraction", "1/3", "0.3333333333"},
		{"modulo", "7%3", "1"},
		{"modulo sign follows divisor", "(0-7)%3", "2"},
		{"power", "2^10", "1024"},
		{"power right associative", "2^3^2", "512"},
		{"fractional exponent", "2^0.5", "1.4142135624"},
		{"nested groups", "((1+2)*(3+4))", "21"},
		{"whitespace insensitive", "1 + 2", "3"},
		{"tab and space", "\t2 *\t3 ", "6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.expr)
			if err != nil {
				t.Fatalf("Solve(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Solve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSolve_Units(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"kilo", "2k", "2000"},
		{"mega", "1m", "1000000"},
		{"giga", "3g", "3000000000"},
		{"tera", "1t", "1000000000000"},
		{"peta", "1p", "1000000000000000"},
		{"ulv", "1ulv", "8"},
		{"lv", "1lv", "32"},
		{"mv", "1mv", "128"},
		{"luv", "1luv", "32768"},
		{"zpm", "1zpm", "131072"},
		{"opv", "1opv", "536870912"},
		{"max", "1max", "2147483648"},
		{"max plus one step", "1maxa", "8589934592"},
		{"max plus two steps", "1maxb", "34359738368"},
		{"unit applies before operator", "2k*3", "6000"},
		{"unit inside group", "(1+1)k", "2000"},
		{"uppercase unit", "2K", "2000"},
		{"mixed case tier", "4LuV", "131072"},
		{"uppercase max family", "1MAXA", "8589934592"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.expr)
			if err != nil {
				t.Fatalf("Solve(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Solve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSolve_Functions(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"sin zero", "sin(0)", "0"},
		{"uppercase sin", "SIN(0)", "0"},
		{"cos zero", "cos(0)", "1"},
		{"sqrt", "sqrt(16)", "4"},
		{"abs of difference", "abs(0-5)", "5"},
		{"ceil", "ceil(2.1)", "3"},
		{"floor", "floor(2.9)", "2"},
		{"round", "round(2.5)", "3"},
		{"log exp inverse", "log(exp(1))", "1"},
		{"radians", "radians(180)", "3.1415926536"},
		{"degrees", "degrees(0)", "0"},
		{"chained prefixes", "sin cos(0)", FormatResult(math.Sin(1))},
		{"chained prefixes spaced out", "sin  cos ( 0 )", FormatResult(math.Sin(1))},
		{"function result in sum", "sqrt(4)+1", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.expr)
			if err != nil {
				t.Fatalf("Solve(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Solve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSolve_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"positive overflow", "10^400", "Inf"},
		{"negative overflow", "(0-10)^401", "-Inf"},
		{"undefined power", "(0-1)^0.5", "Nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Solve(tt.expr)
			if err != nil {
				t.Fatalf("Solve(%q) error: %v", tt.expr, err)
			}

			if got != tt.want {
				t.Errorf("Solve(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want *Error
	}{
		{"unknown identifier", "foo(1)", ErrUnknownName},
		{"unknown unit run", "3km", ErrUnknownName},
		{"max family too long", "1maxab", ErrUnknownName},
		{"illegal character", "1$2", ErrIllegalChar},
		{"illegal leading dot", ".5", ErrIllegalChar},
		{"invalid number", "1.2.3", ErrInvalidNumber},
		{"unclosed paren", "(1+2", ErrMismatchedParens},
		{"stray close paren", "1+2)", ErrMismatchedParens},
		{"lone close paren", ")", ErrMismatchedParens},
		{"missing operands", "1+", ErrMissingOperands},
		{"lone operator", "*", ErrMissingOperands},
		{"unary minus unsupported", "-2", ErrMissingOperands},
		{"function without operand", "sin()", ErrMissingOperands},
		{"divide by zero", "1/0", ErrDivideByZero},
		{"divide by near zero", "1/0.0000000001", ErrDivideByZero},
		{"modulo by zero", "5%0", ErrModuloByZero},
		{"adjacent groups", "(1)(2)", ErrExtraNumbers},
		{"group then literal", "(1)2", ErrExtraNumbers},
		{"numbers split by space", "1 2", ErrExtraNumbers},
		{"empty expression", "", ErrEmptyExpression},
		{"blank expression", "   ", ErrEmptyExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.expr)
			if err == nil {
				t.Fatalf("Solve(%q) expected error %v, got none", tt.expr, tt.want)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Solve(%q) error = %v, want %v", tt.expr, err, tt.want)
			}
		})
	}
}

func TestSolve_ErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"unknown identifier names text", "foo(1)", "unknown function or unit: foo"},
		{"illegal character names rune", "1@2", `illegal character: "@"`},
		{"illegal rune reported whole", "2π", `illegal character: "π"`},
		{"missing operands names operator", "1+", "operator + missing sufficient operands"},
		{"missing operand names function", "sin()", "operator sin missing sufficient operands"},
		{"invalid number names literal", "1.2.3", "invalid number: 1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.expr)
			if err == nil {
				t.Fatalf("Solve(%q) expected error, got none", tt.expr)
			}

			if err.Error() != tt.want {
				t.Errorf("Solve(%q) error = %q, want %q", tt.expr, err.Error(), tt.want)
			}
		})
	}
}

func TestSolve_Idempotent(t *testing.T) {
	exprs := []string{"2+3*4", "1maxa", "sin(0.5)+cos(0.5)", "1/3"}

	for _, expr := range exprs {
		first, err1 := Solve(expr)
		second, err2 := Solve(expr)

		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("Solve(%q) error mismatch between calls: %v vs %v", expr, err1, err2)
		}

		if first != second {
			t.Errorf("Solve(%q) not idempotent: %q vs %q", expr, first, second)
		}
	}
}

func TestEvaluate_Values(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"2^3^2", 512},
		{"2k", 2000},
		{"1max", 2147483648},
		{"sqrt(16)*2", 8},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.expr)
		if err != nil {
			t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
		}

		if got != tt.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestApply_ReplacesOpenParen(t *testing.T) {
	// An open parenthesis reaching apply is re-pushed as a no-op.
	nums, ops, err := apply(nil, []Token{{Text: "(", Kind: KindLeftParen}})
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}

	if len(nums) != 0 || len(ops) != 1 || ops[0].Kind != KindLeftParen {
		t.Errorf("apply did not re-push open paren: nums=%v ops=%v", nums, ops)
	}
}
