package calc

import (
	"math"
	"strconv"
	"strings"
)

// FormatResult renders the final value of an evaluation for display.
//
// Values within zeroEpsilon of their nearest integer are rendered as that
// integer with no fractional part. All other finite values use a fixed
// 10-decimal-place representation with trailing zeros and a trailing
// decimal point stripped.
func FormatResult(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "Inf"

	case math.IsInf(value, -1):
		return "-Inf"

	case math.IsNaN(value):
		return "Nan"

	case value == 0:
		return "0"
	}

	if nearest := math.Round(value); math.Abs(value-nearest) < zeroEpsilon {
		if nearest == 0 {
			return "0"
		}

		return strconv.FormatFloat(nearest, 'f', -1, 64)
	}

	fixed := strconv.FormatFloat(value, 'f', 10, 64)
	fixed = strings.TrimRight(fixed, "0")
	fixed = strings.TrimRight(fixed, ".")

	return fixed
}
