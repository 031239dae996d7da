package calceval

import (
	"math"
	"strconv"
	"strings"
)

// Display precision and the decimal-exponent window for fixed notation.
const (
	formatDigits = 12
	fixedMin     = -6
	fixedMax     = 15
)

// Format renders a finite value to at most 12 significant digits: fixed
// notation while the decimal exponent lies in [-6, 15), exponential notation
// outside that window. Trailing fractional zeros are trimmed, so
// Format(2.50) is "2.5" and Format(0) is "0".
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// Not reachable from Evaluate, which rejects non-finite results.
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', formatDigits-1, 64)
	mant, es, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(es)
	if err != nil {
		panic("calceval: bad exponent in " + s)
	}
	if exp < fixedMin || exp >= fixedMax {
		return trimZeros(mant) + "e" + es
	}
	// Format the rounded value, not the original, so digits past the
	// display precision become zeros instead of printing through when the
	// exponent leaves no fractional places.
	v, err = strconv.ParseFloat(mant+"e"+es, 64)
	if err != nil {
		panic("calceval: bad mantissa in " + s)
	}
	prec := formatDigits - 1 - exp
	if prec < 0 {
		prec = 0
	}
	return trimZeros(strconv.FormatFloat(v, 'f', prec, 64))
}

// trimZeros removes trailing fractional zeros, and the point itself when the
// whole fraction goes.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
