package calceval_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/qtrnm/calceval"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		mode calceval.AngleMode
		prev float64
		want float64
	}{
		{"num", "1", calceval.Degrees, 0, 1},
		{"add", "4+5+6", calceval.Degrees, 0, 15},
		{"sub", "4-5-6", calceval.Degrees, 0, -7},
		{"mul", "4*5*6", calceval.Degrees, 0, 120},
		{"div", "4/5/6", calceval.Degrees, 0, 4.0 / 5.0 / 6.0},
		{"pow", "4^3^2", calceval.Degrees, 0, 262144},
		{"precedence", "2^3*2", calceval.Degrees, 0, 16},
		{"neg-pow", "-2^2", calceval.Degrees, 0, 4},
		{"pow-neg-rhs", "2^-2", calceval.Degrees, 0, 0.25},
		{"group", "(1+2)*3", calceval.Degrees, 0, 9},
		{"pi", "pi", calceval.Degrees, 0, math.Pi},
		{"e", "e", calceval.Degrees, 0, math.E},
		{"ans", "ans+1", calceval.Degrees, 5, 6},
		{"ans-default", "ans", calceval.Degrees, 0, 0},
		{"sin-deg", "sin(30)", calceval.Degrees, 0, 0.5},
		{"sin-rad", "sin(pi/6)", calceval.Radians, 0, 0.5},
		{"cos-deg", "cos(60)", calceval.Degrees, 0, 0.5},
		{"tan-deg", "tan(45)", calceval.Degrees, 0, 1},
		{"asin-deg", "asin(1)", calceval.Degrees, 0, 90},
		{"acos-rad", "acos(0)", calceval.Radians, 0, math.Pi / 2},
		{"atan-deg", "atan(1)", calceval.Degrees, 0, 45},
		{"roundtrip-deg", "asin(sin(30))", calceval.Degrees, 0, 30},
		{"roundtrip-rad", "asin(sin(0.5))", calceval.Radians, 0, 0.5},
		{"log-natural", "log(e)", calceval.Degrees, 0, 1},
		{"ln", "ln(e)", calceval.Degrees, 0, 1},
		{"log10", "log10(1000)", calceval.Degrees, 0, 3},
		{"sqrt", "sqrt(16)", calceval.Degrees, 0, 4},
		{"exp", "exp(0)", calceval.Degrees, 0, 1},
		{"implicit-mul", "2pi", calceval.Degrees, 0, 2 * math.Pi},
		{"implicit-group", "2(3+1)", calceval.Degrees, 0, 8},
		{"glyphs", "3 × √(16) ÷ 2", calceval.Degrees, 0, 6},
		{"glyph-pi", "sin(π/2)", calceval.Radians, 0, 1},
		{"ans-case", "ANS+1", calceval.Degrees, 1, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calceval.Evaluate(c.src, c.mode, c.prev)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if math.Abs(r.Value-c.want) > 1e-9 {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.want, r.Value)
			}
			if want := calceval.Format(r.Value); r.Formatted != want {
				t.Errorf("evaluating %q: formatted as %q, want %q", c.src, r.Formatted, want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", new(calceval.EmptyInputError)},
		{"blank", " \t\n ", new(calceval.EmptyInputError)},
		{"syntax-trailing", "1+", new(calceval.SyntaxError)},
		{"syntax-unclosed", "(1+2", new(calceval.SyntaxError)},
		{"syntax-rune", "1&2", new(calceval.SyntaxError)},
		{"unsafe-import", "import(1)", new(calceval.UnsafeExpressionError)},
		{"unsafe-arity", "sin(1,2)", new(calceval.UnsafeExpressionError)},
		{"unsafe-symbol", "x+1", new(calceval.UnsafeExpressionError)},
		{"unsafe-nested", "sqrt(createUnit())", new(calceval.UnsafeExpressionError)},
		{"div-zero", "1/0", new(calceval.EvalError)},
		{"zero-over-zero", "0/0", new(calceval.EvalError)},
		{"asin-domain", "asin(2)", new(calceval.EvalError)},
		{"sqrt-domain", "sqrt(-1)", new(calceval.EvalError)},
		{"log-domain", "ln(-1)", new(calceval.EvalError)},
		{"overflow", "10^10^10", new(calceval.EvalError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calceval.Evaluate(c.src, calceval.Degrees, 0)
			if err == nil {
				t.Fatalf("evaluating %q gave %v with no error", c.src, r)
			}
			target := reflect.New(reflect.TypeOf(c.err)).Interface()
			if !errors.As(err, target) {
				t.Fatalf("evaluating %q gave %#v, not %T", c.src, err, c.err)
			}
			if _, ok := c.err.(*calceval.SyntaxError); ok {
				var ie calceval.InputError
				if !errors.As(err, &ie) {
					t.Errorf("syntax error %#v has no position info", err)
				}
			}
		})
	}
}

// TestSafeNeverEvalError checks the flip side of the whitelist: expressions
// built only from whitelisted constructs either evaluate or fail with
// *EvalError, never *UnsafeExpressionError.
func TestSafeNeverEvalError(t *testing.T) {
	srcs := []string{
		"1/0", "asin(2)", "sqrt(-1)", "sin(30)+cos(60)", "ans^2", "ln(e)",
	}
	for _, src := range srcs {
		_, err := calceval.Evaluate(src, calceval.Degrees, 0)
		var ue *calceval.UnsafeExpressionError
		if errors.As(err, &ue) {
			t.Errorf("%q is whitelisted but reported unsafe", src)
		}
	}
}

func Example() {
	r, _ := calceval.Evaluate("ans + sin(30)", calceval.Degrees, 2)
	fmt.Println(r.Formatted)
	q, _ := calceval.Evaluate("2^3*2", calceval.Degrees, r.Value)
	fmt.Println(q.Formatted)
	_, err := calceval.Evaluate("import(1)", calceval.Degrees, 0)
	fmt.Println(err)

	// Output:
	// 2.5
	// 16
	// unsupported or unsafe expression
}
