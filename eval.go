package calceval

import (
	"math"
	"strconv"
)

// AngleMode selects the unit for trigonometric arguments and results. It is
// supplied per evaluation call and never stored.
type AngleMode int

const (
	// Degrees interprets trig arguments, and inverse trig results, in
	// degrees.
	Degrees AngleMode = iota
	// Radians interprets them in radians.
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "AngleMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// scope binds the whitelisted names to concrete numeric semantics for one
// evaluation. A scope is built fresh per call and discarded afterward.
type scope struct {
	syms map[string]float64
	fns  map[string]func(float64) float64
}

// bind builds the evaluation scope for an angle mode and previous answer.
func bind(mode AngleMode, ans float64) *scope {
	fromAngle := func(x float64) float64 {
		if mode == Degrees {
			return x * math.Pi / 180
		}
		return x
	}
	toAngle := func(x float64) float64 {
		if mode == Degrees {
			return x * 180 / math.Pi
		}
		return x
	}
	return &scope{
		syms: map[string]float64{
			"pi":  math.Pi,
			"e":   math.E,
			"ans": ans,
		},
		fns: map[string]func(float64) float64{
			"sin":  func(x float64) float64 { return math.Sin(fromAngle(x)) },
			"cos":  func(x float64) float64 { return math.Cos(fromAngle(x)) },
			"tan":  func(x float64) float64 { return math.Tan(fromAngle(x)) },
			"asin": func(x float64) float64 { return toAngle(math.Asin(x)) },
			"acos": func(x float64) float64 { return toAngle(math.Acos(x)) },
			"atan": func(x float64) float64 { return toAngle(math.Atan(x)) },
			// log is an alias of ln, not base 10.
			"log":   math.Log,
			"ln":    math.Log,
			"log10": math.Log10,
			"sqrt":  math.Sqrt,
			"exp":   math.Exp,
		},
	}
}

// Eval reduces the expression to a single finite number under the given angle
// mode, with ans bound to prev. Division by zero, arguments outside a
// function's domain, and overflow all propagate as non-finite values to one
// final finiteness check; any non-finite outcome reports an *EvalError.
//
// Eval does not consult the whitelist. Evaluating an expression that fails
// Safe yields *EvalError rather than a meaningful result.
func (e *Expr) Eval(mode AngleMode, prev float64) (float64, error) {
	v := e.n.eval(bind(mode, prev))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &EvalError{}
	}
	return v, nil
}

// eval reduces the node in post order, children before parents and call
// arguments left to right. Names and calls outside the scope reduce to NaN,
// which the finiteness check in Eval turns into an error.
func (n *node) eval(sc *scope) float64 {
	switch n.kind {
	case nodeNum:
		return n.val
	case nodeName:
		v, ok := sc.syms[n.name]
		if !ok {
			return math.NaN()
		}
		return v
	case nodeGroup, nodeNop:
		return n.left.eval(sc)
	case nodeNeg:
		return -n.left.eval(sc)
	case nodeAdd:
		return n.left.eval(sc) + n.right.eval(sc)
	case nodeSub:
		return n.left.eval(sc) - n.right.eval(sc)
	case nodeMul:
		return n.left.eval(sc) * n.right.eval(sc)
	case nodeDiv:
		// x/0 is ±Inf or NaN; the finiteness check catches it.
		return n.left.eval(sc) / n.right.eval(sc)
	case nodePow:
		return math.Pow(n.left.eval(sc), n.right.eval(sc))
	case nodeCall:
		fn, ok := sc.fns[n.name]
		if !ok || len(n.args) != 1 {
			return math.NaN()
		}
		return fn(n.args[0].eval(sc))
	default:
		panic("calceval: invalid AST node " + n.kind.String())
	}
}

// EvalError indicates that a safe expression did not reduce to a finite
// number: division by zero, an argument outside a function's domain, or
// overflow.
type EvalError struct{}

func (err *EvalError) Error() string {
	return "expression did not produce a finite number"
}
