package calceval

import "strings"

// Result is a successful evaluation: a finite value and its display string.
type Result struct {
	// Value is the numeric result. It is always finite.
	Value float64
	// Formatted is Value rendered by Format.
	Formatted string
}

// Evaluate runs the whole pipeline over raw calculator input: normalize,
// parse, check the whitelist, evaluate under mode with ans bound to prev,
// and format. The first failing stage reports immediately as one of
// *EmptyInputError, *SyntaxError, *UnsafeExpressionError, or *EvalError;
// there are no partial results and no fallback evaluation.
func Evaluate(expression string, mode AngleMode, prev float64) (Result, error) {
	if strings.TrimSpace(expression) == "" {
		return Result{}, &EmptyInputError{}
	}
	src := Normalize(expression)
	e, err := Parse(strings.NewReader(src))
	if err != nil {
		return Result{}, &SyntaxError{Err: err}
	}
	if !e.Safe() {
		return Result{}, &UnsafeExpressionError{Expr: src}
	}
	v, err := e.Eval(mode, prev)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Formatted: Format(v)}, nil
}

// EmptyInputError is the error reported for empty or whitespace-only input.
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return "enter an expression"
}

// SyntaxError is the error reported when input does not parse. It wraps the
// underlying error, which implements InputError with position information.
type SyntaxError struct {
	Err error
}

func (err *SyntaxError) Error() string {
	return "invalid expression: " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}
