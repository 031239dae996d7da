package calceval

// Expressions arrive as free text, so evaluation is gated on a structural
// whitelist rather than a blacklist: an expression runs only if every node of
// its tree is built from the names, operators, and arities enumerated here.
// Unknown names, calls of non-functions, and wrong argument counts all fail
// the gate before any evaluation happens.

// symbols is the set of names usable as bare identifiers.
var symbols = map[string]bool{
	"pi":  true,
	"e":   true,
	"ans": true,
}

// binaryOps is the set of binary operator node kinds the whitelist accepts.
// Safe checks membership itself rather than trusting that the parser's
// operator table produces nothing else.
var binaryOps = map[nodeKind]bool{
	nodeAdd: true,
	nodeSub: true,
	nodeMul: true,
	nodeDiv: true,
	nodePow: true,
}

// funcArity maps each callable function name to its exact argument count.
// There is no minimum or maximum, only an exact match. The evaluator binds
// the same set of names; TestWhitelistBindings holds the two in sync.
var funcArity = map[string]int{
	"sin":   1,
	"cos":   1,
	"tan":   1,
	"asin":  1,
	"acos":  1,
	"atan":  1,
	"log":   1,
	"ln":    1,
	"log10": 1,
	"sqrt":  1,
	"exp":   1,
}

// Safe reports whether the expression is built entirely from whitelisted
// constants, symbols, operators, and correct-arity function calls. A single
// disallowed node anywhere in the tree makes the whole expression unsafe.
// Safe never modifies the expression.
func (e *Expr) Safe() bool {
	return safe(e.n)
}

func safe(n *node) bool {
	switch n.kind {
	case nodeNum:
		return true
	case nodeName:
		return symbols[n.name]
	case nodeGroup, nodeNeg, nodeNop:
		return safe(n.left)
	case nodeCall:
		if want, ok := funcArity[n.name]; !ok || len(n.args) != want {
			return false
		}
		for _, a := range n.args {
			if !safe(a) {
				return false
			}
		}
		return true
	default:
		// Binary operators by membership; anything else is rejected.
		return binaryOps[n.kind] && safe(n.left) && safe(n.right)
	}
}

// UnsafeExpressionError is the error reported when a parsed expression fails
// the whitelist.
type UnsafeExpressionError struct {
	// Expr is the normalized expression text.
	Expr string
}

func (err *UnsafeExpressionError) Error() string {
	return "unsupported or unsafe expression"
}
