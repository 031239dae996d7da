package calceval

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Ownership is
// strictly hierarchical: a parent owns its children, and nodes are never
// shared between trees.
type node struct {
	kind nodeKind

	val  float64 // literal value when kind is nodeNum
	name string  // identifier for nodeName, function name for nodeCall

	left  *node
	right *node
	args  []*node // call arguments, in order
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // literal val
	nodeName  // look up name in the scope
	nodeGroup // parenthesized subexpression in left
	nodeCall  // call name with args

	nodeNeg // evaluate left, then negate
	nodeNop // unary plus, evaluate left
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

var nodeKindNames = [...]string{
	"None", "Num", "Name", "Group", "Call",
	"Neg", "Nop", "Add", "Sub", "Mul", "Div", "Pow",
}

func (k nodeKind) String() string {
	if k >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// opString returns the operator symbol for a binary node kind.
func (k nodeKind) opString() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	default:
		panic("calceval: no operator for node kind " + k.String())
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the tree, so that tests and
// the -echo flag can see exactly how an expression grouped.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodeGroup:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeNeg:
		b.WriteString("(-")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeNop:
		b.WriteString("(+")
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.opString())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("calceval: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
