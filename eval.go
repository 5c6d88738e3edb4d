package arith

import (
	"io"
	"strings"
)

// Eval evaluates the expression and returns its result. Arithmetic is
// ordinary float64 arithmetic, except that dividing by zero returns a
// *DivisionByZeroError naming the position of the offending / operator
// instead of producing an infinity or NaN. Evaluation is stateless;
// evaluating the same expression twice gives identical results.
func (e *Expr) Eval() (float64, error) {
	return e.n.eval()
}

// eval computes the value of the subtree rooted at n.
func (n *node) eval() (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		return -v, err
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		l, r, err := n.operands()
		return l + r, err
	case nodeSub:
		l, r, err := n.operands()
		return l - r, err
	case nodeMul:
		l, r, err := n.operands()
		return l * r, err
	case nodeDiv:
		l, r, err := n.operands()
		if err != nil {
			return 0, err
		}
		if r == 0 {
			return 0, &DivisionByZeroError{Col: n.pos}
		}
		return l / r, nil
	default:
		panic("arith: invalid AST node " + n.kind.String())
	}
}

// operands evaluates both children of a binary node.
func (n *node) operands() (l, r float64, err error) {
	l, err = n.left.eval()
	if err != nil {
		return 0, 0, err
	}
	r, err = n.right.eval()
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
