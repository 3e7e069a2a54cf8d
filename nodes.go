package rpncalc

import (
	"strings"
)

// RPN is an expression in reverse Polish notation, with each operator
// following its operands.
type RPN []Token

// String formats the expression as its tokens separated by spaces, e.g.
// "2 3 4 * +".
func (r RPN) String() string {
	var b strings.Builder
	for i, tok := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Eval evaluates the expression. It is equivalent to EvalRPN(r).
func (r RPN) Eval() (float64, error) {
	return EvalRPN(r)
}
