package rpncalc

import (
	"errors"
	"strconv"
)

// Evaluate scans, converts, and evaluates an expression. If any step fails,
// the result is 0 and the error is that step's error, which implements
// EvalError.
func Evaluate(src string, opts ...Option) (float64, error) {
	r, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	return r.Eval()
}

// EvalRPN evaluates a sequence of tokens in reverse Polish notation with an
// operand stack. Evaluation stops at the first error.
func EvalRPN(tokens []Token) (float64, error) {
	stack := make([]float64, 0, len(tokens)/2+1)
	// cols holds the position of the token that produced each stack value.
	cols := make([]int, 0, cap(stack))
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenOpen, TokenClose:
			return 0, &BalanceError{Col: tok.Pos, N: len(stack), Paren: tok.Text}
		case TokenNum:
			// Out of range literals are ±Inf, like any other overflow.
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, &NumberError{Col: tok.Pos, Text: tok.Text, Err: err}
			}
			stack = append(stack, v)
			cols = append(cols, tok.Pos)
		default:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.Pos, Operator: tok.Text, Have: len(stack)}
			}
			op2 := stack[len(stack)-1]
			op1 := stack[len(stack)-2]
			r, err := binop(tok, op1, op2)
			if err != nil {
				return 0, err
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = r
			cols = cols[:len(cols)-1]
		}
	}
	if len(stack) != 1 {
		col := 1
		if len(cols) > 0 {
			col = cols[0]
		}
		return 0, &BalanceError{Col: col, N: len(stack)}
	}
	return stack[0], nil
}

// binop applies a binary operator token.
func binop(tok Token, op1, op2 float64) (float64, error) {
	switch tok.Text {
	case "+":
		return op1 + op2, nil
	case "-":
		return op1 - op2, nil
	case "*":
		return op1 * op2, nil
	case "/":
		if op2 == 0 {
			return 0, &ZeroDivisionError{Col: tok.Pos}
		}
		return op1 / op2, nil
	default:
		return 0, &OperatorError{Col: tok.Pos, Operator: tok.Text}
	}
}
