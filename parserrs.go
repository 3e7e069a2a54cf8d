package rpncalc

import (
	"strconv"
)

// BracketError is an error indicating mismatched parentheses in the input. It
// implements EvalError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the unmatched open bracket, or empty if the error is an
	// unmatched close bracket.
	Left string
	// Right is the unmatched close bracket, or empty if the error is an
	// unmatched open bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator evaluated with fewer than
// two operands available. It implements EvalError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that lacked operands.
	Operator string
	// Have is the number of operands that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" needs 2 operands, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// BalanceError is an error indicating that an expression does not reduce to
// exactly one value, or that a bracket reached evaluation. It implements
// EvalError.
type BalanceError struct {
	// Col is the position of the first leftover value or of the bracket. It
	// is 1 if there were no values at all.
	Col int
	// N is the number of values left after evaluation.
	N int
	// Paren is the bracket that reached evaluation, if any.
	Paren string
}

func (err *BalanceError) Error() string {
	switch {
	case err.Paren != "":
		return errpos(err.Col, "unexpected bracket "+err.Paren+" in postfix expression")
	case err.N == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, strconv.Itoa(err.N)+" values with no operator between them")
	}
}

func (err *BalanceError) Pos() int {
	return err.Col
}

// ZeroDivisionError is an error indicating division by zero. It implements
// EvalError.
type ZeroDivisionError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that the evaluator
// does not understand. It implements EvalError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// CharError is an error indicating a rune that is not part of any token. It
// is only produced with the Strict option. It implements EvalError.
type CharError struct {
	// Col is the position of the rune.
	Col int
	// Char is the invalid rune.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token that is not a valid
// decimal number, e.g. "1.2.3". It implements EvalError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the number token.
	Text string
	// Err is the error from strconv.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// EvalError is an error with position information. Every error resulting from
// invalid input implements EvalError.
type EvalError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// runes from 1.
	Pos() int
}

var (
	_ EvalError = (*BracketError)(nil)
	_ EvalError = (*OperandError)(nil)
	_ EvalError = (*BalanceError)(nil)
	_ EvalError = (*ZeroDivisionError)(nil)
	_ EvalError = (*OperatorError)(nil)
	_ EvalError = (*CharError)(nil)
	_ EvalError = (*NumberError)(nil)
)
