// Package rpncalc implements a small floating-point calculator for infix
// arithmetic.
//
// An expression is made of decimal numbers, the binary operators + - * /, and
// parentheses. "2+3*4" is 14, "(2+3)*4" is 20, and "8-3-2" is 3. There is no
// unary minus, so "-1" is an error rather than a negative number.
//
// Evaluation happens in three steps: Tokenize scans the text, ToPostfix
// reorders the tokens into reverse Polish notation, and EvalRPN computes the
// result with an operand stack. Compile runs the first two steps so that an
// expression can be evaluated more than once, and Evaluate runs all three.
//
// Every error caused by bad input implements EvalError, which reports the
// column of the token responsible.
//
package rpncalc
