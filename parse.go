package rpncalc

// Expr = num | Add | Sub | Mul | Div | '(' Expr ')'
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Compile scans and converts an expression to postfix form, so that it can be
// evaluated any number of times.
func Compile(src string, opts ...Option) (RPN, error) {
	toks, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks)
}

// ToPostfix reorders a sequence of infix tokens into reverse Polish notation
// using operator precedence. Operators of equal precedence associate to the
// left. The only error ToPostfix returns is *BracketError. The result never
// contains brackets.
//
// ToPostfix does not check that operators have operands; that is left to
// evaluation.
func ToPostfix(tokens []Token) (RPN, error) {
	out := make(RPN, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			// Open brackets have precedence 0, so they stop the loop.
			for len(stack) > 0 && stack[len(stack)-1].Prec >= tok.Prec {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, &BracketError{Col: top.Pos, Left: top.Text}
		}
		out = append(out, top)
	}
	return out, nil
}
