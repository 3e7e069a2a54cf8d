package rpncalc

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Kind is the type of the token.
	Kind TokenKind
	// Prec is the precedence class of the token. Numbers and brackets have
	// precedence 0, + and - have 1, and * and / have 2.
	Prec int
	// Pos is the column of the token's first rune in the source, counting
	// from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNum is a decimal number.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators,
// including parentheses.
const Operators = "+-*/()"

// opinfo is the kind and precedence of an operator rune.
type opinfo struct {
	kind TokenKind
	prec int
}

// optable has an entry for each byte of Operators, in the same order.
var optable = [len(Operators)]opinfo{
	{TokenOp, 1},
	{TokenOp, 1},
	{TokenOp, 2},
	{TokenOp, 2},
	{TokenOpen, 0},
	{TokenClose, 0},
}

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

// Precedence returns the precedence class of an operator, or -1 if op is not
// one of the operators.
func Precedence(op string) int {
	if len(op) != 1 {
		return -1
	}
	k := strings.IndexByte(Operators, op[0])
	if k < 0 {
		return -1
	}
	return optable[k].prec
}

// Tokenize scans an expression into tokens. Runs of digits and dots become
// number tokens, and each operator rune becomes its own token. By default,
// any other rune is skipped and the error is always nil; with Strict, runes
// other than whitespace produce a *CharError.
//
// Skipped runes do not end a number, so "1 0" scans as the single number 10.
func Tokenize(src string, opts ...Option) ([]Token, error) {
	cfg := newConfig(opts)
	var (
		toks []Token
		num  strings.Builder
		// start is the column where the number in num began.
		start int
		col   int
	)
	flush := func() {
		if num.Len() == 0 {
			return
		}
		toks = append(toks, Token{Text: num.String(), Kind: TokenNum, Pos: start})
		num.Reset()
	}
	for _, r := range src {
		col++
		switch {
		case '0' <= r && r <= '9', r == '.':
			if num.Len() == 0 {
				start = col
			}
			num.WriteRune(r)
		case r < 0x80 && strings.IndexByte(Operators, byte(r)) >= 0:
			flush()
			k := strings.IndexByte(Operators, byte(r))
			toks = append(toks, Token{
				Text: operstrs[k],
				Kind: optable[k].kind,
				Prec: optable[k].prec,
				Pos:  col,
			})
		case cfg.strict && !unicode.IsSpace(r):
			return nil, &CharError{Col: col, Char: r}
		}
	}
	flush()
	return toks, nil
}
