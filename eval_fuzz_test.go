//go:build go1.18
// +build go1.18

package rpncalc_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(1+2")
	f.Add("1..2/0")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := rpncalc.Evaluate(s)
		if err == nil {
			return
		}
		if r != 0 {
			t.Errorf("%q gave result %g with error %v", s, r, err)
		}
		var e rpncalc.EvalError
		if !errors.As(err, &e) {
			t.Errorf("%q gave non-EvalError %#v", s, err)
		}
	})
}
