package arith_test

import (
	"strings"
	"testing"

	"github.com/arithgo/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-(4/5)")
	f.Add("2 $ 3")
	f.Add("((((((1))))))")
	f.Fuzz(func(t *testing.T, s string) {
		arith.Parse(strings.NewReader(s))
	})
}
