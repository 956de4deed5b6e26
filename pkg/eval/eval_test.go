package eval

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/parser"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestFormulaGroundArithmetic(t *testing.T) {
	cases := map[string]bool{
		"1<2":             true,
		"2<1":             false,
		"1<=1":            true,
		"1!=2":            true,
		"1!=1":            false,
		"(1<2)&(2<3)":     true,
		"(1<2)&(3<2)":     false,
		"(3<2)|(1<2)":     true,
		"(1<2)=>(2<3)":    true,
		"(2<1)=>(3<2)":    true,
		"(1<2)<=>(2<3)":   true,
		"(1<2)<=>(3<2)":   false,
		"~(1<2)":          false,
		"1+1<3":           true,
		"2*1<3":           true,
		"T":               true,
		"F":               false,
	}

	for input, want := range cases {
		f, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("parsing %q: %s", input, err)
		}

		assert.Equal(t, want, Formula(f), "evaluating %q", input)
	}
}
