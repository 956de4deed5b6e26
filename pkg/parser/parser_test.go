package parser

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/printer"
	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"x<y",
		"x<=y",
		"x!=y",
		"~(x<y)",
		"(x<y)&(y<z)",
		"(x<y)|(y<z)",
		"(x<y)=>(y<z)",
		"(x<y)<=>(y<z)",
		"!x.?y. x<y",
		"x+y<z",
		"2*x<y",
		"x-1<y",
	}

	for _, c := range cases {
		f, err := Parse(c)
		assert.Equal(t, nil, err, "parsing %q", c)

		if _, err := Parse(printer.Formula(f)); err != nil {
			t.Errorf("re-parsing printed form of %q failed: %s", c, err)
		}
	}
}

func TestParseNonlinearRejected(t *testing.T) {
	_, err := Parse("x*y<z")
	if err == nil {
		t.Fatalf("expected nonlinear multiplication to be rejected")
	}
}

func TestParseDivisionByZero(t *testing.T) {
	_, err := Parse("x/0<y")

	if _, ok := err.(*proverr.DivisionByZeroError); !ok {
		t.Fatalf("expected DivisionByZeroError, got %v", err)
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse("x<y)")

	var invalid *proverr.InvalidFormulaError
	if e, ok := err.(*proverr.InvalidFormulaError); !ok {
		t.Fatalf("expected InvalidFormulaError, got %v", err)
	} else {
		invalid = e
	}

	if invalid.Pos <= 0 {
		t.Fatalf("expected a positive error position, got %d", invalid.Pos)
	}
}

func TestParseParenDisambiguation(t *testing.T) {
	if _, err := Parse("(x+y)<5"); err != nil {
		t.Fatalf("parenthesised term operand: %s", err)
	}

	if _, err := Parse("(x<y)&(y<z)"); err != nil {
		t.Fatalf("parenthesised sub-formula: %s", err)
	}
}

func TestParseLargeIntegerLiteral(t *testing.T) {
	f, err := Parse("x<123456789012345678901234567890")
	assert.Equal(t, nil, err)
	assert.Equal(t, "x<123456789012345678901234567890", printer.Formula(f))
}
