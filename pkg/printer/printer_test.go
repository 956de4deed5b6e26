package printer

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/rational"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestFormulaPrecedenceParens(t *testing.T) {
	// (x<y) & (y<z) should NOT print with parens around the atoms
	// (AtomF binds tighter than And); And wrapped in Not should.
	x, y, z := &ast.Var{Name: "x"}, &ast.Var{Name: "y"}, &ast.Var{Name: "z"}
	and := &ast.And{
		L: &ast.AtomF{Atom: ast.NewAtom(ast.Lt, x, y)},
		R: &ast.AtomF{Atom: ast.NewAtom(ast.Lt, y, z)},
	}

	assert.Equal(t, "x<y & y<z", Formula(and))
	assert.Equal(t, "~(x<y & y<z)", Formula(&ast.Not{F: and}))
}

func TestFormulaOrLowerThanAnd(t *testing.T) {
	x, y, z := &ast.Var{Name: "x"}, &ast.Var{Name: "y"}, &ast.Var{Name: "z"}
	or := &ast.Or{
		L: &ast.AtomF{Atom: ast.NewAtom(ast.Lt, x, y)},
		R: &ast.And{
			L: &ast.AtomF{Atom: ast.NewAtom(ast.Lt, y, z)},
			R: &ast.AtomF{Atom: ast.NewAtom(ast.Eq, x, z)},
		},
	}

	assert.Equal(t, "x<y | y<z & x=z", Formula(or))
}

func TestTermCoefficientOne(t *testing.T) {
	mulOne := &ast.Mul{Coef: rational.FromInt(1), Var: "x"}
	mulNegOne := &ast.Mul{Coef: rational.FromInt(-1), Var: "x"}
	mulTwo := &ast.Mul{Coef: rational.FromInt(2), Var: "x"}

	assert.Equal(t, "x", Term(mulOne))
	assert.Equal(t, "-x", Term(mulNegOne))
	assert.Equal(t, "2*x", Term(mulTwo))
}

func TestTermAddSubGrouping(t *testing.T) {
	x, y, z := &ast.Var{Name: "x"}, &ast.Var{Name: "y"}, &ast.Var{Name: "z"}
	// x - (y + z) must keep its parens: Add's precedence under Sub's right
	// operand is not strictly higher, so it needs wrapping.
	term := &ast.Sub{L: x, R: &ast.Add{L: y, R: z}}
	assert.Equal(t, "x-(y+z)", Term(term))
}

func TestQuantifierPrinting(t *testing.T) {
	x, y := &ast.Var{Name: "x"}, &ast.Var{Name: "y"}
	f := &ast.Forall{Var: "x", Body: &ast.Exists{Var: "y", Body: &ast.AtomF{Atom: ast.NewAtom(ast.Lt, x, y)}}}
	assert.Equal(t, "!x.?y.x<y", Formula(f))
}
