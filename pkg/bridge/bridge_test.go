package bridge

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/constraint"
	"github.com/gokiburi-labs/folprover/pkg/rational"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func newMapping(vars ...string) *constraint.VariableMapping {
	m := constraint.NewVariableMapping()
	for _, v := range vars {
		m.Add(v)
	}

	return m
}

func TestAtomToConstraintSign(t *testing.T) {
	m := newMapping("x", "y")

	// x + 1 < y - 2  ==  x - y < -3
	atom := ast.NewAtom(ast.Lt,
		&ast.Add{L: &ast.Var{Name: "x"}, R: &ast.Const{Value: rational.FromInt(1)}},
		&ast.Sub{L: &ast.Var{Name: "y"}, R: &ast.Const{Value: rational.FromInt(2)}},
	)

	c := AtomToConstraint(atom, m)
	assert.Equal(t, constraint.LT, c.Rel)
	assert.Equal(t, true, c.LHS[0].Equal(rational.FromInt(1)))
	assert.Equal(t, true, c.LHS[1].Equal(rational.FromInt(-1)))
	assert.Equal(t, true, c.RHS.Equal(rational.FromInt(-3)))
}

func TestFormulaToConjunctionsAndBack(t *testing.T) {
	m := newMapping("x", "y")

	xLtY := &ast.AtomF{Atom: ast.NewAtom(ast.Lt, &ast.Var{Name: "x"}, &ast.Var{Name: "y"})}
	yLtX := &ast.AtomF{Atom: ast.NewAtom(ast.Lt, &ast.Var{Name: "y"}, &ast.Var{Name: "x"})}
	dnf := &ast.Or{L: xLtY, R: yLtX}

	ccs, err := FormulaToConjunctions(dnf, m)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(ccs))

	back := ConjunctionsToFormula(ccs, m)
	if _, ok := back.(*ast.Or); !ok {
		t.Fatalf("expected an Or of two conjuncts, got %T", back)
	}
}

func TestFormulaToConjunctionsTrueFalse(t *testing.T) {
	m := newMapping("x")

	ccs, err := FormulaToConjunctions(&ast.True{}, m)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(ccs))
	assert.Equal(t, 0, ccs[0].Len())

	ccs, err = FormulaToConjunctions(&ast.False{}, m)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(ccs))
}

func TestConjunctionsToFormulaEmptyIsFalse(t *testing.T) {
	m := newMapping("x")
	f := ConjunctionsToFormula(nil, m)

	if _, ok := f.(*ast.False); !ok {
		t.Fatalf("expected False for an empty conjunction list, got %T", f)
	}
}
