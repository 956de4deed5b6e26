package constraint

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/rational"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func r(n int64) rational.Rational { return rational.FromInt(n) }

func TestIsSatisfiableInconsistentPair(t *testing.T) {
	// x < 1 & x > 2 is unsatisfiable.
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1)}, Rel: LT, RHS: r(1)},
		{LHS: []rational.Rational{r(1)}, Rel: GT, RHS: r(2)},
	}, 1)
	assert.Equal(t, nil, err)

	sat, err := cc.IsSatisfiable(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, sat)
}

func TestIsSatisfiableConsistentPair(t *testing.T) {
	// x < 2 & x > 1 is satisfiable (over the rationals).
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1)}, Rel: LT, RHS: r(2)},
		{LHS: []rational.Rational{r(1)}, Rel: GT, RHS: r(1)},
	}, 1)
	assert.Equal(t, nil, err)

	sat, err := cc.IsSatisfiable(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, sat)
}

func TestEliminateVariableByEquality(t *testing.T) {
	// x = 1 & x < 2, eliminating x, collapses to a constant constraint.
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1)}, Rel: EQ, RHS: r(1)},
		{LHS: []rational.Rational{r(1)}, Rel: LT, RHS: r(2)},
	}, 1)
	assert.Equal(t, nil, err)

	eliminated, err := cc.EliminateVariable(0, 0)
	assert.Equal(t, nil, err)

	for _, row := range eliminated.Rows() {
		if !row.LHS[0].IsZero() {
			t.Fatalf("expected column 0 eliminated to zero, got lhs %v", row.LHS)
		}
	}
}

// TestEliminateVariableByInequalityBound eliminates x (column 0) from an
// upper bound 2x-4y<6 (x<3+2y) and a lower bound 3x-3y>3 (x>1+y) over
// (x, y). Combining 1+y < x < 3+2y gives y>-2, i.e. -y<2 — this exercises
// eliminateByInequality's per-row division by the coefficient at the
// eliminated column (uk/lk, not plain subtraction), which a unit-coefficient
// case can't distinguish from simple subtraction.
func TestEliminateVariableByInequalityBound(t *testing.T) {
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(2), r(-4)}, Rel: LT, RHS: r(6)},
		{LHS: []rational.Rational{r(3), r(-3)}, Rel: GT, RHS: r(3)},
	}, 2)
	assert.Equal(t, nil, err)

	eliminated, err := cc.EliminateVariable(0, 0)
	assert.Equal(t, nil, err)

	rows := eliminated.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected exactly one synthesized row, got %d", len(rows))
	}

	got := rows[0]
	assert.Equal(t, LT, got.Rel)
	assert.Equal(t, "0", got.LHS[0].String())
	assert.Equal(t, "-1", got.LHS[1].String())
	assert.Equal(t, "2", got.RHS.String())
}

// TestUnitLevelFMOverdeterminedSumUnsat is spec.md §8's first unit-level FM
// scenario: {x+y>8, x+y<7}.
func TestUnitLevelFMOverdeterminedSumUnsat(t *testing.T) {
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1), r(1)}, Rel: GT, RHS: r(8)},
		{LHS: []rational.Rational{r(1), r(1)}, Rel: LT, RHS: r(7)},
	}, 2)
	assert.Equal(t, nil, err)

	sat, err := cc.IsSatisfiable(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, sat)
}

// TestUnitLevelFMTrichotomyContradictionUnsat is spec.md §8's second
// unit-level FM scenario: {2x+3y-z>0, x-y>0, -3x+z=0, y<0}, arity 3, forcing
// the equality row (-3x+z=0) to pivot before the remaining inequalities are
// combined.
func TestUnitLevelFMTrichotomyContradictionUnsat(t *testing.T) {
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(2), r(3), r(-1)}, Rel: GT, RHS: r(0)},
		{LHS: []rational.Rational{r(1), r(-1), r(0)}, Rel: GT, RHS: r(0)},
		{LHS: []rational.Rational{r(-3), r(0), r(1)}, Rel: EQ, RHS: r(0)},
		{LHS: []rational.Rational{r(0), r(1), r(0)}, Rel: LT, RHS: r(0)},
	}, 3)
	assert.Equal(t, nil, err)

	sat, err := cc.IsSatisfiable(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, sat)
}

// TestUnitLevelFMEqualitiesSat is spec.md §8's third unit-level FM scenario:
// {x+y=4, 2x+y=6}, SAT with solution x=2, y=2 — both rows are equalities, so
// this exercises the equality-pivot path rather than FM row synthesis.
func TestUnitLevelFMEqualitiesSat(t *testing.T) {
	cc, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1), r(1)}, Rel: EQ, RHS: r(4)},
		{LHS: []rational.Rational{r(2), r(1)}, Rel: EQ, RHS: r(6)},
	}, 2)
	assert.Equal(t, nil, err)

	sat, err := cc.IsSatisfiable(0)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, sat)
}

func TestNewConjunctionArityMismatch(t *testing.T) {
	_, err := NewConjunction([]Constraint{
		{LHS: []rational.Rational{r(1), r(1)}, Rel: EQ, RHS: r(0)},
	}, 1)

	if err == nil {
		t.Fatalf("expected an arity mismatch error")
	}
}

func TestVariableMappingAddRemove(t *testing.T) {
	m := NewVariableMapping()

	ix := m.Add("x")
	iy := m.Add("y")

	if ix == iy {
		t.Fatalf("distinct variables must get distinct columns")
	}

	sym, ok := m.GetSymbol(ix)
	assert.Equal(t, true, ok)
	assert.Equal(t, "x", sym)

	// Removal is LIFO-scoped: y (the most recently added) must go first.
	m.Remove("y")
	m.Remove("x")

	if _, ok := m.GetSymbol(ix); ok {
		t.Fatalf("expected column for x to be gone after Remove")
	}
}
