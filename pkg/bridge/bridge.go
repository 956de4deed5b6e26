// Package bridge translates between the Formula/Atom world of pkg/ast and
// the Constraint/ConstraintConjunction world of pkg/constraint (§4.3): atom
// lowering, constraint lifting, and DNF-formula <-> conjunction-list
// translation in both directions.
package bridge

import (
	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/constraint"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// AtomToConstraint lowers an atom a rel b into lhs·x rel rhs against the
// given mapping, per §4.3.1. The atom's relation must already be Eq, Lt or
// Gt (the precondition established by normal.SimplifyConstraints); any
// other relation is an internal invariant violation.
func AtomToConstraint(atom *ast.Atom, mapping *constraint.VariableMapping) constraint.Constraint {
	lhs := make([]rational.Rational, mapping.Size())
	for i := range lhs {
		lhs[i] = rational.Zero()
	}

	rhs := rational.Zero()

	accumulate(atom.L, mapping, lhs, &rhs, false)
	accumulate(atom.R, mapping, lhs, &rhs, true)

	var rel constraint.Relation

	switch atom.Relation {
	case ast.Eq:
		rel = constraint.EQ
	case ast.Lt:
		rel = constraint.LT
	case ast.Gt:
		rel = constraint.GT
	default:
		panic("atom relation must be Eq, Lt or Gt when lowering to a constraint")
	}

	return constraint.Constraint{LHS: lhs, Rel: rel, RHS: rhs}
}

// accumulate walks a term, adding its contribution into lhs/rhs. flip is
// false while walking the atom's left operand and true while walking its
// right operand (§4.3.1): a left-side constant subtracts from rhs, a
// right-side constant adds; a left-side variable/Mul adds its coefficient
// to lhs, a right-side one subtracts it.
func accumulate(term ast.Term, mapping *constraint.VariableMapping, lhs []rational.Rational, rhs *rational.Rational, flip bool) {
	switch t := term.(type) {
	case *ast.Const:
		if flip {
			*rhs = rhs.Add(t.Value)
		} else {
			*rhs = rhs.Sub(t.Value)
		}
	case *ast.Var:
		idx, ok := mapping.GetIndex(t.Name)
		if !ok {
			panic("unmapped variable in atom: " + t.Name)
		}

		addCoef(lhs, idx, rational.FromInt(1), flip)
	case *ast.Add:
		accumulate(t.L, mapping, lhs, rhs, flip)
		accumulate(t.R, mapping, lhs, rhs, flip)
	case *ast.Sub:
		accumulate(t.L, mapping, lhs, rhs, flip)
		accumulate(t.R, mapping, lhs, rhs, !flip)
	case *ast.Mul:
		idx, ok := mapping.GetIndex(t.Var)
		if !ok {
			panic("unmapped variable in atom: " + t.Var)
		}

		addCoef(lhs, idx, t.Coef, flip)
	default:
		panic("unreachable term kind when lowering atom to constraint")
	}
}

func addCoef(lhs []rational.Rational, idx int, coef rational.Rational, flip bool) {
	if flip {
		lhs[idx] = lhs[idx].Sub(coef)
	} else {
		lhs[idx] = lhs[idx].Add(coef)
	}
}

// FormulaToConjunctions translates a DNF-shaped, quantifier-free formula
// (a disjunction of conjunctions of positive Eq/Lt/Gt atoms, per §4.3.2)
// into the corresponding list of ConstraintConjunctions. True becomes a
// singleton list holding one empty (trivially satisfiable) conjunction;
// False becomes the empty list.
func FormulaToConjunctions(f ast.Formula, mapping *constraint.VariableMapping) ([]*constraint.ConstraintConjunction, error) {
	arity := mapping.Size()

	switch n := f.(type) {
	case *ast.Or:
		left, err := FormulaToConjunctions(n.L, mapping)
		if err != nil {
			return nil, err
		}

		right, err := FormulaToConjunctions(n.R, mapping)
		if err != nil {
			return nil, err
		}

		return append(left, right...), nil
	case *ast.And:
		rows := flattenConjunction(n, mapping)

		cc, err := constraint.NewConjunction(rows, arity)
		if err != nil {
			return nil, err
		}

		return []*constraint.ConstraintConjunction{cc}, nil
	case *ast.AtomF:
		cc, err := constraint.NewConjunction([]constraint.Constraint{AtomToConstraint(n.Atom, mapping)}, arity)
		if err != nil {
			return nil, err
		}

		return []*constraint.ConstraintConjunction{cc}, nil
	case *ast.True:
		cc, err := constraint.NewConjunction(nil, arity)
		if err != nil {
			return nil, err
		}

		return []*constraint.ConstraintConjunction{cc}, nil
	case *ast.False:
		return nil, nil
	default:
		panic("unreachable formula kind in DNF-to-conjunctions translation")
	}
}

// flattenConjunction flattens a tree of And nodes over atoms into a single
// row list, per §4.3.2's "flattened into a single conjunction whose
// constraints are the union of those from its children".
func flattenConjunction(f ast.Formula, mapping *constraint.VariableMapping) []constraint.Constraint {
	switch n := f.(type) {
	case *ast.And:
		return append(flattenConjunction(n.L, mapping), flattenConjunction(n.R, mapping)...)
	case *ast.AtomF:
		return []constraint.Constraint{AtomToConstraint(n.Atom, mapping)}
	default:
		panic("unreachable node kind inside a DNF conjunct")
	}
}

// ConjunctionToFormula lifts a single ConstraintConjunction back to a
// Formula: an And of its constraints' formulas, or True if empty (§4.3.3).
func ConjunctionToFormula(cc *constraint.ConstraintConjunction, mapping *constraint.VariableMapping) ast.Formula {
	rows := cc.Rows()
	if len(rows) == 0 {
		return &ast.True{}
	}

	result := constraintToFormula(rows[0], mapping)
	for _, row := range rows[1:] {
		result = &ast.And{L: result, R: constraintToFormula(row, mapping)}
	}

	return result
}

func constraintToFormula(c constraint.Constraint, mapping *constraint.VariableMapping) ast.Formula {
	var term ast.Term = &ast.Const{Value: rational.Zero()}

	for idx, coef := range c.LHS {
		if coef.IsZero() {
			continue
		}

		symbol, ok := mapping.GetSymbol(idx)
		if !ok {
			panic("constraint column has no assigned symbol")
		}

		if coef.Sign() > 0 {
			term = &ast.Add{L: term, R: &ast.Mul{Coef: coef, Var: symbol}}
		} else {
			term = &ast.Sub{L: term, R: &ast.Mul{Coef: coef.Neg(), Var: symbol}}
		}
	}

	var rel ast.Rel

	switch c.Rel {
	case constraint.EQ:
		rel = ast.Eq
	case constraint.LT:
		rel = ast.Lt
	case constraint.GT:
		rel = ast.Gt
	default:
		panic("unreachable constraint relation when lifting to a formula")
	}

	return &ast.AtomF{Atom: ast.NewAtom(rel, term, &ast.Const{Value: c.RHS})}
}

// ConjunctionsToFormula lifts a list of ConstraintConjunctions back to a
// Formula: an Or of their individual formulas, or False if the list is
// empty (§4.3.4).
func ConjunctionsToFormula(ccs []*constraint.ConstraintConjunction, mapping *constraint.VariableMapping) ast.Formula {
	if len(ccs) == 0 {
		return &ast.False{}
	}

	result := ConjunctionToFormula(ccs[0], mapping)
	for _, cc := range ccs[1:] {
		result = &ast.Or{L: result, R: ConjunctionToFormula(cc, mapping)}
	}

	return result
}
