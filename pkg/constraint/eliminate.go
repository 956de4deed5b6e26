package constraint

import (
	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// EliminateVariable eliminates column i from the conjunction: equality
// elimination (Gauss-style) is tried first; if no qualifying equation
// exists, Fourier-Motzkin inequality elimination is used instead. This is
// the engine's two-step referenced by §4.4's QE driver, which asks for a
// single column per quantifier (unlike IsSatisfiable, which eliminates
// every column). maxConstraints bounds FM's row growth; 0 means unbounded.
func (cc *ConstraintConjunction) EliminateVariable(i int, maxConstraints int) (*ConstraintConjunction, error) {
	rows := cloneRows(cc.rows)

	if newRows, ok := eliminateByEquality(rows, i); ok {
		return &ConstraintConjunction{rows: newRows, arity: cc.arity}, nil
	}

	newRows, err := eliminateByInequality(rows, i, maxConstraints)
	if err != nil {
		return nil, err
	}

	return &ConstraintConjunction{rows: newRows, arity: cc.arity}, nil
}

// IsSatisfiable eliminates every column in index order and checks whether
// the all-constant remainder is consistent (§4.2.4). The receiver's rows
// are never mutated; elimination proceeds over a private copy.
func (cc *ConstraintConjunction) IsSatisfiable(maxConstraints int) (bool, error) {
	if cc.Len() == 0 {
		return true, nil
	}

	rows := cloneRows(cc.rows)

	for i := 0; i < cc.arity; i++ {
		if newRows, ok := eliminateByEquality(rows, i); ok {
			rows = newRows
			continue
		}

		newRows, err := eliminateByInequality(rows, i, maxConstraints)
		if err != nil {
			return false, err
		}

		rows = newRows
	}

	for _, c := range rows {
		switch c.Rel {
		case EQ:
			if !c.RHS.IsZero() {
				return false, nil
			}
		case LT:
			if c.RHS.Sign() <= 0 {
				return false, nil
			}
		case GT:
			if c.RHS.Sign() >= 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// eliminateByEquality scans rows (in insertion order) for the first EQ
// constraint with a non-zero coefficient at varIndex, uses it as a pivot to
// cancel that column from every other row, and removes the pivot. Returns
// (rows, false) unchanged if no qualifying equation exists.
//
// Grounded on original_source/fourier_motzkin.cpp's
// ConstraintConjuction::eliminate_variable_by_equality.
func eliminateByEquality(rows []Constraint, varIndex int) ([]Constraint, bool) {
	for i, pivot := range rows {
		if pivot.Rel != EQ {
			continue
		}

		coef := pivot.LHS[varIndex]
		if coef.IsZero() {
			continue
		}

		result := make([]Constraint, 0, len(rows)-1)

		for j, row := range rows {
			if j == i {
				continue
			}

			mul := row.LHS[varIndex]
			if mul.IsZero() {
				result = append(result, row)
				continue
			}

			ratio, _ := mul.Div(coef) // coef is non-zero (checked above)
			newLHS := make([]rational.Rational, len(row.LHS))

			for k := range newLHS {
				newLHS[k] = row.LHS[k].Sub(ratio.Mul(pivot.LHS[k]))
			}

			result = append(result, Constraint{
				LHS: newLHS,
				Rel: row.Rel,
				RHS: row.RHS.Sub(ratio.Mul(pivot.RHS)),
			})
		}

		return result, true
	}

	return rows, false
}

// eliminateByInequality performs one round of Fourier-Motzkin elimination
// on column varIndex: every constraint with a non-zero coefficient there is
// classified as an upper or lower bound, every upper/lower pair produces a
// new LT constraint free of that column, and all classified rows are then
// dropped. Rows with a zero coefficient at varIndex (including a stray EQ,
// which should not occur after the equality phase but is tolerated here
// per §4.2.3) pass through unchanged.
//
// Grounded on original_source/fourier_motzkin.cpp's
// ConstraintConjuction::eliminate_variable_by_inequality.
func eliminateByInequality(rows []Constraint, varIndex int, maxConstraints int) ([]Constraint, error) {
	var upper, lower []int

	for i, c := range rows {
		coef := c.LHS[varIndex]
		if coef.IsZero() {
			continue
		}

		switch c.Rel {
		case LT:
			if coef.Sign() > 0 {
				upper = append(upper, i)
			} else {
				lower = append(lower, i)
			}
		case GT:
			if coef.Sign() > 0 {
				lower = append(lower, i)
			} else {
				upper = append(upper, i)
			}
		case EQ:
			// Should not occur post-equality-phase; the implementation may
			// ignore it for this step (§4.2.3).
		}
	}

	arity := 0
	if len(rows) > 0 {
		arity = len(rows[0].LHS)
	}

	synthesized := make([]Constraint, 0, len(upper)*len(lower))

	for _, ui := range upper {
		u := rows[ui]

		for _, li := range lower {
			l := rows[li]
			newLHS := make([]rational.Rational, arity)

			for k := 0; k < arity; k++ {
				uk, _ := u.LHS[k].Div(u.LHS[varIndex])
				lk, _ := l.LHS[k].Div(l.LHS[varIndex])
				newLHS[k] = uk.Sub(lk)
			}

			uRHS, _ := u.RHS.Div(u.LHS[varIndex])
			lRHS, _ := l.RHS.Div(l.LHS[varIndex])

			synthesized = append(synthesized, Constraint{
				LHS: newLHS,
				Rel: LT,
				RHS: uRHS.Sub(lRHS),
			})
		}
	}

	removed := make(map[int]bool, len(upper)+len(lower))
	for _, i := range upper {
		removed[i] = true
	}

	for _, i := range lower {
		removed[i] = true
	}

	kept := make([]Constraint, 0, len(rows)-len(removed))

	for i, c := range rows {
		if !removed[i] {
			kept = append(kept, c)
		}
	}

	result := append(kept, synthesized...)

	if maxConstraints > 0 && len(result) > maxConstraints {
		return nil, &proverr.ResourceExhaustedError{Limit: maxConstraints, Got: len(result)}
	}

	return result, nil
}
