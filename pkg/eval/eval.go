// Package eval implements the ground evaluator (§4.5): deciding a
// quantifier-free, variable-free formula to a boolean, and its closed
// terms to a rational value.
package eval

import (
	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// Term evaluates a closed term (no Var, no Mul — those are an internal
// invariant violation here, since every variable must already have been
// eliminated by the QE driver before a subformula reaches the evaluator).
func Term(t ast.Term) rational.Rational {
	switch n := t.(type) {
	case *ast.Const:
		return n.Value
	case *ast.Add:
		return Term(n.L).Add(Term(n.R))
	case *ast.Sub:
		return Term(n.L).Sub(Term(n.R))
	case *ast.Var, *ast.Mul:
		panic("eval.Term: variable in a closed term")
	default:
		panic("unreachable term kind in eval.Term")
	}
}

// Atom evaluates an atom by comparing its two term values under the
// indicated relation.
func Atom(a *ast.Atom) bool {
	l, r := Term(a.L), Term(a.R)

	switch a.Relation {
	case ast.Eq:
		return l.Equal(r)
	case ast.Lt:
		return l.Less(r)
	case ast.Le:
		return l.Less(r) || l.Equal(r)
	case ast.Gt:
		return l.Greater(r)
	case ast.Ge:
		return l.Greater(r) || l.Equal(r)
	case ast.Ne:
		return !l.Equal(r)
	default:
		panic("unreachable relation in eval.Atom")
	}
}

// Formula evaluates a quantifier-free, variable-free formula to a boolean.
func Formula(f ast.Formula) bool {
	switch n := f.(type) {
	case *ast.AtomF:
		return Atom(n.Atom)
	case *ast.True:
		return true
	case *ast.False:
		return false
	case *ast.Not:
		return !Formula(n.F)
	case *ast.And:
		return Formula(n.L) && Formula(n.R)
	case *ast.Or:
		return Formula(n.L) || Formula(n.R)
	case *ast.Imp:
		if Formula(n.L) {
			return Formula(n.R)
		}

		return true
	case *ast.Iff:
		return Formula(n.L) == Formula(n.R)
	case *ast.Forall, *ast.Exists:
		panic("eval.Formula: quantifier in a quantifier-free formula")
	default:
		ast.Unreachable(f)
		return false
	}
}
