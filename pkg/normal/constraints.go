package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// SimplifyConstraints rewrites a formula so that only the Eq, Lt and Gt
// relations remain, per §4.1.7. It must be applied to an NNF formula, so
// that every Not is directly over an AtomF and gets consumed by the
// rewrite.
//
// Grounded on original_source/theorem_prover.cpp's simplify_constraints:
// the real rewriting happens at the Atom level (simplifyAtomConstraints /
// simplifyNegatedAtomConstraints below); this function just threads that
// through the tree, exactly like the original's two-overload split (see
// SPEC_FULL.md "Supplemented features").
func SimplifyConstraints(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF:
		return simplifyAtomConstraints(n.Atom)
	case *ast.True, *ast.False:
		return f
	case *ast.Not:
		if inner, ok := n.F.(*ast.AtomF); ok {
			return simplifyNegatedAtomConstraints(inner.Atom)
		}

		return &ast.Not{F: SimplifyConstraints(n.F)}
	case *ast.And:
		return &ast.And{L: SimplifyConstraints(n.L), R: SimplifyConstraints(n.R)}
	case *ast.Or:
		return &ast.Or{L: SimplifyConstraints(n.L), R: SimplifyConstraints(n.R)}
	case *ast.Imp:
		return &ast.Imp{L: SimplifyConstraints(n.L), R: SimplifyConstraints(n.R)}
	case *ast.Iff:
		return &ast.Iff{L: SimplifyConstraints(n.L), R: SimplifyConstraints(n.R)}
	case *ast.Forall:
		return &ast.Forall{Var: n.Var, Body: SimplifyConstraints(n.Body)}
	case *ast.Exists:
		return &ast.Exists{Var: n.Var, Body: SimplifyConstraints(n.Body)}
	default:
		ast.Unreachable(f)
		return nil
	}
}

// simplifyAtomConstraints rewrites a single atom to a formula using only
// Eq/Lt/Gt atoms.
func simplifyAtomConstraints(atom *ast.Atom) ast.Formula {
	l, r := atom.L, atom.R

	switch atom.Relation {
	case ast.Eq, ast.Lt, ast.Gt:
		return &ast.AtomF{Atom: atom}
	case ast.Le:
		// a <= b == a < b | a = b
		return &ast.Or{L: wrap(ast.Lt, l, r), R: wrap(ast.Eq, l, r)}
	case ast.Ge:
		// a >= b == a > b | a = b
		return &ast.Or{L: wrap(ast.Gt, l, r), R: wrap(ast.Eq, l, r)}
	case ast.Ne:
		// a != b == a < b | b < a
		return &ast.Or{L: wrap(ast.Lt, l, r), R: wrap(ast.Lt, r, l)}
	default:
		panic("unreachable atom relation in simplifyAtomConstraints")
	}
}

// simplifyNegatedAtomConstraints rewrites Not(AtomF(atom)) to a formula
// using only Eq/Lt/Gt atoms.
func simplifyNegatedAtomConstraints(atom *ast.Atom) ast.Formula {
	l, r := atom.L, atom.R

	switch atom.Relation {
	case ast.Eq:
		// ~(a = b) == a != b == a < b | b < a
		return &ast.Or{L: wrap(ast.Lt, l, r), R: wrap(ast.Lt, r, l)}
	case ast.Lt:
		// ~(a < b) == a >= b == a > b | a = b
		return &ast.Or{L: wrap(ast.Gt, l, r), R: wrap(ast.Eq, l, r)}
	case ast.Le:
		// ~(a <= b) == a > b
		return wrap(ast.Gt, l, r)
	case ast.Gt:
		// ~(a > b) == a <= b == a < b | a = b
		return &ast.Or{L: wrap(ast.Lt, l, r), R: wrap(ast.Eq, l, r)}
	case ast.Ge:
		// ~(a >= b) == a < b
		return wrap(ast.Lt, l, r)
	case ast.Ne:
		// ~(a != b) == a = b
		return wrap(ast.Eq, l, r)
	default:
		panic("unreachable atom relation in simplifyNegatedAtomConstraints")
	}
}

func wrap(rel ast.Rel, l, r ast.Term) ast.Formula {
	return &ast.AtomF{Atom: ast.NewAtom(rel, l, r)}
}
