package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// Substitute performs capture-avoiding renaming of the free variable symbol
// x to y inside f, per §4.1.3. Grounded on original_source/fol_ast.cpp's
// substitute(Formula, var, s_var) overload (there the replacement is always
// itself a bare variable symbol, never a general term — this module keeps
// that restriction, since it is all pnf's pull_quantifiers ever needs).
func Substitute(f ast.Formula, x, y string) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF:
		return &ast.AtomF{Atom: substituteAtom(n.Atom, x, y)}
	case *ast.True, *ast.False:
		return f
	case *ast.Not:
		return &ast.Not{F: Substitute(n.F, x, y)}
	case *ast.And:
		return &ast.And{L: Substitute(n.L, x, y), R: Substitute(n.R, x, y)}
	case *ast.Or:
		return &ast.Or{L: Substitute(n.L, x, y), R: Substitute(n.R, x, y)}
	case *ast.Imp:
		return &ast.Imp{L: Substitute(n.L, x, y), R: Substitute(n.R, x, y)}
	case *ast.Iff:
		return &ast.Iff{L: Substitute(n.L, x, y), R: Substitute(n.R, x, y)}
	case *ast.Forall:
		return substituteQuantified(f, n.Var, n.Body, x, y,
			func(v string, body ast.Formula) ast.Formula { return &ast.Forall{Var: v, Body: body} })
	case *ast.Exists:
		return substituteQuantified(f, n.Var, n.Body, x, y,
			func(v string, body ast.Formula) ast.Formula { return &ast.Exists{Var: v, Body: body} })
	default:
		ast.Unreachable(f)
		return nil
	}
}

// substituteQuantified implements the shared shadowing logic for Forall and
// Exists: stop if the bound variable shadows x; rename the bound variable
// away from y first if it would otherwise capture the incoming y.
func substituteQuantified(
	original ast.Formula,
	boundVar string,
	body ast.Formula,
	x, y string,
	rebuild func(v string, body ast.Formula) ast.Formula,
) ast.Formula {
	if boundVar == x {
		return original
	}

	if boundVar == y {
		freshVar := freshVariable(boundVar, newStringSet(y))
		renamedBody := Substitute(body, boundVar, freshVar)

		return rebuild(freshVar, Substitute(renamedBody, x, y))
	}

	return rebuild(boundVar, Substitute(body, x, y))
}

func substituteAtom(atom *ast.Atom, x, y string) *ast.Atom {
	return ast.NewAtom(atom.Relation, substituteTerm(atom.L, x, y), substituteTerm(atom.R, x, y))
}

func substituteTerm(term ast.Term, x, y string) ast.Term {
	switch t := term.(type) {
	case *ast.Const:
		return term
	case *ast.Var:
		if t.Name == x {
			return &ast.Var{Name: y}
		}

		return term
	case *ast.Add:
		return &ast.Add{L: substituteTerm(t.L, x, y), R: substituteTerm(t.R, x, y)}
	case *ast.Sub:
		return &ast.Sub{L: substituteTerm(t.L, x, y), R: substituteTerm(t.R, x, y)}
	case *ast.Mul:
		if t.Var == x {
			return &ast.Mul{Coef: t.Coef, Var: y}
		}

		return term
	default:
		panic("unreachable term kind in substituteTerm")
	}
}
