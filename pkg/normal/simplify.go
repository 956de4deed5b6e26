package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// Simplify performs constant folding over the boolean connectives and
// quantifiers, applied bottom-up: subformulas are simplified before the
// current node is reduced. Grounded on original_source/fol_ast.cpp's
// simplify().
func Simplify(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.Not:
		sub := Simplify(n.F)

		switch sub.(type) {
		case *ast.True:
			return &ast.False{}
		case *ast.False:
			return &ast.True{}
		default:
			return &ast.Not{F: sub}
		}
	case *ast.And:
		l := Simplify(n.L)
		r := Simplify(n.R)

		if isFalse(l) || isFalse(r) {
			return &ast.False{}
		} else if isTrue(l) {
			return r
		} else if isTrue(r) {
			return l
		}

		return &ast.And{L: l, R: r}
	case *ast.Or:
		l := Simplify(n.L)
		r := Simplify(n.R)

		if isTrue(l) || isTrue(r) {
			return &ast.True{}
		} else if isFalse(l) {
			return r
		} else if isFalse(r) {
			return l
		}

		return &ast.Or{L: l, R: r}
	case *ast.Imp:
		l := Simplify(n.L)
		r := Simplify(n.R)

		if isFalse(l) || isTrue(r) {
			return &ast.True{}
		} else if isTrue(l) {
			return r
		} else if isFalse(r) {
			return &ast.Not{F: l}
		}

		return &ast.Imp{L: l, R: r}
	case *ast.Iff:
		l := Simplify(n.L)
		r := Simplify(n.R)

		if isTrue(l) {
			return r
		} else if isTrue(r) {
			return l
		} else if isFalse(l) {
			return &ast.Not{F: r}
		} else if isFalse(r) {
			return &ast.Not{F: l}
		}

		return &ast.Iff{L: l, R: r}
	case *ast.Forall:
		sub := Simplify(n.Body)
		if isTrue(sub) || isFalse(sub) {
			return sub
		}

		return &ast.Forall{Var: n.Var, Body: sub}
	case *ast.Exists:
		sub := Simplify(n.Body)
		if isTrue(sub) || isFalse(sub) {
			return sub
		}

		return &ast.Exists{Var: n.Var, Body: sub}
	default:
		// AtomF, True, False pass through unchanged.
		return f
	}
}

func isTrue(f ast.Formula) bool {
	_, ok := f.(*ast.True)
	return ok
}

func isFalse(f ast.Formula) bool {
	_, ok := f.(*ast.False)
	return ok
}
