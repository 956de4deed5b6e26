package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// DNF puts f in prenex form (via PNF) and then distributes And over Or in
// the quantifier-free matrix, leaving the quantifier prefix untouched. Grounded on
// original_source/fol_ast.cpp's dnf/dnf_h, with the Exists-under-Forall bug
// documented in spec.md §9 fixed: the quantifier kind is preserved.
func DNF(f ast.Formula) ast.Formula {
	return dnfRec(PNF(f))
}

func dnfRec(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF, *ast.True, *ast.False, *ast.Not:
		return f
	case *ast.And:
		left := dnfRec(n.L)
		right := dnfRec(n.R)

		if lor, ok := left.(*ast.Or); ok {
			return &ast.Or{
				L: dnfRec(&ast.And{L: lor.L, R: right}),
				R: dnfRec(&ast.And{L: lor.R, R: right}),
			}
		}

		if ror, ok := right.(*ast.Or); ok {
			return &ast.Or{
				L: dnfRec(&ast.And{L: left, R: ror.L}),
				R: dnfRec(&ast.And{L: left, R: ror.R}),
			}
		}

		return &ast.And{L: left, R: right}
	case *ast.Or:
		return &ast.Or{L: dnfRec(n.L), R: dnfRec(n.R)}
	case *ast.Forall:
		return &ast.Forall{Var: n.Var, Body: dnfRec(n.Body)}
	case *ast.Exists:
		return &ast.Exists{Var: n.Var, Body: dnfRec(n.Body)}
	default:
		ast.Unreachable(f)
		return nil
	}
}
