package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// NNF pushes negations down to the atoms, expanding Imp/Iff into And/Or
// along the way. Precondition: none (Simplify is applied internally first,
// per §4.1.2). Postcondition: the result contains Not only directly over an
// AtomF, and no Imp or Iff remain.
//
// Implemented as the mutually recursive nnfPos/nnfNeg pair from
// original_source/fol_ast.cpp's nnf_h/nnf_not.
func NNF(f ast.Formula) ast.Formula {
	return nnfPos(Simplify(f))
}

func nnfPos(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF, *ast.True, *ast.False:
		return f
	case *ast.Not:
		return nnfNeg(n.F)
	case *ast.And:
		return &ast.And{L: nnfPos(n.L), R: nnfPos(n.R)}
	case *ast.Or:
		return &ast.Or{L: nnfPos(n.L), R: nnfPos(n.R)}
	case *ast.Imp:
		// ~l | r
		return &ast.Or{L: nnfNeg(n.L), R: nnfPos(n.R)}
	case *ast.Iff:
		// (l | ~r) & (~l | r)
		return &ast.And{
			L: &ast.Or{L: nnfPos(n.L), R: nnfNeg(n.R)},
			R: &ast.Or{L: nnfNeg(n.L), R: nnfPos(n.R)},
		}
	case *ast.Forall:
		return &ast.Forall{Var: n.Var, Body: nnfPos(n.Body)}
	case *ast.Exists:
		return &ast.Exists{Var: n.Var, Body: nnfPos(n.Body)}
	default:
		ast.Unreachable(f)
		return nil
	}
}

// nnfNeg computes the NNF of Not(f), syntactically distributing the
// negation rather than wrapping the result in an extra Not node.
func nnfNeg(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF:
		return &ast.Not{F: f}
	case *ast.True:
		return &ast.False{}
	case *ast.False:
		return &ast.True{}
	case *ast.Not:
		return nnfPos(n.F)
	case *ast.And:
		// De Morgan: ~(l & r) = ~l | ~r
		return &ast.Or{L: nnfNeg(n.L), R: nnfNeg(n.R)}
	case *ast.Or:
		// ~(l | r) = ~l & ~r
		return &ast.And{L: nnfNeg(n.L), R: nnfNeg(n.R)}
	case *ast.Imp:
		// ~(l => r) = l & ~r
		return &ast.And{L: nnfPos(n.L), R: nnfNeg(n.R)}
	case *ast.Iff:
		// ~(l <=> r) = (l | r) & (~l | ~r)
		return &ast.And{
			L: &ast.Or{L: nnfPos(n.L), R: nnfPos(n.R)},
			R: &ast.Or{L: nnfNeg(n.L), R: nnfNeg(n.R)},
		}
	case *ast.Forall:
		// ~forall x. G = exists x. ~G
		return &ast.Exists{Var: n.Var, Body: nnfNeg(n.Body)}
	case *ast.Exists:
		// ~exists x. G = forall x. ~G
		return &ast.Forall{Var: n.Var, Body: nnfNeg(n.Body)}
	default:
		ast.Unreachable(f)
		return nil
	}
}
