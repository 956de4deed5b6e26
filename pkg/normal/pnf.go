package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

func forallCtor(v string, body ast.Formula) ast.Formula { return &ast.Forall{Var: v, Body: body} }
func existsCtor(v string, body ast.Formula) ast.Formula { return &ast.Exists{Var: v, Body: body} }

// PNF puts f in NNF (via NNF) and then pulls quantifiers outward, producing
// a quantifier prefix over a quantifier-free matrix, without capturing any
// variable. Grounded on original_source/fol_ast.cpp's pnf/pnf_h/pull_quantifiers.
func PNF(f ast.Formula) ast.Formula {
	return pnfRec(NNF(f))
}

func pnfRec(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF, *ast.True, *ast.False, *ast.Not:
		return f
	case *ast.And:
		return pullQuantifiers(&ast.And{L: pnfRec(n.L), R: pnfRec(n.R)})
	case *ast.Or:
		return pullQuantifiers(&ast.Or{L: pnfRec(n.L), R: pnfRec(n.R)})
	case *ast.Forall:
		return pullSingleQuantifier(n.Var, n.Body, forallCtor)
	case *ast.Exists:
		return pullSingleQuantifier(n.Var, n.Body, existsCtor)
	default:
		ast.Unreachable(f)
		return nil
	}
}

// pullSingleQuantifier handles the Qx.Qx.G case: if x already occurs
// quantified somewhere within G, the outer x is renamed away from the
// quantified variables of G before recursing into it.
func pullSingleQuantifier(v string, body ast.Formula, mkQuant func(string, ast.Formula) ast.Formula) ast.Formula {
	quantified := QuantifiedVars(body)
	if quantified.contains(v) {
		newVar := freshVariable(v, quantified)
		return mkQuant(newVar, pnfRec(Substitute(body, v, newVar)))
	}

	return mkQuant(v, pnfRec(body))
}

// pullQuantifiers processes a binary node whose operands have already been
// recursively prenexed, pulling at most one quantifier level out per call
// (the result is fed back into pullQuantifiers until no operand starts with
// a quantifier).
func pullQuantifiers(f ast.Formula) ast.Formula {
	switch n := f.(type) {
	case *ast.AtomF, *ast.True, *ast.False, *ast.Not:
		return f
	case *ast.And:
		return pullFromConjunction(n)
	case *ast.Or:
		return pullFromDisjunction(n)
	case *ast.Forall:
		return f
	case *ast.Exists:
		return f
	default:
		ast.Unreachable(f)
		return nil
	}
}

func pullFromConjunction(n *ast.And) ast.Formula {
	mkBinary := func(l, r ast.Formula) ast.Formula { return &ast.And{L: l, R: r} }

	if lf, ok := n.L.(*ast.Forall); ok {
		if rf, ok2 := n.R.(*ast.Forall); ok2 && lf.Var == rf.Var {
			// !x.A & !x.B == !x.(A & B)
			return &ast.Forall{Var: lf.Var, Body: pullQuantifiers(&ast.And{L: lf.Body, R: rf.Body})}
		}

		return pullFromBinary(mkBinary, n.L, n.R, lf.Var, lf.Body, true, forallCtor)
	}

	if le, ok := n.L.(*ast.Exists); ok {
		return pullFromBinary(mkBinary, n.L, n.R, le.Var, le.Body, true, existsCtor)
	}

	if rf, ok := n.R.(*ast.Forall); ok {
		return pullFromBinary(mkBinary, n.L, n.R, rf.Var, rf.Body, false, forallCtor)
	}

	if re, ok := n.R.(*ast.Exists); ok {
		return pullFromBinary(mkBinary, n.L, n.R, re.Var, re.Body, false, existsCtor)
	}

	return &ast.And{L: pullQuantifiers(n.L), R: pullQuantifiers(n.R)}
}

func pullFromDisjunction(n *ast.Or) ast.Formula {
	mkBinary := func(l, r ast.Formula) ast.Formula { return &ast.Or{L: l, R: r} }

	if le, ok := n.L.(*ast.Exists); ok {
		if re, ok2 := n.R.(*ast.Exists); ok2 && le.Var == re.Var {
			// ?x.A | ?x.B == ?x.(A | B) -- an existential, not a universal
			// (original_source mislabels this merge as a
			// UniversalQuantification; that is a transcription bug, not the
			// specified behaviour).
			return &ast.Exists{Var: le.Var, Body: pullQuantifiers(&ast.Or{L: le.Body, R: re.Body})}
		}

		return pullFromBinary(mkBinary, n.L, n.R, le.Var, le.Body, true, existsCtor)
	}

	if lf, ok := n.L.(*ast.Forall); ok {
		return pullFromBinary(mkBinary, n.L, n.R, lf.Var, lf.Body, true, forallCtor)
	}

	if re, ok := n.R.(*ast.Exists); ok {
		return pullFromBinary(mkBinary, n.L, n.R, re.Var, re.Body, false, existsCtor)
	}

	if rf, ok := n.R.(*ast.Forall); ok {
		return pullFromBinary(mkBinary, n.L, n.R, rf.Var, rf.Body, false, forallCtor)
	}

	return &ast.Or{L: pullQuantifiers(n.L), R: pullQuantifiers(n.R)}
}

// pullFromBinary pulls a single quantifier (over quantVar, with body
// quantBody) out of one side of a binary node, renaming it first if it
// would otherwise capture a free occurrence of the same symbol on the
// other side.
func pullFromBinary(
	mkBinary func(l, r ast.Formula) ast.Formula,
	left, right ast.Formula,
	quantVar string,
	quantBody ast.Formula,
	quantifierOnLeft bool,
	mkQuant func(string, ast.Formula) ast.Formula,
) ast.Formula {
	otherSide := right
	if !quantifierOnLeft {
		otherSide = left
	}

	freeVars := FreeVars(otherSide)

	body := quantBody
	if freeVars.contains(quantVar) {
		newVar := freshVariable(quantVar, freeVars)
		body = Substitute(quantBody, quantVar, newVar)
		quantVar = newVar
	}

	var rebuilt ast.Formula
	if quantifierOnLeft {
		rebuilt = mkBinary(body, right)
	} else {
		rebuilt = mkBinary(left, body)
	}

	return mkQuant(quantVar, pullQuantifiers(rebuilt))
}
