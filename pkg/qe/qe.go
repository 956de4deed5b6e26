// Package qe implements the quantifier-elimination driver (§4.4) and the
// IsTheorem entry point that completes original_source/theorem_prover.cpp's
// stubbed is_theorem (see SPEC_FULL.md "Supplemented features"): close the
// input formula, eliminate its quantifier prefix one variable at a time
// against a single VariableMapping, and hand the quantifier-free,
// variable-free remainder to pkg/eval.
package qe

import (
	"fmt"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/bridge"
	"github.com/gokiburi-labs/folprover/pkg/constraint"
	"github.com/gokiburi-labs/folprover/pkg/eval"
	"github.com/gokiburi-labs/folprover/pkg/normal"
	"github.com/gokiburi-labs/folprover/pkg/trace"
)

// IsTheorem decides whether f holds over the rationals: it is closed
// (existentially, over whatever free variables remain), put in prenex
// form, and its quantifier prefix eliminated; the quantifier-free,
// variable-free remainder is then evaluated directly.
func IsTheorem(f ast.Formula, maxConstraints int) (bool, error) {
	return IsTheoremTraced(f, maxConstraints, nil)
}

// IsTheoremTraced is IsTheorem with an optional Trace recording the
// original formula, its closed prenex form, the result of eliminating
// each quantifier, and the final verdict — the proof trace the CLI's
// --verbose flag surfaces. tr may be nil, in which case no recording
// happens.
func IsTheoremTraced(f ast.Formula, maxConstraints int, tr *trace.Trace) (bool, error) {
	if tr != nil {
		tr.Record("original", f)
	}

	closed := normal.PNF(normal.Close(f))
	if tr != nil {
		tr.Record("closed-pnf", closed)
	}

	result, err := eliminateQuantifiers(closed, maxConstraints, tr)
	if err != nil {
		return false, err
	}

	verdict := eval.Formula(result)
	if tr != nil {
		tr.RecordVerdict(verdict)
	}

	return verdict, nil
}

// EliminateQuantifiers runs the §4.4 driver over a formula already in
// closed prenex normal form, returning the quantifier-free result of
// eliminating every quantifier in its prefix. maxConstraints bounds each
// Fourier-Motzkin elimination step's row growth (0 means unbounded).
func EliminateQuantifiers(f ast.Formula, maxConstraints int) (ast.Formula, error) {
	return eliminateQuantifiers(f, maxConstraints, nil)
}

func eliminateQuantifiers(f ast.Formula, maxConstraints int, tr *trace.Trace) (ast.Formula, error) {
	return qeRec(f, constraint.NewVariableMapping(), maxConstraints, tr)
}

// qeRec is the driver's recursion. On a quantifier node it descends into
// the body, normalises the result, eliminates the bound variable's column
// from every conjunction, and returns the lifted remainder. On any other
// node — by the closed-PNF precondition, the quantifier-free matrix — it
// returns the node unchanged.
func qeRec(f ast.Formula, mapping *constraint.VariableMapping, maxConstraints int, tr *trace.Trace) (ast.Formula, error) {
	switch n := f.(type) {
	case *ast.Forall:
		return eliminateQuantifier(n.Var, n.Body, false, mapping, maxConstraints, tr)
	case *ast.Exists:
		return eliminateQuantifier(n.Var, n.Body, true, mapping, maxConstraints, tr)
	case *ast.AtomF, *ast.True, *ast.False, *ast.Not, *ast.And, *ast.Or, *ast.Imp, *ast.Iff:
		return f, nil
	default:
		ast.Unreachable(f)
		return nil, nil
	}
}

// eliminateQuantifier implements steps 1-7 of §4.4 for a single ∃x.G or
// ∀x.G node.
func eliminateQuantifier(v string, body ast.Formula, isExists bool, mapping *constraint.VariableMapping, maxConstraints int, tr *trace.Trace) (ast.Formula, error) {
	idx := mapping.Add(v)
	defer mapping.Remove(v)

	gPrime, err := qeRec(body, mapping, maxConstraints, tr)
	if err != nil {
		return nil, err
	}

	var b ast.Formula
	if isExists {
		b = gPrime
	} else {
		// Universal duality: ∀x.G ≡ ¬∃x.¬G.
		b = &ast.Not{F: gPrime}
	}

	normalized := normal.DNF(normal.SimplifyConstraints(normal.NNF(b)))

	var result ast.Formula

	switch normalized.(type) {
	case *ast.True, *ast.False:
		result = normalized
	default:
		ccs, err := bridge.FormulaToConjunctions(normalized, mapping)
		if err != nil {
			return nil, err
		}

		eliminated := make([]*constraint.ConstraintConjunction, len(ccs))

		for i, cc := range ccs {
			ec, err := cc.EliminateVariable(idx, maxConstraints)
			if err != nil {
				return nil, err
			}

			eliminated[i] = ec
		}

		result = bridge.ConjunctionsToFormula(eliminated, mapping)
	}

	var final ast.Formula
	if isExists {
		final = result
	} else {
		final = &ast.Not{F: result}
	}

	if tr != nil {
		symbol := "?"
		if !isExists {
			symbol = "!"
		}

		tr.Record(fmt.Sprintf("eliminate %s%s", symbol, v), final)
	}

	return final, nil
}
