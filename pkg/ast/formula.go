package ast

import (
	"fmt"
	"reflect"
)

// Formula represents a (possibly quantified) first-order formula over
// linear-arithmetic atoms.
type Formula interface {
	isFormula()
}

// AtomF wraps an atomic constraint as a formula.
type AtomF struct{ Atom *Atom }

func (*AtomF) isFormula() {}

// True is the logical constant "T".
type True struct{}

func (*True) isFormula() {}

// False is the logical constant "F".
type False struct{}

func (*False) isFormula() {}

// Not is logical negation.
type Not struct{ F Formula }

func (*Not) isFormula() {}

// And is logical conjunction.
type And struct{ L, R Formula }

func (*And) isFormula() {}

// Or is logical disjunction.
type Or struct{ L, R Formula }

func (*Or) isFormula() {}

// Imp is logical implication, L => R.
type Imp struct{ L, R Formula }

func (*Imp) isFormula() {}

// Iff is logical equivalence, L <=> R.
type Iff struct{ L, R Formula }

func (*Iff) isFormula() {}

// Forall is universal quantification over a single variable.
type Forall struct {
	Var  string
	Body Formula
}

func (*Forall) isFormula() {}

// Exists is existential quantification over a single variable.
type Exists struct {
	Var  string
	Body Formula
}

func (*Exists) isFormula() {}

func formulaTypeName(f Formula) string {
	return reflect.TypeOf(f).String()
}

// Unreachable panics with a diagnostic naming the offending Formula node.
// Exported for use by other packages (normal, eval, printer, qe) whose
// total case-analyses over Formula share this fallback.
func Unreachable(f Formula) {
	panic(fmt.Sprintf("unreachable formula kind %s", formulaTypeName(f)))
}
