// Package constraint implements the Fourier-Motzkin engine: Constraint,
// ConstraintConjunction, single-variable elimination by equality and by
// inequality, and the trivial-satisfiability check on constraint-free
// remainders (§4.2).
package constraint

import (
	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// Relation is the relation carried by a Constraint. The engine only ever
// works with these three; Le/Ge/Ne are eliminated upstream by
// normal.SimplifyConstraints before a formula ever reaches the bridge.
type Relation int

const (
	// EQ is lhs·x = rhs.
	EQ Relation = iota
	// LT is lhs·x < rhs.
	LT
	// GT is lhs·x > rhs.
	GT
)

// Constraint is lhs·x rel rhs for a row vector lhs of the same length as
// every other constraint in its enclosing ConstraintConjunction.
type Constraint struct {
	LHS []rational.Rational
	Rel Relation
	RHS rational.Rational
}

// clone returns a deep copy of c (the engine never mutates a Constraint
// shared with the caller's original conjunction; see ConstraintConjunction).
func (c Constraint) clone() Constraint {
	lhs := make([]rational.Rational, len(c.LHS))
	copy(lhs, c.LHS)

	return Constraint{LHS: lhs, Rel: c.Rel, RHS: c.RHS}
}

// ConstraintConjunction is an ordered, semantically-conjoined list of
// Constraints sharing a single column count.
type ConstraintConjunction struct {
	rows []Constraint
	// arity is the shared lhs length; zero constraints still carries the
	// arity it was constructed with, so callers that go on to call
	// EliminateVariable know which column to target.
	arity int
}

// NewConjunction constructs a ConstraintConjunction from cs. Zero
// constraints is permitted and denotes True; its arity is taken from
// arity, the column count shared by every constraint elsewhere in the
// originating formula's variable mapping.
func NewConjunction(cs []Constraint, arity int) (*ConstraintConjunction, error) {
	for _, c := range cs {
		if len(c.LHS) != arity {
			return nil, &proverr.ArityMismatchError{Expected: arity, Got: len(c.LHS)}
		}
	}

	rows := make([]Constraint, len(cs))
	for i, c := range cs {
		rows[i] = c.clone()
	}

	return &ConstraintConjunction{rows: rows, arity: arity}, nil
}

// Arity returns the shared column count.
func (cc *ConstraintConjunction) Arity() int {
	return cc.arity
}

// Len returns the number of constraints.
func (cc *ConstraintConjunction) Len() int {
	return len(cc.rows)
}

// Rows returns a defensive copy of the conjunction's constraints, in
// insertion order.
func (cc *ConstraintConjunction) Rows() []Constraint {
	out := make([]Constraint, len(cc.rows))
	for i, c := range cc.rows {
		out[i] = c.clone()
	}

	return out
}

func cloneRows(rows []Constraint) []Constraint {
	out := make([]Constraint, len(rows))
	for i, c := range rows {
		out[i] = c.clone()
	}

	return out
}
