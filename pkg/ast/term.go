// Package ast defines the Term, Atom and Formula sum types of the
// first-order language and their constructors. Free/bound-variable
// collection and capture-avoiding substitution live in pkg/normal.
//
// All values are immutable once constructed; every transformation in this
// module returns a new value rather than mutating its argument, and
// subterms may be shared freely between trees since nothing is ever
// mutated in place.
package ast

import (
	"fmt"
	"reflect"

	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// Term represents a component of a linear arithmetic expression.
type Term interface {
	isTerm()
}

// Const is a rational literal.
type Const struct{ Value rational.Rational }

func (*Const) isTerm() {}

// Var is a reference to a variable drawn from the user-supplied alphabet.
type Var struct{ Name string }

func (*Var) isTerm() {}

// Add is the sum of two terms.
type Add struct{ L, R Term }

func (*Add) isTerm() {}

// Sub is the difference of two terms.
type Sub struct{ L, R Term }

func (*Sub) isTerm() {}

// Mul is a rational coefficient times a single variable. Source syntax may
// use general multiplication and division by constants; pkg/parser reduces
// them to this shape while parsing, by pushing constants inward.
type Mul struct {
	Coef rational.Rational
	Var  string
}

func (*Mul) isTerm() {}

// termTypeName returns a short diagnostic name for an unreachable type-switch
// arm; used only in panic messages for nodes that should never occur.
func termTypeName(t Term) string {
	return reflect.TypeOf(t).String()
}

func unreachableTerm(t Term) {
	panic(fmt.Sprintf("unreachable term kind %s", termTypeName(t)))
}
