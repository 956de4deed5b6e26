// Package rational provides an exact rational number type used throughout
// the theorem prover as the ground field for linear arithmetic.
package rational

import (
	"math/big"

	"github.com/gokiburi-labs/folprover/pkg/proverr"
)

// Rational is an exact, arbitrary-precision rational number. The zero value
// is not valid; always construct via New, FromInt or Zero.
//
// Invariant: every Rational is kept in canonical form (coprime numerator and
// denominator, denominator strictly positive). math/big.Rat already
// maintains this invariant internally, so Rational is a thin wrapper that
// adds the domain's zero-denominator error and a handful of convenience
// constructors/predicates spelled out in the data model.
type Rational struct {
	val *big.Rat
}

// Zero is the rational 0/1.
func Zero() Rational {
	return Rational{val: new(big.Rat)}
}

// FromInt constructs a Rational from an integer numerator with denominator 1.
func FromInt(n int64) Rational {
	return Rational{val: new(big.Rat).SetInt64(n)}
}

// New constructs a Rational from an integer numerator and denominator.
// Returns DivisionByZeroError if denominator is zero.
func New(numerator, denominator int64) (Rational, error) {
	if denominator == 0 {
		return Rational{}, &proverr.DivisionByZeroError{}
	}

	return Rational{val: new(big.Rat).SetFrac64(numerator, denominator)}, nil
}

// FromString parses an integer literal of arbitrary size (the parser's
// NUMBER token may exceed int64 range) into a Rational with denominator 1.
// Panics if digits is not a valid integer literal — the parser only calls
// this on a run of decimal digits it has already validated.
func FromString(digits string) Rational {
	v, ok := new(big.Rat).SetString(digits)
	if !ok {
		panic("rational.FromString: not a valid integer literal: " + digits)
	}

	return Rational{val: v}
}

// mustRat wraps a *big.Rat that is already known to be well-formed (e.g. the
// result of an arithmetic operation on two valid Rationals, which can never
// divide by zero except in Div).
func mustRat(r *big.Rat) Rational {
	return Rational{val: r}
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return mustRat(new(big.Rat).Add(r.val, other.val))
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return mustRat(new(big.Rat).Sub(r.val, other.val))
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return mustRat(new(big.Rat).Mul(r.val, other.val))
}

// Div returns r / other. Returns DivisionByZeroError if other is zero.
func (r Rational) Div(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, &proverr.DivisionByZeroError{}
	}

	return mustRat(new(big.Rat).Quo(r.val, other.val)), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return mustRat(new(big.Rat).Neg(r.val))
}

// IsZero reports whether r is exactly zero.
func (r Rational) IsZero() bool {
	return r.val.Sign() == 0
}

// Sign returns -1, 0 or +1 following the sign of r.
func (r Rational) Sign() int {
	return r.val.Sign()
}

// Cmp returns -1, 0 or +1 as r is less than, equal to, or greater than other.
func (r Rational) Cmp(other Rational) int {
	return r.val.Cmp(other.val)
}

// Equal reports whether r and other denote the same rational number.
func (r Rational) Equal(other Rational) bool {
	return r.Cmp(other) == 0
}

// Less reports whether r < other.
func (r Rational) Less(other Rational) bool {
	return r.Cmp(other) < 0
}

// Greater reports whether r > other.
func (r Rational) Greater(other Rational) bool {
	return r.Cmp(other) > 0
}

// String renders the canonical decimal-or-fraction form: an integer when the
// denominator is 1, otherwise "num/den".
func (r Rational) String() string {
	if r.val.IsInt() {
		return r.val.Num().String()
	}

	return r.val.RatString()
}
