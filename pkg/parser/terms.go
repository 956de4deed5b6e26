package parser

import (
	"errors"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/proverr"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

// constFromDigits builds a Const term from a run of decimal digits already
// known to be well-formed (isDigit-validated by the caller).
func constFromDigits(digits string) ast.Term {
	return &ast.Const{Value: rational.FromString(digits)}
}

// foldConst evaluates t to a constant rational if it is built purely from
// Const/Add/Sub nodes; Var and Mul make it non-constant.
func foldConst(t ast.Term) (rational.Rational, bool) {
	switch n := t.(type) {
	case *ast.Const:
		return n.Value, true
	case *ast.Add:
		l, ok := foldConst(n.L)
		if !ok {
			return rational.Rational{}, false
		}

		r, ok := foldConst(n.R)
		if !ok {
			return rational.Rational{}, false
		}

		return l.Add(r), true
	case *ast.Sub:
		l, ok := foldConst(n.L)
		if !ok {
			return rational.Rational{}, false
		}

		r, ok := foldConst(n.R)
		if !ok {
			return rational.Rational{}, false
		}

		return l.Sub(r), true
	default:
		return rational.Rational{}, false
	}
}

// scaleTerm distributes a constant coefficient k over t, preserving the
// Const/Mul/Add/Sub shape pkg/ast's Term type requires once constants are
// pushed inward (see ast.Mul's doc comment).
func scaleTerm(t ast.Term, k rational.Rational) ast.Term {
	switch n := t.(type) {
	case *ast.Const:
		return &ast.Const{Value: n.Value.Mul(k)}
	case *ast.Var:
		return &ast.Mul{Coef: k, Var: n.Name}
	case *ast.Mul:
		return &ast.Mul{Coef: n.Coef.Mul(k), Var: n.Var}
	case *ast.Add:
		return &ast.Add{L: scaleTerm(n.L, k), R: scaleTerm(n.R, k)}
	case *ast.Sub:
		return &ast.Sub{L: scaleTerm(n.L, k), R: scaleTerm(n.R, k)}
	default:
		panic("unreachable term kind in scaleTerm")
	}
}

// multiplyTerms reduces a*b to the restricted Term shape: the grammar's
// general "*" is only linear when at least one operand is a constant
// expression, which is exactly the precondition the rest of the system
// (the normaliser, the bridge) assumes of Mul.
func multiplyTerms(a, b ast.Term) (ast.Term, error) {
	if k, ok := foldConst(a); ok {
		return scaleTerm(b, k), nil
	}

	if k, ok := foldConst(b); ok {
		return scaleTerm(a, k), nil
	}

	return nil, errors.New("nonlinear multiplication of two non-constant terms")
}

// divideTerms reduces a/b, which is only linear when b is a constant
// expression.
func divideTerms(a, b ast.Term) (ast.Term, error) {
	k, ok := foldConst(b)
	if !ok {
		return nil, errors.New("division by a non-constant term")
	}

	if k.IsZero() {
		return nil, &proverr.DivisionByZeroError{}
	}

	inv, _ := rational.FromInt(1).Div(k) // k checked non-zero above

	return scaleTerm(a, inv), nil
}
