// Package printer implements the precedence-aware pretty-printer of §4.6,
// rendering a Formula/Term back into the concrete syntax of §6's grammar.
//
// Grounded on original_source/fol_string_conversion.cpp's
// formula_to_string/term_to_string precedence-table-and-wrap idiom,
// translated from its std::visit overload sets to Go type switches.
package printer

import (
	"fmt"
	"strings"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/rational"
)

var oneRational = rational.FromInt(1)

// Formula renders f using the grammar's concrete syntax, with the minimum
// parenthesisation the precedence table in §4.6 requires.
func Formula(f ast.Formula) string {
	return formulaString(f)
}

// Term renders t using the grammar's concrete syntax.
func Term(t ast.Term) string {
	return termString(t)
}

func termPrecedence(t ast.Term) int {
	switch t.(type) {
	case *ast.Const, *ast.Var, *ast.Mul:
		return 2
	case *ast.Add, *ast.Sub:
		return 0
	default:
		panic(fmt.Sprintf("unreachable term kind %T in printer", t))
	}
}

func termString(t ast.Term) string {
	switch n := t.(type) {
	case *ast.Const:
		return n.Value.String()
	case *ast.Var:
		return n.Name
	case *ast.Mul:
		switch {
		case n.Coef.Equal(oneRational):
			return n.Var
		case n.Coef.Equal(oneRational.Neg()):
			return "-" + n.Var
		default:
			return n.Coef.String() + "*" + n.Var
		}
	case *ast.Add:
		return wrapTerm(n.L, t) + "+" + wrapTerm(n.R, t)
	case *ast.Sub:
		// The right operand of "-" also needs parens at equal precedence:
		// x-(y+z) printed as x-y+z would reparse as (x-y)+z.
		right := termString(n.R)
		if termPrecedence(n.R) <= termPrecedence(t) {
			right = "(" + right + ")"
		}

		return wrapTerm(n.L, t) + "-" + right
	default:
		panic(fmt.Sprintf("unreachable term kind %T in printer", t))
	}
}

func wrapTerm(child, parent ast.Term) string {
	if termPrecedence(child) < termPrecedence(parent) {
		return "(" + termString(child) + ")"
	}

	return termString(child)
}

func formulaPrecedence(f ast.Formula) int {
	switch f.(type) {
	case *ast.AtomF, *ast.True, *ast.False:
		return 6
	case *ast.Not:
		return 5
	case *ast.And:
		return 4
	case *ast.Or:
		return 3
	case *ast.Imp:
		return 2
	case *ast.Iff:
		return 1
	case *ast.Forall, *ast.Exists:
		return 0
	default:
		ast.Unreachable(f)
		return 0
	}
}

func formulaString(f ast.Formula) string {
	switch n := f.(type) {
	case *ast.AtomF:
		return atomString(n.Atom)
	case *ast.True:
		return "T"
	case *ast.False:
		return "F"
	case *ast.Not:
		return "~" + wrapFormula(n.F, f)
	case *ast.And:
		return wrapFormula(n.L, f) + " & " + wrapFormula(n.R, f)
	case *ast.Or:
		return wrapFormula(n.L, f) + " | " + wrapFormula(n.R, f)
	case *ast.Imp:
		return wrapFormula(n.L, f) + " => " + wrapFormula(n.R, f)
	case *ast.Iff:
		return wrapFormula(n.L, f) + " <=> " + wrapFormula(n.R, f)
	case *ast.Forall:
		return "!" + n.Var + "." + wrapFormula(n.Body, f)
	case *ast.Exists:
		return "?" + n.Var + "." + wrapFormula(n.Body, f)
	default:
		ast.Unreachable(f)
		return ""
	}
}

func wrapFormula(child, parent ast.Formula) string {
	if formulaPrecedence(child) < formulaPrecedence(parent) {
		return "(" + formulaString(child) + ")"
	}

	return formulaString(child)
}

func atomString(a *ast.Atom) string {
	var b strings.Builder

	b.WriteString(termString(a.L))
	b.WriteString(a.Relation.String())
	b.WriteString(termString(a.R))

	return b.String()
}
