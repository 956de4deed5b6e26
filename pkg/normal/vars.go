package normal

import (
	"sort"
	"strconv"

	"github.com/gokiburi-labs/folprover/pkg/ast"
)

// stringSet is a small set-of-strings helper; the teacher's collect_*
// routines in the original source use std::set<std::string>, which this
// mirrors with a map plus a sorted-keys accessor where determinism matters
// (see Close).
type stringSet map[string]struct{}

func newStringSet(items ...string) stringSet {
	s := make(stringSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

func (s stringSet) contains(x string) bool {
	_, ok := s[x]
	return ok
}

func (s stringSet) add(x string) {
	s[x] = struct{}{}
}

func (s stringSet) remove(x string) {
	delete(s, x)
}

func (s stringSet) sortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func collectTermVars(term ast.Term, vars stringSet) {
	switch t := term.(type) {
	case *ast.Const:
		// no variables
	case *ast.Var:
		vars.add(t.Name)
	case *ast.Add:
		collectTermVars(t.L, vars)
		collectTermVars(t.R, vars)
	case *ast.Sub:
		collectTermVars(t.L, vars)
		collectTermVars(t.R, vars)
	case *ast.Mul:
		vars.add(t.Var)
	default:
		panic("unreachable term kind in collectTermVars")
	}
}

func collectAtomVars(atom *ast.Atom, vars stringSet) {
	collectTermVars(atom.L, vars)
	collectTermVars(atom.R, vars)
}

// FreeVars returns the set of variable symbols occurring free in f.
func FreeVars(f ast.Formula) stringSet {
	vars := make(stringSet)
	collectFreeVars(f, vars)

	return vars
}

func collectFreeVars(f ast.Formula, vars stringSet) {
	switch n := f.(type) {
	case *ast.AtomF:
		collectAtomVars(n.Atom, vars)
	case *ast.True, *ast.False:
		// no variables
	case *ast.Not:
		collectFreeVars(n.F, vars)
	case *ast.And:
		collectFreeVars(n.L, vars)
		collectFreeVars(n.R, vars)
	case *ast.Or:
		collectFreeVars(n.L, vars)
		collectFreeVars(n.R, vars)
	case *ast.Imp:
		collectFreeVars(n.L, vars)
		collectFreeVars(n.R, vars)
	case *ast.Iff:
		collectFreeVars(n.L, vars)
		collectFreeVars(n.R, vars)
	case *ast.Forall:
		wasFree := vars.contains(n.Var)
		collectFreeVars(n.Body, vars)

		if !wasFree {
			vars.remove(n.Var)
		}
	case *ast.Exists:
		wasFree := vars.contains(n.Var)
		collectFreeVars(n.Body, vars)

		if !wasFree {
			vars.remove(n.Var)
		}
	default:
		ast.Unreachable(f)
	}
}

// QuantifiedVars returns the set of variable symbols bound anywhere in f
// (used by pnf/pull-quantifiers to pick fresh names disjoint from the
// quantifiers already present in a subformula).
func QuantifiedVars(f ast.Formula) stringSet {
	vars := make(stringSet)
	collectQuantifiedVars(f, vars)

	return vars
}

func collectQuantifiedVars(f ast.Formula, vars stringSet) {
	switch n := f.(type) {
	case *ast.AtomF, *ast.True, *ast.False:
		// no quantifiers
	case *ast.Not:
		collectQuantifiedVars(n.F, vars)
	case *ast.And:
		collectQuantifiedVars(n.L, vars)
		collectQuantifiedVars(n.R, vars)
	case *ast.Or:
		collectQuantifiedVars(n.L, vars)
		collectQuantifiedVars(n.R, vars)
	case *ast.Imp:
		collectQuantifiedVars(n.L, vars)
		collectQuantifiedVars(n.R, vars)
	case *ast.Iff:
		collectQuantifiedVars(n.L, vars)
		collectQuantifiedVars(n.R, vars)
	case *ast.Forall:
		vars.add(n.Var)
		collectQuantifiedVars(n.Body, vars)
	case *ast.Exists:
		vars.add(n.Var)
		collectQuantifiedVars(n.Body, vars)
	default:
		ast.Unreachable(f)
	}
}

// freshVariable returns the smallest decimal-suffixed extension of base that
// is disjoint from taken, per §4.1.3's freshness generator: base, then
// base0, base1, base2, ...
func freshVariable(base string, taken stringSet) string {
	if !taken.contains(base) {
		return base
	}

	for counter := 0; ; counter++ {
		candidate := base + strconv.Itoa(counter)
		if !taken.contains(candidate) {
			return candidate
		}
	}
}
