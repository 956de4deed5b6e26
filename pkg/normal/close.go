package normal

import "github.com/gokiburi-labs/folprover/pkg/ast"

// Close returns the existential closure of f over its free variables, in
// symbol-sorted order so the result is deterministic across runs (§4.1.6).
func Close(f ast.Formula) ast.Formula {
	free := FreeVars(f)
	closed := f

	for _, v := range free.sortedKeys() {
		closed = &ast.Exists{Var: v, Body: closed}
	}

	return closed
}
