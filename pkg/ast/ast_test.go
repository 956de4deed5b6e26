package ast

import (
	"testing"

	"github.com/gokiburi-labs/folprover/pkg/rational"
	"github.com/gokiburi-labs/folprover/pkg/util/assert"
)

func TestRelString(t *testing.T) {
	cases := map[Rel]string{
		Eq: "=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=", Ne: "!=",
	}

	for rel, want := range cases {
		assert.Equal(t, want, rel.String())
	}
}

func TestNewAtom(t *testing.T) {
	x := &Var{Name: "x"}
	c := &Const{Value: rational.FromInt(1)}
	a := NewAtom(Lt, x, c)

	assert.Equal(t, Lt, a.Relation)
	assert.Equal(t, Term(x), a.L)
	assert.Equal(t, Term(c), a.R)
}

func TestUnreachablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Unreachable to panic")
		}
	}()

	Unreachable(nil)
}
