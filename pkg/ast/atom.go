package ast

// Rel identifies the relation carried by an Atom.
type Rel int

// The six relations of the data model. EQ, LT and GT are the three the
// constraint engine understands directly; LE, GE and NE are rewritten away
// by the normaliser's SimplifyConstraints pass before anything reaches the
// bridge.
const (
	Eq Rel = iota
	Lt
	Le
	Gt
	Ge
	Ne
)

// String renders the relation using the concrete-syntax token from the
// formula grammar (§6).
func (r Rel) String() string {
	switch r {
	case Eq:
		return "="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Ne:
		return "!="
	default:
		panic("unreachable relation")
	}
}

// Atom is a binary relation between two terms.
type Atom struct {
	Relation Rel
	L, R     Term
}

// NewAtom constructs an Atom for the given relation and operands.
func NewAtom(rel Rel, l, r Term) *Atom {
	return &Atom{Relation: rel, L: l, R: r}
}
