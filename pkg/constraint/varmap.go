package constraint

import (
	"github.com/bits-and-blooms/bitset"
)

// VariableMapping is a bijection between variable symbols and dense column
// indices [0, n), built incrementally as the QE driver enters quantifiers
// and shrunk as they are eliminated (§3). The driver's add/remove discipline
// is strictly scoped per quantifier (every Add on the way into Qx.G is
// matched by a Remove on the way out), which makes the mapping a stack: the
// assigned bitset below exists to make that scoping discipline assertable
// rather than merely assumed, the way a scoped acquire/release idiom would
// in a language with RAII.
type VariableMapping struct {
	symbols  []string
	indexOf  map[string]int
	assigned *bitset.BitSet
}

// NewVariableMapping constructs an empty mapping.
func NewVariableMapping() *VariableMapping {
	return &VariableMapping{
		symbols:  nil,
		indexOf:  make(map[string]int),
		assigned: bitset.New(0),
	}
}

// Add assigns the next column index to symbol. Panics if symbol is already
// mapped (an internal invariant violation — the QE driver never re-adds a
// variable already on its scope stack).
func (m *VariableMapping) Add(symbol string) int {
	if _, ok := m.indexOf[symbol]; ok {
		panic("variable already mapped: " + symbol)
	}

	idx := len(m.symbols)
	m.symbols = append(m.symbols, symbol)
	m.indexOf[symbol] = idx
	m.assigned.Set(uint(idx))

	return idx
}

// Remove frees the column index previously assigned to symbol. Per §3 the
// freed index must not be reused while other mappings remain valid; since
// the driver only ever removes the most recently added symbol (LIFO
// scoping), this just pops the top of the stack.
func (m *VariableMapping) Remove(symbol string) {
	idx, ok := m.indexOf[symbol]
	if !ok {
		panic("removing unmapped variable: " + symbol)
	}

	if idx != len(m.symbols)-1 {
		panic("variable mapping removed out of scope order: " + symbol)
	}

	m.symbols = m.symbols[:idx]
	delete(m.indexOf, symbol)
	m.assigned.Clear(uint(idx))
}

// GetIndex returns the column index assigned to symbol, and whether it is
// currently mapped.
func (m *VariableMapping) GetIndex(symbol string) (int, bool) {
	idx, ok := m.indexOf[symbol]
	return idx, ok
}

// GetSymbol returns the symbol assigned to column index, and whether that
// column is currently assigned.
func (m *VariableMapping) GetSymbol(index int) (string, bool) {
	if index < 0 || index >= len(m.symbols) || !m.assigned.Test(uint(index)) {
		return "", false
	}

	return m.symbols[index], true
}

// Size returns the number of currently mapped variables (= current arity).
func (m *VariableMapping) Size() int {
	return len(m.symbols)
}
