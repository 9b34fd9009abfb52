// Package peano is the demonstration domain's signature: successor and
// addition over natural numbers (spec.md 1). The fixed, small opcode
// table with a name/arity lookup is grounded on internal/builtins'
// BuiltinTypes table and internal/types/registry.go's builtin-type
// partitioning, generalized from a string-keyed type table to an
// Opcode-keyed arity/name table.
package peano

import "prover/internal/term"

const (
	// Zero is the nullary successor-chain base case.
	Zero term.Opcode = iota
	// Succ is the unary successor constructor, S(x).
	Succ
	// Add is the binary addition constructor, x + y.
	Add
)

// Signature implements term.Signature for Zero/Succ/Add.
type Signature struct{}

var _ term.Signature = Signature{}

func (Signature) Arity(op term.Opcode) (int, bool) {
	switch op {
	case Zero:
		return 0, true
	case Succ:
		return 1, true
	case Add:
		return 2, true
	default:
		return 0, false
	}
}

func (Signature) Name(op term.Opcode) string {
	switch op {
	case Zero:
		return "0"
	case Succ:
		return "S"
	case Add:
		return "+"
	default:
		return "?"
	}
}

// BuildNumeral interns the Peano numeral for n (n applications of Succ
// around Zero), a convenience for tests and the demo CLI.
func BuildNumeral(store *term.Store, n int) term.Ref {
	t := store.Atom(Zero)
	for i := 0; i < n; i++ {
		t = store.Build(Succ, t)
	}
	return t
}
