// Package prove implements the best-first proof search (spec.md 4.G, 8).
// The worklist/visited-set shape is grounded on internal/semantic's
// flow_analyzer.go (a visited-map-guarded traversal) and
// internal/ir/optimizations.go's DeadCodeElimination.markReachable.
package prove

import (
	"prover/internal/rewrite"
	"prover/internal/rule"
	"prover/internal/term"
)

// Side identifies which half of an equation a ProofStep rewrote.
type Side uint8

const (
	LHS Side = iota
	RHS
	// Both marks a CongruenceRule step, which rewrites the two sides of
	// an equation together rather than one side in isolation.
	Both
)

func (s Side) String() string {
	switch s {
	case LHS:
		return "LHS"
	case RHS:
		return "RHS"
	default:
		return "both"
	}
}

// ProofStep records one rewrite in a derivation: the rule applied, which
// side it rewrote, where, and the term before/after (spec.md 3). For a
// CongruenceRule step (Side == Both), Before/After hold the LHS's
// transformation and RhsBefore/RhsAfter hold the RHS's.
type ProofStep struct {
	RuleName  string
	Side      Side
	Direction rule.Direction
	Position  rewrite.Position
	Before    term.Ref
	After     term.Ref
	RhsBefore term.Ref
	RhsAfter  term.Ref
}

// EquationState is a pair (lhs, rhs) plus the derivation history that
// produced it, and the search-priority cost assigned by the estimator
// (spec.md 3).
type EquationState struct {
	Lhs, Rhs      term.Ref
	History       []ProofStep
	Cost          uint64
	sequence      int // insertion order, for FIFO tie-breaking within a cost level
	expandedIndex int // not read or written; the frontier orders by Cost and sequence only
}

// Key is the composite, order-sensitive identity used by the visited set:
// (hash(lhs), hash(rhs)). It is order-sensitive because the two sides are
// not symmetric for history purposes (spec.md 4.G).
type Key struct {
	LhsHash, RhsHash uint64
}

// KeyOf computes the visited-set key for a state.
func KeyOf(lhs, rhs term.Ref) Key {
	return Key{LhsHash: lhs.Hash(), RhsHash: rhs.Hash()}
}
