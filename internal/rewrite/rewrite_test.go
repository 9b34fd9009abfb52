package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prover/internal/rewrite"
	"prover/internal/term"
)

const (
	opZero term.Opcode = iota
	opSucc
	opAdd
)

type sig struct{}

func (sig) Arity(op term.Opcode) (int, bool) {
	switch op {
	case opZero:
		return 0, true
	case opSucc:
		return 1, true
	case opAdd:
		return 2, true
	default:
		return 0, false
	}
}
func (sig) Name(term.Opcode) string { return "op" }

func TestAnySubtermTopLevelFirst(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	sum := store.Build(opAdd, succZero, zero)

	// A try-rewrite that fires only at the top level (turns any + into a
	// bare zero) should win over any deeper match.
	try := func(r term.Ref) (term.Ref, bool) {
		if op, _, ok := term.Decompose(r); ok && op == opAdd {
			return zero, true
		}
		return term.Ref{}, false
	}

	got, ok := rewrite.AnySubterm(sum, try, store, s)
	assert.True(t, ok)
	assert.True(t, got.Equal(zero))
}

func TestAnySubtermDescendsLeftToRight(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	sum := store.Build(opAdd, succZero, succZero)

	// Rewrite only S(0) -> 0, leaving the + node itself untouched at
	// top level; the first (leftmost) S(0) child should be the one
	// rewritten.
	try := func(r term.Ref) (term.Ref, bool) {
		if r.Equal(succZero) {
			return zero, true
		}
		return term.Ref{}, false
	}

	got, ok := rewrite.AnySubterm(sum, try, store, s)
	assert.True(t, ok)
	want := store.Build(opAdd, zero, succZero)
	assert.True(t, got.Equal(want))
}

func TestAnySubtermNoPositionMatches(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	zero := store.Atom(opZero)

	try := func(r term.Ref) (term.Ref, bool) { return term.Ref{}, false }
	_, ok := rewrite.AnySubterm(zero, try, store, s)
	assert.False(t, ok)
}

func TestPositionsPreOrder(t *testing.T) {
	store := term.NewStore()
	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	sum := store.Build(opAdd, succZero, zero)

	positions := rewrite.Positions(sum)
	// root, then child 0 (S(0)), then child 0's child 0 (0), then child 1 (0)
	assert.Equal(t, 4, len(positions))
	assert.Equal(t, "root", positions[0].String())
	assert.Equal(t, "0", positions[1].String())
	assert.Equal(t, "0.0", positions[2].String())
	assert.Equal(t, "1", positions[3].String())
}

func TestReplaceAtRebuildsAncestors(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	sum := store.Build(opAdd, succZero, zero)

	succSuccZero := store.Build(opSucc, succZero)
	replaced, ok := rewrite.ReplaceAt(sum, rewrite.Position{0}, succSuccZero, store, s)
	assert.True(t, ok)

	want := store.Build(opAdd, succSuccZero, zero)
	assert.True(t, replaced.Equal(want))
}
