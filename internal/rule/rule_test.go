package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prover/internal/pattern"
	"prover/internal/rule"
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

func TestNewRejectsUnboundReplacementVariable(t *testing.T) {
	// x + 0 <-> y : y is unbound in the pattern, illegal for Both.
	pat := pattern.Compound(opAdd, pattern.Var(0), pattern.Const(term.NewStore().Atom(opZero)))
	repl := pattern.Var(1)

	_, err := rule.New("bad", pat, repl, rule.Both)
	assert.ErrorIs(t, err, rule.ErrUnboundVariableInReplacement)
}

func TestNewAcceptsForwardOnlyWithUnboundBackwardVar(t *testing.T) {
	// x + y -> x : fine forward (x in replacement is in pattern); y would
	// be unbound backward, but as Forward-only this never needs the
	// backward side to balance.
	pat := pattern.Compound(opAdd, pattern.Var(0), pattern.Var(1))
	repl := pattern.Var(0)

	r, err := rule.New("drop-right-forward", pat, repl, rule.Forward)
	assert.NoError(t, err)
	assert.True(t, r.AppliesForward())
	assert.False(t, r.AppliesBackward())
}

func buildAx3(t *testing.T, store *term.Store) *rule.Rule {
	t.Helper()
	pat := pattern.Compound(opAdd, pattern.Var(0), pattern.Const(store.Atom(opZero)))
	repl := pattern.Var(0)
	r, err := rule.New("Ax3", pat, repl, rule.Both)
	assert.NoError(t, err)
	return r
}

func TestApplyForwardRewritesMatchingTerm(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	ax3 := buildAx3(t, store)

	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	target := store.Build(opAdd, succZero, zero) // S(0) + 0

	got, ok := ax3.ApplyForward(target, store, s)
	assert.True(t, ok)
	assert.True(t, got.Equal(succZero))
}

func TestApplyBackwardInstantiatesPattern(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	ax3 := buildAx3(t, store)

	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)

	got, ok := ax3.ApplyBackward(succZero, store, s)
	assert.True(t, ok)
	want := store.Build(opAdd, succZero, zero)
	assert.True(t, got.Equal(want))
}

func TestForwardOnlyRuleRejectsBackwardApplication(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	pat := pattern.Compound(opAdd, pattern.Var(0), pattern.Const(store.Atom(opZero)))
	repl := pattern.Var(0)
	r, err := rule.New("Ax3-fwd", pat, repl, rule.Forward)
	assert.NoError(t, err)

	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	_, ok := r.ApplyBackward(succZero, store, s)
	assert.False(t, ok)
}

func TestAllRewritesFindsEveryPosition(t *testing.T) {
	store := term.NewStore()
	s := sig{}
	ax3 := buildAx3(t, store)

	zero := store.Atom(opZero)
	succZero := store.Build(opSucc, zero)
	// (S(0) + 0) + 0 has two positions where "x + 0 <-> x" fires
	// forward: the whole term, and the left child.
	outer := store.Build(opAdd, store.Build(opAdd, succZero, zero), zero)

	results := ax3.AllRewrites(outer, store, s)
	assert.NotEmpty(t, results)

	// Both the root position (x+0 matches the whole term, x = inner
	// "S(0)+0") and position "0" (x+0 matches the inner term itself,
	// x = S(0)) collapse to the same resulting whole term here; what
	// must differ is the recorded position. Backward results (x -> x+0,
	// which fires at every position) grow the term and are not checked.
	want := store.Build(opAdd, succZero, zero)
	var sawRootRewrite, sawChildRewrite bool
	for _, r := range results {
		if r.Direction != rule.Forward {
			continue
		}
		assert.True(t, r.Term.Equal(want))
		switch r.Position.String() {
		case "root":
			sawRootRewrite = true
		case "0":
			sawChildRewrite = true
		}
	}
	assert.True(t, sawRootRewrite)
	assert.True(t, sawChildRewrite)
}
