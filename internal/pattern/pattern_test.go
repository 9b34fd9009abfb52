package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prover/internal/pattern"
	"prover/internal/term"
)

const (
	opZero term.Opcode = iota
	opSucc
	opAdd
)

type testSig struct{}

func (testSig) Arity(op term.Opcode) (int, bool) {
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

func (testSig) Name(op term.Opcode) string {
	return "op"
}

func TestInstantiateSubstitutesVariables(t *testing.T) {
	store := term.NewStore()
	sig := testSig{}

	// pattern: x + 0
	p := pattern.Compound(opAdd, pattern.Var(0), pattern.Const(store.Atom(opZero)))

	x := store.Build(opSucc, store.Atom(opZero)) // S(0)
	subst := pattern.NewSubstitution().Extend(0, x)

	got, err := pattern.Instantiate(p, subst, store, sig)
	assert.NoError(t, err)

	want := store.Build(opAdd, x, store.Atom(opZero))
	assert.True(t, got.Equal(want))
}

func TestInstantiateFailsOnUnboundVariable(t *testing.T) {
	store := term.NewStore()
	sig := testSig{}

	p := pattern.Var(0)
	_, err := pattern.Instantiate(p, pattern.NewSubstitution(), store, sig)
	assert.ErrorIs(t, err, pattern.ErrUnboundVariable)
}

func TestInstantiateFailsOnWildcard(t *testing.T) {
	store := term.NewStore()
	sig := testSig{}

	_, err := pattern.Instantiate(pattern.Wildcard(), pattern.NewSubstitution(), store, sig)
	assert.ErrorIs(t, err, pattern.ErrWildcardInReplacement)
}

func TestMaxVarAndVars(t *testing.T) {
	p := pattern.Compound(opAdd, pattern.Var(2), pattern.Compound(opSucc, pattern.Var(0)))
	assert.Equal(t, 2, pattern.MaxVar(p))

	vars := pattern.Vars(p)
	assert.True(t, vars[0])
	assert.True(t, vars[2])
	assert.False(t, vars[1])
}
