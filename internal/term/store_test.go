package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prover/internal/term"
)

const (
	opZero term.Opcode = iota
	opSucc
	opAdd
)

func TestInternDeduplicatesStructurallyEqualTerms(t *testing.T) {
	s := term.NewStore()

	zero1 := s.Atom(opZero)
	zero2 := s.Atom(opZero)
	assert.True(t, zero1.Equal(zero2))

	succ1 := s.Build(opSucc, zero1)
	succ2 := s.Build(opSucc, zero2)
	assert.True(t, succ1.Equal(succ2))

	// Only two distinct terms were ever interned: 0 and S(0).
	assert.Equal(t, 2, s.Len())
}

func TestInternDistinguishesDifferentShapes(t *testing.T) {
	s := term.NewStore()

	zero := s.Atom(opZero)
	succZero := s.Build(opSucc, zero)
	assert.False(t, zero.Equal(succZero))

	// S(0) + 0 vs 0 + S(0): operand order matters.
	lhs := s.Build(opAdd, succZero, zero)
	rhs := s.Build(opAdd, zero, succZero)
	assert.False(t, lhs.Equal(rhs))
	assert.NotEqual(t, lhs.Hash(), rhs.Hash())
}

func TestSizeCountsNodes(t *testing.T) {
	s := term.NewStore()
	zero := s.Atom(opZero)
	succZero := s.Build(opSucc, zero)
	sum := s.Build(opAdd, succZero, zero)

	assert.Equal(t, 1, zero.Size())
	assert.Equal(t, 2, succZero.Size())
	assert.Equal(t, 4, sum.Size())
}

func TestVarIdentityByIndex(t *testing.T) {
	s := term.NewStore()
	x0 := s.Var(0)
	x0again := s.Var(0)
	x1 := s.Var(1)

	assert.True(t, x0.Equal(x0again))
	assert.False(t, x0.Equal(x1))
}

func TestDecomposeReconstructRoundTrip(t *testing.T) {
	s := term.NewStore()
	sig := fakeSig{}

	zero := s.Atom(opZero)
	succZero := s.Build(opSucc, zero)
	sum := s.Build(opAdd, succZero, zero)

	op, children, ok := term.Decompose(sum)
	assert.True(t, ok)
	rebuilt, ok := term.Reconstruct(s, sig, op, children)
	assert.True(t, ok)
	assert.True(t, sum.Equal(rebuilt))
}

func TestReconstructRejectsWrongArity(t *testing.T) {
	s := term.NewStore()
	sig := fakeSig{}
	zero := s.Atom(opZero)

	_, ok := term.Reconstruct(s, sig, opSucc, []term.Ref{zero, zero})
	assert.False(t, ok)
}

type fakeSig struct{}

func (fakeSig) Arity(op term.Opcode) (int, bool) {
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

func (fakeSig) Name(op term.Opcode) string {
	switch op {
	case opZero:
		return "0"
	case opSucc:
		return "S"
	case opAdd:
		return "+"
	default:
		return "?"
	}
}
