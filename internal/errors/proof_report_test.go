package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prover/internal/errors"
	"prover/internal/peano"
	"prover/internal/prove"
	"prover/internal/rule"
	"prover/internal/surface"
	"prover/internal/term"
)

func TestFormatProofRendersFoundDerivation(t *testing.T) {
	store := term.NewStore()
	rules, err := surface.LoadDefaultAxioms(store)
	require.NoError(t, err)

	p := prove.New(prove.Config{
		Store:       store,
		Signature:   peano.Signature{},
		Rules:       rules,
		Congruences: []*rule.CongruenceRule{peano.Ax6},
		Goals:       peano.DefaultGoals,
		MaxNodes:    1000,
	})

	lhs := store.Build(peano.Add, peano.BuildNumeral(store, 1), peano.BuildNumeral(store, 0))
	rhs := peano.BuildNumeral(store, 1)

	result := p.Prove(lhs, rhs)
	require.Equal(t, prove.StatusFound, result.Status)

	rendered := errors.FormatProof(result, peano.Signature{})
	assert.Contains(t, rendered, "Ax3")
	assert.Contains(t, rendered, "true")
	assert.Contains(t, rendered, "states explored")
}

func TestFormatProofRendersExhaustedSearch(t *testing.T) {
	store := term.NewStore()
	rules, err := surface.LoadDefaultAxioms(store)
	require.NoError(t, err)

	p := prove.New(prove.Config{
		Store:       store,
		Signature:   peano.Signature{},
		Rules:       rules,
		Congruences: []*rule.CongruenceRule{peano.Ax6},
		Goals:       peano.DefaultGoals,
		MaxNodes:    1000,
	})

	lhs := peano.BuildNumeral(store, 1)
	rhs := peano.BuildNumeral(store, 0)

	result := p.Prove(lhs, rhs)
	require.Equal(t, prove.StatusExhausted, result.Status)

	rendered := errors.FormatProof(result, peano.Signature{})
	assert.Contains(t, rendered, "exhausted")
}
