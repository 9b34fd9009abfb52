package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prover/internal/surface"
	"prover/internal/term"
)

func TestConvertParseErrorAnchorsAtRealPosition(t *testing.T) {
	_, err := surface.ParseEquation("<test>", "S(0) + = S(0)")
	require.Error(t, err)

	diags := ConvertParseError(err)
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.NotEqual(t, "prover", *diags[0].Source)
}

func TestConvertDesugarErrorAnchorsUndefinedIdentAtItsColumn(t *testing.T) {
	store := term.NewStore()
	eq, err := surface.ParseEquation("<test>", "0 + x = 0")
	require.NoError(t, err)

	_, _, err = surface.DesugarEquation(eq, store)
	require.Error(t, err)

	diags := ConvertDesugarError(err)
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Greater(t, diags[0].Range.Start.Character, uint32(0))
	assert.Equal(t, "prover-rules", *diags[0].Source)
}

func TestConvertDesugarErrorAnchorsUnboundReplacementVariableAtRuleLine(t *testing.T) {
	store := term.NewStore()
	af, err := surface.ParseAxiomFile("<test>", "rule Bad: forall x. x + 0 -> x + y;")
	require.NoError(t, err)

	_, err = surface.DesugarAxiomFile(af, store)
	require.Error(t, err)

	diags := ConvertDesugarError(err)
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Equal(t, "prover-rules", *diags[0].Source)
}
