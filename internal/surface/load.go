package surface

import (
	"fmt"

	"prover/internal/peano"
	"prover/internal/rule"
	"prover/internal/term"
)

// LoadDefaultAxioms parses and desugars peano.AxiomsFS (Ax3, Ax4) against
// store. Ax1 and Ax6 are not in the embedded file (see peano.DefaultGoals,
// peano.Ax6): they are not expressible as one-sided rewrite rules.
func LoadDefaultAxioms(store *term.Store) ([]*rule.Rule, error) {
	src, err := peano.AxiomsFS.ReadFile("axioms.peano")
	if err != nil {
		return nil, fmt.Errorf("surface: reading embedded axioms: %w", err)
	}
	return LoadAxiomSource(store, "axioms.peano", string(src))
}

// LoadAxiomSource parses and desugars a rule file's source, for both the
// embedded default set and user-supplied -rules files.
func LoadAxiomSource(store *term.Store, filename, src string) ([]*rule.Rule, error) {
	af, err := ParseAxiomFile(filename, src)
	if err != nil {
		return nil, err
	}
	return DesugarAxiomFile(af, store)
}
