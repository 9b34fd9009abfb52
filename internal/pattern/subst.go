package pattern

import "prover/internal/term"

// Substitution is a sparse, finite mapping from de Bruijn variable index
// to term.Ref. The zero value is an empty substitution ready to use.
type Substitution struct {
	bindings map[int]term.Ref
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() Substitution {
	return Substitution{bindings: make(map[int]term.Ref)}
}

// Lookup returns the term bound to k, if any.
func (s Substitution) Lookup(k int) (term.Ref, bool) {
	if s.bindings == nil {
		return term.Ref{}, false
	}
	t, ok := s.bindings[k]
	return t, ok
}

// Extend returns a new substitution with k bound to t, leaving s
// unmodified. Substitutions are small and short-lived (one rule
// application's worth of bindings), so a copy-on-extend map is simpler
// and safer under backtracking than in-place mutation.
func (s Substitution) Extend(k int, t term.Ref) Substitution {
	next := make(map[int]term.Ref, len(s.bindings)+1)
	for key, val := range s.bindings {
		next[key] = val
	}
	next[k] = t
	return Substitution{bindings: next}
}

// Len reports how many variables are bound.
func (s Substitution) Len() int {
	return len(s.bindings)
}
