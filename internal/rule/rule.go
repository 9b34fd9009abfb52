// Package rule implements named, directional rewrite rules and the rule
// engine that applies them (spec.md 4.F, 3's RewriteRule). The named,
// ordered, composable-pass shape is grounded on
// internal/ir/optimizations.go's OptimizationPass/OptimizationPipeline:
// a Rule here plays the role a pass plays there, except a rule is
// data (pattern + replacement), not code.
package rule

import (
	"errors"
	"fmt"

	"prover/internal/pattern"
	"prover/internal/rewrite"
	"prover/internal/term"
	"prover/internal/unify"
)

// Direction gates which of ApplyForward/ApplyBackward a rule permits.
type Direction uint8

const (
	// Forward permits only ApplyForward (pattern -> replacement).
	Forward Direction = iota
	// Backward permits only ApplyBackward (replacement -> pattern).
	Backward
	// Both permits both directions, sharing one parse and one rule
	// name across both orientations (spec.md 9's design note).
	Both
)

// ErrUnboundVariableInReplacement is returned at construction time when a
// rule's replacement mentions a variable absent from the pattern it would
// need to bind it, for the directions in which that pattern/replacement
// pairing applies.
var ErrUnboundVariableInReplacement = errors.New("rule: replacement references a variable unbound by its pattern")

// Rule is a named, directed or bidirectional rewrite rule (spec.md 3).
type Rule struct {
	Name        string
	Pattern     pattern.Pattern
	Replacement pattern.Pattern
	Direction   Direction
}

// New constructs a Rule, validating per spec.md 3's invariant: every
// variable in replacement must occur in pattern for the forward
// direction, and symmetrically for backward. A rule that fails this check
// is rejected at construction, never at apply time.
func New(name string, pat, repl pattern.Pattern, dir Direction) (*Rule, error) {
	patVars := pattern.Vars(pat)
	replVars := pattern.Vars(repl)

	if dir == Forward || dir == Both {
		for v := range replVars {
			if !patVars[v] {
				return nil, fmt.Errorf("%w: rule %q forward: Var(%d) in replacement not in pattern", ErrUnboundVariableInReplacement, name, v)
			}
		}
	}
	if dir == Backward || dir == Both {
		for v := range patVars {
			if !replVars[v] {
				return nil, fmt.Errorf("%w: rule %q backward: Var(%d) in pattern not in replacement", ErrUnboundVariableInReplacement, name, v)
			}
		}
	}

	return &Rule{Name: name, Pattern: pat, Replacement: repl, Direction: dir}, nil
}

// AppliesForward reports whether this rule's direction permits
// ApplyForward.
func (r *Rule) AppliesForward() bool {
	return r.Direction == Forward || r.Direction == Both
}

// AppliesBackward reports whether this rule's direction permits
// ApplyBackward.
func (r *Rule) AppliesBackward() bool {
	return r.Direction == Backward || r.Direction == Both
}

// ApplyForward attempts to unify Pattern against t and, on success,
// instantiate Replacement under the resulting substitution.
func (r *Rule) ApplyForward(t term.Ref, store *term.Store, sig term.Signature) (term.Ref, bool) {
	if !r.AppliesForward() {
		return term.Ref{}, false
	}
	subst, err := unify.Unify(r.Pattern, t, pattern.NewSubstitution())
	if err != nil {
		return term.Ref{}, false
	}
	out, err := pattern.Instantiate(r.Replacement, subst, store, sig)
	if err != nil {
		return term.Ref{}, false
	}
	return out, true
}

// ApplyBackward is symmetric to ApplyForward with Pattern and Replacement
// swapped.
func (r *Rule) ApplyBackward(t term.Ref, store *term.Store, sig term.Signature) (term.Ref, bool) {
	if !r.AppliesBackward() {
		return term.Ref{}, false
	}
	subst, err := unify.Unify(r.Replacement, t, pattern.NewSubstitution())
	if err != nil {
		return term.Ref{}, false
	}
	out, err := pattern.Instantiate(r.Pattern, subst, store, sig)
	if err != nil {
		return term.Ref{}, false
	}
	return out, true
}

// RewriteResult is one whole-term rewrite produced by AllRewrites: the
// rewritten whole term and the position-tag where the rule fired.
type RewriteResult struct {
	Term      term.Ref
	Position  rewrite.Position
	Direction Direction
}

// AllRewrites enumerates every position in t at which this rule, in
// whichever directions its Direction permits, produces a rewrite,
// returning the resulting whole-term for each. Enumeration follows the
// canonical pre-order position sequence; forward is tried before backward
// at each position so results are deterministic (spec.md 4.F).
func (r *Rule) AllRewrites(t term.Ref, store *term.Store, sig term.Signature) []RewriteResult {
	var out []RewriteResult
	for _, pos := range rewrite.Positions(t) {
		sub, ok := rewrite.At(t, pos)
		if !ok {
			continue
		}
		if r.AppliesForward() {
			if rewritten, ok := r.ApplyForward(sub, store, sig); ok {
				if whole, ok := rewrite.ReplaceAt(t, pos, rewritten, store, sig); ok {
					out = append(out, RewriteResult{Term: whole, Position: pos, Direction: Forward})
				}
			}
		}
		if r.AppliesBackward() {
			if rewritten, ok := r.ApplyBackward(sub, store, sig); ok {
				if whole, ok := rewrite.ReplaceAt(t, pos, rewritten, store, sig); ok {
					out = append(out, RewriteResult{Term: whole, Position: pos, Direction: Backward})
				}
			}
		}
	}
	return out
}

// CongruenceRule is a supplementary rule kind the per-side RewriteRule
// model cannot express: "this constructor is injective, so an equation
// whose two sides share it at the top may be replaced by the equation of
// their single argument" (e.g. Ax6, S(x) = S(y) <-> x = y). spec.md 4.F/4.G
// define rewriting as acting on one side of an equation at a time; Ax6
// acts on both sides of the whole equation at once, which is outside that
// formulation. CongruenceRule is restricted to unary opcodes for exactly
// this reason: peeling one constructor off both sides yields one new
// equation, not an ambiguous n-way split.
type CongruenceRule struct {
	Name   string
	Opcode term.Opcode
}

// Apply reports whether lhs and rhs are both r.Opcode applied to a single
// argument, returning those two arguments as the new equation's sides.
func (r *CongruenceRule) Apply(lhs, rhs term.Ref) (newLhs, newRhs term.Ref, ok bool) {
	lop, lchildren, lok := term.Decompose(lhs)
	if !lok || lop != r.Opcode || len(lchildren) != 1 {
		return term.Ref{}, term.Ref{}, false
	}
	rop, rchildren, rok := term.Decompose(rhs)
	if !rok || rop != r.Opcode || len(rchildren) != 1 {
		return term.Ref{}, term.Ref{}, false
	}
	return lchildren[0], rchildren[0], true
}
