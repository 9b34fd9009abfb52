// Package unify implements pattern/term unification with occurs-check
// (spec.md 4.D). The substitution-threading shape and the occurs-check-via
// -chase approach are grounded on kevinawalsh-datalog's unify/unifyVar/
// chase family, adapted from pointer-identity Const/Var terms to
// hash-consed term.Ref and de Bruijn Pattern variables.
package unify

import (
	"errors"
	"fmt"

	"prover/internal/pattern"
	"prover/internal/term"
)

// Sentinel errors for the unifier's typed failure modes (spec.md 4.D).
// These never escape to a caller outside the rule engine: the rule
// engine interprets any of them as "this rule does not apply here",
// per spec.md 7's propagation policy.
var (
	ErrMismatch      = errors.New("unify: shape mismatch")
	ErrOccursCheck   = errors.New("unify: occurs-check failure")
	ErrArityMismatch = errors.New("unify: arity mismatch")
)

// Unify attempts to unify pattern p against term t under the incoming
// substitution in, per the five cases in spec.md 4.D.
func Unify(p pattern.Pattern, t term.Ref, in pattern.Substitution) (pattern.Substitution, error) {
	switch p.Kind() {
	case pattern.KindWildcard:
		// Case 1: Wildcard matches anything, binds nothing.
		return in, nil

	case pattern.KindVar:
		// Case 2: Var(k) vs t.
		k := p.VarIndex()
		if bound, ok := in.Lookup(k); ok {
			if bound.Equal(t) {
				return in, nil
			}
			return pattern.Substitution{}, fmt.Errorf("%w: Var(%d) already bound to a different term", ErrMismatch, k)
		}
		if occurs(k, t, in) {
			return pattern.Substitution{}, fmt.Errorf("%w: Var(%d) occurs in its own binding", ErrOccursCheck, k)
		}
		return in.Extend(k, t), nil

	case pattern.KindConst:
		// Case 3: Const(c) vs t — identity comparison via hash-consing.
		if p.ConstTerm().Equal(t) {
			return in, nil
		}
		return pattern.Substitution{}, fmt.Errorf("%w: constant does not match term", ErrMismatch)

	case pattern.KindCompound:
		// Case 4: Compound(op, args) vs t.
		op, children, ok := term.Decompose(t)
		if !ok {
			return pattern.Substitution{}, fmt.Errorf("%w: pattern is compound but term is a variable", ErrMismatch)
		}
		if op != p.Opcode() {
			return pattern.Substitution{}, fmt.Errorf("%w: opcode mismatch", ErrMismatch)
		}
		args := p.Args()
		if len(args) != len(children) {
			return pattern.Substitution{}, fmt.Errorf("%w: expected %d args, term has %d", ErrArityMismatch, len(args), len(children))
		}
		subst := in
		for i := range args {
			var err error
			subst, err = Unify(args[i], children[i], subst)
			if err != nil {
				return pattern.Substitution{}, err
			}
		}
		return subst, nil

	default:
		// Case 5: any other shape mismatch.
		return pattern.Substitution{}, fmt.Errorf("%w: unknown pattern kind", ErrMismatch)
	}
}

// occurs walks t, chasing any free-variable leaves (term.KindVar, spec.md
// 3's "free-variable reference") through already-bound indices in subst,
// looking for a reference to variable k. It is required for soundness: a
// rule may map a variable to a context that itself mentions other,
// already-bound variables, and a binding that refers to itself would make
// instantiation diverge.
//
// For the demonstration domain every equation term is fully ground (no
// free-variable leaves ever appear — Peano numerals are built only from
// Zero/Succ/Add), so this walk is a no-op there; it exists for the general
// engine, which the spec stipulates works over any signature, including
// ones that construct terms containing open de Bruijn variables.
func occurs(k int, t term.Ref, subst pattern.Substitution) bool {
	switch t.Kind() {
	case term.KindVar:
		j := t.VarIndex()
		if j == k {
			return true
		}
		if bound, ok := subst.Lookup(j); ok {
			return occurs(k, bound, subst)
		}
		return false
	case term.KindAtom:
		return false
	default: // term.KindCompound
		for _, c := range t.Children() {
			if occurs(k, c, subst) {
				return true
			}
		}
		return false
	}
}
