package pattern

import (
	"errors"
	"fmt"

	"prover/internal/term"
)

// ErrUnboundVariable is returned when instantiation encounters a Var(k)
// with no binding in the substitution.
var ErrUnboundVariable = errors.New("pattern: unbound variable in instantiation")

// ErrWildcardInReplacement is returned when instantiation encounters a
// Wildcard: per spec.md 4.C, a wildcard is not legal in a replacement
// position, since it has no term to stand for.
var ErrWildcardInReplacement = errors.New("pattern: wildcard is not legal in a replacement position")

// ErrReconstructFailed is returned when a signature rejects a Compound
// pattern's opcode/arity at reconstruction time.
var ErrReconstructFailed = errors.New("pattern: reconstruct failed for opcode/arity")

// Instantiate recursively replaces Var(k) with subst[k], leaves Const as
// is, and rebuilds Compound nodes through the signature's reconstruction,
// per spec.md 4.C.
func Instantiate(p Pattern, subst Substitution, store *term.Store, sig term.Signature) (term.Ref, error) {
	switch p.kind {
	case KindVar:
		t, ok := subst.Lookup(p.index)
		if !ok {
			return term.Ref{}, fmt.Errorf("%w: Var(%d)", ErrUnboundVariable, p.index)
		}
		return t, nil
	case KindWildcard:
		return term.Ref{}, ErrWildcardInReplacement
	case KindConst:
		return p.constant, nil
	case KindCompound:
		children := make([]term.Ref, len(p.args))
		for i, arg := range p.args {
			child, err := Instantiate(arg, subst, store, sig)
			if err != nil {
				return term.Ref{}, err
			}
			children[i] = child
		}
		ref, ok := term.Reconstruct(store, sig, p.opcode, children)
		if !ok {
			return term.Ref{}, fmt.Errorf("%w: opcode %v arity %d", ErrReconstructFailed, p.opcode, len(children))
		}
		return ref, nil
	default:
		return term.Ref{}, fmt.Errorf("pattern: unknown pattern kind %d", p.kind)
	}
}
