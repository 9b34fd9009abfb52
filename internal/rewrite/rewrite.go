// Package rewrite implements the rewrite-at-any-subterm traversal
// (spec.md 4.E). The recursive descend-rebuild-on-first-hit shape is
// grounded on internal/ir/optimizations.go's
// CommonSubexpressionElimination.replaceInInstruction /
// replaceInTerminator and DeadCodeElimination.markUsedValues, generalized
// from IR instruction trees to hash-consed term.Ref trees.
package rewrite

import "prover/internal/term"

// TryRewrite attempts to rewrite a single term in place (not descending
// into children); it returns the rewritten term and true on success, or
// the zero Ref and false if it does not apply at this position.
type TryRewrite func(t term.Ref) (term.Ref, bool)

// AnySubterm attempts tryRewrite first at the top level; if that fails it
// decomposes t and tries each child in left-to-right order, stopping at
// the first child that rewrites and reconstructing the compound with that
// child replaced. This is the policy spec.md 4.E calls "top-level-first,
// then left-to-right children" — it returns at most one rewrite per
// invocation.
func AnySubterm(t term.Ref, tryRewrite TryRewrite, store *term.Store, sig term.Signature) (term.Ref, bool) {
	if rewritten, ok := tryRewrite(t); ok {
		return rewritten, true
	}

	op, children, ok := term.Decompose(t)
	if !ok {
		return term.Ref{}, false // t is a variable leaf; no subterms to try
	}

	for i, child := range children {
		if rewrittenChild, ok := AnySubterm(child, tryRewrite, store, sig); ok {
			newChildren := append([]term.Ref(nil), children...)
			newChildren[i] = rewrittenChild
			rebuilt, ok := term.Reconstruct(store, sig, op, newChildren)
			if !ok {
				return term.Ref{}, false
			}
			return rebuilt, true
		}
	}
	return term.Ref{}, false
}
