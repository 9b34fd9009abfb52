package term

import (
	"fmt"
	"strings"
)

// Signature is the capability interface a domain exposes so the generic
// engine (pattern instantiation, unification, rewriting, proving) never
// needs to know the concrete opcode set. It mirrors the corpus's
// capability-interface convention (every ast.Node exposes NodePos/
// NodeEndPos/NodeType regardless of concrete type) generalized to a
// single external type describing an entire opcode space, per spec.md
// 4.B and 9's "polymorphism" note.
type Signature interface {
	// Arity returns the expected child count for op and whether op is
	// known to this signature at all.
	Arity(op Opcode) (arity int, known bool)

	// Name returns a human-readable name for op, used in proof
	// rendering and diagnostics. Implementations should return a
	// stable, short identifier (e.g. "S", "+", "0").
	Name(op Opcode) string
}

// Decompose returns the opcode and children of a compound or atom term,
// or ok=false for a variable (spec.md 4.B: "None for atomic
// constructs" — here atomic constructs are represented as zero-arity
// compounds via Opcode/Children, so only variables decompose to
// nothing).
func Decompose(r Ref) (op Opcode, children []Ref, ok bool) {
	if r.Kind() == KindVar {
		return 0, nil, false
	}
	return r.Opcode(), r.Children(), true
}

// Reconstruct is the inverse of Decompose modulo interning: it rebuilds a
// term from an opcode and already-interned children, validating arity
// against sig. It returns ok=false if op is unknown to sig or the child
// count does not match the declared arity.
func Reconstruct(store *Store, sig Signature, op Opcode, children []Ref) (Ref, bool) {
	arity, known := sig.Arity(op)
	if !known || arity != len(children) {
		return Ref{}, false
	}
	if arity == 0 {
		return store.Atom(op), true
	}
	return store.Build(op, children...), true
}

// Render prints r as "name(child, child, ...)" using sig for opcode
// names, or "?N" for a free variable at de Bruijn index N. Nullary
// constructors print as their bare name (e.g. "0"), matching
// spec.md's worked examples.
func Render(r Ref, sig Signature) string {
	var b strings.Builder
	render(&b, r, sig)
	return b.String()
}

func render(b *strings.Builder, r Ref, sig Signature) {
	if r.Kind() == KindVar {
		fmt.Fprintf(b, "?%d", r.VarIndex())
		return
	}

	children := r.Children()
	b.WriteString(sig.Name(r.Opcode()))
	if len(children) == 0 {
		return
	}

	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		render(b, c, sig)
	}
	b.WriteByte(')')
}
