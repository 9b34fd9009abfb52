package rewrite

import "prover/internal/term"

// Position identifies a subterm by the sequence of child indices from the
// root, e.g. []int{} is the whole term and []int{1, 0} is "the first
// child of the second child". It is the "structural path" spec.md 4.F
// calls a position-tag, used for proof recording.
type Position []int

// String renders a position in a compact dotted form, e.g. "1.0", or
// "root" for the top-level position.
func (p Position) String() string {
	if len(p) == 0 {
		return "root"
	}
	s := make([]byte, 0, len(p)*2)
	for i, idx := range p {
		if i > 0 {
			s = append(s, '.')
		}
		s = appendInt(s, idx)
	}
	return string(s)
}

func appendInt(s []byte, n int) []byte {
	if n == 0 {
		return append(s, '0')
	}
	if n < 0 {
		s = append(s, '-')
		n = -n
	}
	start := len(s)
	for n > 0 {
		s = append(s, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for l, r := start, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return s
}

// Equal reports whether two positions are the same path.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Positions enumerates every position in t in canonical pre-order: the
// root first, then each child's subtree left to right, per spec.md 4.F's
// "enumeration is deterministic in a canonical position order (pre-order
// traversal)".
func Positions(t term.Ref) []Position {
	var out []Position
	walk(t, nil, &out)
	return out
}

func walk(t term.Ref, prefix Position, out *[]Position) {
	here := append(Position(nil), prefix...)
	*out = append(*out, here)
	_, children, ok := term.Decompose(t)
	if !ok {
		return
	}
	for i, child := range children {
		walk(child, append(append(Position(nil), prefix...), i), out)
	}
}

// At returns the subterm at pos within t, or false if pos does not
// address a valid subterm (e.g. it names a child index past a variable
// leaf).
func At(t term.Ref, pos Position) (term.Ref, bool) {
	if len(pos) == 0 {
		return t, true
	}
	_, children, ok := term.Decompose(t)
	if !ok || pos[0] < 0 || pos[0] >= len(children) {
		return term.Ref{}, false
	}
	return At(children[0+pos[0]], pos[1:])
}

// ReplaceAt rebuilds t with the subterm at pos replaced by replacement,
// reconstructing every ancestor compound along the path through sig.
func ReplaceAt(t term.Ref, pos Position, replacement term.Ref, store *term.Store, sig term.Signature) (term.Ref, bool) {
	if len(pos) == 0 {
		return replacement, true
	}
	op, children, ok := term.Decompose(t)
	if !ok || pos[0] < 0 || pos[0] >= len(children) {
		return term.Ref{}, false
	}
	newChild, ok := ReplaceAt(children[pos[0]], pos[1:], replacement, store, sig)
	if !ok {
		return term.Ref{}, false
	}
	newChildren := append([]term.Ref(nil), children...)
	newChildren[pos[0]] = newChild
	return term.Reconstruct(store, sig, op, newChildren)
}
