package term

import "sync"

// mixSeed is the FNV-1a 64-bit offset basis. Combined with mix below it
// gives a non-commutative mixer: hashing [a, b] differs from hashing
// [b, a], which matters because operand order is semantically significant
// (e.g. S(x) + y is not y + S(x)).
const mixSeed uint64 = 14695981039346656037
const mixPrime uint64 = 1099511628211

// mix folds h with the next 64-bit value using an FNV-style
// multiply-and-xor step.
func mix(h uint64, v uint64) uint64 {
	h ^= v
	h *= mixPrime
	h = (h << 13) | (h >> 51)
	return h
}

func mixString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = mix(h, uint64(s[i]))
	}
	return h
}

// Store is a per-invocation interning table. A single Store is safe for
// concurrent readers together with at most one concurrent writer, per the
// reader/writer discipline in the rewriting engine's resource model: the
// Prover holds the sole write capability during a search.
type Store struct {
	mu    sync.RWMutex
	nodes []node
	index map[uint64][]uint32 // hash -> candidate node ids, collisions broken by structural compare
}

// NewStore creates an empty, per-invocation term store.
func NewStore() *Store {
	return &Store{
		index: make(map[uint64][]uint32),
	}
}

// Var interns a free-variable leaf with de Bruijn index k.
func (s *Store) Var(k int) Ref {
	h := mix(mix(mixSeed, uint64(KindVar)), uint64(k))
	return s.internNode(node{
		kind:     KindVar,
		varIndex: k,
		hash:     h,
		size:     1,
	})
}

// Atom interns an opcode-arity-0 constructor, e.g. Zero or a numeric
// literal opcode.
func (s *Store) Atom(op Opcode) Ref {
	h := mix(mix(mixSeed, uint64(KindAtom)), uint64(op))
	return s.internNode(node{
		kind:   KindAtom,
		opcode: op,
		hash:   h,
		size:   1,
	})
}

// Build interns a compound term whose children are already-interned Refs,
// per spec.md 4.A's "shorthand for interning a compound whose children are
// already interned". The structural hash folds the opcode, the arity, and
// each child's hash in order, so it is sensitive to argument order.
func (s *Store) Build(op Opcode, children ...Ref) Ref {
	h := mix(mix(mixSeed, uint64(KindCompound)), uint64(op))
	h = mix(h, uint64(len(children)))
	size := 1
	for _, c := range children {
		h = mix(h, c.Hash())
		size += c.Size()
	}
	kids := append([]Ref(nil), children...)
	return s.internNode(node{
		kind:     KindCompound,
		opcode:   op,
		children: kids,
		hash:     h,
		size:     size,
	})
}

// structEqual compares two nodes for full structural equality, used to
// break hash collisions. Children are compared by Ref identity, which is
// already hash-cons-unique, so this never recurses more than one level.
func structEqual(a, b *node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindVar:
		return a.varIndex == b.varIndex
	case KindAtom:
		return a.opcode == b.opcode
	case KindCompound:
		if a.opcode != b.opcode || len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !a.children[i].Equal(b.children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// internNode returns the canonical Ref for the given candidate node,
// inserting it if no structurally equal node is already interned.
func (s *Store) internNode(n node) Ref {
	s.mu.RLock()
	if ref, ok := s.lookup(n); ok {
		s.mu.RUnlock()
		return ref
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under the write lock: another writer may have interned
	// the same term between the unlock above and this lock.
	if ref, ok := s.lookup(n); ok {
		return ref
	}
	id := uint32(len(s.nodes))
	s.nodes = append(s.nodes, n)
	s.index[n.hash] = append(s.index[n.hash], id)
	return Ref{store: s, id: id}
}

func (s *Store) lookup(n node) (Ref, bool) {
	for _, id := range s.index[n.hash] {
		if structEqual(&s.nodes[id], &n) {
			return Ref{store: s, id: id}, true
		}
	}
	return Ref{}, false
}

// Len returns the number of distinct interned terms, mostly useful for
// diagnostics and tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
