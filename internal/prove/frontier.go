package prove

import "container/heap"

// frontier is a binary min-heap over EquationState ordered by (Cost,
// sequence): lower cost first, and within equal cost, earlier insertion
// first (spec.md 4.G's "equal-cost states are ordered by insertion
// sequence (FIFO within a cost level) to ensure determinism").
type frontier struct {
	items []*EquationState
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return a.sequence < b.sequence
}

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
}

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(*EquationState))
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}

// newFrontier returns an empty, ready-to-use frontier.
func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(f)
	return f
}

func (f *frontier) push(s *EquationState) {
	heap.Push(f, s)
}

func (f *frontier) pop() *EquationState {
	return heap.Pop(f).(*EquationState)
}

func (f *frontier) empty() bool {
	return f.Len() == 0
}
