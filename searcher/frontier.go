package searcher

import (
	"container/heap"

	"github.com/4eta/thunder-book/game"
)

// frontier is a max-heap of nodes by score. Equal scores pop in insertion
// order so that ties follow action enumeration order.
type frontier[S game.State[S]] struct {
	nodes []*node[S]
	seq   int
}

func newFrontier[S game.State[S]]() *frontier[S] {
	return &frontier[S]{}
}

func (f *frontier[S]) push(n *node[S]) {
	n.seq = f.seq
	f.seq++
	heap.Push(f, n)
}

func (f *frontier[S]) pop() *node[S] {
	return heap.Pop(f).(*node[S])
}

func (f *frontier[S]) peek() *node[S] {
	return f.nodes[0]
}

func (f *frontier[S]) empty() bool {
	return len(f.nodes) == 0
}

// heap.Interface

func (f *frontier[S]) Len() int {
	return len(f.nodes)
}

func (f *frontier[S]) Less(i, j int) bool {
	if f.nodes[i].score != f.nodes[j].score {
		return f.nodes[i].score > f.nodes[j].score
	}
	return f.nodes[i].seq < f.nodes[j].seq
}

func (f *frontier[S]) Swap(i, j int) {
	f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i]
}

func (f *frontier[S]) Push(x any) {
	f.nodes = append(f.nodes, x.(*node[S]))
}

func (f *frontier[S]) Pop() any {
	last := len(f.nodes) - 1
	n := f.nodes[last]
	f.nodes[last] = nil
	f.nodes = f.nodes[:last]
	return n
}
