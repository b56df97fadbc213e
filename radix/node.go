package radix

import (
	"sync"
	"sync/atomic"

	"github.com/aglyzov/go-radix/radix/slot"
)

// node is a fixed-size array of slots. Nodes above the leaf depth use
// children, nodes at the leaf depth use leaves; the other slice is unused.
type node[V any] struct {
	used     slot.Bitmap
	children []atomic.Pointer[node[V]]
	leaves   []atomic.Pointer[V]
}

func (n *node[V]) isLeaf() bool {
	return n.leaves != nil
}

// NodePool allocates tree nodes and keeps instrumented counts of them.
// Nodes handed back by lock-free losers and by Delete are recycled.
type NodePool[V any] struct {
	pool      sync.Pool
	allocated atomic.Int64
	released  atomic.Int64
}

func NewNodePool[V any]() *NodePool[V] {
	return &NodePool[V]{}
}

// Allocated returns the number of nodes handed out so far.
func (p *NodePool[V]) Allocated() int64 {
	return p.allocated.Load()
}

// Released returns the number of nodes given back so far.
func (p *NodePool[V]) Released() int64 {
	return p.released.Load()
}

// InUse returns the number of nodes currently owned by trees.
func (p *NodePool[V]) InUse() int64 {
	return p.Allocated() - p.Released()
}

// get returns an empty node with the given number of slots.
func (p *NodePool[V]) get(slots int, leaf bool) *node[V] {
	n, _ := p.pool.Get().(*node[V])
	if n == nil {
		n = &node[V]{}
	}

	if !n.used.Fits(slots) {
		n.used = slot.New(slots)
	}

	if leaf {
		if cap(n.leaves) >= slots {
			n.leaves = n.leaves[:slots]
		} else {
			n.leaves = make([]atomic.Pointer[V], slots)
		}
		n.children = nil
	} else {
		if cap(n.children) >= slots {
			n.children = n.children[:slots]
		} else {
			n.children = make([]atomic.Pointer[node[V]], slots)
		}
		n.leaves = nil
	}

	p.allocated.Add(1)

	return n
}

// put clears n and makes it available for reuse. n must be unreachable.
func (p *NodePool[V]) put(n *node[V]) {
	n.used.Each(func(i int) {
		if n.isLeaf() {
			n.leaves[i].Store(nil)
		} else {
			n.children[i].Store(nil)
		}
	})
	n.used.Reset()

	p.released.Add(1)
	p.pool.Put(n)
}
