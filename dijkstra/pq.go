package dijkstra

import "github.com/katalvlaran/gridpath/gridgraph"

// nodeItem is one frontier entry: a node and the distance it was pushed with.
// seq is the push counter, used to pop equal distances in insertion order.
type nodeItem struct {
	node *gridgraph.Node
	dist int
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
// It follows the lazy-decrease-key discipline: a shorter distance to a node
// already in the heap is pushed as a new entry, and the outdated one is
// discarded when popped.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nodeItem{}
	*pq = old[:n-1]

	return item
}
