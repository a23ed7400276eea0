package navigation

import "github.com/tbelaire/maze-w25/core"

type heapEntry struct {
	cost int
	pos  core.Position
	from core.Direction // Direction back toward the cell this entry was reached from
}

// minHeap orders entries by ascending cost, then row-major position, then arrival direction
// Equal-cost ties never depend on push order
type minHeap []heapEntry

func (h minHeap) less(i, j int) bool {
	a, b := h[i], h[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.pos.Row != b.pos.Row {
		return a.pos.Row < b.pos.Row
	}
	if a.pos.Col != b.pos.Col {
		return a.pos.Col < b.pos.Col
	}
	return a.from < b.from
}

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	q := *h
	for child := len(q) - 1; child > 0; {
		parent := (child - 1) / 2
		if !q.less(child, parent) {
			break
		}
		q[parent], q[child] = q[child], q[parent]
		child = parent
	}
}

func (h *minHeap) pop() heapEntry {
	q := *h
	top := q[0]
	last := len(q) - 1
	q[0] = q[last]
	q = q[:last]
	*h = q

	for i := 0; ; {
		best := i
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < len(q) && q.less(c, best) {
				best = c
			}
		}
		if best == i {
			break
		}
		q[i], q[best] = q[best], q[i]
		i = best
	}
	return top
}
