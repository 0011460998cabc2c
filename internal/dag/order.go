package dag

import (
	"container/heap"
	"time"
)

// TieBreak selects which ordering key dominates when choosing among ready
// tasks. The precedence is deliberately an explicit policy rather than a
// hidden constant.
type TieBreak string

const (
	// TieBreakDeadlineFirst orders ready tasks by earliest deadline, then
	// higher priority, then input order. This is the default policy.
	TieBreakDeadlineFirst TieBreak = "deadline-first"

	// TieBreakPriorityFirst orders ready tasks by higher priority, then
	// earliest deadline, then input order.
	TieBreakPriorityFirst TieBreak = "priority-first"
)

// Valid reports whether the policy is one of the known values.
func (t TieBreak) Valid() bool {
	return t == TieBreakDeadlineFirst || t == TieBreakPriorityFirst
}

// Order computes the total execution order of the graph's task IDs.
//
// Algorithm: Kahn's topological sort where the ready set is a min-heap
// keyed by the tie-break policy. A task enters the heap exactly when its
// last unplaced dependency is placed. Tasks with no deadline sort after
// all deadlined tasks. The final tie-breaker is input order, so the output
// is fully deterministic.
//
// This is a greedy single pass: it guarantees dependency validity and the
// stated tie-break precedence, not globally optimal deadline satisfaction.
// Since construction proved the graph acyclic, the order is always
// complete. Pure: the graph is not mutated.
func (g *Graph) Order(policy TieBreak) []string {
	indeg := make([]int, len(g.indeg))
	copy(indeg, g.indeg)

	ready := &readyHeap{g: g, policy: policy}
	heap.Init(ready)
	for i := range indeg {
		if indeg[i] == 0 {
			heap.Push(ready, i)
		}
	}

	out := make([]string, 0, len(g.nodes))
	for ready.Len() > 0 {
		u := heap.Pop(ready).(int)
		out = append(out, g.nodes[u].task.ID)
		for _, v := range g.dependents[u] {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(ready, v)
			}
		}
	}
	return out
}

// readyHeap is a min-heap of node indices. Less is the single home of the
// ordering policy; nothing else in the engine compares tasks.
type readyHeap struct {
	g      *Graph
	policy TieBreak
	items  []int
}

func (h *readyHeap) Len() int { return len(h.items) }

func (h *readyHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	ta, tb := h.g.nodes[a].task, h.g.nodes[b].task

	switch h.policy {
	case TieBreakPriorityFirst:
		if ta.Priority != tb.Priority {
			return ta.Priority > tb.Priority
		}
		if c := compareDeadlines(ta.Deadline, tb.Deadline); c != 0 {
			return c < 0
		}
	default: // deadline-first
		if c := compareDeadlines(ta.Deadline, tb.Deadline); c != 0 {
			return c < 0
		}
		if ta.Priority != tb.Priority {
			return ta.Priority > tb.Priority
		}
	}
	return a < b // input order, keeps the sort stable
}

func (h *readyHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *readyHeap) Push(x any)    { h.items = append(h.items, x.(int)) }
func (h *readyHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// compareDeadlines orders earlier deadlines first and nil deadlines after
// every concrete one. Returns -1, 0 or +1.
func compareDeadlines(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case b.Before(*a):
		return 1
	default:
		return 0
	}
}
