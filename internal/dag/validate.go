package dag

// findCycle walks the dependency edges of every node (disconnected
// components included) and extracts one cycle as a stable witness, or
// returns nil if the graph is acyclic.
//
// The walk is an iterative depth-first traversal with an explicit frame
// stack and the classic three-color marking: white (unvisited), gray
// (in progress), black (done). Meeting a gray node is a back-edge; the
// cycle is reconstructed from the parent chain. Roots are tried in input
// order and edges in declaration order, so the witness is deterministic.
func (g *Graph) findCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, len(g.nodes))
	parent := make([]int, len(g.nodes))
	for i := range parent {
		parent[i] = -1
	}

	type frame struct {
		node int
		next int // index into deps[node] of the next edge to follow
	}

	for root := range g.nodes {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack := []frame{{node: root}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next == len(g.deps[f.node]) {
				color[f.node] = black
				stack = stack[:len(stack)-1]
				continue
			}

			v := g.deps[f.node][f.next]
			f.next++

			switch color[v] {
			case white:
				parent[v] = f.node
				color[v] = gray
				stack = append(stack, frame{node: v})
			case gray:
				// Back-edge f.node -> v. The cycle is v .. f.node via the
				// parent chain, collected backwards and then reversed.
				members := []int{v}
				for cur := f.node; cur != -1 && cur != v; cur = parent[cur] {
					members = append(members, cur)
				}
				out := make([]string, len(members))
				for i, idx := range members {
					out[len(members)-1-i] = g.nodes[idx].task.ID
				}
				return out
			}
		}
	}
	return nil
}
