package dag

import (
	"planweaver/internal/core"
)

// node pairs a task with its position in the input, which is the final
// ordering tie-breaker and must survive graph construction unchanged.
type node struct {
	task       core.Task
	inputIndex int
}

// Graph is the validated, immutable dependency graph over a task set.
//
// Edge dep -> task means dep must complete before task starts. Construction
// proves the graph acyclic, so ordering can never deadlock.
type Graph struct {
	nodes []node // input order
	index map[string]int

	deps       [][]int // by input index: dependency indices, declaration order
	dependents [][]int // by input index: dependent indices, ascending
	indeg      []int   // number of dependencies per node
}

// NewGraph builds and validates a Graph.
//
// Checks run in a fixed order, failing fast on the first violation:
//  1. task ID uniqueness (ErrDuplicateTaskID)
//  2. duration positivity (ErrInvalidDuration)
//  3. dependency existence, including self-reference (ErrUnknownDependency)
//  4. acyclicity (ErrCyclicDependency, naming the cycle members)
func NewGraph(tasks []core.Task) (*Graph, error) {
	index := make(map[string]int, len(tasks))
	nodes := make([]node, 0, len(tasks))
	for i, t := range tasks {
		if _, exists := index[t.ID]; exists {
			return nil, duplicateIDError(t.ID)
		}
		index[t.ID] = i
		nodes = append(nodes, node{task: t, inputIndex: i})
	}

	for _, n := range nodes {
		if n.task.Duration <= 0 {
			return nil, invalidDurationError(n.task.ID, n.task.Duration)
		}
	}

	deps := make([][]int, len(nodes))
	dependents := make([][]int, len(nodes))
	indeg := make([]int, len(nodes))
	for i, n := range nodes {
		for _, dep := range n.task.DependsOn {
			j, ok := index[dep]
			if !ok || dep == n.task.ID {
				return nil, unknownDependencyError(n.task.ID, dep)
			}
			deps[i] = append(deps[i], j)
			dependents[j] = append(dependents[j], i)
			indeg[i]++
		}
	}

	g := &Graph{
		nodes:      nodes,
		index:      index,
		deps:       deps,
		dependents: dependents,
		indeg:      indeg,
	}

	if cycle := g.findCycle(); cycle != nil {
		return nil, cycleError(cycle)
	}
	return g, nil
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Task returns a task by ID.
func (g *Graph) Task(id string) (core.Task, bool) {
	i, ok := g.index[id]
	if !ok {
		return core.Task{}, false
	}
	return g.nodes[i].task, true
}

// Tasks returns the tasks in input order.
func (g *Graph) Tasks() []core.Task {
	out := make([]core.Task, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.task
	}
	return out
}
