package search

import (
	"iter"
	"slices"
)

// NoParent marks a root node in an Arena.
const NoParent = -1

type arenaNode[N any] struct {
	value  N
	parent int
}

// Arena stores search nodes by index. Each node remembers the index of its
// parent, which is enough to rebuild a path from any node back to its root.
type Arena[N any] struct {
	nodes []arenaNode[N]
}

// Add stores value with the given parent index and returns its own index.
// Use NoParent for roots.
func (a *Arena[N]) Add(value N, parent int) int {
	a.nodes = append(a.nodes, arenaNode[N]{value: value, parent: parent})
	return len(a.nodes) - 1
}

// Get returns the value stored at idx.
func (a *Arena[N]) Get(idx int) N {
	return a.nodes[idx].value
}

// Parent returns the parent index of idx, or NoParent for a root.
func (a *Arena[N]) Parent(idx int) int {
	return a.nodes[idx].parent
}

// Len returns the number of stored nodes.
func (a *Arena[N]) Len() int {
	return len(a.nodes)
}

// Path returns the values from the root down to idx.
func (a *Arena[N]) Path(idx int) []N {
	var path []N
	for i := idx; i != NoParent; i = a.nodes[i].parent {
		path = append(path, a.nodes[i].value)
	}
	slices.Reverse(path)
	return path
}

// Ancestors yields idx and then each of its ancestors up to the root.
func (a *Arena[N]) Ancestors(idx int) iter.Seq2[int, N] {
	return func(yield func(int, N) bool) {
		for i := idx; i != NoParent; i = a.nodes[i].parent {
			if !yield(i, a.nodes[i].value) {
				return
			}
		}
	}
}
