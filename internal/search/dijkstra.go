package search

import "github.com/vovakirdan/xmas/internal/core"

// Step is an edge to a neighbouring node with a non-negative cost.
type Step[N any] struct {
	Node N
	Cost int
}

// Result is a shortest path from the start node to a goal node, both included.
type Result[N any] struct {
	Path []N
	Cost int
}

type visit[N any] struct {
	node N
	cost int
}

// Dijkstra finds the cheapest path from start to the first node satisfying
// goal. ok is false when no goal is reachable.
func Dijkstra[N comparable](start N, next func(N) []Step[N], goal func(N) bool) (Result[N], bool) {
	return AStar(start, next, func(N) int { return 0 }, goal)
}

// AStar is Dijkstra guided by heuristic, which must never overestimate the
// remaining cost to a goal.
func AStar[N comparable](start N, next func(N) []Step[N], heuristic func(N) int, goal func(N) bool) (Result[N], bool) {
	var arena Arena[visit[N]]
	best := map[N]int{start: 0}
	frontier := core.NewMinQueue[int, int]()
	frontier.Push(arena.Add(visit[N]{node: start}, NoParent), heuristic(start))

	for frontier.Len() > 0 {
		item, _ := frontier.Pop()
		cur := arena.Get(item.Value)
		if cost := best[cur.node]; cost < cur.cost {
			continue // stale entry
		}
		if goal(cur.node) {
			return Result[N]{Path: nodes(arena.Path(item.Value)), Cost: cur.cost}, true
		}
		for _, s := range next(cur.node) {
			cost := cur.cost + s.Cost
			if known, ok := best[s.Node]; ok && known <= cost {
				continue
			}
			best[s.Node] = cost
			idx := arena.Add(visit[N]{node: s.Node, cost: cost}, item.Value)
			frontier.Push(idx, cost+heuristic(s.Node))
		}
	}
	return Result[N]{}, false
}

func nodes[N any](visits []visit[N]) []N {
	out := make([]N, len(visits))
	for i, v := range visits {
		out[i] = v.node
	}
	return out
}
