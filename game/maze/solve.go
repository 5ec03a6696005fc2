package maze

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// Reachable counts the cells reachable from start through open sides only.
func Reachable(m *Maze, start Position) int {
	if !m.InBound(start) {
		return 0
	}
	seen := 0
	walk(m, start, func(Position, Position) { seen++ })
	return seen
}

// ShortestPath returns the positions from `from` to `to` inclusive, following
// open passages. In a perfect maze this is the only simple path. It returns nil
// when either end is out of bounds or `to` cannot be reached.
func ShortestPath(m *Maze, from, to Position) []Position {
	if !m.InBound(from) || !m.InBound(to) {
		return nil
	}

	parents := map[Position]Position{}
	found := false
	walk(m, from, func(pos, parent Position) {
		parents[pos] = parent
		if pos == to {
			found = true
		}
	})
	if !found {
		return nil
	}

	path := []Position{to}
	for pos := to; pos != from; {
		pos = parents[pos]
		path = append(path, pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// walk runs a breadth-first traversal from start, calling visit once per
// reached cell with the cell it was reached from (start is its own parent).
func walk(m *Maze, start Position, visit func(pos, parent Position)) {
	visited := mapset.New[Position]()
	visited.Put(start)

	var queue deque.Deque[Position]
	queue.PushBack(start)
	visit(start, start)

	for queue.Len() > 0 {
		current := queue.PopFront()
		for _, d := range Directions {
			next, ok := TryMove(m, current, d)
			if !ok || visited.Has(next) {
				continue
			}
			visited.Put(next)
			visit(next, current)
			queue.PushBack(next)
		}
	}
}
