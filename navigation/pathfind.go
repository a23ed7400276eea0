// Package navigation finds routes through a maze
package navigation

import (
	"fmt"
	"slices"

	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/maze"
)

// searchNode is the per-cell search state for a single Pathfind call
type searchNode struct {
	cost      int
	finalized bool
	from      core.Direction
}

// Pathfinder runs uniform-cost searches toward the nearest exit
// Search buffers are reused across calls; a Pathfinder is not safe for concurrent use
type Pathfinder struct {
	logger core.Logger
	nodes  []searchNode
	heap   minHeap
}

// NewPathfinder creates a pathfinder; logger may be nil
func NewPathfinder(logger core.Logger) *Pathfinder {
	return &Pathfinder{logger: core.OrNop(logger)}
}

// Pathfind returns the shortest route from start to any exit using a throwaway Pathfinder
func Pathfind(m *maze.Maze, start core.Position) []core.Position {
	return NewPathfinder(nil).Pathfind(m, start)
}

// Pathfind returns the fewest-steps route from start to the nearest Exit tile
// The route excludes start and ends on the exit. It is nil when no exit is reachable
// or start is already an exit. The maze is not modified.
func (p *Pathfinder) Pathfind(m *maze.Maze, start core.Position) []core.Position {
	if !m.InBounds(start) {
		panic(fmt.Errorf("%w: pathfind start %v", core.ErrOutOfBounds, start))
	}

	w := m.Width()
	size := m.Height() * w
	if cap(p.nodes) < size {
		p.nodes = make([]searchNode, size)
	} else {
		p.nodes = p.nodes[:size]
		clear(p.nodes)
	}
	idx := func(pos core.Position) int { return pos.Row*w + pos.Col }

	p.heap = p.heap[:0]
	p.heap.push(heapEntry{cost: 0, pos: start, from: core.North})

	var exit core.Position
	found := false
	expanded := 0

	for len(p.heap) > 0 {
		entry := p.heap.pop()

		if m.TileAt(entry.pos) == maze.Exit {
			p.nodes[idx(entry.pos)].from = entry.from
			exit = entry.pos
			found = true
			break
		}

		node := &p.nodes[idx(entry.pos)]
		if node.finalized && node.cost <= entry.cost {
			continue // Stale entry
		}
		node.cost = entry.cost
		node.finalized = true
		node.from = entry.from
		expanded++

		for _, d := range core.Directions {
			next := entry.pos.Step(d)
			if !m.InBounds(next) || m.TileAt(next) == maze.Wall {
				continue
			}
			p.heap.push(heapEntry{cost: entry.cost + 1, pos: next, from: d.Flip()})
		}
	}

	if !found {
		p.logger.Printf("pathfind: no route to an exit from %v (%d cells expanded)", start, expanded)
		return nil
	}

	var path []core.Position
	for curr := exit; curr != start; curr = curr.Step(p.nodes[idx(curr)].from) {
		path = append(path, curr)
	}
	slices.Reverse(path)

	p.logger.Printf("pathfind: exit %v is %d steps from %v (%d cells expanded)", exit, len(path), start, expanded)
	return path
}
