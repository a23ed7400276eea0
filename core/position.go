package core

import (
	"fmt"
	"iter"
)

// Position is a signed row/column coordinate, row 0 at the top
type Position struct {
	Row, Col int
}

// Add returns the component-wise sum of two positions
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// AddDelta offsets the position by a raw (dRow, dCol) pair
func (p Position) AddDelta(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring position one cell along d
func (p Position) Step(d Direction) Position {
	return p.AddDelta(d.Numeric())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacencies yields the four orthogonal neighbours of pos in North, East, South, West order.
// Each call returns a fresh sequence that can be ranged over any number of times.
func Adjacencies(pos Position) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range Directions {
			if !yield(pos.Step(d)) {
				return
			}
		}
	}
}

// DirectionTo returns the cardinal direction that best points from a toward b.
// The dominant axis wins; equal offsets resolve to the vertical axis.
func DirectionTo(a, b Position) Direction {
	dx := a.Col - b.Col
	dy := a.Row - b.Row
	if abs(dx) > abs(dy) {
		if dx >= 0 {
			return West
		}
		return East
	}
	if dy >= 0 {
		return North
	}
	return South
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
