package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is the contract violation raised when a grid is addressed outside its bounds
var ErrOutOfBounds = errors.New("position out of bounds")

// Grid is a rectangular 2D store addressed by Position
// Out-of-range access panics; callers are expected to check InBounds first
type Grid[T any] struct {
	height int
	width  int
	cells  []T // Row-major, len == height*width
}

// NewGrid creates a height x width grid with every cell set to fill
func NewGrid[T any](height, width int, fill T) *Grid[T] {
	if height < 1 || width < 1 {
		panic(fmt.Errorf("grid dimensions must be at least 1x1, got %dx%d", height, width))
	}
	cells := make([]T, height*width)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{
		height: height,
		width:  width,
		cells:  cells,
	}
}

// NewGridFunc creates a grid whose cells are initialized by init
func NewGridFunc[T any](height, width int, init func(Position) T) *Grid[T] {
	var zero T
	g := NewGrid(height, width, zero)
	for i := range g.cells {
		g.cells[i] = init(Position{Row: i / width, Col: i % width})
	}
	return g
}

// Height returns the number of rows
func (g *Grid[T]) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid[T]) Width() int {
	return g.width
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the value stored at p
func (g *Grid[T]) At(p Position) T {
	return g.cells[g.index(p)]
}

// Set stores v at p
func (g *Grid[T]) Set(p Position, v T) {
	g.cells[g.index(p)] = v
}

// Fill overwrites every cell with v
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Row returns a copy of row r
func (g *Grid[T]) Row(r int) []T {
	g.index(Position{Row: r})
	out := make([]T, g.width)
	copy(out, g.cells[r*g.width:(r+1)*g.width])
	return out
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{height: g.height, width: g.width, cells: cells}
}

func (g *Grid[T]) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.height, g.width))
	}
	return p.Row*g.width + p.Col
}
