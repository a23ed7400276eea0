package maze

import (
	"fmt"

	"github.com/tbelaire/maze-w25/core"
)

// GenerateConfig describes a maze to generate
// Height and Width count cells, not tiles: the tile grid is (2*Height+1) x (2*Width+1)
type GenerateConfig struct {
	Height, Width int
	Rand          Rand
	Logger        core.Logger // Optional
}

// Cell centers sit on odd/odd tile coordinates; these are the jumps between neighbouring centers
var cellJumps = [4]core.Position{{Row: -2, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: -2}}

// Generate builds a perfect maze with Hunt-and-Kill
// The exit is carved into the west wall next to the first cell
func Generate(cfg GenerateConfig) (*Maze, error) {
	if cfg.Height < 1 || cfg.Width < 1 {
		return nil, fmt.Errorf("maze dimensions %dx%d: %w", cfg.Height, cfg.Width, ErrInvalidArgument)
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("nil randomness source: %w", ErrInvalidArgument)
	}
	log := core.OrNop(cfg.Logger)

	g := &generator{
		m:      NewFilled(2*cfg.Height+1, 2*cfg.Width+1, Wall),
		height: cfg.Height,
		width:  cfg.Width,
		rng:    cfg.Rand,
	}

	// 1. Global exit, and the first cell that seeds the tree
	g.m.SetTile(core.Position{Row: 1, Col: 0}, Exit)
	g.m.SetTile(center(0, 0), Floor)

	hunts := 0
	for {
		// 2. Hunt for the next unvisited cell
		cell, ok := g.hunt()
		if !ok {
			break
		}
		hunts++

		// 3. Graft it onto the existing tree
		g.graft(cell)

		// 4. Kill: random walk until boxed in
		g.walk(cell)
	}

	log.Printf("maze: generated %dx%d cells (%dx%d tiles) in %d hunts", cfg.Height, cfg.Width, g.m.Height(), g.m.Width(), hunts)
	return g.m, nil
}

type generator struct {
	m             *Maze
	height, width int // In cells
	rng           Rand
	finishedRow   int // Cell rows above this are fully visited
}

func center(row, col int) core.Position {
	return core.Position{Row: 2*row + 1, Col: 2*col + 1}
}

func (g *generator) visited(p core.Position) bool {
	return g.m.TileAt(p) == Floor
}

// hunt scans forward from finishedRow for the first unvisited cell center
func (g *generator) hunt() (core.Position, bool) {
	for ; g.finishedRow < g.height; g.finishedRow++ {
		for col := 0; col < g.width; col++ {
			p := center(g.finishedRow, col)
			if !g.visited(p) {
				return p, true
			}
		}
	}
	return core.Position{}, false
}

// neighbours returns the in-bounds cell centers around p whose visited state matches want
func (g *generator) neighbours(p core.Position, want bool) []core.Position {
	candidates := make([]core.Position, 0, 4)
	for _, j := range cellJumps {
		n := p.Add(j)
		if !g.m.InBounds(n) {
			continue
		}
		if g.visited(n) == want {
			candidates = append(candidates, n)
		}
	}
	return candidates
}

func (g *generator) graft(p core.Position) {
	candidates := g.neighbours(p, true)
	if len(candidates) == 0 {
		return
	}
	g.carveBetween(p, candidates[g.rng.Intn(len(candidates))])
}

func (g *generator) walk(p core.Position) {
	curr := p
	for {
		g.m.SetTile(curr, Floor)

		candidates := g.neighbours(curr, false)
		if len(candidates) == 0 {
			return
		}
		next := candidates[g.rng.Intn(len(candidates))]
		g.carveBetween(curr, next)
		curr = next
	}
}

// carveBetween opens the wall tile midway between two neighbouring cell centers
func (g *generator) carveBetween(a, b core.Position) {
	g.m.SetTile(core.Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}, Floor)
}
