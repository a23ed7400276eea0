// Package maze holds the tile map, the trolls living on it, and the algorithms that build and mutate it.
package maze

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/tbelaire/maze-w25/core"
)

// Rand is the randomness source consumed by generation and troll wandering
// *math/rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// Maze is a tile grid plus the trolls standing on it
// Trolls are keyed by position, so a cell holds at most one troll
type Maze struct {
	tiles  *core.Grid[Tile]
	trolls map[core.Position]*Troll
}

// New wraps an existing tile grid
func New(tiles *core.Grid[Tile]) *Maze {
	return &Maze{
		tiles:  tiles,
		trolls: make(map[core.Position]*Troll),
	}
}

// NewFilled creates a height x width maze with every tile set to t
func NewFilled(height, width int, t Tile) *Maze {
	return New(core.NewGrid(height, width, t))
}

// Height returns the number of tile rows
func (m *Maze) Height() int {
	return m.tiles.Height()
}

// Width returns the number of tile columns
func (m *Maze) Width() int {
	return m.tiles.Width()
}

// InBounds reports whether pos lies on the tile grid
func (m *Maze) InBounds(pos core.Position) bool {
	return m.tiles.InBounds(pos)
}

// TileAt returns the tile at pos; pos must be in bounds
func (m *Maze) TileAt(pos core.Position) Tile {
	return m.tiles.At(pos)
}

// SetTile overwrites the tile at pos; pos must be in bounds
func (m *Maze) SetTile(pos core.Position, t Tile) {
	m.tiles.Set(pos, t)
}

// AddTroll places a troll at pos, replacing any troll already there
func (m *Maze) AddTroll(pos core.Position, t Troll) *Troll {
	stored := &t
	m.trolls[pos] = stored
	return stored
}

// TrollAt returns the troll standing at pos
func (m *Maze) TrollAt(pos core.Position) (*Troll, bool) {
	t, ok := m.trolls[pos]
	return t, ok
}

// MoveTroll rekeys the troll at from to to, replacing any troll at the destination
func (m *Maze) MoveTroll(from, to core.Position) {
	if from == to {
		return
	}
	t, ok := m.trolls[from]
	if !ok {
		return
	}
	delete(m.trolls, from)
	m.trolls[to] = t
}

// TrollCount returns the number of trolls, dead or alive
func (m *Maze) TrollCount() int {
	return len(m.trolls)
}

// LivingTrolls returns the number of trolls still alive
func (m *Maze) LivingTrolls() int {
	n := 0
	for _, t := range m.trolls {
		if t.Alive {
			n++
		}
	}
	return n
}

// Trolls yields every troll in row-major position order
// The order is fixed when iteration starts; mutating the troll set mid-iteration is allowed
func (m *Maze) Trolls() iter.Seq2[core.Position, *Troll] {
	return func(yield func(core.Position, *Troll) bool) {
		for _, pos := range m.TrollPositions() {
			t, ok := m.trolls[pos]
			if !ok {
				continue
			}
			if !yield(pos, t) {
				return
			}
		}
	}
}

// TrollPositions returns the occupied positions sorted row-major
func (m *Maze) TrollPositions() []core.Position {
	positions := make([]core.Position, 0, len(m.trolls))
	for pos := range m.trolls {
		positions = append(positions, pos)
	}
	slices.SortFunc(positions, comparePositions)
	return positions
}

// Push slides the wall at pos one cell along dir
// A troll standing at pos is knocked out. The tiles only change when the far cell is Floor,
// in which case the far cell becomes Wall and pos becomes Floor. Returns true if tiles changed.
func (m *Maze) Push(pos core.Position, dir core.Direction) bool {
	far := pos.Step(dir)
	if !m.InBounds(far) {
		return false
	}

	if t, ok := m.trolls[pos]; ok {
		t.Alive = false
	}

	if m.tiles.At(far) != Floor {
		return false
	}
	m.tiles.Set(far, Wall)
	m.tiles.Set(pos, Floor)
	return true
}

// RandomFloorTile draws uniform positions until one lands on Floor
func (m *Maze) RandomFloorTile(rng Rand) (core.Position, error) {
	for range maxFloorDraws {
		pos := core.Position{Row: rng.Intn(m.Height()), Col: rng.Intn(m.Width())}
		if m.tiles.At(pos) == Floor {
			return pos, nil
		}
	}
	return core.Position{}, fmt.Errorf("no floor tile after %d draws: %w", maxFloorDraws, ErrExhaustedRetries)
}

const maxFloorDraws = 10000

// Exits returns every Exit tile position in row-major order
func (m *Maze) Exits() []core.Position {
	var exits []core.Position
	for r := 0; r < m.Height(); r++ {
		for c, t := range m.tiles.Row(r) {
			if t == Exit {
				exits = append(exits, core.Position{Row: r, Col: c})
			}
		}
	}
	return exits
}

// Lines renders the tile grid in the plain-text layout, one string per row
// Trolls are not part of the layout
func (m *Maze) Lines() []string {
	lines := make([]string, m.Height())
	var sb strings.Builder
	for r := range lines {
		sb.Reset()
		for _, t := range m.tiles.Row(r) {
			sb.WriteRune(t.Rune())
		}
		lines[r] = sb.String()
	}
	return lines
}

// String returns the layout text with a trailing newline per row
func (m *Maze) String() string {
	return strings.Join(m.Lines(), "\n") + "\n"
}

// WriteTo writes the layout text to w
func (m *Maze) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}

// Clone returns a deep copy of the tiles and trolls
func (m *Maze) Clone() *Maze {
	c := New(m.tiles.Clone())
	for pos, t := range m.trolls {
		cp := *t
		c.trolls[pos] = &cp
	}
	return c
}

func comparePositions(a, b core.Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
