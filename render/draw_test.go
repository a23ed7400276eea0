package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/game"
	"github.com/tbelaire/maze-w25/maze"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// recordingCanvas keeps the last write to every cell
type recordingCanvas struct {
	cells map[[2]int]cell
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{cells: make(map[[2]int]cell)}
}

func (c *recordingCanvas) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{ch: primary, style: style}
}

func (c *recordingCanvas) at(x, y int) cell {
	return c.cells[[2]int{x, y}]
}

func (c *recordingCanvas) row(y, width int) string {
	var sb strings.Builder
	for x := range width {
		sb.WriteRune(c.at(x, y).ch)
	}
	return sb.String()
}

func newSession(t *testing.T, player core.Position, lines ...string) (*game.Session, *maze.Maze) {
	t.Helper()
	m, err := maze.LoadFromLines(lines)
	require.NoError(t, err)
	s, err := game.NewSession(m, player, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s, m
}

func TestDrawTilesAndActors(t *testing.T) {
	s, m := newSession(t, core.Position{Row: 1, Col: 1},
		"######",
		"X    #",
		"######",
	)
	m.AddTroll(core.Position{Row: 1, Col: 3}, maze.NewTroll(core.West))
	dead := maze.NewTroll(core.North)
	dead.Alive = false
	m.AddTroll(core.Position{Row: 1, Col: 4}, dead)

	c := newRecordingCanvas()
	Draw(c, s)

	assert.Equal(t, "######", c.row(0, 6))
	assert.Equal(t, "X& ←↑#", c.row(1, 6))
	assert.Equal(t, "######", c.row(2, 6))

	assert.Equal(t, StyleWall, c.at(0, 0).style)
	assert.Equal(t, StyleExit, c.at(0, 1).style)
	assert.Equal(t, StyleFloor, c.at(2, 1).style)
	assert.Equal(t, StylePlayer, c.at(1, 1).style)
	assert.Equal(t, StyleTrollAlive, c.at(3, 1).style)
	assert.Equal(t, StyleTrollDead, c.at(4, 1).style)
}

func TestDrawRouteUnderActors(t *testing.T) {
	s, _ := newSession(t, core.Position{Row: 3, Col: 1},
		"#####",
		"X   #",
		"### #",
		"#   #",
		"#####",
	)
	s.Tick(game.Hint)

	c := newRecordingCanvas()
	Draw(c, s)

	assert.Equal(t, "X...#", c.row(1, 5))
	assert.Equal(t, "###.#", c.row(2, 5))
	assert.Equal(t, "#&..#", c.row(3, 5))
	assert.Equal(t, StyleRoute, c.at(3, 3).style)
	assert.Equal(t, StyleExit, c.at(0, 1).style, "the exit keeps its own glyph")
}

func TestStatusLine(t *testing.T) {
	s, m := newSession(t, core.Position{Row: 3, Col: 1},
		"#####",
		"X   #",
		"### #",
		"#   #",
		"#####",
	)
	m.AddTroll(core.Position{Row: 1, Col: 3}, maze.NewTroll(core.South))

	assert.Equal(t, "tick 0 | trolls 1 | hint - | playing", StatusLine(s))

	c := newRecordingCanvas()
	Draw(c, s)
	line := StatusLine(s)
	assert.Equal(t, line, c.row(m.Height(), len([]rune(line))))
	assert.Equal(t, StyleStatus, c.at(0, m.Height()).style)

	s.Tick(game.Quit)
	assert.Equal(t, "tick 1 | trolls 1 | hint - | quit", StatusLine(s))
}

func TestStatusLineHint(t *testing.T) {
	s, _ := newSession(t, core.Position{Row: 3, Col: 1},
		"#####",
		"X   #",
		"### #",
		"#   #",
		"#####",
	)
	s.Tick(game.Hint)
	assert.Equal(t, "tick 1 | trolls 0 | hint → | playing", StatusLine(s))
}
