// Package render paints a game session onto a terminal cell surface
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/game"
	"github.com/tbelaire/maze-w25/maze"
)

// Glyphs for things that are not tiles
const (
	RouteRune  = '.'
	PlayerRune = '&'
)

// Canvas is the part of tcell.Screen the renderer writes to
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Draw paints the maze at the canvas origin with the status line directly below it
// Layers, bottom to top: tiles, route, trolls, player
func Draw(c Canvas, s *game.Session) {
	m := s.Maze()

	for r := range m.Height() {
		for col := range m.Width() {
			pos := core.Position{Row: r, Col: col}
			ch, style := tileCell(m.TileAt(pos))
			c.SetContent(col, r, ch, nil, style)
		}
	}

	for _, pos := range s.Route() {
		if m.TileAt(pos) == maze.Floor {
			c.SetContent(pos.Col, pos.Row, RouteRune, nil, StyleRoute)
		}
	}

	for pos, t := range m.Trolls() {
		style := StyleTrollAlive
		if !t.Alive {
			style = StyleTrollDead
		}
		c.SetContent(pos.Col, pos.Row, t.Facing.Glyph(), nil, style)
	}

	p := s.Player()
	c.SetContent(p.Col, p.Row, PlayerRune, nil, StylePlayer)

	drawText(c, 0, m.Height(), StatusLine(s), StyleStatus)
}

func tileCell(t maze.Tile) (rune, tcell.Style) {
	switch t {
	case maze.Wall:
		return t.Rune(), StyleWall
	case maze.Exit:
		return t.Rune(), StyleExit
	default:
		return t.Rune(), StyleFloor
	}
}

// StatusLine summarises the session below the maze
func StatusLine(s *game.Session) string {
	hint := "-"
	if d, ok := s.HintDir(); ok {
		hint = string(d.Glyph())
	}
	return fmt.Sprintf("tick %d | trolls %d | hint %s | %s",
		s.Ticks(), s.Maze().LivingTrolls(), hint, s.Outcome())
}

func drawText(c Canvas, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		c.SetContent(x, y, ch, nil, style)
		x++
	}
}
