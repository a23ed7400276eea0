package maze

// Tile is the classification of a single maze cell
type Tile uint8

const (
	Floor Tile = iota
	Wall
	Exit
)

// Layout characters
const (
	FloorRune = ' '
	WallRune  = '#'
	ExitRune  = 'X'
)

// Rune returns the layout character for the tile
func (t Tile) Rune() rune {
	switch t {
	case Floor:
		return FloorRune
	case Wall:
		return WallRune
	case Exit:
		return ExitRune
	}
	return '?'
}

func (t Tile) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case Exit:
		return "Exit"
	}
	return "Tile(?)"
}

// ParseTile maps a layout character to its tile
func ParseTile(r rune) (Tile, bool) {
	switch r {
	case FloorRune:
		return Floor, true
	case WallRune:
		return Wall, true
	case ExitRune:
		return Exit, true
	}
	return 0, false
}
