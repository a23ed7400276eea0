package core

// Direction is one of the four cardinal directions
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in adjacency order
// Index matches the Direction value, so Directions[rng.Intn(4)] is a uniform draw
var Directions = [4]Direction{North, East, South, West}

// Unit vectors as (dRow, dCol), indexed by Direction
var dirVectors = [4][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
}

var dirGlyphs = [4]rune{'↑', '→', '↓', '←'}

var dirNames = [4]string{"North", "East", "South", "West"}

// Numeric returns the unit step as (dRow, dCol)
func (d Direction) Numeric() (int, int) {
	v := dirVectors[d&3]
	return v[0], v[1]
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	return (d + 2) & 3
}

// Glyph returns the arrow used to draw something facing d
func (d Direction) Glyph() rune {
	return dirGlyphs[d&3]
}

func (d Direction) String() string {
	if d > West {
		return "Direction(?)"
	}
	return dirNames[d]
}
