package render

import "github.com/gdamore/tcell/v2"

// Palette for the maze view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbExit       = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbRoute      = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbTrollAlive = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbTrollDead  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbPlayer     = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbStatusText = tcell.NewRGBColor(200, 200, 200) // Light gray
)

// Styles derived from the palette
var (
	StyleFloor      = tcell.StyleDefault.Background(RgbBackground)
	StyleWall       = StyleFloor.Foreground(RgbWall)
	StyleExit       = StyleFloor.Foreground(RgbExit).Bold(true)
	StyleRoute      = StyleFloor.Foreground(RgbRoute)
	StyleTrollAlive = StyleFloor.Foreground(RgbTrollAlive).Bold(true)
	StyleTrollDead  = StyleFloor.Foreground(RgbTrollDead)
	StylePlayer     = StyleFloor.Foreground(RgbPlayer).Bold(true)
	StyleStatus     = StyleFloor.Foreground(RgbStatusText)
)
