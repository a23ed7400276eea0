// Package input maps terminal key events to game commands
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/game"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]game.Command

	// Printable runes
	Runes map[rune]game.Command
}

// DefaultKeyTable returns the default bindings: arrows, hjkl and wasd move,
// '.' or space waits, 'p' or '?' toggles the route hint, q/Esc/Ctrl-C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]game.Command{
			tcell.KeyUp:     game.Move(core.North),
			tcell.KeyRight:  game.Move(core.East),
			tcell.KeyDown:   game.Move(core.South),
			tcell.KeyLeft:   game.Move(core.West),
			tcell.KeyEscape: game.Quit,
			tcell.KeyCtrlC:  game.Quit,
		},
		Runes: map[rune]game.Command{
			// vi
			'k': game.Move(core.North),
			'l': game.Move(core.East),
			'j': game.Move(core.South),
			'h': game.Move(core.West),
			// wasd
			'w': game.Move(core.North),
			'd': game.Move(core.East),
			's': game.Move(core.South),
			'a': game.Move(core.West),

			'.': game.Wait,
			' ': game.Wait,
			'p': game.Hint,
			'?': game.Hint,
			'q': game.Quit,
		},
	}
}

// Translate looks the event up in the table
func (kt *KeyTable) Translate(ev *tcell.EventKey) (game.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := kt.Runes[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := kt.SpecialKeys[ev.Key()]
	return cmd, ok
}

var defaultTable = DefaultKeyTable()

// Translate maps ev through the default bindings
func Translate(ev *tcell.EventKey) (game.Command, bool) {
	return defaultTable.Translate(ev)
}
