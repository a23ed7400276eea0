package game

import "github.com/tbelaire/maze-w25/core"

// Action is the kind of command the player issues for a tick
type Action uint8

const (
	ActionWait Action = iota // Stand still, trolls still move
	ActionMove               // Step (or push) in Command.Dir
	ActionHint               // Toggle the route-to-exit overlay
	ActionQuit               // End the session
)

// Command is one accepted player input
type Command struct {
	Action Action
	Dir    core.Direction // Only meaningful for ActionMove
}

// Move returns a move command in d
func Move(d core.Direction) Command {
	return Command{Action: ActionMove, Dir: d}
}

// Wait, Hint and Quit are the argument-free commands
var (
	Wait = Command{Action: ActionWait}
	Hint = Command{Action: ActionHint}
	Quit = Command{Action: ActionQuit}
)

// Outcome is the session's end state
type Outcome uint8

const (
	Playing Outcome = iota
	Escaped
	Captured
	Quitted
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Escaped:
		return "escaped"
	case Captured:
		return "captured"
	case Quitted:
		return "quit"
	}
	return "unknown"
}

// TickResult summarizes what happened during one tick
type TickResult struct {
	Tick        int
	Outcome     Outcome
	PlayerMoved bool
	PlayerPush  bool // Player slid a wall
	Stuns       int  // Trolls that charged into a wall this tick
	KnockedOut  int  // Trolls that died this tick
}
