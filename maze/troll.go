package maze

import (
	"fmt"

	"github.com/tbelaire/maze-w25/core"
)

// StunTicks is how long a troll stays dazed after charging into a wall
const StunTicks = 3

// State is a troll's behaviour mode: Wandering, Charging or Stunned
type State interface {
	isState()
	String() string
}

// Wandering trolls amble randomly and watch the line ahead of them
type Wandering struct{}

// Charging trolls run straight along their facing until something stops them
type Charging struct{}

// Stunned trolls sit still for Remaining more ticks
type Stunned struct {
	Remaining int
}

func (Wandering) isState() {}
func (Charging) isState() {}
func (Stunned) isState() {}

func (Wandering) String() string { return "Wandering" }
func (Charging) String() string { return "Charging" }
func (s Stunned) String() string { return fmt.Sprintf("Stunned(%d)", s.Remaining) }

// Troll is a pursuing agent
// Dead trolls stay on the map and ignore updates
type Troll struct {
	Facing core.Direction
	Alive  bool
	State  State
}

// NewTroll creates a living, wandering troll
func NewTroll(facing core.Direction) Troll {
	return Troll{
		Facing: facing,
		Alive:  true,
		State:  Wandering{},
	}
}

// Update advances the troll one tick from pos
// Returns the troll's new position and whether it caught the player
func (t *Troll) Update(pos core.Position, m *Maze, player core.Position, rng Rand) (core.Position, bool) {
	if !t.Alive {
		return pos, false
	}

	switch s := t.State.(type) {
	case nil, Wandering:
		return t.wander(pos, m, player, rng)
	case Charging:
		return t.charge(pos, m, player)
	case Stunned:
		if s.Remaining-1 <= 0 {
			t.State = Wandering{}
		} else {
			t.State = Stunned{Remaining: s.Remaining - 1}
		}
		return pos, false
	default:
		panic(fmt.Sprintf("troll in unknown state %T", t.State))
	}
}

// wander takes one step only when the random draw matches the current facing,
// otherwise it turns to face the drawn direction
func (t *Troll) wander(pos core.Position, m *Maze, player core.Position, rng Rand) (core.Position, bool) {
	d := core.Directions[rng.Intn(len(core.Directions))]
	if d == t.Facing {
		next := t.step(pos, m)
		if next == player {
			return next, true
		}
		if m.TileAt(next) == Floor {
			pos = next
		}
	} else {
		t.Facing = d
	}

	if m.inSight(pos, t.Facing, player) {
		t.State = Charging{}
	} else {
		t.State = Wandering{}
	}
	return pos, false
}

func (t *Troll) charge(pos core.Position, m *Maze, player core.Position) (core.Position, bool) {
	next := t.step(pos, m)
	if next == player {
		return next, true
	}

	switch m.TileAt(next) {
	case Floor:
		return next, false
	case Wall:
		m.Push(next, t.Facing)
		t.State = Stunned{Remaining: StunTicks}
	case Exit:
		t.State = Wandering{}
	}
	return pos, false
}

func (t *Troll) step(pos core.Position, m *Maze) core.Position {
	next := pos.Step(t.Facing)
	if !m.InBounds(next) {
		panic(fmt.Errorf("%w: %v heading %v", ErrOffMap, pos, t.Facing))
	}
	return next
}

// inSight reports whether target lies on the open floor run starting after from along dir
func (m *Maze) inSight(from core.Position, dir core.Direction, target core.Position) bool {
	probe := from
	for {
		probe = probe.Step(dir)
		if !m.InBounds(probe) {
			return false
		}
		if probe == target {
			return true
		}
		if m.TileAt(probe) != Floor {
			return false
		}
	}
}
