// Package game drives a maze session: one player command followed by a sweep of every troll, per tick
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/maze"
	"github.com/tbelaire/maze-w25/navigation"
)

// Session errors
var (
	ErrInvalidPlayer = errors.New("player must start on a floor tile")
	ErrNoSpawnRoom   = errors.New("no free floor tile for a troll")
)

const maxSpawnAttempts = 64

// Session owns a maze, the player's position, and the shared randomness stream
// Not safe for concurrent use; drive it from a single goroutine
type Session struct {
	ID uuid.UUID

	maze   *maze.Maze
	player core.Position
	facing core.Direction
	rng    maze.Rand
	logger core.Logger
	finder *navigation.Pathfinder

	tick    int
	outcome Outcome

	showRoute bool
	route     []core.Position
}

// Option configures a Session
type Option func(*Session)

// WithLogger routes session logging to l
func WithLogger(l core.Logger) Option {
	return func(s *Session) {
		s.logger = core.OrNop(l)
	}
}

// WithID overrides the generated session ID
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.ID = id
	}
}

// NewSession starts a session with the player standing on a floor tile of m
func NewSession(m *maze.Maze, player core.Position, rng maze.Rand, opts ...Option) (*Session, error) {
	if !m.InBounds(player) || m.TileAt(player) != maze.Floor {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlayer, player)
	}

	s := &Session{
		ID:     uuid.New(),
		maze:   m,
		player: player,
		facing: core.North,
		rng:    rng,
		logger: core.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.finder = navigation.NewPathfinder(s.logger)

	s.logf("session started at %v on a %dx%d maze", player, m.Height(), m.Width())
	return s, nil
}

// SpawnTrolls places n trolls on random free floor tiles, each facing a random direction
func (s *Session) SpawnTrolls(n int) error {
	for i := 0; i < n; i++ {
		pos, err := s.freeFloorTile()
		if err != nil {
			return fmt.Errorf("spawn troll %d of %d: %w", i+1, n, err)
		}
		facing := core.Directions[s.rng.Intn(len(core.Directions))]
		s.maze.AddTroll(pos, maze.NewTroll(facing))
	}
	s.logf("spawned %d trolls", n)
	return nil
}

func (s *Session) freeFloorTile() (core.Position, error) {
	for range maxSpawnAttempts {
		pos, err := s.maze.RandomFloorTile(s.rng)
		if err != nil {
			return core.Position{}, err
		}
		if s.isFree(pos) {
			return pos, nil
		}
	}

	// Crowded map: pick uniformly among what is left
	var free []core.Position
	for r := range s.maze.Height() {
		for c := range s.maze.Width() {
			pos := core.Position{Row: r, Col: c}
			if s.maze.TileAt(pos) == maze.Floor && s.isFree(pos) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return core.Position{}, ErrNoSpawnRoom
	}
	return free[s.rng.Intn(len(free))], nil
}

func (s *Session) isFree(pos core.Position) bool {
	if pos == s.player {
		return false
	}
	_, taken := s.maze.TrollAt(pos)
	return !taken
}

// Maze returns the live maze
func (s *Session) Maze() *maze.Maze { return s.maze }

// Player returns the player's position
func (s *Session) Player() core.Position { return s.player }

// Facing returns the direction of the player's last move
func (s *Session) Facing() core.Direction { return s.facing }

// Ticks returns how many ticks have run
func (s *Session) Ticks() int { return s.tick }

// Outcome returns the current end state, Playing while the session runs
func (s *Session) Outcome() Outcome { return s.outcome }

// Over reports whether the session has ended
func (s *Session) Over() bool { return s.outcome != Playing }

// Route returns the visible route to the exit, nil while the overlay is off
func (s *Session) Route() []core.Position { return s.route }

// HintDir returns the direction of the first step along the visible route
func (s *Session) HintDir() (core.Direction, bool) {
	if len(s.route) == 0 {
		return core.North, false
	}
	return core.DirectionTo(s.player, s.route[0]), true
}

// Tick applies one player command, then updates every troll
// Once the session is over, Tick does nothing and reports the final outcome
func (s *Session) Tick(cmd Command) TickResult {
	if s.Over() {
		return TickResult{Tick: s.tick, Outcome: s.outcome}
	}

	s.tick++
	res := TickResult{Tick: s.tick}
	living := s.livingTrolls()

	switch cmd.Action {
	case ActionQuit:
		s.outcome = Quitted
		s.logf("tick %d: player quit", s.tick)
		res.Outcome = s.outcome
		return res
	case ActionMove:
		s.movePlayer(cmd.Dir, &res)
	case ActionHint:
		s.showRoute = !s.showRoute
	case ActionWait:
	}

	if !s.Over() {
		s.sweep(&res)
	}

	for _, t := range living {
		if !t.Alive {
			res.KnockedOut++
		}
	}
	s.refreshRoute()
	res.Outcome = s.outcome
	return res
}

// movePlayer steps into floor, walks out through an exit, or pushes a wall
func (s *Session) movePlayer(d core.Direction, res *TickResult) {
	s.facing = d
	dest := s.player.Step(d)
	if !s.maze.InBounds(dest) {
		return
	}

	if t, ok := s.maze.TrollAt(dest); ok && t.Alive {
		s.player = dest
		res.PlayerMoved = true
		s.outcome = Captured
		s.logf("tick %d: player walked into a troll at %v", s.tick, dest)
		return
	}

	switch s.maze.TileAt(dest) {
	case maze.Floor:
		s.player = dest
		res.PlayerMoved = true
	case maze.Exit:
		s.player = dest
		res.PlayerMoved = true
		s.outcome = Escaped
		s.logf("tick %d: player escaped at %v", s.tick, dest)
	case maze.Wall:
		res.PlayerPush = s.maze.Push(dest, d)
		if res.PlayerPush {
			s.logf("tick %d: player pushed wall %v %v", s.tick, dest, d)
		}
	}
}

// sweep updates every troll once, in row-major order of their positions at tick entry
func (s *Session) sweep(res *TickResult) {
	updated := make(map[*maze.Troll]bool, s.maze.TrollCount())

	for _, pos := range s.maze.TrollPositions() {
		t, ok := s.maze.TrollAt(pos)
		if !ok || updated[t] {
			continue
		}
		updated[t] = true

		_, wasStunned := t.State.(maze.Stunned)
		next, caught := t.Update(pos, s.maze, s.player, s.rng)
		s.maze.MoveTroll(pos, next)

		if _, stunned := t.State.(maze.Stunned); stunned && !wasStunned {
			res.Stuns++
		}
		if caught {
			s.outcome = Captured
			s.logf("tick %d: troll from %v caught the player at %v", s.tick, pos, next)
			return
		}
	}
}

// livingTrolls snapshots the living trolls so deaths can be told apart from trolls overrun in the map
func (s *Session) livingTrolls() []*maze.Troll {
	var living []*maze.Troll
	for _, t := range s.maze.Trolls() {
		if t.Alive {
			living = append(living, t)
		}
	}
	return living
}

func (s *Session) refreshRoute() {
	if !s.showRoute || s.Over() {
		s.route = nil
		return
	}
	s.route = s.finder.Pathfind(s.maze, s.player)
}

func (s *Session) logf(format string, args ...any) {
	s.logger.Printf("[%s] "+format, append([]any{s.ID.String()[:8]}, args...)...)
}
