package game

import (
	"bytes"
	"log"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbelaire/maze-w25/core"
	"github.com/tbelaire/maze-w25/maze"
)

// fixedRand always draws the same value
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func mustLoad(t *testing.T, lines ...string) *maze.Maze {
	t.Helper()
	m, err := maze.LoadFromLines(lines)
	require.NoError(t, err)
	return m
}

func newSession(t *testing.T, m *maze.Maze, player core.Position, rng maze.Rand) *Session {
	t.Helper()
	s, err := NewSession(m, player, rng)
	require.NoError(t, err)
	return s
}

func TestNewSessionRejectsBadPlayer(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")

	for _, p := range []core.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 9, Col: 9}} {
		_, err := NewSession(m, p, fixedRand(0))
		assert.ErrorIs(t, err, ErrInvalidPlayer, "player at %v", p)
	}
}

func TestPlayerWalksOut(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))

	res := s.Tick(Move(core.West))
	assert.True(t, res.PlayerMoved)
	assert.Equal(t, Playing, res.Outcome)
	assert.Equal(t, core.Position{Row: 1, Col: 1}, s.Player())

	res = s.Tick(Move(core.West))
	assert.Equal(t, Escaped, res.Outcome)
	assert.True(t, s.Over())

	// Ticks after the end are no-ops
	res = s.Tick(Move(core.East))
	assert.Equal(t, 2, res.Tick)
	assert.Equal(t, Escaped, res.Outcome)
	assert.Equal(t, core.Position{Row: 1, Col: 0}, s.Player())
}

func TestPlayerBumpsWallWithoutMoving(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))
	before := m.String()

	res := s.Tick(Move(core.North))
	assert.False(t, res.PlayerMoved)
	assert.False(t, res.PlayerPush, "wall at the map edge cannot slide")
	assert.Equal(t, core.North, s.Facing())
	assert.Equal(t, before, m.String())
}

func TestPlayerPushesWall(t *testing.T) {
	m := mustLoad(t,
		"#######",
		"X  #  #",
		"#######",
	)
	s := newSession(t, m, core.Position{Row: 1, Col: 4}, fixedRand(0))

	res := s.Tick(Move(core.West))
	assert.False(t, res.PlayerMoved)
	assert.True(t, res.PlayerPush)
	assert.Equal(t, core.Position{Row: 1, Col: 4}, s.Player())
	assert.Equal(t, maze.Floor, m.TileAt(core.Position{Row: 1, Col: 3}))
	assert.Equal(t, maze.Wall, m.TileAt(core.Position{Row: 1, Col: 2}))
	assert.Equal(t, maze.Floor, m.TileAt(core.Position{Row: 1, Col: 1}), "only two tiles change")

	res = s.Tick(Move(core.West))
	assert.True(t, res.PlayerMoved)
	assert.Equal(t, core.Position{Row: 1, Col: 3}, s.Player())
}

func TestPlayerWalksIntoTroll(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	m.AddTroll(core.Position{Row: 1, Col: 1}, maze.NewTroll(core.North))
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))

	res := s.Tick(Move(core.West))
	assert.Equal(t, Captured, res.Outcome)
}

func TestPlayerWalksOverDeadTroll(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	dead := maze.NewTroll(core.North)
	dead.Alive = false
	m.AddTroll(core.Position{Row: 1, Col: 1}, dead)
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))

	res := s.Tick(Move(core.West))
	assert.Equal(t, Playing, res.Outcome)
	assert.Equal(t, core.Position{Row: 1, Col: 1}, s.Player())
}

func TestTrollCatchesPlayerDuringSweep(t *testing.T) {
	m := mustLoad(t,
		"#######",
		"X     #",
		"#######",
	)
	tr := maze.NewTroll(core.West)
	tr.State = maze.Charging{}
	m.AddTroll(core.Position{Row: 1, Col: 4}, tr)
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))

	res := s.Tick(Wait)
	assert.Equal(t, Playing, res.Outcome)
	_, ok := m.TrollAt(core.Position{Row: 1, Col: 3})
	assert.True(t, ok)

	res = s.Tick(Wait)
	assert.Equal(t, Captured, res.Outcome)
	_, ok = m.TrollAt(s.Player())
	assert.True(t, ok, "the troll ends on the player's cell")
}

func TestSweepUpdatesEachTrollOnce(t *testing.T) {
	m := mustLoad(t,
		"#######",
		"#     #",
		"#######",
	)
	charger := maze.NewTroll(core.East)
	charger.State = maze.Charging{}
	m.AddTroll(core.Position{Row: 1, Col: 1}, charger)
	stunned := maze.NewTroll(core.North)
	stunned.State = maze.Stunned{Remaining: 2}
	m.AddTroll(core.Position{Row: 1, Col: 2}, stunned)
	s := newSession(t, m, core.Position{Row: 1, Col: 5}, fixedRand(0))

	s.Tick(Wait)

	// The charger ran into the stunned troll's cell and replaced it; it was not updated a second time
	assert.Equal(t, 1, m.TrollCount())
	got, ok := m.TrollAt(core.Position{Row: 1, Col: 2})
	require.True(t, ok)
	assert.Equal(t, maze.Charging{}, got.State)
	assert.Equal(t, core.East, got.Facing)
	_, ok = m.TrollAt(core.Position{Row: 1, Col: 3})
	assert.False(t, ok)
}

func TestTickReportsStunsAndKnockouts(t *testing.T) {
	m := mustLoad(t,
		"#######",
		"#  # ##",
		"#######",
	)
	tr := maze.NewTroll(core.East)
	tr.State = maze.Charging{}
	m.AddTroll(core.Position{Row: 1, Col: 2}, tr)
	s := newSession(t, m, core.Position{Row: 1, Col: 1}, fixedRand(0))

	res := s.Tick(Wait)
	assert.Equal(t, 1, res.Stuns)
	assert.Equal(t, 0, res.KnockedOut)
	assert.Equal(t, maze.Wall, m.TileAt(core.Position{Row: 1, Col: 4}))

	res = s.Tick(Wait)
	assert.Equal(t, 0, res.Stuns, "already stunned trolls are not counted again")
}

func TestHintShowsRouteAndDirection(t *testing.T) {
	m := mustLoad(t,
		"#####",
		"X   #",
		"### #",
		"#   #",
		"#####",
	)
	s := newSession(t, m, core.Position{Row: 3, Col: 1}, fixedRand(0))

	_, ok := s.HintDir()
	assert.False(t, ok)

	s.Tick(Hint)
	require.Len(t, s.Route(), 7)
	dir, ok := s.HintDir()
	require.True(t, ok)
	assert.Equal(t, core.East, dir)

	// The route follows the player
	s.Tick(Move(core.East))
	s.Tick(Move(core.East))
	require.Len(t, s.Route(), 5)
	dir, _ = s.HintDir()
	assert.Equal(t, core.North, dir)

	s.Tick(Hint)
	assert.Nil(t, s.Route())
}

func TestQuit(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	s := newSession(t, m, core.Position{Row: 1, Col: 2}, fixedRand(0))

	res := s.Tick(Quit)
	assert.Equal(t, Quitted, res.Outcome)
	assert.True(t, s.Over())
	assert.Equal(t, "quit", s.Outcome().String())
}

func TestSpawnTrolls(t *testing.T) {
	m, err := maze.Generate(maze.GenerateConfig{Height: 6, Width: 6, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	player := core.Position{Row: 1, Col: 1}
	s := newSession(t, m, player, rand.New(rand.NewSource(2)))

	require.NoError(t, s.SpawnTrolls(10))
	assert.Equal(t, 10, m.TrollCount())
	assert.Equal(t, 10, m.LivingTrolls())
	for pos, tr := range m.Trolls() {
		assert.NotEqual(t, player, pos)
		assert.Equal(t, maze.Floor, m.TileAt(pos))
		assert.Equal(t, maze.Wandering{}, tr.State)
	}
}

func TestSpawnTrollsNoRoom(t *testing.T) {
	m := mustLoad(t, "####", "X  #", "####")
	s := newSession(t, m, core.Position{Row: 1, Col: 1}, rand.New(rand.NewSource(4)))

	require.NoError(t, s.SpawnTrolls(1))
	err := s.SpawnTrolls(1)
	assert.ErrorIs(t, err, ErrNoSpawnRoom)
}

func TestSessionDeterministic(t *testing.T) {
	run := func() (string, []core.Position, core.Position) {
		rng := rand.New(rand.NewSource(2024))
		m, err := maze.Generate(maze.GenerateConfig{Height: 8, Width: 8, Rand: rng})
		require.NoError(t, err)
		player, err := m.RandomFloorTile(rng)
		require.NoError(t, err)
		s := newSession(t, m, player, rng)
		require.NoError(t, s.SpawnTrolls(6))

		moves := []Command{Wait, Move(core.East), Move(core.South), Wait, Move(core.West), Move(core.North)}
		for i := 0; i < 40 && !s.Over(); i++ {
			s.Tick(moves[i%len(moves)])
		}
		return m.String(), m.TrollPositions(), s.Player()
	}

	m1, trolls1, p1 := run()
	m2, trolls2, p2 := run()
	assert.Equal(t, m1, m2)
	assert.Equal(t, trolls1, trolls2)
	assert.Equal(t, p1, p2)
}

func TestSessionLogsWithID(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.MustParse("0b6c2f7e-1111-4222-8333-944455556666")
	m := mustLoad(t, "#####", "X   #", "#####")

	s, err := NewSession(m, core.Position{Row: 1, Col: 1}, fixedRand(0), WithLogger(log.New(&buf, "", 0)), WithID(id))
	require.NoError(t, err)
	s.Tick(Move(core.West))

	assert.Equal(t, id, s.ID)
	assert.Contains(t, buf.String(), "[0b6c2f7e] session started")
	assert.Contains(t, buf.String(), "player escaped")
}

func TestChargeIntoOccupiedWallKnocksOut(t *testing.T) {
	m := mustLoad(t,
		"#######",
		"#  #  #",
		"#######",
	)
	charger := maze.NewTroll(core.East)
	charger.State = maze.Charging{}
	m.AddTroll(core.Position{Row: 1, Col: 2}, charger)
	victim := m.AddTroll(core.Position{Row: 1, Col: 3}, maze.NewTroll(core.West))
	s := newSession(t, m, core.Position{Row: 1, Col: 5}, fixedRand(0))

	res := s.Tick(Wait)
	assert.Equal(t, 1, res.Stuns)
	assert.Equal(t, 1, res.KnockedOut)
	assert.False(t, victim.Alive)
	assert.Equal(t, maze.Floor, m.TileAt(core.Position{Row: 1, Col: 3}))
	assert.Equal(t, maze.Wall, m.TileAt(core.Position{Row: 1, Col: 4}))
	assert.Equal(t, 1, m.LivingTrolls())
}

func TestOverrunTrollIsNotKnockedOut(t *testing.T) {
	m := mustLoad(t,
		"######",
		"#    #",
		"######",
	)
	charger := maze.NewTroll(core.East)
	charger.State = maze.Charging{}
	m.AddTroll(core.Position{Row: 1, Col: 1}, charger)
	stunned := maze.NewTroll(core.North)
	stunned.State = maze.Stunned{Remaining: 3}
	overrun := m.AddTroll(core.Position{Row: 1, Col: 2}, stunned)
	s := newSession(t, m, core.Position{Row: 1, Col: 4}, fixedRand(0))

	res := s.Tick(Wait)
	assert.Equal(t, 1, m.TrollCount(), "the charger took the stunned troll's cell")
	assert.True(t, overrun.Alive)
	assert.Equal(t, 0, res.KnockedOut)
}

func TestSpawnTrollsFindsLastFreeTile(t *testing.T) {
	m := mustLoad(t, "#####", "X   #", "#####")
	// Every draw lands on the player, so only the fallback scan can place trolls
	s := newSession(t, m, core.Position{Row: 1, Col: 1}, fixedRand(1))

	require.NoError(t, s.SpawnTrolls(2))
	assert.Equal(t, []core.Position{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, m.TrollPositions())

	assert.ErrorIs(t, s.SpawnTrolls(1), ErrNoSpawnRoom)
}

func TestNilStdLoggerIsIgnored(t *testing.T) {
	var nilStd *log.Logger
	m := mustLoad(t, "#####", "X   #", "#####")

	s, err := NewSession(m, core.Position{Row: 1, Col: 1}, fixedRand(0), WithLogger(nilStd))
	require.NoError(t, err)
	assert.NotPanics(t, func() { s.Tick(Move(core.West)) })
	assert.Equal(t, Escaped, s.Outcome())
}
