package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws, failing the test if a draw is out of range or the script runs dry
type scriptedRand struct {
	t     *testing.T
	draws []int
	next  int
}

func newScriptedRand(t *testing.T, draws ...int) *scriptedRand {
	return &scriptedRand{t: t, draws: draws}
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	require.Less(r.t, r.next, len(r.draws), "scripted rand exhausted")
	d := r.draws[r.next]
	r.next++
	require.True(r.t, d >= 0 && d < n, "scripted draw %d out of range [0,%d)", d, n)
	return d
}

func mustLoad(t *testing.T, lines ...string) *Maze {
	t.Helper()
	m, err := LoadFromLines(lines)
	require.NoError(t, err)
	return m
}
