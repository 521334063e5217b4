package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linearCurve = `
function max_rooms(depth)
  return math.min(200, depth * 5)
end
`

func TestCurveMatchesDefaultFormula(t *testing.T) {
	c, err := LoadCurve(linearCurve)
	require.NoError(t, err)
	defer c.Close()

	for _, tt := range []struct{ depth, want int }{
		{1, 5}, {2, 10}, {10, 50}, {40, 200}, {100, 200},
	} {
		got, err := c.MaxRooms(tt.depth)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "depth %d", tt.depth)
	}
}

func TestCurveTruncatesFractions(t *testing.T) {
	c, err := LoadCurve(`function max_rooms(d) return d * 2.5 end`)
	require.NoError(t, err)
	defer c.Close()
	got, err := c.MaxRooms(3)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestCurveErrors(t *testing.T) {
	_, err := LoadCurve(`function max_rooms(d`)
	assert.Error(t, err, "syntax error")

	_, err = LoadCurve(`rooms = 4`)
	assert.ErrorIs(t, err, ErrNoCurve)

	c, err := LoadCurve(`function max_rooms(d) return "many" end`)
	require.NoError(t, err)
	_, err = c.MaxRooms(1)
	assert.Error(t, err, "non-number result")
	c.Close()

	c, err = LoadCurve(`function max_rooms(d) return 0 end`)
	require.NoError(t, err)
	_, err = c.MaxRooms(1)
	assert.Error(t, err, "zero rooms")
	c.Close()

	c, err = LoadCurve(`function max_rooms(d) error("boom") end`)
	require.NoError(t, err)
	_, err = c.MaxRooms(1)
	assert.Error(t, err, "runtime error")
	c.Close()
}

func TestCurveHasNoOSAccess(t *testing.T) {
	c, err := LoadCurve(`function max_rooms(d) os.exit(1) return 1 end`)
	require.NoError(t, err)
	defer c.Close()
	_, err = c.MaxRooms(1)
	assert.Error(t, err)
}

func TestLoadCurveFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rooms.lua")
	require.NoError(t, os.WriteFile(p, []byte(linearCurve), 0o644))
	c, err := LoadCurveFile(p)
	require.NoError(t, err)
	defer c.Close()
	n, err := c.MaxRooms(4)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	_, err = LoadCurveFile(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}
