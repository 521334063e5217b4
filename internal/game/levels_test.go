package game

import (
	"errors"
	"reflect"
	"testing"

	"deepfloor/internal/config"
	"deepfloor/internal/gamemap"
)

type fixedCurve struct {
	n   int
	err error
}

func (c fixedCurve) MaxRooms(int) (int, error) { return c.n, c.err }

func TestStyleForSurface(t *testing.T) {
	s := StyleFor(0, config.Default().Generation, nil, nil)
	if s.Highway == nil || s.DownstairsTile != gamemap.TileDownLadder {
		t.Errorf("depth 0 should be the highway style, got %q", s.Name)
	}
	if s.MaxRooms != 7 || s.MaxIterations != 60 {
		t.Errorf("surface rooms/iterations = %d/%d; want 7/60", s.MaxRooms, s.MaxIterations)
	}
}

func TestStyleForDenseDefaults(t *testing.T) {
	tests := []struct {
		depth, rooms int
		up           gamemap.TileID
	}{
		{1, 5, gamemap.TileUpLadder},
		{3, 15, gamemap.TileUpStairs},
		{40, 200, gamemap.TileUpStairs},
		{90, 200, gamemap.TileUpStairs},
	}
	for _, tt := range tests {
		s := StyleFor(tt.depth, config.Default().Generation, nil, nil)
		if s.MaxRooms != tt.rooms || s.MaxIterations != tt.rooms*30 {
			t.Errorf("depth %d: rooms/iterations = %d/%d; want %d/%d",
				tt.depth, s.MaxRooms, s.MaxIterations, tt.rooms, tt.rooms*30)
		}
		if s.UpstairsTile != tt.up {
			t.Errorf("depth %d: upstairs tile = %d; want %d", tt.depth, s.UpstairsTile, tt.up)
		}
		if !s.AnchorFirstRoom {
			t.Errorf("depth %d: dense floors grow around the arrival point", tt.depth)
		}
	}
}

func TestStyleForAppliesConfig(t *testing.T) {
	gen := config.Default().Generation
	gen.Complexity = 2
	gen.ConnectBack = 0.9
	gen.FogDensity = 0.2
	gen.PlacementAttempts = 4

	s := StyleFor(5, gen, nil, nil)
	if s.MaxRooms != 10 {
		t.Errorf("rooms = %d; want 10", s.MaxRooms)
	}
	if s.ConnectBack != 0.9 || s.FogDensity != 0.2 || s.PlacementAttempts != 4 {
		t.Errorf("style ignored config: %+v", s)
	}
}

func TestStyleForCurve(t *testing.T) {
	gen := config.Default().Generation
	if s := StyleFor(2, gen, fixedCurve{n: 33}, nil); s.MaxRooms != 33 {
		t.Errorf("curve rooms = %d; want 33", s.MaxRooms)
	}
	if s := StyleFor(2, gen, fixedCurve{err: errors.New("lua exploded")}, nil); s.MaxRooms != 10 {
		t.Errorf("failed curve rooms = %d; want default 10", s.MaxRooms)
	}
}

func TestStyleForZeroConfigUsesDefaults(t *testing.T) {
	for _, depth := range []int{0, 1, 4} {
		got := StyleFor(depth, config.GenerationConfig{}, nil, nil)
		want := StyleFor(depth, config.Default().Generation, nil, nil)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("depth %d: zero config style = %+v; want defaults %+v", depth, got, want)
		}
	}
	s := StyleFor(4, config.GenerationConfig{}, nil, nil)
	if s.MaxTunnelDistance != 16 || s.ConnectBack != 0.4 {
		t.Errorf("tunnel distance/connect back = %d/%v; want 16/0.4", s.MaxTunnelDistance, s.ConnectBack)
	}
}

func TestStyleForKeepsExplicitZeros(t *testing.T) {
	gen := config.Default().Generation
	gen.ConnectBack = 0
	gen.MaxTunnelDistance = 0
	s := StyleFor(4, gen, nil, nil)
	if s.ConnectBack != 0 || s.MaxTunnelDistance != 0 {
		t.Errorf("explicit zeros overridden: connect back %v, tunnel distance %d", s.ConnectBack, s.MaxTunnelDistance)
	}
}
