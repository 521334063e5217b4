package generate

import (
	"math/rand"
	"testing"

	"deepfloor/internal/gamemap"
)

func TestBresenhamEndpoints(t *testing.T) {
	cases := []struct{ a, b gamemap.Point }{
		{gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 5, Y: 0}},
		{gamemap.Point{X: 5, Y: 9}, gamemap.Point{X: 5, Y: 2}},
		{gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 7, Y: 4}},
		{gamemap.Point{X: 3, Y: 3}, gamemap.Point{X: 3, Y: 3}},
	}
	for _, c := range cases {
		line := bresenham(c.a, c.b)
		if line[0] != c.a || line[len(line)-1] != c.b {
			t.Errorf("line %v -> %v: got ends %v, %v", c.a, c.b, line[0], line[len(line)-1])
		}
		for i := 1; i < len(line); i++ {
			dx, dy := abs(line[i].X-line[i-1].X), abs(line[i].Y-line[i-1].Y)
			if dx > 1 || dy > 1 {
				t.Errorf("line %v -> %v: gap between %v and %v", c.a, c.b, line[i-1], line[i])
			}
		}
	}
}

func TestTunnelIsLShaped(t *testing.T) {
	a, b := gamemap.Point{X: 2, Y: 3}, gamemap.Point{X: 9, Y: 8}
	for seed := int64(0); seed < 8; seed++ {
		path := tunnelBetween(rand.New(rand.NewSource(seed)), a, b)
		for _, p := range path {
			onH := p.Y == a.Y || p.Y == b.Y
			onV := p.X == a.X || p.X == b.X
			if !onH && !onV {
				t.Fatalf("seed=%d: cell %v is off both legs", seed, p)
			}
		}
		if path[0] != a || path[len(path)-1] != b {
			t.Fatalf("seed=%d: tunnel does not join the centers", seed)
		}
	}
}

func TestCarveTunnelKeepsRoomFloor(t *testing.T) {
	gmap := gamemap.New(12, 12, gamemap.TileChasm, testCatalog)
	style := LinearCorridor()
	gmap.Set(5, 2, style.FloorTile)
	gmap.Set(5, 3, style.WallTile)

	carveTunnel(gmap, rand.New(rand.NewSource(1)), &style,
		gamemap.Point{X: 5, Y: 0}, gamemap.Point{X: 5, Y: 6})

	if got := gmap.At(5, 2); got != style.FloorTile {
		t.Errorf("room floor overwritten with %d", got)
	}
	if got := gmap.At(5, 3); got != style.TunnelTile {
		t.Errorf("wall not cut by tunnel, got %d", got)
	}
	if got := gmap.At(5, 6); got != style.TunnelTile {
		t.Errorf("tunnel end not carved, got %d", got)
	}
}
