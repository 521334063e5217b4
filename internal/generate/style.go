package generate

import "deepfloor/internal/gamemap"

// Highway is a fixed band that spans the whole floor width. It is accepted
// as the first room before generation and repaved once generation is done.
type Highway struct {
	Y, Height int
	Tile      gamemap.TileID
}

// Style holds every knob of the room accretion loop.
type Style struct {
	Name string

	FillTile       gamemap.TileID
	FloorTile      gamemap.TileID
	TunnelTile     gamemap.TileID
	WallTile       gamemap.TileID
	DownstairsTile gamemap.TileID
	UpstairsTile   gamemap.TileID
	StampUpstairs  bool
	Walls          bool

	MinRoomSize, MaxRoomSize int
	MaxRooms                 int
	MaxIterations            int

	ConnectBack         float64
	ConnectBackMinRooms int
	TunnelFromPrev      float64
	// MaxTunnelDistance rejects rooms whose center is this far or farther
	// (Chebyshev) from the previous room. Zero means unlimited.
	MaxTunnelDistance int

	// AnchorFirstRoom centers the first room on the arrival point.
	AnchorFirstRoom bool
	Highway         *Highway

	FogDensity float64
	FogScale   float64

	PlacementAttempts int
}

const (
	DefaultComplexity = 5
	DefaultRoomCap    = 200
	iterationsPerRoom = 30
)

// DenseRoomCount is the default room target for a dense floor.
func DenseRoomCount(depth, complexity, roomCap int) int {
	return min(roomCap, depth*complexity)
}

// LinearCorridor is the surface style: a concrete highway across a chasm
// with small walled buildings hanging off it.
func LinearCorridor() Style {
	return Style{
		Name:                "linear-corridor",
		FillTile:            gamemap.TileChasm,
		FloorTile:           gamemap.TileConcreteFloor,
		TunnelTile:          gamemap.TileWoodFloor,
		WallTile:            gamemap.TileRedWall,
		DownstairsTile:      gamemap.TileDownLadder,
		Walls:               true,
		MinRoomSize:         9,
		MaxRoomSize:         12,
		MaxRooms:            7,
		MaxIterations:       60,
		ConnectBack:         1,
		ConnectBackMinRooms: 0,
		TunnelFromPrev:      0.2,
		MaxTunnelDistance:   999,
		Highway:             &Highway{Y: 13, Height: 16, Tile: gamemap.TileConcreteHighway},
		PlacementAttempts:   1,
	}
}

// DenseNetwork is the style below the surface: many open rooms chained by
// tunnels, with occasional shortcuts back to the entrance.
func DenseNetwork(depth int) Style {
	up := gamemap.TileUpStairs
	if depth == 1 {
		up = gamemap.TileUpLadder
	}
	rooms := DenseRoomCount(depth, DefaultComplexity, DefaultRoomCap)
	return Style{
		Name:                "dense-network",
		FillTile:            gamemap.TileChasm,
		FloorTile:           gamemap.TileConcreteFloor,
		TunnelTile:          gamemap.TileConcreteFloor,
		DownstairsTile:      gamemap.TileDownStairs,
		UpstairsTile:        up,
		StampUpstairs:       true,
		MinRoomSize:         6,
		MaxRoomSize:         13,
		MaxRooms:            rooms,
		MaxIterations:       rooms * iterationsPerRoom,
		ConnectBack:         0.4,
		ConnectBackMinRooms: 5,
		TunnelFromPrev:      1,
		MaxTunnelDistance:   16,
		AnchorFirstRoom:     true,
		FogScale:            6,
		PlacementAttempts:   1,
	}
}

// WithRoomTarget sets MaxRooms and scales the iteration budget with it.
func (s Style) WithRoomTarget(rooms int) Style {
	s.MaxRooms = rooms
	s.MaxIterations = rooms * iterationsPerRoom
	return s
}
