package game

import (
	"deepfloor/internal/config"
	"deepfloor/internal/generate"

	"go.uber.org/zap"
)

// RoomCurve overrides how many rooms a dense floor aims for.
type RoomCurve interface {
	MaxRooms(depth int) (int, error)
}

// StyleFor picks the generation style for a depth: the surface corridor at
// depth 0, dense networks below. Configured knobs replace the defaults of
// the dense style; a failing curve falls back to the built-in formula.
//
// A zero GenerationConfig means config.Default().Generation. Otherwise every
// field is taken as given, so a zero ConnectBack never connects back and a
// zero MaxTunnelDistance is unlimited.
func StyleFor(depth int, gen config.GenerationConfig, curve RoomCurve, log *zap.Logger) generate.Style {
	if gen == (config.GenerationConfig{}) {
		gen = config.Default().Generation
	}
	if depth <= 0 {
		s := generate.LinearCorridor()
		s.PlacementAttempts = max(1, gen.PlacementAttempts)
		return s
	}

	s := generate.DenseNetwork(depth)
	complexity := gen.Complexity
	if complexity < 1 {
		complexity = generate.DefaultComplexity
	}
	roomCap := gen.RoomCap
	if roomCap < 1 {
		roomCap = generate.DefaultRoomCap
	}
	rooms := generate.DenseRoomCount(depth, complexity, roomCap)
	if curve != nil {
		n, err := curve.MaxRooms(depth)
		if err != nil {
			if log != nil {
				log.Warn("room curve failed, using default", zap.Int("depth", depth), zap.Error(err))
			}
		} else {
			rooms = n
		}
	}
	s = s.WithRoomTarget(rooms)

	s.ConnectBack = gen.ConnectBack
	s.ConnectBackMinRooms = gen.ConnectBackMinRooms
	s.MaxTunnelDistance = gen.MaxTunnelDistance
	s.FogDensity = gen.FogDensity
	s.PlacementAttempts = max(1, gen.PlacementAttempts)
	return s
}
