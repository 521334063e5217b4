package component

import "deepfloor/internal/ecs"

const CSenses ecs.ComponentType = 2

// Senses holds an actor's base sight range and carried light radius.
// Equipment bonuses are added on top by Effective.
type Senses struct {
	Vision int
	Light  int
}

func (Senses) Type() ecs.ComponentType { return CSenses }

// Effective returns the senses after equipment: light takes the brightest
// equipped source, vision adds every bonus.
func (s Senses) Effective(eq *Equipment) Senses {
	if eq == nil {
		return s
	}
	return Senses{
		Vision: s.Vision + eq.VisionBonus(),
		Light:  max(s.Light, eq.LightBonus()),
	}
}
