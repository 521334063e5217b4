package component

import "deepfloor/internal/ecs"

const CName ecs.ComponentType = 6

// Name records which template an entity was built from.
type Name struct {
	Template string
	Display  string
}

func (Name) Type() ecs.ComponentType { return CName }
