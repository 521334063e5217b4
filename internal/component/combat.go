package component

import "deepfloor/internal/ecs"

const CCombat ecs.ComponentType = 7

// Combat holds an actor's unarmed attack rating and damage.
type Combat struct {
	Attack int
	Damage int
}

func (Combat) Type() ecs.ComponentType { return CCombat }
