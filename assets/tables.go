package assets

import (
	"slices"

	"deepfloor/internal/generate"
)

// Per-room caps by depth.
var maxMonstersByDepth = []generate.CapStep{
	{MinDepth: 1, Max: 0},
	{MinDepth: 2, Max: 1},
	{MinDepth: 3, Max: 2},
	{MinDepth: 4, Max: 3},
	{MinDepth: 6, Max: 5},
}

var maxItemsByDepth = []generate.CapStep{
	{MinDepth: 1, Max: 0},
	{MinDepth: 2, Max: 1},
	{MinDepth: 4, Max: 2},
}

var itemChances = []generate.SpawnEntry{
	{Template: HealthPotion, Weight: 35, MinDepth: 0},
	{Template: PolymerSword, Weight: 5, MinDepth: 0},
	{Template: PolymerDagger, Weight: 5, MinDepth: 0},
	{Template: PolymerAxe, Weight: 5, MinDepth: 0},
	{Template: ConfusionScroll, Weight: 10, MinDepth: 2},
	{Template: MetalSword, Weight: 5, MinDepth: 2},
	{Template: MetalDagger, Weight: 5, MinDepth: 2},
	{Template: MetalAxe, Weight: 5, MinDepth: 2},
	{Template: LightningScroll, Weight: 25, MinDepth: 4},
	{Template: AlloySword, Weight: 5, MinDepth: 4},
	{Template: AlloyDagger, Weight: 5, MinDepth: 4},
	{Template: AlloyAxe, Weight: 5, MinDepth: 4},
	{Template: FireballScroll, Weight: 25, MinDepth: 6},
}

var enemyChances = []generate.SpawnEntry{
	{Template: Omnibot, Weight: 80, MinDepth: 0},
	{Template: Zetabie, Weight: 5, MinDepth: 0},
	{Template: Zetabie, Weight: 15, MinDepth: 1},
	{Template: Zetabie, Weight: 25, MinDepth: 2},
}

// SpawnTables returns a fresh copy of the tables the generator draws
// monsters and items from. Changing it never affects later calls.
func SpawnTables() *generate.Tables {
	return &generate.Tables{
		Monsters:    slices.Clone(enemyChances),
		Items:       slices.Clone(itemChances),
		MonsterCaps: slices.Clone(maxMonstersByDepth),
		ItemCaps:    slices.Clone(maxItemsByDepth),
	}
}
