package generate

import (
	"math/rand"

	"deepfloor/internal/gamemap"

	"go.uber.org/zap"
)

// SpawnEntry weights one template from MinDepth downwards. A later entry for
// the same template replaces the weight of an earlier one.
type SpawnEntry struct {
	Template string
	Weight   int
	MinDepth int
}

// CapStep is one step of a per-depth maximum: from MinDepth on, at most Max.
type CapStep struct {
	MinDepth int
	Max      int
}

// Tables are the immutable spawn tables consulted for every room.
type Tables struct {
	Monsters    []SpawnEntry
	Items       []SpawnEntry
	MonsterCaps []CapStep
	ItemCaps    []CapStep
}

// SpawnKind separates actors from pickups.
type SpawnKind uint8

const (
	SpawnMonster SpawnKind = iota
	SpawnItem
)

// Spawn is one entity to create once the floor is live.
type Spawn struct {
	Kind     SpawnKind
	Template string
	X, Y     int
}

// CapFor evaluates a step function: the Max of the last step whose MinDepth
// is not above depth, or 0 before the first step.
func CapFor(steps []CapStep, depth int) int {
	current := 0
	for _, s := range steps {
		if s.MinDepth > depth {
			break
		}
		current = s.Max
	}
	return current
}

// weightsFor flattens the entries eligible at depth. Templates keep the
// position of their first appearance.
func weightsFor(entries []SpawnEntry, depth int) ([]string, []int) {
	var names []string
	var weights []int
	pos := make(map[string]int)
	for _, e := range entries {
		if e.MinDepth > depth {
			continue
		}
		if i, ok := pos[e.Template]; ok {
			weights[i] = e.Weight
			continue
		}
		pos[e.Template] = len(names)
		names = append(names, e.Template)
		weights = append(weights, e.Weight)
	}
	return names, weights
}

// chooseWeighted draws k templates with replacement.
func chooseWeighted(rng *rand.Rand, names []string, weights []int, k int) []string {
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total == 0 || k <= 0 {
		return nil
	}
	out := make([]string, 0, k)
	for range k {
		r := rng.Intn(total)
		for i, w := range weights {
			if w <= 0 {
				continue
			}
			if r < w {
				out = append(out, names[i])
				break
			}
			r -= w
		}
	}
	return out
}

// populateRoom rolls the monsters and items of one room and picks their
// cells. occupied holds every cell already claimed on the floor.
func populateRoom(rng *rand.Rand, gmap *gamemap.GameMap, room gamemap.Rect, depth int,
	tables *Tables, attempts int, occupied map[gamemap.Point]bool, log *zap.Logger) []Spawn {

	nMonsters := randInt(rng, 0, CapFor(tables.MonsterCaps, depth))
	nItems := randInt(rng, 0, CapFor(tables.ItemCaps, depth))

	names, weights := weightsFor(tables.Monsters, depth)
	monsters := chooseWeighted(rng, names, weights, nMonsters)
	names, weights = weightsFor(tables.Items, depth)
	items := chooseWeighted(rng, names, weights, nItems)

	type pending struct {
		kind     SpawnKind
		template string
	}
	queue := make([]pending, 0, len(monsters)+len(items))
	for _, m := range monsters {
		queue = append(queue, pending{SpawnMonster, m})
	}
	for _, it := range items {
		queue = append(queue, pending{SpawnItem, it})
	}

	var spawns []Spawn
	for _, p := range queue {
		x, y, ok := pickFreeInRoom(rng, gmap, room, attempts, occupied)
		if !ok {
			log.Debug("spawn skipped",
				zap.String("template", p.template),
				zap.Int("room_x", room.X1), zap.Int("room_y", room.Y1),
				zap.Error(ErrPlacementFailed))
			continue
		}
		occupied[gamemap.Point{X: x, Y: y}] = true
		spawns = append(spawns, Spawn{Kind: p.kind, Template: p.template, X: x, Y: y})
	}
	return spawns
}

// pickFreeInRoom tries up to attempts random interior cells and returns the
// first that is on the floor and unclaimed.
func pickFreeInRoom(rng *rand.Rand, gmap *gamemap.GameMap, room gamemap.Rect, attempts int,
	occupied map[gamemap.Point]bool) (int, int, bool) {
	for range max(attempts, 1) {
		x := randInt(rng, room.X1+1, room.X2-1)
		y := randInt(rng, room.Y1+1, room.Y2-1)
		if gmap.InBounds(x, y) && !occupied[gamemap.Point{X: x, Y: y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}

// randInt returns a value in [lo, hi], both inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
