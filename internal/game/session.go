package game

import (
	"errors"
	"fmt"
	"time"

	"deepfloor/internal/cache"
	"deepfloor/internal/component"
	"deepfloor/internal/config"
	"deepfloor/internal/ecs"
	"deepfloor/internal/factory"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/generate"
	"deepfloor/internal/system"

	"go.uber.org/zap"
)

var (
	// ErrNoFloorAbove is returned when ascending from the surface.
	ErrNoFloorAbove = errors.New("no floor above the surface")
	// ErrNoStairs is returned when taking stairs where there are none.
	ErrNoStairs = errors.New("there are no stairs here")
)

// Options configures a Session.
type Options struct {
	Width, Height int
	WorldSeed     int64
	Start         gamemap.Coord
	Generation    config.GenerationConfig
	Curve         RoomCurve
	Catalog       *gamemap.Catalog
	Tables        *generate.Tables
	Cache         *cache.Cache
	Log           *zap.Logger
	// Resume continues a saved run: its seed and coordinate replace
	// WorldSeed and Start, and the viewer starts where they stood.
	Resume        *cache.Header
}

// OptionsFrom fills the size, seed, start and generation knobs from cfg.
// Catalog, tables and cache are left for the caller.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		WorldSeed:  cfg.World.Seed,
		Start:      gamemap.Coord{X: cfg.World.StartX, Y: 0},
		Generation: cfg.Generation,
	}
}

// Session owns the active floor, the entity world and the viewer. It is not
// safe for concurrent use.
type Session struct {
	opts     Options
	world    *ecs.World
	gmap     *gamemap.GameMap
	coord    gamemap.Coord
	viewer   ecs.EntityID
	messages []string
	runLog   RunLog
	log      *zap.Logger
}

// NewSession checks opts; call Start to enter the first floor.
func NewSession(opts Options) (*Session, error) {
	if opts.Catalog == nil {
		opts.Catalog = gamemap.StandardCatalog()
	}
	if opts.Cache == nil {
		return nil, errors.New("session needs a floor cache")
	}
	if h := opts.Resume; h != nil {
		opts.WorldSeed, opts.Start = h.WorldSeed, h.Coord
	}
	if opts.Start.Y < 0 {
		return nil, fmt.Errorf("start depth %d above the surface", opts.Start.Y)
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Session{
		opts:  opts,
		world: ecs.NewWorld(),
		log:   opts.Log.Named("session"),
		runLog: RunLog{
			WorldSeed: opts.WorldSeed,
			Started:   time.Now(),
		},
	}, nil
}

// Start creates the viewer and enters the starting floor, loading it when
// the cache already knows it.
func (s *Session) Start() error {
	if s.gmap != nil {
		return errors.New("session already started")
	}
	c := s.opts.Start
	anchor := gamemap.Point{X: s.opts.Width / 2, Y: s.opts.Height / 2}
	if s.opts.Start.X >= 0 && s.opts.Start.X < s.opts.Width {
		anchor.X = s.opts.Start.X
	}
	s.viewer = factory.NewViewer(s.world, anchor.X, anchor.Y)

	var (
		gmap   *gamemap.GameMap
		spawns []generate.Spawn
	)
	if s.opts.Cache.HasFloor(c) {
		m, err := s.opts.Cache.Load(c, s.opts.Catalog, s.viewer)
		if err != nil {
			return err
		}
		gmap = m
		s.runLog.FloorsLoaded++
	} else {
		res, err := s.generate(c, anchor)
		if err != nil {
			return err
		}
		gmap, spawns = res.Map, res.Spawns
		gmap.AddEntity(s.viewer)
		s.opts.Cache.MarkGenerated(c)
		s.runLog.FloorsGenerated++
	}

	s.gmap, s.coord = gmap, c
	s.setViewerPos(s.startPos())
	factory.SpawnAll(s.world, gmap, spawns, s.log)
	s.runLog.DeepestDepth = c.Depth()
	system.UpdateFOV(s.world, s.gmap, s.viewer)
	s.addMessage(fmt.Sprintf("You arrive at %s.", describe(c)))
	return nil
}

// startPos is the saved viewer position when resuming onto a cell the viewer
// can stand on, the floor's up stair otherwise.
func (s *Session) startPos() gamemap.Point {
	if h := s.opts.Resume; h != nil {
		p := h.Viewer
		if s.gmap.IsPassable(p.X, p.Y) {
			return p
		}
		s.log.Warn("saved position unusable, starting at the stairs",
			zap.Int("x", p.X), zap.Int("y", p.Y))
	}
	return s.gmap.Upstairs
}

// Save persists the active floor and a header that lets a later session
// resume here. Call it before the process exits.
func (s *Session) Save() error {
	if s.gmap == nil {
		return errors.New("session not started")
	}
	if err := s.opts.Cache.Save(s.coord, s.gmap); err != nil {
		return err
	}
	return s.opts.Cache.SaveHeader(cache.Header{
		WorldSeed: s.opts.WorldSeed,
		Coord:     s.coord,
		Viewer:    s.ViewerPos(),
	})
}

func (s *Session) generate(c gamemap.Coord, anchor gamemap.Point) (*generate.Result, error) {
	style := StyleFor(c.Depth(), s.opts.Generation, s.opts.Curve, s.log)
	return generate.Generate(generate.Params{
		Width:     s.opts.Width,
		Height:    s.opts.Height,
		Coord:     c,
		WorldSeed: s.opts.WorldSeed,
		Style:     style,
		Anchor:    anchor,
		Catalog:   s.opts.Catalog,
		Tables:    s.opts.Tables,
		Log:       s.opts.Log.Named("generate"),
	})
}

// World returns the entity store.
func (s *Session) World() *ecs.World { return s.world }

// Map returns the active floor.
func (s *Session) Map() *gamemap.GameMap { return s.gmap }

// Coord returns the active world coordinate.
func (s *Session) Coord() gamemap.Coord { return s.coord }

// Viewer returns the viewer's entity.
func (s *Session) Viewer() ecs.EntityID { return s.viewer }

// Messages returns the message log, oldest first.
func (s *Session) Messages() []string { return s.messages }

// RunLog returns the statistics gathered so far.
func (s *Session) RunLog() RunLog { return s.runLog }

// ViewerPos returns where the viewer stands.
func (s *Session) ViewerPos() gamemap.Point {
	c := s.world.Get(s.viewer, component.CPosition)
	if c == nil {
		return gamemap.Point{}
	}
	p := c.(component.Position)
	return gamemap.Point{X: p.X, Y: p.Y}
}

func (s *Session) setViewerPos(p gamemap.Point) {
	s.world.Add(s.viewer, component.Position{X: p.X, Y: p.Y})
}

// Place moves the viewer to (x, y) on the active floor and refreshes sight.
func (s *Session) Place(x, y int) error {
	if err := s.gmap.Check(x, y); err != nil {
		return err
	}
	s.setViewerPos(gamemap.Point{X: x, Y: y})
	system.UpdateFOV(s.world, s.gmap, s.viewer)
	return nil
}

// Move steps the viewer. Walking onto a fall-through tile drops the viewer
// to the floor below.
func (s *Session) Move(dx, dy int) (system.MoveResult, error) {
	result, target := system.TryMove(s.world, s.gmap, s.viewer, dx, dy)
	switch result {
	case system.MoveOK:
		s.runLog.Turns++
		system.UpdateFOV(s.world, s.gmap, s.viewer)
	case system.MoveAttack:
		s.runLog.Turns++
		s.addMessage(fmt.Sprintf("You bump into %s.", s.entityName(target)))
	case system.MoveBlocked:
		s.addMessage("That way is blocked.")
	case system.MoveFell:
		s.runLog.Turns++
		s.addMessage("You fall into the chasm!")
		if err := s.Descend(); err != nil {
			system.UpdateFOV(s.world, s.gmap, s.viewer)
			return result, err
		}
	}
	return result, nil
}

// TakeStairs follows the stairs under the viewer, if any.
func (s *Session) TakeStairs() error {
	k := s.underViewer()
	switch {
	case k.StairsDown:
		return s.Descend()
	case k.StairsUp:
		return s.Ascend()
	}
	s.addMessage("There are no stairs here.")
	return ErrNoStairs
}

// TakeStairsDown descends only when standing on a down stair or ladder.
func (s *Session) TakeStairsDown() error {
	if !s.underViewer().StairsDown {
		s.addMessage("There are no stairs here.")
		return ErrNoStairs
	}
	return s.Descend()
}

// TakeStairsUp ascends only when standing on an up stair or ladder.
func (s *Session) TakeStairsUp() error {
	if !s.underViewer().StairsUp {
		s.addMessage("There are no stairs here.")
		return ErrNoStairs
	}
	return s.Ascend()
}

func (s *Session) underViewer() gamemap.TileKind {
	p := s.ViewerPos()
	return s.gmap.Kind(p.X, p.Y)
}

func (s *Session) entityName(id ecs.EntityID) string {
	c := s.world.Get(id, component.CName)
	if c == nil {
		return "something"
	}
	return c.(component.Name).Display
}

func (s *Session) addMessage(msg string) {
	s.messages = append(s.messages, msg)
	if len(s.messages) > 50 {
		s.messages = s.messages[len(s.messages)-50:]
	}
}

func describe(c gamemap.Coord) string {
	if c.Depth() == 0 {
		return "the superhighway"
	}
	return fmt.Sprintf("warehouse level %d", c.Depth())
}
