// floorgen generates one floor at a world coordinate and prints it.
//
// Usage:
//
//	floorgen [-config deepfloor.yaml] [-x 40] [-y 0] [-seed 1] [-save]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"deepfloor/assets"
	"deepfloor/internal/cache"
	"deepfloor/internal/config"
	"deepfloor/internal/game"
	"deepfloor/internal/gamemap"
	"deepfloor/internal/generate"
	"deepfloor/internal/logger"
	"deepfloor/internal/render"
	"deepfloor/internal/script"

	"go.uber.org/zap"
)

type options struct {
	configPath string
	x, y       int
	seed       int64
	save       bool
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "deepfloor.yaml", "Path to a YAML or TOML config file")
	flag.IntVar(&o.x, "x", -1, "World x coordinate (default: the configured start)")
	flag.IntVar(&o.y, "y", 0, "Depth")
	flag.Int64Var(&o.seed, "seed", 0, "World seed (default: the configured seed)")
	flag.BoolVar(&o.save, "save", false, "Persist the floor to the configured cache")
	flag.Parse()

	if err := run(o, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "floorgen: %v\n", err)
		os.Exit(1)
	}
}

func run(o options, out io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	seed := cfg.World.Seed
	if o.seed != 0 {
		seed = o.seed
	}
	coord := gamemap.Coord{X: cfg.World.StartX, Y: o.y}
	if o.x >= 0 {
		coord.X = o.x
	}
	if coord.Y < 0 {
		return fmt.Errorf("depth %d is above the surface", coord.Y)
	}

	var curve game.RoomCurve
	if path := cfg.Generation.RoomCurveScript; path != "" {
		c, err := script.LoadCurveFile(path)
		if err != nil {
			return err
		}
		defer c.Close()
		curve = c
	}

	anchor := gamemap.Point{X: cfg.World.Width / 2, Y: cfg.World.Height / 2}
	if coord.X < cfg.World.Width {
		anchor.X = coord.X
	}
	res, err := generate.Generate(generate.Params{
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Coord:     coord,
		WorldSeed: seed,
		Style:     game.StyleFor(coord.Depth(), cfg.Generation, curve, log),
		Anchor:    anchor,
		Catalog:   gamemap.StandardCatalog(),
		Tables:    assets.SpawnTables(),
		Log:       log.Named("generate"),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(out, render.ASCII(res.Map, true))
	fmt.Fprintf(out, "coord %s seed %d: %d rooms in %d iterations, %d spawns",
		coord, generate.Seed(coord, seed), len(res.Rooms), res.Iterations, len(res.Spawns))
	if res.Exhausted {
		fmt.Fprint(out, " (short)")
	}
	fmt.Fprintln(out)

	if !o.save {
		return nil
	}
	if cfg.Cache.Path == "" {
		dir, err := game.DataDir()
		if err != nil {
			return err
		}
		cfg.Cache.Path = filepath.Join(dir, "saves")
	}
	store, err := cache.OpenStore(cfg.Cache.Backend, cfg.Cache.Path)
	if err != nil {
		return err
	}
	floors, err := cache.New(store, log)
	if err != nil {
		store.Close()
		return err
	}
	defer floors.Close()
	h, err := floors.LoadHeader()
	switch {
	case err == nil && h.WorldSeed != seed:
		return fmt.Errorf("cache holds world seed %d, not %d", h.WorldSeed, seed)
	case err != nil && !errors.Is(err, cache.ErrNotFound):
		return err
	}
	if err := floors.Save(coord, res.Map); err != nil {
		return err
	}
	log.Info("floor saved", zap.Stringer("coord", coord), zap.String("cache", cfg.Cache.Path))
	return nil
}
